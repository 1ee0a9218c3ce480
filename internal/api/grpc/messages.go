package grpc

// ListRequest asks for contributors of Owner/Repo.
type ListRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// ListReply carries repository contributors.
type ListReply struct {
	Contributors []*Contributor `json:"contributors"`
}

// Contributor is a single repository contributor.
type Contributor struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int32  `json:"contributions"`
}
