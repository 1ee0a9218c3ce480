package app

import "net/http"

// Contributor entity.
// Json names follow the upstream contributors listing.
type Contributor struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

// ContributorList is a single successful upstream answer.
type ContributorList struct {
	// StatusCode - upstream success status.
	StatusCode int

	// Raw - upstream json body, unmodified.
	Raw []byte

	// Contributors - decoded Raw.
	Contributors []Contributor
}

// EmptyContributorList returns list used when upstream has nothing to say (e.g. empty repository).
func EmptyContributorList() *ContributorList {
	return &ContributorList{
		StatusCode:   http.StatusOK,
		Raw:          []byte("[]"),
		Contributors: []Contributor{},
	}
}
