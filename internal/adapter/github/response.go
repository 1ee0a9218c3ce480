package github

import (
	"encoding/json"

	"github.com/m-zajac/contributorgallery/internal/app"
)

type contributorsResponse []struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

func (r contributorsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(r))
	for _, el := range r {
		cs = append(cs, app.Contributor{
			ID:            el.ID,
			Login:         el.Login,
			AvatarURL:     el.AvatarURL,
			HTMLURL:       el.HTMLURL,
			Contributions: el.Contributions,
		})
	}

	return cs
}

func decodeContributors(data []byte) ([]app.Contributor, error) {
	var resp contributorsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	return resp.ToContributors(), nil
}
