package web

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/m-zajac/contributorgallery/internal/app"
)

// Page renders the whole gallery page for given state.
// While search is loading, the page asks the browser to reload itself after refresh.
func Page(st State, refresh time.Duration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">`
		if st.Phase == PhaseLoading {
			head += `<meta http-equiv="refresh" content="` + strconv.Itoa(refreshSeconds(refresh)) + `">`
		}
		head += `<title>GitHub Contributor Gallery</title>` +
			`<link rel="stylesheet" href="/static/style.css"></head><body>` +
			`<header><h1>GitHub Contributor Gallery</h1>` +
			`<p>View all contributors to a GitHub repository</p></header>` +
			`<div class="container">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}

		if err := SearchForm(st.Input, st.FormError).Render(ctx, w); err != nil {
			return err
		}
		if st.Error != "" {
			if err := errorBlock(st.Error).Render(ctx, w); err != nil {
				return err
			}
		}

		switch {
		case st.Phase == PhaseLoading:
			if err := Loading().Render(ctx, w); err != nil {
				return err
			}
		case st.Phase == PhaseSuccess && st.Repo != nil:
			heading := `<h2>Contributors to ` + templ.EscapeString(st.Repo.Owner+"/"+st.Repo.Repo) + `</h2>`
			if _, err := io.WriteString(w, heading); err != nil {
				return err
			}
			if err := Gallery(st.Contributors).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div></body></html>`)
		return err
	})
}

// SearchForm renders owner/repository inputs.
func SearchForm(input Query, formError string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html := `<div class="search-container"><form method="post" action="/search">` +
			`<div class="form-group"><label for="owner">GitHub Username/Organization:</label>` +
			`<input type="text" id="owner" name="owner" value="` + templ.EscapeString(input.Owner) + `" placeholder="e.g., facebook"></div>` +
			`<div class="form-group"><label for="repo">Repository Name:</label>` +
			`<input type="text" id="repo" name="repo" value="` + templ.EscapeString(input.Repo) + `" placeholder="e.g., react"></div>`
		if formError != "" {
			html += `<div class="error">` + templ.EscapeString(formError) + `</div>`
		}
		html += `<button type="submit">Search Contributors</button></form></div>`

		_, err := io.WriteString(w, html)
		return err
	})
}

// Loading renders loading indicator.
func Loading() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="loading-container"><div class="loading-spinner"></div><p>Loading contributors...</p></div>`)
		return err
	})
}

// Gallery renders one card per contributor.
func Gallery(contributors []app.Contributor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(contributors) == 0 {
			_, err := io.WriteString(w, `<div class="empty-message">No contributors found for this repository.</div>`)
			return err
		}

		if _, err := io.WriteString(w, `<div class="gallery">`); err != nil {
			return err
		}
		for _, c := range contributors {
			if err := ContributorCard(c).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// ContributorCard renders avatar, linked login and contributions count.
func ContributorCard(c app.Contributor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		login := templ.EscapeString(c.Login)
		html := `<div class="contributor-card" id="contributor-` + strconv.FormatInt(c.ID, 10) + `">` +
			`<div class="avatar-container"><img class="avatar"` +
			` src="` + templ.EscapeString(string(templ.URL(c.AvatarURL))) + `"` +
			` alt="` + login + `&#39;s avatar"` +
			` title="` + login + ` - ` + strconv.Itoa(c.Contributions) + ` contributions"></div>` +
			`<h3 class="username"><a href="` + templ.EscapeString(string(templ.URL(c.HTMLURL))) + `" target="_blank" rel="noopener noreferrer">` +
			login + `</a></h3>` +
			`<p class="contributions">` + ContributionsLabel(c.Contributions) + `</p></div>`

		_, err := io.WriteString(w, html)
		return err
	})
}

// ContributionsLabel returns "1 contribution" or "N contributions".
func ContributionsLabel(n int) string {
	if n == 1 {
		return "1 contribution"
	}
	return fmt.Sprintf("%d contributions", n)
}

func errorBlock(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="error">`+templ.EscapeString(message)+`</div>`)
		return err
	})
}

func refreshSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
