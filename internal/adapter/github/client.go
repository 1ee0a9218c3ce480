// Package github implements app.GithubClient on top of the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"github.com/m-zajac/contributorgallery/internal/app"
)

// Client returns contributors of github repositories.
// This struct is an adapter for app.GithubClient.
type Client struct {
	gh *gh.Client
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// address is the api root, e.g. "https://api.github.com/".
// authToken is optional, rate limit is lower without it.
func NewClient(httpClient *http.Client, address string, authToken string) (*Client, error) {
	if !strings.HasSuffix(address, "/") {
		address += "/"
	}
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = u
	if authToken != "" {
		client = client.WithAuthToken(authToken)
	}

	return &Client{
		gh: client,
	}, nil
}

// Contributors returns contributors of repository owner/repo.
//
// The upstream body is kept untouched in the returned list.
// Error responses are translated with app.ClassifyUpstreamError, missing response
// is reported as *app.NetworkError.
func (c *Client) Contributors(ctx context.Context, owner string, repo string) (*app.ContributorList, error) {
	u := fmt.Sprintf("repos/%s/%s/contributors", url.PathEscape(owner), url.PathEscape(repo))
	req, err := c.gh.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	var raw json.RawMessage
	resp, err := c.gh.Do(ctx, req, &raw)
	if err != nil {
		if status, message, ok := errorResponse(err); ok {
			return nil, app.ClassifyUpstreamError(status, message)
		}
		if resp == nil {
			return nil, &app.NetworkError{Err: err}
		}
		return nil, fmt.Errorf("reading http response: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return app.EmptyContributorList(), nil
	}

	contributors, err := decodeContributors(raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return &app.ContributorList{
		StatusCode:   resp.StatusCode,
		Raw:          raw,
		Contributors: contributors,
	}, nil
}

// errorResponse extracts status and message from go-github error types describing
// an upstream error response.
func errorResponse(err error) (int, string, bool) {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return statusCode(rateErr.Response, http.StatusForbidden), rateErr.Message, true
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return statusCode(abuseErr.Response, http.StatusForbidden), abuseErr.Message, true
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode, respErr.Message, true
	}

	return 0, "", false
}

func statusCode(resp *http.Response, fallback int) int {
	if resp == nil {
		return fallback
	}
	return resp.StatusCode
}
