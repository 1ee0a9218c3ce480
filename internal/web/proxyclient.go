package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/contributorgallery/internal/app"
)

const maxResponseSize = 1024 * 1024 * 10

// ProxyClient calls the contributors proxy http api.
type ProxyClient struct {
	httpClient *http.Client
	baseURL    string
}

var _ ContributorsSource = &ProxyClient{}

// NewProxyClient creates new ProxyClient.
// baseURL is the api root, e.g. "http://localhost:5000/api".
func NewProxyClient(httpClient *http.Client, baseURL string) *ProxyClient {
	return &ProxyClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Contributors returns contributors of repository owner/repo.
//
// Error responses are returned as *ResponseError, missing response as *NoResponseError.
func (c *ProxyClient) Contributors(ctx context.Context, owner string, repo string) ([]app.Contributor, error) {
	u := fmt.Sprintf("%s/contributors/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NoResponseError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &errResp)
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return []app.Contributor{}, nil
	}

	var contributors []app.Contributor
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &contributors); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return contributors, nil
}
