// Package mock contains hand written test doubles shared between packages.
package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RoundTripper mocks http.RoundTripper.
type RoundTripper struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header

	RoundTripFunc func(*http.Request) (*http.Response, error)
	Responses     []*http.Response

	m sync.Mutex
	i int
}

// RoundTrip fakes executing http request.
func (d *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	d.m.Lock()
	defer d.m.Unlock()
	defer func() {
		d.i++
	}()

	if d.RoundTripFunc != nil {
		return d.RoundTripFunc(r)
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[d.i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[d.i%len(d.Bodies)]
	}
	body := io.NopCloser(bytes.NewBuffer(data))

	header := http.Header{}
	if len(d.Headers) > 0 {
		header = d.Headers[d.i%len(d.Headers)]
	}

	response := &http.Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
		Request:    r,
	}
	d.Responses = append(d.Responses, response)

	return response, nil
}
