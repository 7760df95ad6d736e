package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// TestRequestOpt is called twice per request:
// once with the request before it is sent, then with the response.
type TestRequestOpt func(*http.Request, *http.Response)

func WithHeader(key, value string) TestRequestOpt {
	return func(req *http.Request, _ *http.Response) {
		if req != nil {
			req.Header.Set(key, value)
		}
	}
}

func MustBindJSON(v any) TestRequestOpt {
	return func(_ *http.Request, resp *http.Response) {
		if resp == nil {
			return
		}
		body := Must(io.ReadAll(resp.Body))
		MustNoErr(json.Unmarshal(body, v))
	}
}

func DoTestRequest(
	ts *httptest.Server, method, path string, body io.Reader, opts ...TestRequestOpt,
) Response {
	req := Must(http.NewRequest(method, ts.URL+path, body)) // nolint: noctx
	for _, opt := range opts {
		opt(req, nil)
	}

	// redirects are returned as is
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp := Must(client.Do(req))
	defer resp.Body.Close()

	for _, opt := range opts {
		opt(nil, resp)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(Must(io.ReadAll(resp.Body))),
	}
}
