package api

import (
	"io"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
)

// mockDoer is a minimal Doer that records the last request
type mockDoer struct {
	Response *fhttp.Response
	Err      error
	doFunc   func(req *fhttp.Request) (*fhttp.Response, error)

	lastRequest *fhttp.Request
	lastBody    string
	calls       int
}

func (m *mockDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.calls++
	m.lastRequest = req
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		m.lastBody = string(data)
	}
	if m.doFunc != nil {
		return m.doFunc(req)
	}
	return m.Response, m.Err
}

// newMockDoer returns a doer that always replies with body and status
func newMockDoer(body string, status int) *mockDoer {
	return &mockDoer{
		Response: &fhttp.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(fhttp.Header),
		},
	}
}

// newMockDoerWithError returns a doer that always fails
func newMockDoerWithError(err error) *mockDoer {
	return &mockDoer{Err: err}
}
