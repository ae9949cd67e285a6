package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	internalhttp "github.com/astria-api/astria-go/internal/http"
	"github.com/astria-api/astria-go/pkg/astria"
)

const (
	promptJSON = `{"id":1,"tune_id":1010,"name":"Alpha","sid":"alpha","description":"An alpha prompt.","created_at":"2024-01-16T15:53:55Z","updated_at":"2024-01-16T15:53:55Z"}`
	tuneJSON   = `{"id":1010,"title":"Portrait","name":"man","branch":"sd15","model_type":"lora","token":"ohwx","steps":500,"created_at":"2024-01-16T15:53:55Z"}`
)

// recordedRequest is what a test server saw.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     string
}

// requestRecorder collects the requests served by a test server.
type requestRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *requestRecorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
}

func (r *requestRecorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

// newTestServer starts a server that records every request and answers with handler.
func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, *requestRecorder) {
	t.Helper()

	recorder := &requestRecorder{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		recorder.add(recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     string(body),
		})

		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server, recorder
}

// respondJSON writes a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// NewTestClient creates a client talking to baseURL with a fixed access token.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, internalhttp.WithAccessToken("a1b2c3"))

	return NewWithHTTPClient(httpClient, astria.Config{BaseURL: baseURL, AccessToken: "a1b2c3"})
}
