package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/astria-api/astria-go/cmd/astria/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// isolateEnv keeps the developer's environment and config file out of a test.
func isolateEnv(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	for _, key := range []string{
		"ASTRIA_BASE_URL", "ASTRIA_USERNAME", "ASTRIA_PASSWORD", "ASTRIA_ACCESS_TOKEN", "ASTRIA_API_KEY",
		"ASTRIA_DOMAIN_API_TOKEN", "ASTRIA_USER_AGENT", "ASTRIA_PROXY", "ASTRIA_OUTPUT", "ASTRIA_VERBOSE", "ASTRIA_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

// runCLI executes a fresh command tree with args and captures its output.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := commands.NewRootCommand("abc123", "2024-01-16")
	root.SetArgs(args)
	root.SetIn(strings.NewReader(""))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

type apiCall struct {
	method   string
	path     string
	rawQuery string
	auth     string
}

// fakeAPI serves canned bodies per "METHOD /path" and records every call.
type fakeAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{routes: map[string]func(w http.ResponseWriter, r *http.Request){}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.calls = append(api.calls, apiCall{
			method:   r.Method,
			path:     r.URL.Path,
			rawQuery: r.URL.RawQuery,
			auth:     r.Header.Get("Authorization"),
		})
		handler, ok := api.routes[r.Method+" "+r.URL.Path]
		api.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))

			return
		}

		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return api, server
}

func (a *fakeAPI) handle(route string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.routes[route] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (a *fakeAPI) recorded() []apiCall {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]apiCall(nil), a.calls...)
}
