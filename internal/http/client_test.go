package http_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	astriahttp "github.com/astria-api/astria-go/internal/http"
	"github.com/astria-api/astria-go/pkg/astria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Request(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/tunes", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer a1b2c3", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "astria-go/"+astria.Version, request.Header.Get("User-Agent"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			writer.Header().Set("X-Total-Pages", "1")
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": []interface{}{}})
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL, astriahttp.WithAccessToken("a1b2c3"))

		resp, err := client.Request(context.Background(), http.MethodGet, "/v2/tunes", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "1", resp.Header.Get("X-Total-Pages"))
		assert.JSONEq(t, `{"data":[]}`, string(resp.Body))
	})

	t.Run("does not classify error statuses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL)

		resp, err := client.Request(context.Background(), http.MethodGet, "/v2/tunes", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/1010/prompts", request.URL.Path)
			assert.Equal(t, "page=1&per_page=100&sort=short_name%3Adesc", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL)

		opts := &astria.RequestOptions{Query: map[string]interface{}{
			"sort":     "short_name:desc",
			"page":     1,
			"per_page": 100,
		}}

		resp, err := client.Request(context.Background(), http.MethodGet, "/v2/1010/prompts", nil, opts)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{"name":"Beta"}`, string(body))
			assert.Equal(t, `{"name":"Beta"}`, string(body))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL)

		resp, err := client.Request(context.Background(), http.MethodPost, "/v2/1010/prompts", map[string]string{"name": "Beta"}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("non JSON body passes through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "text/plain", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, "name=Beta", string(body))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL)
		opts := &astria.RequestOptions{Headers: map[string]string{"Content-Type": "text/plain"}}

		_, err := client.Request(context.Background(), http.MethodPost, "/raw", "name=Beta", opts)
		require.NoError(t, err)

		_, err = client.Request(context.Background(), http.MethodPost, "/raw", strings.NewReader("name=Beta"), opts)
		require.NoError(t, err)
	})

	t.Run("non JSON body of unsupported type", func(t *testing.T) {
		t.Parallel()

		client := astriahttp.NewClient("http://127.0.0.1:0")
		opts := &astria.RequestOptions{Headers: map[string]string{"Content-Type": "text/plain"}}

		_, err := client.Request(context.Background(), http.MethodPost, "/raw", map[string]string{"a": "b"}, opts)
		require.ErrorIs(t, err, astriahttp.ErrUnsupportedBody)
	})

	t.Run("JSON body from a reader is sent verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"name":"Beta","sid":"beta"}`, string(body))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL)

		_, err := client.Request(context.Background(), http.MethodPost, "/v2/1/prompts", strings.NewReader(`{"name":"Beta","sid":"beta"}`), nil)
		require.NoError(t, err)
	})

	t.Run("lowercase header names override defaults", func(t *testing.T) {
		t.Parallel()

		var (
			mu      sync.Mutex
			accepts = map[string]int{}
			types   = map[string]int{}
		)

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			accepts[request.Header.Get("Accept")]++
			types[request.Header.Get("Content-Type")]++
			mu.Unlock()

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL)
		opts := &astria.RequestOptions{Headers: map[string]string{
			"accept":       "text/plain",
			"content-type": "text/plain",
		}}

		const requests = 100

		for i := 0; i < requests; i++ {
			_, err := client.Request(context.Background(), http.MethodPost, "/raw", "name=Beta", opts)
			require.NoError(t, err)
		}

		mu.Lock()
		defer mu.Unlock()

		assert.Equal(t, map[string]int{"text/plain": requests}, accepts)
		assert.Equal(t, map[string]int{"text/plain": requests}, types)
	})

	t.Run("custom headers override Accept but not User-Agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "text/csv", request.Header.Get("Accept"))
			assert.Equal(t, "customAgentFlag astria-go/"+astria.Version, request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := astriahttp.NewClient(server.URL, astriahttp.WithUserAgent("customAgentFlag"))
		opts := &astria.RequestOptions{Headers: map[string]string{
			"X-Custom-Header": "custom-value",
			"Accept":          "text/csv",
			"user-agent":      "hijacked",
		}}

		_, err := client.Request(context.Background(), http.MethodGet, "/v2/tunes", nil, opts)
		require.NoError(t, err)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := astriahttp.NewClient(baseURL)

		resp, err := client.Request(context.Background(), http.MethodGet, "/v2/tunes", nil, nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		transportErr := &astria.TransportError{}
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.MethodGet, transportErr.Method)
		assert.Equal(t, baseURL+"/v2/tunes", transportErr.URL)
		assert.True(t, astria.IsTransportError(err))
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := astriahttp.NewClient(server.URL, astriahttp.WithLogger(logger), astriahttp.WithDebug(true))

		_, err := client.Request(context.Background(), http.MethodGet, "/v2/tunes", nil, nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("no logging without debug", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := astriahttp.NewClient(server.URL, astriahttp.WithLogger(logger))

		_, err := client.Request(context.Background(), http.MethodGet, "/v2/tunes", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})
}

func TestClient_Auth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []astriahttp.Option
		expected string
	}{
		{
			name:     "password wins over access token",
			opts:     []astriahttp.Option{astriahttp.WithBasicAuth("user", "secret"), astriahttp.WithAccessToken("a1b2c3")},
			expected: "Basic " + base64.StdEncoding.EncodeToString([]byte("user:secret")),
		},
		{
			name:     "access token only",
			opts:     []astriahttp.Option{astriahttp.WithAccessToken("a1b2c3")},
			expected: "Bearer a1b2c3",
		},
		{
			name:     "username without password sends nothing",
			opts:     []astriahttp.Option{astriahttp.WithBasicAuth("user", "")},
			expected: "",
		},
		{
			name:     "no credentials",
			expected: "",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, []string(request.Header.Values("Authorization")), nonEmpty(testCase.expected))
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := astriahttp.NewClient(server.URL, testCase.opts...)

			_, err := client.Request(context.Background(), http.MethodGet, "/v2/accounts", nil, nil)
			require.NoError(t, err)
		})
	}
}

func nonEmpty(value string) []string {
	if value == "" {
		return nil
	}

	return []string{value}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Execute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, resp *astria.RawResponse, err error)
	}{
		{
			name:       "2xx returns response",
			statusCode: http.StatusOK,
			body:       `{"data":{"id":1}}`,
			check: func(t *testing.T, resp *astria.RawResponse, err error) {
				t.Helper()
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			},
		},
		{
			name:       "401 raises authentication failure",
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"Authentication failed"}`,
			check: func(t *testing.T, resp *astria.RawResponse, err error) {
				t.Helper()

				authErr := &astria.AuthenticationFailedError{}
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, "Authentication failed", authErr.Message)
			},
		},
		{
			name:       "404 raises not found",
			statusCode: http.StatusNotFound,
			body:       `{"message":"Prompt not found"}`,
			check: func(t *testing.T, resp *astria.RawResponse, err error) {
				t.Helper()

				notFound := &astria.NotFoundError{}
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, http.StatusNotFound, notFound.Response.StatusCode)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			},
		},
		{
			name:       "400 raises request error",
			statusCode: http.StatusBadRequest,
			body:       `{"message":"Validation failed"}`,
			check: func(t *testing.T, resp *astria.RawResponse, err error) {
				t.Helper()

				reqErr := &astria.RequestError{}
				require.ErrorAs(t, err, &reqErr)
				assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode())
			},
		},
		{
			name:       "503 raises request error without retrying",
			statusCode: http.StatusServiceUnavailable,
			check: func(t *testing.T, resp *astria.RawResponse, err error) {
				t.Helper()

				reqErr := &astria.RequestError{}
				require.ErrorAs(t, err, &reqErr)
				assert.False(t, errors.Is(err, context.DeadlineExceeded))
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)

				writer.WriteHeader(testCase.statusCode)
				_, _ = writer.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := astriahttp.NewClient(server.URL)

			resp, err := client.Get(context.Background(), "/v2/tunes/1", nil)
			testCase.check(t, resp, err)
			assert.Equal(t, int32(1), attempts.Load())
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		hasBody bool
		fn      func(*astriahttp.Client, context.Context) (*astria.RawResponse, error)
	}{
		{
			name:   "GET",
			method: http.MethodGet,
			fn: func(c *astriahttp.Client, ctx context.Context) (*astria.RawResponse, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:    "POST",
			method:  http.MethodPost,
			hasBody: true,
			fn: func(c *astriahttp.Client, ctx context.Context) (*astria.RawResponse, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"}, nil)
			},
		},
		{
			name:    "PUT",
			method:  http.MethodPut,
			hasBody: true,
			fn: func(c *astriahttp.Client, ctx context.Context) (*astria.RawResponse, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"}, nil)
			},
		},
		{
			name:    "PATCH",
			method:  http.MethodPatch,
			hasBody: true,
			fn: func(c *astriahttp.Client, ctx context.Context) (*astria.RawResponse, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"}, nil)
			},
		},
		{
			name:   "DELETE",
			method: http.MethodDelete,
			fn: func(c *astriahttp.Client, ctx context.Context) (*astria.RawResponse, error) {
				return c.Delete(ctx, "/test", nil)
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)

				body, _ := io.ReadAll(request.Body)
				if testCase.hasBody {
					assert.JSONEq(t, `{"key":"value"}`, string(body))
				} else {
					assert.Empty(t, body)
				}

				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := astriahttp.NewClient(server.URL)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}
