package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/learnsphere-dev/learnsphere/shared/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8000/api"

// recordingDoer answers every request with a canned response and keeps what
// it was sent. It never touches the network, so request headers are exactly
// what the client set.
type recordingDoer struct {
	mu     sync.Mutex
	reqs   []*http.Request
	bodies []string
	status int
	body   string
	err    error
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		body = string(raw)
	}
	d.mu.Lock()
	d.reqs = append(d.reqs, req)
	d.bodies = append(d.bodies, body)
	d.mu.Unlock()

	if d.err != nil {
		return nil, d.err
	}
	status := d.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(d.body)),
	}, nil
}

func newTestClient(t *testing.T, doer Doer, opts ...Option) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: testBaseURL}, append([]Option{WithHTTPClient(doer)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"default origin", "http://localhost:8000/api", false},
		{"https origin", "https://learn.example.com/api", false},
		{"empty", "", true},
		{"relative path", "/api", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Config{BaseURL: tt.baseURL})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, c.BaseURL())
		})
	}
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, http.Header{"Content-Type": {"application/json"}}, headers(""))
	assert.Equal(t, http.Header{
		"Content-Type":  {"application/json"},
		"Authorization": {"Bearer tok123"},
	}, headers("tok123"))
}

func TestGet_WithoutToken(t *testing.T) {
	doer := &recordingDoer{body: `[{"id":1,"slug":"go-101"}]`}
	c := newTestClient(t, doer)

	got, err := c.Get(context.Background(), "/courses/", "")
	require.NoError(t, err)

	require.Len(t, doer.reqs, 1)
	req := doer.reqs[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "http://localhost:8000/api/courses/", req.URL.String())
	assert.Equal(t, http.Header{"Content-Type": {"application/json"}}, req.Header)
	assert.Empty(t, doer.bodies[0])

	courses, ok := got.([]any)
	require.True(t, ok)
	require.Len(t, courses, 1)
	course := courses[0].(map[string]any)
	assert.Equal(t, json.Number("1"), course["id"])
	assert.Equal(t, "go-101", course["slug"])
}

func TestGet_WithToken(t *testing.T) {
	doer := &recordingDoer{body: `{}`}
	c := newTestClient(t, doer)

	_, err := c.Get(context.Background(), "/profile/", "tok123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", doer.reqs[0].Header.Get("Authorization"))
}

func TestPost_LoginScenario(t *testing.T) {
	doer := &recordingDoer{body: `{"access":"a","refresh":"r"}`}
	c := newTestClient(t, doer)

	data := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{"a", "b"}

	got, err := c.Post(context.Background(), "/login/", data, "tok123")
	require.NoError(t, err)

	req := doer.reqs[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "http://localhost:8000/api/login/", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer tok123", req.Header.Get("Authorization"))
	assert.Len(t, req.Header, 2)
	assert.Equal(t, `{"username":"a","password":"b"}`, doer.bodies[0])
	assert.Equal(t, map[string]any{"access": "a", "refresh": "r"}, got)
}

func TestPost_BodyRoundTrips(t *testing.T) {
	payloads := []any{
		map[string]any{"username": "a", "password": "b"},
		[]any{"x", 1.5, true, nil},
		"plain string",
		42.0,
		nil,
		map[string]any{"nested": map[string]any{"ids": []any{1.0, 2.0}}, "note": "ünïcode & <tags>"},
	}

	for i, data := range payloads {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			doer := &recordingDoer{body: `{}`}
			c := newTestClient(t, doer)

			_, err := c.Post(context.Background(), "/echo/", data, "")
			require.NoError(t, err)

			var sent any
			require.NoError(t, json.Unmarshal([]byte(doer.bodies[0]), &sent))
			assert.Equal(t, data, sent)
		})
	}
}

type countingMarshaler struct {
	calls *int
}

func (m countingMarshaler) MarshalJSON() ([]byte, error) {
	*m.calls++
	return []byte(`{"n":1}`), nil
}

func TestPost_SerializesOnce(t *testing.T) {
	calls := 0
	doer := &recordingDoer{body: `{}`}
	c := newTestClient(t, doer)

	_, err := c.Post(context.Background(), "/x/", countingMarshaler{&calls}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, `{"n":1}`, doer.bodies[0])
}

func TestPost_UnserializableData(t *testing.T) {
	doer := &recordingDoer{body: `{}`}
	c := newTestClient(t, doer)

	_, err := c.Post(context.Background(), "/x/", map[string]any{"ch": make(chan int)}, "")
	require.Error(t, err)
	assert.Empty(t, doer.reqs, "nothing must be sent when marshaling fails")
}

func TestStatusCodeIsIgnored(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusUnauthorized} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			doer := &recordingDoer{status: status, body: `{"detail":"Not found."}`}
			c := newTestClient(t, doer)

			got, err := c.Get(context.Background(), "/courses/missing/", "")
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"detail": "Not found."}, got)

			got, err = c.Post(context.Background(), "/login/", map[string]string{}, "")
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"detail": "Not found."}, got)
		})
	}
}

func TestInvalidJSON(t *testing.T) {
	bodies := map[string]string{
		"html error page": "<html>502 Bad Gateway</html>",
		"empty body":      "",
		"truncated":       `{"id": 1`,
		"trailing data":   `{"id": 1} {"id": 2}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, &recordingDoer{status: http.StatusBadGateway, body: body})

			_, err := c.Get(context.Background(), "/courses/", "")
			assert.ErrorIs(t, err, ErrInvalidJSON)
			assert.NotErrorIs(t, err, ErrBackendUnavailable)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	dialErr := errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")
	c := newTestClient(t, &recordingDoer{err: dialErr})

	_, err := c.Get(context.Background(), "/courses/", "")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.ErrorIs(t, err, dialErr)

	_, err = c.Post(context.Background(), "/login/", map[string]string{"username": "a"}, "")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestTransportFailure_RealConnection(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL + "/api"
	srv.Close()

	c, err := New(Config{BaseURL: baseURL})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/courses/", "")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Get(ctx, "/courses/", "")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/courses/":
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			fmt.Fprint(w, `[{"slug":"go-101"}]`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/login/":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"username":"a","password":"b"}`, string(body))
			assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
			fmt.Fprint(w, `{"access":"acc"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail":"Not found."}`)
		}
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL + "/api"})
	require.NoError(t, err)
	ctx := context.Background()

	got, err := c.Get(ctx, "/courses/", "")
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"slug": "go-101"}}, got)

	got, err = c.Post(ctx, "/login/", map[string]string{"username": "a", "password": "b"}, "tok123")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"access": "acc"}, got)

	got, err = c.Get(ctx, "/nope/", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"detail": "Not found."}, got)
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"auth":%q,"path":%q}`, r.Header.Get("Authorization"), r.URL.Path)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := ""
			if i%2 == 0 {
				token = fmt.Sprintf("tok%d", i)
			}
			endpoint := fmt.Sprintf("/items/%d/", i)

			var got struct {
				Auth string `json:"auth"`
				Path string `json:"path"`
			}
			if err := c.GetInto(context.Background(), endpoint, token, &got); err != nil {
				errs <- err
				return
			}
			wantAuth := ""
			if token != "" {
				wantAuth = "Bearer " + token
			}
			if got.Auth != wantAuth || got.Path != endpoint {
				errs <- fmt.Errorf("call %d got %+v", i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestDo(t *testing.T) {
	doer := &recordingDoer{status: http.StatusCreated, body: `{"id":7}`}
	c := newTestClient(t, doer)

	resp, err := c.Do(context.Background(), http.MethodDelete, "/courses/instructor/lessons/7/", nil, "tok")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.OK())
	assert.Empty(t, doer.bodies[0])

	var out struct{ ID int }
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, 7, out.ID)
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	doer := &recordingDoer{status: http.StatusNotFound, body: `{}`}
	c := newTestClient(t, doer, WithMetrics(metrics.NewClient(reg)))

	_, err := c.Get(context.Background(), "/courses/", "")
	require.NoError(t, err)
	_, err = c.Post(context.Background(), "/login/", map[string]string{}, "")
	require.NoError(t, err)

	assert.Len(t, doer.reqs, 2, "instrumented client must still use the injected doer")
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "learnsphere_client_requests_total"))
}

func TestPing(t *testing.T) {
	doer := &recordingDoer{status: http.StatusNotFound, body: "<html>not found</html>"}
	c := newTestClient(t, doer)
	assert.NoError(t, c.Ping(context.Background()), "any answer counts as reachable")
	assert.Equal(t, "http://localhost:8000/api/", doer.reqs[0].URL.String())

	down := newTestClient(t, &recordingDoer{err: errors.New("connection refused")})
	assert.ErrorIs(t, down.Ping(context.Background()), ErrBackendUnavailable)
}
