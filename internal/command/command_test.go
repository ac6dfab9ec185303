package command

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestMain(m *testing.M) {
	// Errors must come back from Execute, never end the test binary.
	cli.OsExiter = func(int) {}
	for _, name := range []string{"LEARNSPHERE_CONFIG", "LEARNSPHERE_BASE_URL", "LEARNSPHERE_TOKEN", "LEARNSPHERE_COOKIES", "LEARNSPHERE_PASSWORD"} {
		os.Unsetenv(name)
	}
	os.Exit(m.Run())
}

type result struct {
	out    string
	errOut string
	code   int
	err    error
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(append([]string{"learnsphere"}, args...), &out, &errOut, BuildArgs{Version: "test"})
	return result{out: out.String(), errOut: errOut.String(), code: ExitCode(err), err: err}
}

// backend answers from a "METHOD /path" table and counts requests.
func backend(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) (string, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if h, ok := routes[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail":"Not found."}`)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/api", &hits
}

func respond(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

func TestGet(t *testing.T) {
	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/courses/": func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			fmt.Fprint(w, `[{"id":1,"slug":"go-101"}]`)
		},
	})

	res := run(t, "--base-url", base, "get", "/courses/")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"slug": "go-101"`)
	assert.Contains(t, res.out, `"id": 1`)
}

func TestGet_ErrorStatusIsStillOutput(t *testing.T) {
	base, _ := backend(t, nil)

	res := run(t, "--base-url", base, "get", "/missing/")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"detail": "Not found."`)
}

func TestGet_Failures(t *testing.T) {
	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/html/": respond(http.StatusBadGateway, "<html>bad gateway</html>"),
	})
	res := run(t, "--base-url", base, "get", "/html/")
	assert.Equal(t, ExitInvalidJSON, res.code)

	srv := httptest.NewServer(http.NotFoundHandler())
	down := srv.URL + "/api"
	srv.Close()
	res = run(t, "--base-url", down, "get", "/courses/")
	assert.Equal(t, ExitUnavailable, res.code)
	assert.Contains(t, res.err.Error(), "backend unavailable")

	res = run(t, "--base-url", base, "get")
	assert.Equal(t, 2, res.code)
}

func TestPost(t *testing.T) {
	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /api/login/": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, `{"username":"a","password":"b"}`, string(body))
			assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			fmt.Fprint(w, `{"access":"acc"}`)
		},
	})

	res := run(t, "--base-url", base, "--token", "tok123", "post", "/login/", `{"username":"a","password":"b"}`)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"access": "acc"`)
}

func TestPost_InvalidBodyIsNotSent(t *testing.T) {
	base, hits := backend(t, nil)

	res := run(t, "--base-url", base, "post", "/login/", `{"username":`)
	assert.Equal(t, 2, res.code)
	assert.Zero(t, hits.Load())
}

func TestCookie(t *testing.T) {
	cookies := "a=1; csrftoken=XYZ123; b=hello%20world"

	tests := []struct {
		name string
		args []string
		want string
		code int
	}{
		{"csrf token by default", nil, "XYZ123\n", 0},
		{"named", []string{"b"}, "hello world\n", 0},
		{"first entry", []string{"a"}, "1\n", 0},
		{"missing", []string{"sessionid"}, "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, append([]string{"--cookies", cookies, "cookie"}, tt.args...)...)
			assert.Equal(t, tt.code, res.code)
			assert.Equal(t, tt.want, res.out)
		})
	}
}

func TestLogin(t *testing.T) {
	base, hits := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /api/login/": func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if strings.Contains(string(body), `"password":"right"`) {
				fmt.Fprint(w, `{"access":"acc","refresh":"ref"}`)
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"detail":"No active account found with the given credentials"}`)
		},
	})

	res := run(t, "--base-url", base, "login", "-u", "alice", "-p", "right")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `"access": "acc"`)
	assert.Contains(t, res.out, `"refresh": "ref"`)

	res = run(t, "--base-url", base, "login", "-u", "alice", "-p", "wrong")
	assert.Equal(t, ExitRejected, res.code)
	assert.Contains(t, res.err.Error(), "No active account")

	before := hits.Load()
	res = run(t, "--base-url", base, "login", "-p", "right")
	assert.Equal(t, ExitRejected, res.code, "validation failures carry a 400 status")
	assert.Equal(t, before, hits.Load())
}

func TestCoursesList(t *testing.T) {
	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/courses/": respond(http.StatusOK, `{"count":2,"next":null,"previous":null,"results":[
			{"slug":"go-101","title":"Go Basics","difficulty":"beginner","price":"19.99","is_free":false,"average_rating":4.5,"description":"Learn **Go** from scratch"},
			{"slug":"sql","title":"SQL","difficulty":"advanced","price":"0.00","is_free":true,"average_rating":null,"description":"Joins & indexes"}
		]}`),
	})

	res := run(t, "--base-url", base, "courses", "list")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "SLUG")
	assert.Contains(t, lines[1], "$19.99")
	assert.Contains(t, lines[1], "4.5")
	assert.Contains(t, lines[1], "Learn Go from scratch")
	assert.Contains(t, lines[2], "free")
	assert.Contains(t, lines[2], "Joins & indexes")

	res = run(t, "--base-url", base, "courses", "list", "--width", "0")
	require.NoError(t, res.err)
	assert.NotContains(t, res.out, "DESCRIPTION")
}

func TestCoursesShow(t *testing.T) {
	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/courses/go-101/": respond(http.StatusOK, `{
			"slug":"go-101","title":"Go Basics","instructor_name":"Ann","difficulty":"beginner","price":"19.99",
			"description":"Learn <script>x()</script>**Go**","is_enrolled":true,
			"modules":[{"order":1,"title":"Intro","lessons":[{"title":"Hello","content_type":"video","duration_minutes":5,"is_preview":true}]}]
		}`),
	})

	res := run(t, "--base-url", base, "courses", "show", "go-101")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Go Basics (go-101)")
	assert.Contains(t, res.out, "enrolled")
	assert.Contains(t, res.out, "Learn Go")
	assert.Contains(t, res.out, "1. Intro")
	assert.Contains(t, res.out, "- Hello (video, 5 min) [preview]")
	assert.NotContains(t, res.out, "x()")

	res = run(t, "--base-url", base, "courses", "show", "--html", "go-101")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "<strong>Go</strong>")
	assert.NotContains(t, res.out, "<script")

	res = run(t, "--base-url", base, "courses", "show", "nope")
	assert.Equal(t, ExitRejected, res.code)
	assert.Equal(t, `course "nope" not found`, res.err.Error())
}

func TestCoursesEnroll(t *testing.T) {
	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"POST /api/courses/go-101/enroll/": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id":1,"course":{"slug":"go-101","title":"Go Basics"}}`)
		},
		"POST /api/courses/premium/enroll/": respond(http.StatusPaymentRequired, `{"error":"Payment required for this course"}`),
	})

	res := run(t, "--base-url", base, "--token", "tok", "courses", "enroll", "go-101")
	require.NoError(t, res.err)
	assert.Equal(t, "enrolled in Go Basics\n", res.out)

	res = run(t, "--base-url", base, "--token", "tok", "courses", "enroll", "premium")
	assert.Equal(t, ExitRejected, res.code)
	assert.Contains(t, res.err.Error(), "Payment required")
}

func TestWhoami(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": "access",
		"user_id":    42,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/profile/": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
			fmt.Fprint(w, `{"id":42,"username":"alice","email":"alice@example.com","role":"student","points":120}`)
		},
	})

	res := run(t, "--base-url", base, "--token", token, "whoami", "--offline")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "user id:    42")
	assert.Contains(t, res.out, "token type: access")
	assert.Contains(t, res.out, "expires:    in ")
	assert.NotContains(t, res.out, "alice")

	res = run(t, "--base-url", base, "--token", token, "whoami")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "username:   alice")
	assert.Contains(t, res.out, "points:     120")

	res = run(t, "--base-url", base, "--token", "not-a-jwt", "whoami")
	assert.Equal(t, 1, res.code)

	res = run(t, "--base-url", base, "--token", "", "whoami")
	assert.Equal(t, 1, res.code)
}

func TestDashboard(t *testing.T) {
	base, _ := backend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET /api/analytics/student/dashboard/": respond(http.StatusOK, `{
			"total_courses":3,"completed_courses":1,"in_progress_courses":2,"total_points":250,
			"recent_activity":[{"course_title":"Go Basics","progress":62.5,"last_accessed":"2026-10-01T08:00:00Z"}]
		}`),
	})

	res := run(t, "--base-url", base, "--token", "tok", "dashboard")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "courses: 3 total, 1 completed, 2 in progress")
	assert.Contains(t, res.out, "points:  250")
	assert.Contains(t, res.out, "Go Basics")
	assert.Contains(t, res.out, "2026-10-01")
}

func TestInvalidBaseURL(t *testing.T) {
	res := run(t, "--base-url", "not a url", "get", "/courses/")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.err.Error(), "invalid config")
}
