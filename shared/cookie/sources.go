package cookie

import (
	"net/http"
	"net/url"
	"strings"
)

// String is a fixed cookie string, e.g. one passed on the command line.
type String string

func (s String) CookieString() string { return string(s) }

// RequestSource exposes the Cookie header lines of an incoming request.
type RequestSource struct {
	Request *http.Request
}

func FromRequest(r *http.Request) RequestSource {
	return RequestSource{Request: r}
}

func (s RequestSource) CookieString() string {
	if s.Request == nil {
		return ""
	}
	return strings.Join(s.Request.Header.Values("Cookie"), "; ")
}

// JarSource renders the cookies a jar would send to URL. Values are emitted
// exactly as stored in the jar.
type JarSource struct {
	Jar http.CookieJar
	URL *url.URL
}

func (s JarSource) CookieString() string {
	if s.Jar == nil || s.URL == nil {
		return ""
	}
	cookies := s.Jar.Cookies(s.URL)
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}
