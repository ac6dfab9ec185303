// Package cookie reads values out of an ambient cookie string, the
// `a=1; b=2` form found in document.cookie and in a request's Cookie header.
//
// Reading never mutates the underlying store. When a name is set more than
// once, the first occurrence wins.
package cookie

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNoCookie reports that no entry matched the requested name.
	ErrNoCookie = errors.New("cookie: named cookie not present")
	// ErrMalformedValue reports a matched value with broken percent-encoding.
	ErrMalformedValue = errors.New("cookie: malformed value encoding")
)

// Source yields the raw cookie string.
type Source interface {
	CookieString() string
}

// Store looks up a single cookie by name.
type Store interface {
	Get(name string) (string, error)
}

// Reader is a Store over a Source.
type Reader struct {
	src Source
}

var _ Store = (*Reader)(nil)

func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Get returns the decoded value of the first cookie called name.
func (r *Reader) Get(name string) (string, error) {
	if r.src == nil {
		return "", ErrNoCookie
	}
	return Lookup(r.src.CookieString(), name)
}

// Lookup scans raw for name. Entries are split on ';' and trimmed, then
// matched by literal "name=" prefix. The remainder of the first match is
// percent-decoded; '+' is kept as is and the decoded bytes must be UTF-8.
func Lookup(raw, name string) (string, error) {
	if raw == "" {
		return "", ErrNoCookie
	}

	prefix := name + "="
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if !strings.HasPrefix(entry, prefix) {
			continue
		}
		value, err := url.PathUnescape(entry[len(prefix):])
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrMalformedValue, name, err)
		}
		if !utf8.ValidString(value) {
			return "", fmt.Errorf("%w: %q: invalid UTF-8", ErrMalformedValue, name)
		}
		return value, nil
	}
	return "", ErrNoCookie
}
