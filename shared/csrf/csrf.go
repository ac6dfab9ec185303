package csrf

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/learnsphere-dev/learnsphere/shared/cookie"
)

const (
	TokenLength = 32 // bytes

	// CookieName and HeaderName follow the Django defaults the LearnSphere API expects.
	CookieName = "csrftoken"
	HeaderName = "X-CSRFToken"
)

// GenerateToken creates a cryptographically secure random token
func GenerateToken() (string, error) {
	bytes := make([]byte, TokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// FromStore reads the CSRF cookie. The API client never calls this itself;
// callers that want the header attach it on their own.
func FromStore(store cookie.Store) (string, error) {
	token, err := store.Get(CookieName)
	if err != nil {
		return "", fmt.Errorf("read %s cookie: %w", CookieName, err)
	}
	return token, nil
}
