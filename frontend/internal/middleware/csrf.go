package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/learnsphere-dev/learnsphere/shared/cookie"
	"github.com/learnsphere-dev/learnsphere/shared/csrf"
	"github.com/learnsphere-dev/learnsphere/shared/logger"
)

type csrfContextKey string

const csrfTokenContextKey csrfContextKey = "csrf_token"

// CSRFConfig holds CSRF middleware configuration
type CSRFConfig struct {
	SecureCookies bool // Use Secure flag on cookies (requires HTTPS)
}

// GenerateCSRFToken makes sure every page load carries a csrftoken cookie.
// The cookie is readable from script: the page copies it into the
// X-CSRFToken header of unsafe API calls, which is how the API checks it.
func GenerateCSRFToken(config CSRFConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := csrf.FromStore(cookie.NewReader(cookie.FromRequest(r)))
			if err != nil || token == "" {
				if err != nil && !errors.Is(err, cookie.ErrNoCookie) {
					logger.Log.Warn("replacing unreadable CSRF cookie", "path", r.URL.Path, "error", err)
				}

				token, err = csrf.GenerateToken()
				if err != nil {
					logger.Log.Error("failed to generate CSRF token", "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     csrf.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false,
					Secure:   config.SecureCookies,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   365 * 24 * 60 * 60,
				})
			}

			ctx := context.WithValue(r.Context(), csrfTokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCSRFTokenFromContext retrieves CSRF token from request context
func GetCSRFTokenFromContext(r *http.Request) string {
	token, _ := r.Context().Value(csrfTokenContextKey).(string)
	return token
}
