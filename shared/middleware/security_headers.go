package middleware

import (
	"net/http"
)

// SecurityHeadersWithCSP adds the headers the wasm page is served with.
// hsts: if true, adds Strict-Transport-Security (only behind HTTPS)
// csp: Content-Security-Policy value (if empty, no CSP header is set)
func SecurityHeadersWithCSP(hsts bool, csp string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()

			// Clickjacking protection
			headers.Set("X-Frame-Options", "DENY")

			// Prevent MIME type sniffing; the bundle must stay application/wasm
			headers.Set("X-Content-Type-Options", "nosniff")

			// Referrer policy for privacy
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// Disable unnecessary browser features
			headers.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

			// Keep opened windows out of the page's browsing context group
			headers.Set("Cross-Origin-Opener-Policy", "same-origin")

			// Add CSP if provided. It replaces the legacy X-XSS-Protection filter.
			if csp != "" {
				headers.Set("Content-Security-Policy", csp)
			}

			if hsts {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WasmCSP allows the page to instantiate the Go wasm bundle and call connectOrigin.
func WasmCSP(connectOrigin string) string {
	return "default-src 'self'; script-src 'self' 'wasm-unsafe-eval'; connect-src 'self' " + connectOrigin + "; frame-ancestors 'none'"
}
