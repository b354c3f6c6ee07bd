package middleware

import (
	"net/http"
	"strings"
)

// AdminCookie holds the admin token for browser sessions.
const AdminCookie = "admin_token"

// AdminToken returns the token presented for admin routes. A Bearer
// Authorization header takes precedence over AdminCookie; the scheme is
// matched case-insensitively.
func AdminToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}

	if c, err := r.Cookie(AdminCookie); err == nil {
		return c.Value
	}
	return ""
}
