package httpapi

import (
	"context"
	"net/http"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/session"
)

// SessionCookieName carries the session id between requests of one
// browser session.
const SessionCookieName = "shop_session"

type ctxKey int

const sessionIDKey ctxKey = iota

// SessionMiddleware resolves the request's session via cookie,
// creating one on first contact, and puts the session id on the
// request context.
func SessionMiddleware(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookieName); err == nil {
				id = c.Value
			}

			resolved := sessions.Ensure(id)
			if resolved != id {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    resolved,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, resolved)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards the admin subtree. The gate is a client-side
// affordance unlocked by logo clicks, not an authentication boundary.
func RequireAdmin(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAdmin(getSessionID(r.Context())) {
				respondError(w, http.StatusForbidden, "admin_required", "admin mode is not active for this session")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
