package router

import (
	"log/slog"
	"net/http"

	"github.com/juniorhq/junior/internal/pkg/config"
	"github.com/juniorhq/junior/internal/pkg/session"
	"github.com/juniorhq/junior/internal/pkg/sessioncookie"
	"github.com/juniorhq/junior/internal/pkg/uid"
)

// middlewareSession guarantees every request carries a session id. A valid
// signed cookie keeps its sid; anything else gets a fresh sid and cookie.
func middlewareSession(cfg config.Config, codec sessioncookie.Codec, uid uid.StringID) Middleware {
	name := "junior_session"
	secure := false
	maxAge := 0
	if cfg != nil {
		if v := cfg.GetString("session.cookie_name"); v != "" {
			name = v
		}
		secure = cfg.GetBool("session.cookie_secure")
		maxAge = int(cfg.GetHour("session.cookie_age_hours").Seconds())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string

			if c, err := r.Cookie(name); err == nil {
				if decoded, err := codec.Decode(c.Value); err == nil {
					sid = decoded
				}
			}

			if sid == "" {
				sid = uid.Generate()

				value, err := codec.Encode(sid)
				if err != nil {
					slog.ErrorContext(r.Context(), "failed to encode session cookie", "error", err)
					writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     name,
					Value:    value,
					Path:     "/",
					MaxAge:   maxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(session.WithSID(r.Context(), sid)))
		})
	}
}
