// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/baharkarakas/accounts-backend/internal/models"
)

// TokenParser resolves a bearer token to an account id.
type TokenParser interface {
	Parse(token string) (string, error)
}

// SessionGate attaches the resolved identity to the request context. It never rejects:
// handlers pass the (possibly empty) identity on and the services decide.
//
// DEV: Bearer dev-<account-id> | PROD/DEV: Bearer <JWT(access)>
func SessionGate(tp TokenParser, appEnv string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if appEnv == "dev" && strings.HasPrefix(token, "dev-") {
				id := models.Identity{AccountID: strings.TrimPrefix(token, "dev-")}
				next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
				return
			}

			accountID, err := tp.Parse(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), models.Identity{AccountID: accountID})))
		})
	}
}

func bearer(r *http.Request) (string, bool) {
	ah := r.Header.Get("Authorization")
	if len(ah) < len("bearer ") || !strings.EqualFold(ah[:len("bearer ")], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(ah[len("bearer "):])
	return token, token != ""
}
