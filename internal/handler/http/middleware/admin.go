package middleware

import (
	"net/http"

	"github.com/andinaops/attendance-backend-go/internal/domain/person"
	"github.com/andinaops/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing bearer token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || person.ParseRole(role) != person.RoleAdmin {
			response.Forbidden(w, "admin_required", "Admin privilege required", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
