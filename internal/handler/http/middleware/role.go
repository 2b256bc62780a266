package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/gsh-hris/roster-backend-go/internal/domain/auth"
	"github.com/gsh-hris/roster-backend-go/internal/domain/user"
	"github.com/gsh-hris/roster-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireAdmin limits a route to HR admins.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireApprover limits a route to approvers and admins.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleApprover && role != user.RoleAdmin) {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
