package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/auth"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return user.Role(roleStr), nil
}

// AdminOnly rejects requests whose token does not carry the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin admits manager and admin roles.
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin && role != user.RoleManager {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
