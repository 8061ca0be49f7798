package middleware

import (
	"net/http"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

// AdminOnly permite acesso somente a usuários com papel de administrador
func AdminOnly() func(http.Handler) http.Handler {
	return requireRoles(domain.RoleAdmin)
}

// AllRoles permite acesso a qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return requireRoles(domain.RoleAdmin, domain.RoleUser)
}

func requireRoles(roles ...domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range roles {
				if claims.UserRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Privilégios insuficientes para esta operação", nil)
		})
	}
}
