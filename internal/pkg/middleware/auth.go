package middleware

import (
	"context"
	"net/http"
	"strings"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
	"partshub/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
type ContextKey int

const (
	SessionClaimsKey ContextKey = iota
)

// SessionClaims são os dados da sessão extraídos do JWT e anexados ao contexto.
type SessionClaims struct {
	SessionID string
	Role      domain.Role
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.SessionClaims, error)
}

// NewAuthMiddleware valida o Bearer token e anexa SessionClaims ao contexto.
func NewAuthMiddleware(tokenSvc TokenService, log logger.Logger) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				response.Error(w, r, log, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado."))
				return
			}

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				response.Error(w, r, log, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			ctx := context.WithValue(r.Context(), SessionClaimsKey, SessionClaims{
				SessionID: claims.SessionID,
				Role:      claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetSessionClaimsFromContext extrai as claims no handler.
func GetSessionClaimsFromContext(ctx context.Context) (SessionClaims, bool) {
	claims, ok := ctx.Value(SessionClaimsKey).(SessionClaims)
	return claims, ok
}

// PermissionMiddleware libera a rota só para os papéis listados. Deve rodar
// depois do NewAuthMiddleware.
func PermissionMiddleware(log logger.Logger, requiredRoles ...domain.Role) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetSessionClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, r, log, apperror.NewUnauthorizedError("Autorização necessária. Token não processado."))
				return
			}

			for _, role := range requiredRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Error(w, r, log, apperror.NewForbiddenError("o papel "+string(claims.Role)+" não tem acesso a este recurso."))
		}
	}
}

// RequireRoles é o atalho auth + permissão usado pelo roteador.
func RequireRoles(tokenSvc TokenService, log logger.Logger, roles ...domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	auth := NewAuthMiddleware(tokenSvc, log)
	perm := PermissionMiddleware(log, roles...)
	return func(next http.HandlerFunc) http.HandlerFunc {
		return auth(perm(next))
	}
}
