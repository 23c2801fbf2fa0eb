package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"partshub/internal/domain"
)

// Issuer identifica os tokens emitidos por este serviço.
const Issuer = "PartsHub"

// TokenService define o contrato para manipulação dos JWTs de sessão.
type TokenService interface {
	GenerateToken(sessionID string, role domain.Role) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

// SessionClaims carrega a sessão anônima e o papel escolhido na tela inicial.
type SessionClaims struct {
	SessionID string      `json:"session_id"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service implementa TokenService com HS256.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		now:       time.Now,
	}
}

// GenerateToken cria um JWT assinado com a sessão e o papel.
func (s *Service) GenerateToken(sessionID string, role domain.Role) (string, error) {
	now := s.now()
	claims := SessionClaims{
		SessionID: sessionID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   sessionID,
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken valida o token e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token não é válido")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("papel desconhecido no token: %q", claims.Role)
	}

	return claims, nil
}
