package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

// Authenticator valida e emite os tokens de operador dos endpoints de
// comando. Não há cadastro de usuários neste serviço: os tokens são
// emitidos fora de banda para os operadores de cada tenant.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(claims *domain.Claims, ttl time.Duration) (string, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) (*Service, error) {
	if cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}

	return &Service{cfg: cfg}, nil
}

// ValidateToken verifica a assinatura e a validade temporal do token.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateToken emite um token assinado com o prazo informado.
func (s *Service) GenerateToken(claims *domain.Claims, ttl time.Duration) (string, error) {
	now := time.Now()

	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.cfg.Auth.Secret))
}
