package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fletero/backoffice/internal/domain"
)

// Claims carries the principal fields inside the session token. The
// money operations trust these for location scoping, so tokens are
// always verified before any claim is read.
type Claims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	RoleID    int    `json:"role_id"`
	Localidad string `json:"localidad"`
	Sucursal  string `json:"sucursal"`
	jwt.RegisteredClaims
}

// Principal converts verified claims into the request actor.
func (c *Claims) Principal() domain.Principal {
	return domain.Principal{
		UserID:    c.UserID,
		Username:  c.Username,
		RoleID:    c.RoleID,
		Localidad: c.Localidad,
		Sucursal:  c.Sucursal,
	}
}

// JWTManager manages session token creation and validation.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewJWTManager creates a new JWT manager.
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// TokenDuration returns the configured token lifetime.
func (m *JWTManager) TokenDuration() time.Duration {
	return m.tokenDuration
}

// Generate generates a new session token for a user.
func (m *JWTManager) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		Username:  user.Username,
		RoleID:    user.RoleID,
		Localidad: user.Localidad,
		Sucursal:  user.Sucursal,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify verifies a session token and returns the claims.
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
