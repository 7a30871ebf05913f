// internal/service/identity/token.go

package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"trendscope/internal/domain/identity"
)

// JWTTokenManager issues and validates HS256-signed session tokens.
type JWTTokenManager struct {
	secret []byte
}

// NewJWTTokenManager creates a token manager from the configured signing
// secret.
func NewJWTTokenManager(secret string) *JWTTokenManager {
	return &JWTTokenManager{secret: []byte(secret)}
}

// GenerateToken generates a signed token for a user.
func (m *JWTTokenManager) GenerateToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken validates a token and returns the user ID it was issued for.
// Expired, malformed and wrongly-signed tokens all map to ErrInvalidToken.
func (m *JWTTokenManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", identity.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", identity.ErrInvalidToken
	}

	return claims.Subject, nil
}
