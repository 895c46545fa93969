package jwt

import (
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenExpired is returned when a token is well formed but expired
var ErrTokenExpired = jwt.ErrTokenExpired

// Manager handles JWT operations
type Manager struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewManager creates a new JWT manager
func NewManager(secret, issuer string, expiry time.Duration) *Manager {
	if issuer == "" {
		issuer = "transcript-assistant"
	}
	return &Manager{
		secret: secret,
		expiry: expiry,
		issuer: issuer,
	}
}

// GenerateServiceToken issues a token for a service caller. An empty scope
// list grants every scope.
func (m *Manager) GenerateServiceToken(clientID string, scopes []string) (string, error) {
	if clientID == "" {
		return "", fmt.Errorf("client id is empty")
	}
	if m.secret == "" {
		return "", fmt.Errorf("signing secret is not set")
	}
	if len(scopes) == 0 {
		scopes = AllScopes
	}

	now := time.Now()
	claims := &Claims{
		ClientID: clientID,
		Scopes:   scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   clientID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses a service token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(m.issuer))

	if err != nil {
		if stdErrors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GetExpiry returns token expiry duration
func (m *Manager) GetExpiry() time.Duration {
	return m.expiry
}
