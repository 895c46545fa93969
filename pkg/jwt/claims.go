package jwt

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Scopes granted to service tokens
const (
	ScopeTranscriptsRead  = "transcripts:read"
	ScopeTranscriptsWrite = "transcripts:write"
	ScopeAnalysesWrite    = "analyses:write"
)

// AllScopes is granted when a token is issued without explicit scopes
var AllScopes = []string{ScopeTranscriptsRead, ScopeTranscriptsWrite, ScopeAnalysesWrite}

// Claims represents JWT custom claims of a service caller
type Claims struct {
	ClientID string   `json:"client_id"`
	Scopes   []string `json:"scopes"`
	jwt.RegisteredClaims
}

// HasScope reports whether the token grants scope
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}
