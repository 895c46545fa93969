package ai

import (
	"crypto/hmac"
	"crypto/sha256"
)

// VerifyWebhookSecret reports whether the auth header value received on a
// webhook call matches the configured secret. Both values are hashed so the
// comparison runs in constant time regardless of length.
func VerifyWebhookSecret(secret, received string) bool {
	if secret == "" || received == "" {
		return false
	}
	want := sha256.Sum256([]byte(secret))
	got := sha256.Sum256([]byte(received))
	return hmac.Equal(want[:], got[:])
}
