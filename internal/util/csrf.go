package util

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
)

// CSRFTokenBytes is the entropy of a generated CSRF token
const CSRFTokenBytes = 32

// GenerateCSRFToken produces a cryptographically random URL-safe token
func GenerateCSRFToken() (string, error) {
	buf := make([]byte, CSRFTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// VerifyCSRFToken reports whether the token submitted with a request matches
// the token set in the cookie. Comparison is constant-time; a missing value
// on either side always fails.
func VerifyCSRFToken(cookieToken, submittedToken string) bool {
	if cookieToken == "" || submittedToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submittedToken)) == 1
}
