package paynow

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

var (
	ErrMissingSignature = errors.New("notification signature header is missing")
	ErrInvalidSignature = errors.New("notification signature does not match payload")
)

// CalculateSignature returns base64(HMAC-SHA256(payload)) keyed with the
// merchant signature key.
func CalculateSignature(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func VerifySignature(secret string, payload []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	expected := CalculateSignature(secret, payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
