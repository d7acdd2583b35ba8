package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// VerifySharedSecret compares the query-supplied secret against the
// configured one. Unequal lengths fail before any content is compared;
// equal-length buffers are compared in constant time so the running time
// never depends on how long a matching prefix is.
func VerifySharedSecret(provided, expected string) bool {
	if len(provided) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// VerifySignature checks the header-supplied signature against
// base64(HMAC-SHA256(rawBody, publicKey)) using the same constant-time
// comparison as VerifySharedSecret.
func VerifySignature(rawBody []byte, signature, publicKey string) bool {
	if publicKey == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(publicKey))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if len(signature) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1
}
