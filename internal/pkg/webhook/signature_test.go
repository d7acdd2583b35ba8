package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
)

func TestVerifySharedSecret(t *testing.T) {
	secrets := []string{"s", "secret", "a-much-longer-webhook-secret-value", ""}
	for _, s := range secrets {
		if !VerifySharedSecret(s, s) {
			t.Fatalf("expected VerifySharedSecret(%q, %q) to be true", s, s)
		}
	}

	// Equal length, different content.
	if VerifySharedSecret("aaaaaa", "aaaaab") {
		t.Fatalf("expected equal-length mismatch to fail")
	}
	if VerifySharedSecret("abcdef", "fedcba") {
		t.Fatalf("expected equal-length mismatch to fail")
	}

	// Unequal lengths fail before any content comparison.
	if VerifySharedSecret("short", "a-longer-secret") {
		t.Fatalf("expected unequal-length compare to fail")
	}
	if VerifySharedSecret("a-longer-secret", "short") {
		t.Fatalf("expected unequal-length compare to fail")
	}
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"event":"payment.completed"}`)
	key := "provider-public-key"

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(payload)
	validSig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !VerifySignature(payload, validSig, key) {
		t.Fatalf("expected valid signature to verify")
	}
	if VerifySignature(payload, validSig, "other-key") {
		t.Fatalf("expected signature with wrong key to fail")
	}
	if VerifySignature([]byte(`{"event":"tampered"}`), validSig, key) {
		t.Fatalf("expected signature over different body to fail")
	}
	if VerifySignature(payload, "deadbeef", key) {
		t.Fatalf("expected malformed signature to fail")
	}
	if VerifySignature(payload, validSig, "") {
		t.Fatalf("expected empty key to fail")
	}
}
