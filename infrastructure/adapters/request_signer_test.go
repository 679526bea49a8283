package adapters

import (
	"regexp"
	"testing"
)

var hexSignature = regexp.MustCompile(`^[0-9a-f]{40}$`)

func TestRequestSigner_SignatureShape(t *testing.T) {
	signer := NewRequestSigner("test-secret")

	signature := signer.Sign(123456, 1700000000)
	if !hexSignature.MatchString(signature) {
		t.Fatalf("expected 40 lowercase hex characters, got %q", signature)
	}
}

func TestRequestSigner_OrderIndependentOnValueSet(t *testing.T) {
	signer := NewRequestSigner("abc")

	// sorted(["123","abc","456"]) == sorted(["456","abc","123"]), so
	// swapping nonce and timestamp must not change the signature.
	first := signer.Sign(123, 456)
	second := signer.Sign(456, 123)
	if first != second {
		t.Fatalf("expected equal signatures for the same value set, got %q and %q", first, second)
	}
}

func TestRequestSigner_SecretParticipatesInSortOrder(t *testing.T) {
	withLowSecret := NewRequestSigner("000").Sign(123, 456)
	withHighSecret := NewRequestSigner("zzz").Sign(123, 456)
	if withLowSecret == withHighSecret {
		t.Fatal("different secrets must produce different signatures")
	}
}

func TestRequestSigner_NewSignedRequestIsConsistent(t *testing.T) {
	signer := NewRequestSigner("test-secret")

	signed := signer.NewSignedRequest()
	if signed.Nonce < 0 {
		t.Fatalf("nonce must fit in 31 bits, got %d", signed.Nonce)
	}
	if signed.Signature != signer.Sign(signed.Nonce, signed.Timestamp) {
		t.Fatal("signed request signature does not match Sign output")
	}
	if !hexSignature.MatchString(signed.Signature) {
		t.Fatalf("expected 40 lowercase hex characters, got %q", signed.Signature)
	}
}
