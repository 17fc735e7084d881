package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/minjongk/teamauth/internal/common"
)

func TestCreateAndDecode_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour)

	tok, err := svc.CreateAccessToken("minjong")
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	subject, err := svc.DecodeAccessToken(tok)
	if err != nil {
		t.Fatalf("DecodeAccessToken error: %v", err)
	}
	if subject != "minjong" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "minjong")
	}
}

func TestDecodeAccessToken_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), -1*time.Second)

	tok, err := svc.CreateAccessToken("abcd")
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	_, err = svc.DecodeAccessToken(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestDecodeAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService([]byte("right-secret"), time.Hour).CreateAccessToken("abcd")
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	_, err = NewTokenService([]byte("wrong-secret"), time.Hour).DecodeAccessToken(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestDecodeAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "a.b"} {
		if _, err := svc.DecodeAccessToken(tok); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("expected common.ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}
