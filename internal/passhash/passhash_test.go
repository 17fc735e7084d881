package passhash

import (
	"fmt"
	"strings"
	"testing"
)

// low cost keeps the suite fast; Verify honors the stored count anyway
const testIterations = 1000

func TestHash_EncodingShape(t *testing.T) {
	t.Parallel()

	h := New(testIterations)
	encoded := h.Hash("Abcdefg!")

	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		t.Fatalf("expected 4 $-separated fields, got %d: %q", len(parts), encoded)
	}
	if parts[0] != Tag {
		t.Fatalf("expected tag %q, got %q", Tag, parts[0])
	}
	if parts[1] != fmt.Sprintf("%d", testIterations) {
		t.Fatalf("expected iteration field %d, got %q", testIterations, parts[1])
	}
	if strings.ContainsAny(encoded, "+/=") {
		t.Fatalf("encoding must be unpadded URL-safe base64: %q", encoded)
	}
}

func TestHash_SaltFreshness(t *testing.T) {
	t.Parallel()

	h := New(testIterations)
	a := h.Hash("Abcdefg!")
	b := h.Hash("Abcdefg!")
	if a == b {
		t.Fatalf("two hashes of the same password must differ, both %q", a)
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	h := New(testIterations)
	for _, pw := range []string{"Abcdefg!", "!@#$%^&*()", "aB!aB!aB"} {
		if !h.Verify(pw, h.Hash(pw)) {
			t.Fatalf("Verify must accept its own hash for %q", pw)
		}
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := New(testIterations)
	encoded := h.Hash("Abcdefg!")
	if h.Verify("Abcdefh!", encoded) {
		t.Fatal("Verify must reject a different password")
	}
}

func TestVerify_DifferentIterationCount(t *testing.T) {
	t.Parallel()

	// hash written at one cost, verified by a hasher configured with another
	old := New(500)
	encoded := old.Hash("Abcdefg!")

	current := New(testIterations)
	if !current.Verify("Abcdefg!", encoded) {
		t.Fatal("Verify must honor the iteration count stored in the encoding")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	h := New(testIterations)

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"wrong field count", "pbkdf2_sha256$1000$c2FsdA"},
		{"too many fields", "pbkdf2_sha256$1000$c2FsdA$aGFzaA$extra"},
		{"wrong tag", "bcrypt$1000$c2FsdA$aGFzaA"},
		{"non-numeric iterations", "pbkdf2_sha256$lots$c2FsdA$aGFzaA"},
		{"zero iterations", "pbkdf2_sha256$0$c2FsdA$aGFzaA"},
		{"negative iterations", "pbkdf2_sha256$-5$c2FsdA$aGFzaA"},
		{"bad salt base64", "pbkdf2_sha256$1000$!!!$aGFzaA"},
		{"bad key base64", "pbkdf2_sha256$1000$c2FsdA$!!!"},
		{"empty key", "pbkdf2_sha256$1000$c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h.Verify("Abcdefg!", tt.encoded) {
				t.Fatalf("Verify must reject %q", tt.encoded)
			}
		})
	}
}

func TestNew_NonPositiveIterationsFallBack(t *testing.T) {
	t.Parallel()

	h := New(0)
	encoded := h.Hash("Abcdefg!")
	if !strings.HasPrefix(encoded, fmt.Sprintf("%s$%d$", Tag, DefaultIterations)) {
		t.Fatalf("expected default cost in encoding, got %q", encoded)
	}
}
