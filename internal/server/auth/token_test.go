package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/goboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func newIssuer(t *testing.T, secret string, validity time.Duration) *TokenIssuer {
	t.Helper()
	i, err := NewTokenIssuer([]byte(secret), "HS256", validity)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}
	return i
}

func newValidator(t *testing.T, secret string) *TokenValidator {
	t.Helper()
	v, err := NewTokenValidator([]byte(secret), "HS256")
	if err != nil {
		t.Fatalf("NewTokenValidator error: %v", err)
	}
	return v
}

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t, "super-secret", time.Hour)
	validator := newValidator(t, "super-secret")

	tok, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := validator.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t, "secret", -1*time.Second)
	validator := newValidator(t, "secret")

	tok, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = validator.Validate(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t, "right-secret", time.Hour)
	validator := newValidator(t, "wrong-secret")

	tok, err := issuer.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = validator.Validate(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestValidate_TamperedPayload(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t, "secret", time.Hour)
	validator := newValidator(t, "secret")

	tok, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token parts, got %d", len(parts))
	}
	// flip a byte in the payload without re-signing
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := validator.Validate(tampered); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for tampered payload, got %v", err)
	}
}

// A token naming a different algorithm in its header must be rejected even
// when it is correctly signed with the shared secret.
func TestValidate_AlgorithmMismatch(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	validator := newValidator(t, "secret")
	if _, err := validator.Validate(signed); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestValidate_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	validator := newValidator(t, "secret")
	if _, err := validator.Validate(signed); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	validator := newValidator(t, "k")
	if _, err := validator.Validate("not.a.jwt"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestConstructors_RequireSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenIssuer(nil, "HS256", time.Hour); !errors.Is(err, common.ErrMissingSecretKey) {
		t.Fatalf("expected ErrMissingSecretKey, got %v", err)
	}
	if _, err := NewTokenValidator(nil, "HS256"); !errors.Is(err, common.ErrMissingSecretKey) {
		t.Fatalf("expected ErrMissingSecretKey, got %v", err)
	}
}

func TestConstructors_RejectUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenIssuer([]byte("k"), "none", time.Hour); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if _, err := NewTokenValidator([]byte("k"), "RS256"); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
}
