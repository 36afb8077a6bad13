package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestService(clock *fakeClock) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:     "test-secret-key",
		TTL:           time.Hour,
		RefreshWindow: 24 * time.Hour,
		TokenIssuer:   "test-issuer",
		Now:           clock.Now,
	})
}

func TestGenerateToken(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	service := newTestService(clock)

	token, expiresAt, err := service.GenerateToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if token == "" {
		t.Error("expected non-empty token")
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("expected a three-part JWT, got %q", token)
	}
	if !expiresAt.Equal(clock.now.Add(time.Hour)) {
		t.Errorf("expected expiry %v, got %v", clock.now.Add(time.Hour), expiresAt)
	}
}

func TestVerify_Valid(t *testing.T) {
	service := newTestService(&fakeClock{now: time.Now()})

	token, _, err := service.GenerateToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	userID, err := service.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Subject != "42" || claims.ID == "" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerify_Expired(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	service := newTestService(clock)

	token, _, err := service.GenerateToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	clock.now = clock.now.Add(2 * time.Hour)

	_, err = service.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerify_InvalidSignature(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	service1 := newTestService(clock)
	service2 := NewJWTService(JWTConfig{SecretKey: "another-secret", TTL: time.Hour, TokenIssuer: "test-issuer", Now: clock.Now})

	token, _, err := service1.GenerateToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = service2.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong signature, got %v", err)
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	other := NewJWTService(JWTConfig{SecretKey: "test-secret-key", TTL: time.Hour, TokenIssuer: "someone-else", Now: clock.Now})

	token, _, err := other.GenerateToken(42, "a@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := newTestService(clock).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign issuer, got %v", err)
	}
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := newTestService(clock).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	service := newTestService(&fakeClock{now: time.Now()})

	_, err := service.Verify("not-a-valid-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	service := newTestService(&fakeClock{now: time.Now()})

	_, err := service.Verify("")
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
}

func TestRefresh_ValidToken(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	service := newTestService(clock)

	token, _, err := service.GenerateToken(7, "r@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	clock.now = clock.now.Add(10 * time.Minute)

	refreshed, expiresAt, err := service.Refresh(token)
	if err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}
	if refreshed == token {
		t.Error("expected a new token")
	}
	if !expiresAt.Equal(clock.now.Add(time.Hour)) {
		t.Errorf("expected fresh expiry, got %v", expiresAt)
	}

	userID, err := service.Verify(refreshed)
	if err != nil || userID != 7 {
		t.Errorf("expected refreshed token for user 7, got %d (%v)", userID, err)
	}
}

func TestRefresh_ExpiredWithinWindow(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	service := newTestService(clock)

	token, _, err := service.GenerateToken(7, "r@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	clock.now = clock.now.Add(5 * time.Hour)

	if _, err := service.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("precondition: expected token to be expired, got %v", err)
	}

	refreshed, _, err := service.Refresh(token)
	if err != nil {
		t.Fatalf("expected refresh inside window to succeed, got %v", err)
	}
	if _, err := service.Verify(refreshed); err != nil {
		t.Errorf("expected refreshed token to verify, got %v", err)
	}
}

func TestRefresh_OutsideWindow(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	service := newTestService(clock)

	token, _, err := service.GenerateToken(7, "r@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	clock.now = clock.now.Add(25 * time.Hour)

	if _, _, err := service.Refresh(token); !errors.Is(err, ErrRefreshExpired) {
		t.Errorf("expected ErrRefreshExpired, got %v", err)
	}
}

func TestRefresh_Malformed(t *testing.T) {
	service := newTestService(&fakeClock{now: time.Now()})

	if _, _, err := service.Refresh("abc.def.ghi"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
	if _, _, err := service.Refresh(""); !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc.def.ghi", "abc.def.ghi", false},
		{"  Bearer   abc  ", "abc", false},
		{"", "", true},
		{"Bearer", "", true},
		{"Bearer ", "", true},
		{"Basic dXNlcjpwYXNz", "", true},
		{"abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
