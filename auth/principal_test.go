package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-signing-secret-32-bytes-long!!"

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return string(hash)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	known := &Principal{
		ID:           uuid.New(),
		Username:     "acme",
		Role:         "company",
		Type:         TypeCompany,
		IsActive:     true,
		PasswordHash: hashFor(t, "correct-horse"),
	}
	inactive := &Principal{
		ID:           uuid.New(),
		Username:     "dormant",
		Role:         "company",
		Type:         TypeCompany,
		IsActive:     false,
		PasswordHash: hashFor(t, "correct-horse"),
	}

	lookup := func(username string) (*Principal, error) {
		switch username {
		case "acme":
			return known, nil
		case "dormant":
			return inactive, nil
		default:
			return nil, errors.New("record not found")
		}
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "nobody", "correct-horse"},
		{"wrong password", "acme", "wrong-password"},
		{"inactive account", "dormant", "correct-horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, principal, err := Login(lookup, tt.username, tt.password, testSecret, time.Hour)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if token != "" || principal != nil {
				t.Fatalf("expected no token or principal on failure")
			}
		})
	}
}

func TestLoginIssuesTokenWithPrincipalClaims(t *testing.T) {
	id := uuid.New()
	lookup := func(username string) (*Principal, error) {
		return &Principal{
			ID:           id,
			Username:     "springfield",
			Role:         "municipality",
			Type:         TypeMunicipality,
			IsActive:     true,
			PasswordHash: hashFor(t, "s3cret"),
		}, nil
	}

	tokenString, principal, err := Login(lookup, "springfield", "s3cret", testSecret, 24*time.Hour)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if principal.Username != "springfield" {
		t.Fatalf("unexpected principal %q", principal.Username)
	}

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["id"] != id.String() {
		t.Errorf("id claim = %v, want %s", claims["id"], id)
	}
	if claims["username"] != "springfield" {
		t.Errorf("username claim = %v", claims["username"])
	}
	if claims["role"] != "municipality" {
		t.Errorf("role claim = %v", claims["role"])
	}
	if claims["type"] != TypeMunicipality {
		t.Errorf("type claim = %v", claims["type"])
	}

	exp := int64(claims["exp"].(float64))
	wantExp := time.Now().Add(24 * time.Hour).Unix()
	if exp < wantExp-60 || exp > wantExp+60 {
		t.Errorf("exp = %d, want about %d", exp, wantExp)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash := hashFor(t, "original")
	if !VerifyPassword(hash, "original") {
		t.Error("expected matching password to verify")
	}
	if VerifyPassword(hash, "different") {
		t.Error("expected mismatched password to fail")
	}
}
