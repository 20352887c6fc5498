// Package auth holds the shared login routine behind the four tenant flows.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown usernames, wrong passwords
// and inactive accounts alike, so login failures are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

const (
	TypeUser         = "user"
	TypeCompany      = "company"
	TypeInstitution  = "institution"
	TypeMunicipality = "municipality"
)

// Principal is the tenant-independent view of an authenticated account.
type Principal struct {
	ID           uuid.UUID
	Username     string
	Role         string
	Type         string
	IsActive     bool
	PasswordHash string
}

// LookupFunc resolves a username to a principal for one tenant type.
type LookupFunc func(username string) (*Principal, error)

// Login runs the shared flow: lookup, active check, bcrypt compare, token.
func Login(lookup LookupFunc, username, password, secret string, expiry time.Duration) (string, *Principal, error) {
	principal, err := lookup(username)
	if err != nil || principal == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !principal.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := IssueToken(principal, secret, expiry)
	if err != nil {
		return "", nil, err
	}
	return token, principal, nil
}

// IssueToken signs an HS256 token carrying the principal's identity claims.
func IssueToken(principal *Principal, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":       principal.ID.String(),
		"username": principal.Username,
		"role":     principal.Role,
		"type":     principal.Type,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyPassword reports whether password matches the stored hash. Used by
// the password-change flows to re-check the current password first.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword wraps bcrypt with the default cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
