package auth

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Service defines the interface for admin authentication.
type Service interface {
	// Login checks the credentials against the studio config and returns
	// a signed session token. Any mismatch yields the same error so the
	// response never reveals which field was wrong.
	Login(ctx context.Context, email, password string) (string, error)
}

// LegacyHash reproduces the shift-hash the original storefront stored admin
// passwords with, so configs imported from it keep working until the
// password is changed (at which point it is re-hashed with bcrypt).
func LegacyHash(s string) string {
	var h int32
	for _, c := range s {
		h = h<<5 - h + int32(c)
	}
	return strconv.Itoa(int(h))
}

// VerifyPassword checks a password against either hash format.
func VerifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == LegacyHash(password)
}
