package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/lielsontattoo/studio-backend/internal/modules/config"
	"golang.org/x/crypto/bcrypt"
)

type fakeConfigRepo struct{ conf config.StudioConfig }

func (f *fakeConfigRepo) Get(ctx context.Context) (*config.StudioConfig, error) {
	c := f.conf
	return &c, nil
}

func (f *fakeConfigRepo) Save(ctx context.Context, c *config.StudioConfig) error {
	f.conf = *c
	return nil
}

var testKey = []byte("test-secret")

func TestLegacyHash(t *testing.T) {
	// values the original storefront stored
	if got := LegacyHash("admin"); got != "92668751" {
		t.Errorf("LegacyHash(admin) = %s, want 92668751", got)
	}
	if got := LegacyHash(""); got != "0" {
		t.Errorf("LegacyHash(\"\") = %s, want 0", got)
	}
}

func TestLoginLegacyHash(t *testing.T) {
	repo := &fakeConfigRepo{conf: config.StudioConfig{
		AdminEmail:    "admin@admin",
		AdminPassHash: LegacyHash("admin"),
	}}
	svc := NewService(repo, testKey)

	tokenString, err := svc.Login(context.Background(), "admin@admin", "admin")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return testKey, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("token subject = %q, want admin", claims.Subject)
	}
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("novaSenha"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &fakeConfigRepo{conf: config.StudioConfig{
		AdminEmail:    "admin@admin",
		AdminPassHash: string(hash),
	}}
	svc := NewService(repo, testKey)

	if _, err := svc.Login(context.Background(), "admin@admin", "novaSenha"); err != nil {
		t.Fatalf("Login with bcrypt hash: %v", err)
	}
}

func TestLoginMismatchesAreIndistinguishable(t *testing.T) {
	repo := &fakeConfigRepo{conf: config.StudioConfig{
		AdminEmail:    "admin@admin",
		AdminPassHash: LegacyHash("admin"),
	}}
	svc := NewService(repo, testKey)
	ctx := context.Background()

	_, wrongEmail := svc.Login(ctx, "other@admin", "admin")
	_, wrongPass := svc.Login(ctx, "admin@admin", "nope")

	if !errors.Is(wrongEmail, ErrInvalidCredentials) || !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("both mismatches should return ErrInvalidCredentials, got %v / %v", wrongEmail, wrongPass)
	}
	if wrongEmail.Error() != wrongPass.Error() {
		t.Fatalf("mismatch errors should not reveal which field was wrong")
	}
}

func TestVerifyPasswordFormats(t *testing.T) {
	if !VerifyPassword(LegacyHash("s3cret"), "s3cret") {
		t.Errorf("legacy hash should verify")
	}
	if VerifyPassword(LegacyHash("s3cret"), "other") {
		t.Errorf("legacy hash should refuse a wrong password")
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if !VerifyPassword(string(hash), "s3cret") {
		t.Errorf("bcrypt hash should verify")
	}
	if VerifyPassword(string(hash), "other") {
		t.Errorf("bcrypt hash should refuse a wrong password")
	}
}
