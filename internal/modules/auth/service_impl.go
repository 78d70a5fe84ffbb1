package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/lielsontattoo/studio-backend/internal/modules/config"
)

// ErrInvalidCredentials is the single failure returned for any login mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

type service struct {
	configRepo config.Repository
	jwtKey     []byte
}

// NewService creates a new auth service.
func NewService(configRepo config.Repository, jwtKey []byte) Service {
	return &service{configRepo: configRepo, jwtKey: jwtKey}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	conf, err := s.configRepo.Get(ctx)
	if err != nil {
		return "", err
	}

	if email != conf.AdminEmail || !VerifyPassword(conf.AdminPassHash, password) {
		return "", ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   "admin",
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
