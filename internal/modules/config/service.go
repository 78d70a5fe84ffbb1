package config

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Service defines config business logic.
type Service interface {
	Get(ctx context.Context) (*StudioConfig, error)
	GetBranding(ctx context.Context) (*Branding, error)
	UpdateBranding(ctx context.Context, req UpdateBrandingRequest) (*StudioConfig, error)
	UpdateCredentials(ctx context.Context, req UpdateCredentialsRequest) error
	AddClosedDate(ctx context.Context, date string) (*StudioConfig, error)
	RemoveClosedDate(ctx context.Context, date string) (*StudioConfig, error)
}

type service struct{ repo Repository }

// NewService creates a new config service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Get(ctx context.Context) (*StudioConfig, error) {
	return s.repo.Get(ctx)
}

func (s *service) GetBranding(ctx context.Context) (*Branding, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &Branding{
		LogoURL:      c.LogoURL,
		PrimaryColor: c.PrimaryColor,
		AccentColor:  c.AccentColor,
	}, nil
}

func (s *service) UpdateBranding(ctx context.Context, req UpdateBrandingRequest) (*StudioConfig, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.LogoURL != "" {
		c.LogoURL = req.LogoURL
	}
	if req.PrimaryColor != "" {
		c.PrimaryColor = req.PrimaryColor
	}
	if req.AccentColor != "" {
		c.AccentColor = req.AccentColor
	}
	if req.DeliveryFee != nil {
		if *req.DeliveryFee < 0 {
			return nil, fmt.Errorf("delivery_fee must be >= 0")
		}
		c.DeliveryFee = *req.DeliveryFee
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateCredentials(ctx context.Context, req UpdateCredentialsRequest) error {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if req.Email != "" {
		c.AdminEmail = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		c.AdminPassHash = string(hash)
	}
	return s.repo.Save(ctx, c)
}

func (s *service) AddClosedDate(ctx context.Context, date string) (*StudioConfig, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range c.ClosedDates {
		if d == date {
			return c, nil
		}
	}
	c.ClosedDates = append(c.ClosedDates, date)
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) RemoveClosedDate(ctx context.Context, date string) (*StudioConfig, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	kept := c.ClosedDates[:0]
	for _, d := range c.ClosedDates {
		if d != date {
			kept = append(kept, d)
		}
	}
	c.ClosedDates = kept
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
