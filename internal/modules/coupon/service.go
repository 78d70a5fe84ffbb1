package coupon

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Service defines coupon business logic.
type Service interface {
	// Validate computes the discount a code yields on a subtotal. Unknown
	// or inactive codes are not errors; they return Valid=false with a
	// message and a zero discount.
	Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error)

	Save(ctx context.Context, req SaveCouponRequest) (*Coupon, error)
	List(ctx context.Context) ([]*Coupon, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	repo Repository

	// read cache keyed by lowercased code, invalidated on writes
	mu    sync.RWMutex
	cache map[string]*Coupon
}

// NewService creates a new coupon service.
func NewService(repo Repository) Service {
	return &service{repo: repo, cache: make(map[string]*Coupon)}
}

func (s *service) Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return &ValidateResponse{Valid: false, Message: "coupon code is required"}, nil
	}
	if req.Subtotal < 0 {
		return nil, fmt.Errorf("subtotal must be >= 0")
	}

	c, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.Active {
		return &ValidateResponse{Valid: false, Message: "invalid or inactive coupon"}, nil
	}

	return &ValidateResponse{
		Valid:    true,
		Code:     c.Code,
		Percent:  c.Percent,
		Discount: req.Subtotal * c.Percent / 100,
	}, nil
}

func (s *service) Save(ctx context.Context, req SaveCouponRequest) (*Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, fmt.Errorf("coupon code is required")
	}
	if req.Percent <= 0 || req.Percent > 100 {
		return nil, fmt.Errorf("percent must be between 0 and 100")
	}
	c := &Coupon{Code: code, Percent: req.Percent, Active: req.Active}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(code)
	return c, nil
}

func (s *service) List(ctx context.Context) ([]*Coupon, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	s.invalidate(code)
	return nil
}

func (s *service) lookup(ctx context.Context, code string) (*Coupon, error) {
	key := strings.ToLower(code)
	s.mu.RLock()
	c, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return c, nil
	}
	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c != nil {
		s.mu.Lock()
		s.cache[key] = c
		s.mu.Unlock()
	}
	return c, nil
}

func (s *service) invalidate(code string) {
	s.mu.Lock()
	delete(s.cache, strings.ToLower(code))
	s.mu.Unlock()
}
