package coupon

import (
	"context"
	"strings"
	"testing"
)

type fakeRepo struct {
	coupons map[string]*Coupon
	reads   int
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	f.reads++
	return f.coupons[strings.ToLower(code)], nil
}

func (f *fakeRepo) Save(ctx context.Context, c *Coupon) error {
	f.coupons[strings.ToLower(c.Code)] = c
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Coupon, error) {
	var out []*Coupon
	for _, c := range f.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, code string) error {
	delete(f.coupons, strings.ToLower(code))
	return nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{coupons: map[string]*Coupon{
		"bemvindo": {Code: "BEMVINDO", Percent: 20, Active: true},
		"parado":   {Code: "PARADO", Percent: 50, Active: false},
	}}
}

func TestValidateCaseInsensitive(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	for _, code := range []string{"BEMVINDO", "bemvindo", "BemVindo", "  bemvindo  "} {
		resp, err := svc.Validate(ctx, ValidateRequest{Code: code, Subtotal: 100})
		if err != nil {
			t.Fatalf("Validate(%q): %v", code, err)
		}
		if !resp.Valid {
			t.Fatalf("Validate(%q) should be valid: %s", code, resp.Message)
		}
		if resp.Discount != 20 {
			t.Errorf("Validate(%q) discount = %v, want 20", code, resp.Discount)
		}
		if resp.Code != "BEMVINDO" {
			t.Errorf("Validate(%q) returned code %q, want canonical BEMVINDO", code, resp.Code)
		}
	}
}

func TestValidateUnknownAndInactive(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	for _, code := range []string{"NAOEXISTE", "PARADO"} {
		resp, err := svc.Validate(ctx, ValidateRequest{Code: code, Subtotal: 100})
		if err != nil {
			t.Fatalf("Validate(%q): %v", code, err)
		}
		if resp.Valid {
			t.Fatalf("Validate(%q) should not be valid", code)
		}
		if resp.Discount != 0 {
			t.Errorf("Validate(%q) discount = %v, want 0", code, resp.Discount)
		}
		if resp.Message == "" {
			t.Errorf("Validate(%q) should explain why it failed", code)
		}
	}
}

func TestValidateEmptyCode(t *testing.T) {
	svc := NewService(newFakeRepo())
	resp, err := svc.Validate(context.Background(), ValidateRequest{Code: "   ", Subtotal: 100})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if resp.Valid {
		t.Fatalf("blank code should not validate")
	}
}

func TestValidateUsesCache(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	svc.Validate(ctx, ValidateRequest{Code: "BEMVINDO", Subtotal: 100})
	svc.Validate(ctx, ValidateRequest{Code: "bemvindo", Subtotal: 50})
	if repo.reads != 1 {
		t.Fatalf("second lookup should hit the cache, repo reads = %d", repo.reads)
	}
}

func TestSaveInvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	resp, _ := svc.Validate(ctx, ValidateRequest{Code: "BEMVINDO", Subtotal: 100})
	if resp.Discount != 20 {
		t.Fatalf("warm-up discount = %v, want 20", resp.Discount)
	}

	if _, err := svc.Save(ctx, SaveCouponRequest{Code: "bemvindo", Percent: 10, Active: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	resp, _ = svc.Validate(ctx, ValidateRequest{Code: "BEMVINDO", Subtotal: 100})
	if resp.Discount != 10 {
		t.Fatalf("stale cache after save, discount = %v, want 10", resp.Discount)
	}
}

func TestSaveValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if _, err := svc.Save(ctx, SaveCouponRequest{Code: "", Percent: 10, Active: true}); err == nil {
		t.Errorf("blank code should be refused")
	}
	if _, err := svc.Save(ctx, SaveCouponRequest{Code: "X", Percent: 0, Active: true}); err == nil {
		t.Errorf("zero percent should be refused")
	}
	if _, err := svc.Save(ctx, SaveCouponRequest{Code: "X", Percent: 101, Active: true}); err == nil {
		t.Errorf("percent above 100 should be refused")
	}

	c, err := svc.Save(ctx, SaveCouponRequest{Code: "  novo10  ", Percent: 10, Active: true})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if c.Code != "NOVO10" {
		t.Errorf("saved code = %q, want uppercased NOVO10", c.Code)
	}
}

func TestDeleteInvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	svc.Validate(ctx, ValidateRequest{Code: "BEMVINDO", Subtotal: 100})
	if err := svc.Delete(ctx, "BEMVINDO"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	resp, _ := svc.Validate(ctx, ValidateRequest{Code: "BEMVINDO", Subtotal: 100})
	if resp.Valid {
		t.Fatalf("deleted coupon should no longer validate")
	}
}
