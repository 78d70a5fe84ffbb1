package config

import "time"

// StudioConfig is the single configuration record for the studio: branding,
// the admin credential, booking blackout dates and the delivery surcharge.
// There is exactly one row; every module reads it through the repository
// rather than through a package-level global.
type StudioConfig struct {
	LogoURL       string    `json:"logo_url,omitempty"`
	PrimaryColor  string    `json:"primary_color"`
	AccentColor   string    `json:"accent_color"`
	AdminEmail    string    `json:"admin_email"`
	AdminPassHash string    `json:"-"`
	ClosedDates   []string  `json:"closed_dates"` // YYYY-MM-DD
	DeliveryFee   float64   `json:"delivery_fee"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Branding is the public subset of the config served to the storefront.
type Branding struct {
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color"`
	AccentColor  string `json:"accent_color"`
}

// UpdateBrandingRequest is the payload for changing storefront branding.
type UpdateBrandingRequest struct {
	LogoURL      string   `json:"logo_url"`
	PrimaryColor string   `json:"primary_color"`
	AccentColor  string   `json:"accent_color"`
	DeliveryFee  *float64 `json:"delivery_fee,omitempty"`
}

// UpdateCredentialsRequest is the payload for changing the admin login.
// An empty Password keeps the stored hash unchanged.
type UpdateCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// ClosedDateRequest adds or removes a blackout date.
type ClosedDateRequest struct {
	Date string `json:"date"`
}
