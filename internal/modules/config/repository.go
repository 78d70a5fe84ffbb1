package config

import "context"

// Repository defines data access for the studio configuration record.
type Repository interface {
	// Get returns the single config row.
	Get(ctx context.Context) (*StudioConfig, error)

	// Save overwrites the config row.
	Save(ctx context.Context, c *StudioConfig) error
}
