package booking

import "context"

// Repository defines data access for appointments.
type Repository interface {
	// CreateIfSlotFree persists the appointment only if no non-cancelled
	// appointment already occupies the same date and time. It reports
	// whether the insert happened, closing the race between two customers
	// submitting the same slot.
	CreateIfSlotFree(ctx context.Context, a *Appointment) (bool, error)

	// GetByID retrieves an appointment by UUID.
	GetByID(ctx context.Context, id string) (*Appointment, error)

	// List returns appointments newest first. Cancelled ones are excluded
	// unless includeCancelled is set.
	List(ctx context.Context, includeCancelled bool) ([]*Appointment, error)

	// BookedTimes returns the times of all non-cancelled appointments on a date.
	BookedTimes(ctx context.Context, date string) ([]string, error)

	// UpdateStatus moves an appointment to a new status.
	UpdateStatus(ctx context.Context, id string, status AppointmentStatus) error
}
