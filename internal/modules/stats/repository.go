package stats

import "context"

// Repository defines the reads backing the dashboard.
type Repository interface {
	// ListOrderRecords returns status, total and creation time for all orders.
	ListOrderRecords(ctx context.Context) ([]OrderRecord, error)

	// CountPendingAppointments returns how many appointments await confirmation.
	CountPendingAppointments(ctx context.Context) (int, error)
}
