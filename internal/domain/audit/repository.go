package audit

import "context"

// AuditRepository is append-only by contract: there is no update or delete.
type AuditRepository interface {
	Append(ctx context.Context, entry Entry) (Entry, error)

	// ListByEmployee retrieves the trail for one employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error)

	// List retrieves the full trail, newest first
	List(ctx context.Context) ([]Entry, error)
}
