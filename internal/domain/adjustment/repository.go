package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, adj Adjustment) (Adjustment, error)

	GetByID(ctx context.Context, id string) (Adjustment, error)

	// Update persists a status transition with reviewer identity and feedback
	Update(ctx context.Context, adj Adjustment) error

	// ListByEmployee retrieves an employee's adjustments, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Adjustment, error)

	// ListPending retrieves all pending adjustments for admin review
	ListPending(ctx context.Context) ([]Adjustment, error)

	// ListApprovedByEmployeePeriod retrieves approved adjustments whose
	// coverage touches [start, end], for the daily evaluator
	ListApprovedByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]Adjustment, error)
}
