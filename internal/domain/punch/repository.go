package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punches. Rows are never
// physically deleted; soft deletion flips is_deleted only.
type PunchRepository interface {
	// Create creates a single punch record
	Create(ctx context.Context, insert PunchInsert) (Punch, error)

	// CreateBatch inserts a batch of punches; the caller wraps it in a
	// transaction so an import is all-or-nothing
	CreateBatch(ctx context.Context, inserts []PunchInsert) error

	// GetByID retrieves a punch, deleted or not
	GetByID(ctx context.Context, id string) (Punch, error)

	// ListByEmployeePeriod retrieves non-deleted punches for one employee with
	// timestamp in [start, end], ordered ascending
	ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error)

	// Update persists timestamp/justification/original-timestamp/deletion
	// changes on an existing punch
	Update(ctx context.Context, p Punch) error

	// CreateImportBatch records one uploaded AFD file
	CreateImportBatch(ctx context.Context, filename string) (ImportBatch, error)

	// SetImportRecordCount stores the processed line count on the batch
	SetImportRecordCount(ctx context.Context, importID string, count int) error

	// ListImportBatches retrieves all import batches, newest first
	ListImportBatches(ctx context.Context) ([]ImportBatch, error)
}
