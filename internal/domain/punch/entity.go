package punch

import "time"

type Source string

const (
	SourceAFD        Source = "afd"
	SourceManual     Source = "manual"
	SourceWeb        Source = "web"
	SourceAdjustment Source = "from adjustment"
	SourceEdited     Source = "edited"
)

// Punch is a single clock event. Punches are immutable by default: a row is
// never physically removed once persisted. Corrections keep the prior
// timestamp in OriginalTimestamp and deletions only set IsDeleted, always
// paired with an audit entry.
type Punch struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Source     Source

	// RawLine holds the original AFD line when imported, for traceability.
	RawLine  *string
	ImportID *string

	Justification *string
	AdjustmentID  *string

	// OriginalTimestamp is set on the first edit only and never overwritten.
	OriginalTimestamp *time.Time
	IsDeleted         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ImportBatch records one uploaded AFD file.
type ImportBatch struct {
	ID          string
	Filename    string
	RecordCount int
	UploadedAt  time.Time
}
