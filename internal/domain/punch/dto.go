package punch

import (
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

// PunchInsert is an instruction to persist one punch. The AFD matcher and the
// adjustment workflow emit these; callers persist them in a single batch.
type PunchInsert struct {
	EmployeeID    string
	Timestamp     time.Time
	Source        Source
	RawLine       *string
	ImportID      *string
	AdjustmentID  *string
	Justification *string
}

type EditPunchRequest struct {
	ID            string `json:"-"`
	NewTimestamp  string `json:"new_timestamp"`
	Justification string `json:"justification"`
}

func (r *EditPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDateTime(r.NewTimestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "new_timestamp",
			Message: "new_timestamp must be an ISO8601 timestamp",
		})
	}

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SoftDeletePunchRequest struct {
	ID            string `json:"-"`
	Justification string `json:"justification"`
}

func (r *SoftDeletePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualPunchRequest creates a punch on behalf of an employee (admin entry)
// or for the requesting employee itself (web self-service clock-in).
type ManualPunchRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Timestamp     string  `json:"timestamp"`
	Justification *string `json:"justification"`
}

func (r *ManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an ISO8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	Timestamp         string  `json:"timestamp"`
	Source            string  `json:"source"`
	RawLine           *string `json:"raw_line,omitempty"`
	Justification     *string `json:"justification,omitempty"`
	AdjustmentID      *string `json:"adjustment_id,omitempty"`
	OriginalTimestamp *string `json:"original_timestamp,omitempty"`
	IsDeleted         bool    `json:"is_deleted"`
}

type ImportBatchResponse struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	RecordCount int    `json:"record_count"`
	UploadedAt  string `json:"uploaded_at"`
}
