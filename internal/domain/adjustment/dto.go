package adjustment

import (
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

// CreateAdjustmentRequest is tagged by Type; the fields that matter differ by
// variant. missing_punch and generic_adjustment need the requested punch
// timestamp; certificates take a covered date plus an optional end date.
type CreateAdjustmentRequest struct {
	EmployeeID    string  `json:"-"`
	Type          string  `json:"type"`
	Timestamp     string  `json:"timestamp"`
	EndDate       *string `json:"end_date"`
	Justification string  `json:"justification"`
	AttachmentURL *string `json:"attachment_url"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	types := []string{
		string(TypeMissingPunch),
		string(TypeMedicalCertificate),
		string(TypeGenericAdjustment),
		string(TypeAbsenceExcused),
	}
	if !validator.IsInSlice(r.Type, types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of missing_punch, medical_certificate, generic_adjustment, absence_excused",
		})
	}

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	switch Type(r.Type) {
	case TypeMissingPunch, TypeGenericAdjustment:
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an ISO8601 timestamp",
			})
		}
		if r.EndDate != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date only applies to certificates and excused absences",
			})
		}
	case TypeMedicalCertificate, TypeAbsenceExcused:
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			if _, dateOK := validator.IsValidDate(r.Timestamp); !dateOK {
				errs = append(errs, validator.ValidationError{
					Field:   "timestamp",
					Message: "timestamp must be a date (YYYY-MM-DD) or ISO8601 timestamp",
				})
			}
		}
		if r.EndDate != nil {
			if _, ok := validator.IsValidDate(*r.EndDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "end_date",
					Message: "end_date must be YYYY-MM-DD",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProcessAdjustmentRequest struct {
	ID       string  `json:"-"`
	Decision string  `json:"decision"`
	Feedback *string `json:"feedback"`
}

func (r *ProcessAdjustmentRequest) Validate() error {
	if r.Decision != string(StatusApproved) && r.Decision != string(StatusRejected) {
		return ErrInvalidDecision
	}
	return nil
}

type AdjustmentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Type          string  `json:"type"`
	Timestamp     *string `json:"timestamp,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	Justification string  `json:"justification"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	Feedback      *string `json:"feedback,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// ProcessResult carries the updated adjustment plus any punches synthesized
// by the approval.
type ProcessResult struct {
	Adjustment         AdjustmentResponse `json:"adjustment"`
	SynthesizedPunches []string           `json:"synthesized_punches"`
}
