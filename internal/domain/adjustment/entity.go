package adjustment

import "time"

type Type string

const (
	TypeMissingPunch       Type = "missing_punch"
	TypeMedicalCertificate Type = "medical_certificate"
	TypeGenericAdjustment  Type = "generic_adjustment"
	TypeAbsenceExcused     Type = "absence_excused"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Adjustment is an employee-submitted correction or certificate request.
// It transitions exactly once: pending -> approved | rejected.
type Adjustment struct {
	ID         string
	EmployeeID string
	Type       Type

	// Timestamp is the requested punch time for missing_punch/generic, or the
	// covered date for certificates and excused absences. EndDate closes the
	// range of a multi-day certificate.
	Timestamp *time.Time
	EndDate   *time.Time

	Justification string
	AttachmentURL *string

	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	Feedback   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SynthesizesPunch reports whether approval of this adjustment type creates a
// punch. Certificates and excused absences are recognized directly by the
// daily evaluator instead.
func (t Type) SynthesizesPunch() bool {
	return t == TypeMissingPunch || t == TypeGenericAdjustment
}

// Excuses reports whether an approved adjustment of this type marks covered
// days as abonado (credited as fully worked).
func (t Type) Excuses() bool {
	return t == TypeMedicalCertificate || t == TypeAbsenceExcused
}

// Covers reports whether date falls on the adjustment's day, or inside
// [Timestamp, EndDate] for multi-day certificates. Dates are compared by
// calendar day.
func (a Adjustment) Covers(date time.Time) bool {
	if a.Timestamp == nil {
		return false
	}
	day := date.Format("2006-01-02")
	start := a.Timestamp.Format("2006-01-02")
	if a.EndDate == nil {
		return day == start
	}
	end := a.EndDate.Format("2006-01-02")
	return day >= start && day <= end
}
