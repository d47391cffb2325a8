package response

import (
	"errors"
	"net/http"

	"github.com/pontocerto/ponto-backend-go/internal/domain/adjustment"
	"github.com/pontocerto/ponto-backend-go/internal/domain/auth"
	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
	"github.com/pontocerto/ponto-backend-go/internal/service/afd"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is deactivated")
	case errors.Is(err, employee.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Company domain errors
	case errors.Is(err, company.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, company.ErrHolidayExists):
		Conflict(w, "Holiday already registered on this date")
	case errors.Is(err, company.ErrInvalidNightWindow):
		BadRequest(w, "Invalid night shift window", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrPunchDeleted):
		Conflict(w, "Punch is deleted")
	case errors.Is(err, punch.ErrJustificationRequired):
		BadRequest(w, "Justification is required", nil)
	case errors.Is(err, punch.ErrImportNotFound):
		NotFound(w, "Import batch not found")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment request not found")
	case errors.Is(err, adjustment.ErrAlreadyProcessed):
		Conflict(w, "Adjustment request already processed")
	case errors.Is(err, adjustment.ErrInvalidDecision):
		BadRequest(w, "Decision must be 'approved' or 'rejected'", nil)
	case errors.Is(err, adjustment.ErrTimestampRequired):
		BadRequest(w, "A valid timestamp is required", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Period must be YYYY-MM", nil)
	case errors.Is(err, timesheet.ErrInvalidWorkSchedule):
		BadRequest(w, "Employee work schedule is malformed", nil)

	// AFD import errors
	case errors.Is(err, afd.ErrInvalidEncoding):
		BadRequest(w, "AFD file content is not valid text", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
