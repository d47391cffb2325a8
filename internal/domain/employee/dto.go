package employee

import (
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Username          string  `json:"username"`
	Password          string  `json:"password"`
	Role              string  `json:"role"`
	FullName          string  `json:"full_name"`
	CPF               string  `json:"cpf"`
	PIS               string  `json:"pis"`
	Cargo             *string `json:"cargo"`
	WorkSchedule      string  `json:"work_schedule"`
	NightStart        *string `json:"night_start"`
	NightEnd          *string `json:"night_end"`
	NightBonusPercent int     `json:"night_bonus_percent"`
	NightExtension    bool    `json:"night_extension"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.Role != string(RoleAdmin) && r.Role != string(RoleEmployee) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'admin' or 'employee'",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsEmpty(r.CPF) && !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must contain 11 digits",
		})
	}

	if !validator.IsEmpty(r.PIS) && !validator.IsValidPIS(r.PIS) {
		errs = append(errs, validator.ValidationError{
			Field:   "pis",
			Message: "pis must contain 11 digits",
		})
	}

	if validator.IsEmpty(r.WorkSchedule) || !validator.IsValidWorkSchedule(r.WorkSchedule) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_schedule",
			Message: "work_schedule must look like '08:00-12:00,13:00-17:00'",
		})
	}

	if r.NightStart != nil && !validator.IsValidClockTime(*r.NightStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_start",
			Message: "night_start must be HH:mm",
		})
	}

	if r.NightEnd != nil && !validator.IsValidClockTime(*r.NightEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_end",
			Message: "night_end must be HH:mm",
		})
	}

	if r.NightBonusPercent < 0 || r.NightBonusPercent > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "night_bonus_percent",
			Message: "night_bonus_percent must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries partial updates; nil means unchanged.
type UpdateEmployeeRequest struct {
	ID                string  `json:"-"`
	Password          *string `json:"password"`
	Role              *string `json:"role"`
	FullName          *string `json:"full_name"`
	CPF               *string `json:"cpf"`
	PIS               *string `json:"pis"`
	Cargo             *string `json:"cargo"`
	WorkSchedule      *string `json:"work_schedule"`
	NightStart        *string `json:"night_start"`
	NightEnd          *string `json:"night_end"`
	NightBonusPercent *int    `json:"night_bonus_percent"`
	NightExtension    *bool   `json:"night_extension"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != nil && *r.Role != string(RoleAdmin) && *r.Role != string(RoleEmployee) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'admin' or 'employee'",
		})
	}

	if r.WorkSchedule != nil && !validator.IsValidWorkSchedule(*r.WorkSchedule) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_schedule",
			Message: "work_schedule must look like '08:00-12:00,13:00-17:00'",
		})
	}

	if r.NightStart != nil && !validator.IsValidClockTime(*r.NightStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_start",
			Message: "night_start must be HH:mm",
		})
	}

	if r.NightEnd != nil && !validator.IsValidClockTime(*r.NightEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_end",
			Message: "night_end must be HH:mm",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Role              string  `json:"role"`
	FullName          string  `json:"full_name"`
	CPF               string  `json:"cpf"`
	PIS               string  `json:"pis"`
	Cargo             *string `json:"cargo"`
	WorkSchedule      string  `json:"work_schedule"`
	NightStart        *string `json:"night_start"`
	NightEnd          *string `json:"night_end"`
	NightBonusPercent int     `json:"night_bonus_percent"`
	NightExtension    bool    `json:"night_extension"`
	Active            bool    `json:"active"`
	CreatedAt         string  `json:"created_at"`
}
