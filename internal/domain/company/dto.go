package company

import (
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	RazaoSocial          string `json:"razao_social"`
	CNPJ                 string `json:"cnpj"`
	Endereco             string `json:"endereco"`
	ToleranceMinutes     int    `json:"tolerance_minutes"`
	NightStart           string `json:"night_start"`
	NightEnd             string `json:"night_end"`
	OvertimeRegime       string `json:"overtime_regime"`
	BankExpirationMonths int    `json:"bank_expiration_months"`
	WeeklyRestEnabled    bool   `json:"weekly_rest_enabled"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RazaoSocial) {
		errs = append(errs, validator.ValidationError{
			Field:   "razao_social",
			Message: "razao_social is required",
		})
	}

	if validator.IsEmpty(r.CNPJ) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnpj",
			Message: "cnpj is required",
		})
	}

	if r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must not be negative",
		})
	}

	if !validator.IsValidClockTime(r.NightStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_start",
			Message: "night_start must be HH:mm",
		})
	}

	if !validator.IsValidClockTime(r.NightEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "night_end",
			Message: "night_end must be HH:mm",
		})
	}

	regimes := []string{
		string(OvertimeRegimeBanked),
		string(OvertimeRegimePaid),
		string(OvertimeRegimeMixed),
	}
	if !validator.IsInSlice(r.OvertimeRegime, regimes) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_regime",
			Message: "overtime_regime must be 'banked', 'paid' or 'mixed'",
		})
	}

	if r.BankExpirationMonths < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "bank_expiration_months",
			Message: "bank_expiration_months must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateHolidayRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	RazaoSocial          string `json:"razao_social"`
	CNPJ                 string `json:"cnpj"`
	Endereco             string `json:"endereco"`
	ToleranceMinutes     int    `json:"tolerance_minutes"`
	NightStart           string `json:"night_start"`
	NightEnd             string `json:"night_end"`
	OvertimeRegime       string `json:"overtime_regime"`
	BankExpirationMonths int    `json:"bank_expiration_months"`
	WeeklyRestEnabled    bool   `json:"weekly_rest_enabled"`
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
