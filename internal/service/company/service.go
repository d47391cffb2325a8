package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type Service interface {
	// GetSettings returns the stored settings, falling back to the CLT
	// defaults when HR never configured the company.
	GetSettings(ctx context.Context) (company.SettingsResponse, error)

	UpdateSettings(ctx context.Context, req company.UpdateSettingsRequest) (company.SettingsResponse, error)

	CreateHoliday(ctx context.Context, req company.CreateHolidayRequest) (company.HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]company.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type ServiceImpl struct {
	company.SettingsRepository
	company.HolidayRepository
}

func NewCompanyService(settingsRepo company.SettingsRepository, holidayRepo company.HolidayRepository) Service {
	return &ServiceImpl{
		SettingsRepository: settingsRepo,
		HolidayRepository:  holidayRepo,
	}
}

// GetSettings implements Service.
func (s *ServiceImpl) GetSettings(ctx context.Context) (company.SettingsResponse, error) {
	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, company.ErrSettingsNotFound) {
			return mapSettingsToResponse(company.DefaultSettings()), nil
		}
		return company.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return mapSettingsToResponse(settings), nil
}

// UpdateSettings implements Service.
func (s *ServiceImpl) UpdateSettings(ctx context.Context, req company.UpdateSettingsRequest) (company.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return company.SettingsResponse{}, err
	}

	settings := company.Settings{
		RazaoSocial:          req.RazaoSocial,
		CNPJ:                 req.CNPJ,
		Endereco:             req.Endereco,
		ToleranceMinutes:     req.ToleranceMinutes,
		NightStart:           req.NightStart,
		NightEnd:             req.NightEnd,
		OvertimeRegime:       company.OvertimeRegime(req.OvertimeRegime),
		BankExpirationMonths: req.BankExpirationMonths,
		WeeklyRestEnabled:    req.WeeklyRestEnabled,
	}

	saved, err := s.SettingsRepository.Upsert(ctx, settings)
	if err != nil {
		return company.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return mapSettingsToResponse(saved), nil
}

// CreateHoliday implements Service.
func (s *ServiceImpl) CreateHoliday(ctx context.Context, req company.CreateHolidayRequest) (company.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return company.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	dayStart := date
	dayEnd := date.Add(24*time.Hour - time.Second)
	existing, err := s.HolidayRepository.ListByPeriod(ctx, dayStart, dayEnd)
	if err != nil {
		return company.HolidayResponse{}, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if len(existing) > 0 {
		return company.HolidayResponse{}, company.ErrHolidayExists
	}

	created, err := s.HolidayRepository.Create(ctx, company.Holiday{
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return company.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return mapHolidayToResponse(created), nil
}

// ListHolidays implements Service.
func (s *ServiceImpl) ListHolidays(ctx context.Context) ([]company.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]company.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

// DeleteHoliday implements Service.
func (s *ServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func mapSettingsToResponse(settings company.Settings) company.SettingsResponse {
	return company.SettingsResponse{
		RazaoSocial:          settings.RazaoSocial,
		CNPJ:                 settings.CNPJ,
		Endereco:             settings.Endereco,
		ToleranceMinutes:     settings.ToleranceMinutes,
		NightStart:           settings.NightStart,
		NightEnd:             settings.NightEnd,
		OvertimeRegime:       string(settings.OvertimeRegime),
		BankExpirationMonths: settings.BankExpirationMonths,
		WeeklyRestEnabled:    settings.WeeklyRestEnabled,
	}
}

func mapHolidayToResponse(h company.Holiday) company.HolidayResponse {
	return company.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Description: h.Description,
	}
}
