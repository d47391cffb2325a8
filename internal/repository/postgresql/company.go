package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) company.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements company.SettingsRepository. There is at most one row.
func (s *settingsRepositoryImpl) Get(ctx context.Context) (company.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, razao_social, cnpj, endereco, tolerance_minutes, night_start, night_end,
			overtime_regime, bank_expiration_months, weekly_rest_enabled, created_at, updated_at
		FROM company_settings
		LIMIT 1
	`

	var settings company.Settings
	err := q.QueryRow(ctx, query).Scan(
		&settings.ID, &settings.RazaoSocial, &settings.CNPJ, &settings.Endereco,
		&settings.ToleranceMinutes, &settings.NightStart, &settings.NightEnd,
		&settings.OvertimeRegime, &settings.BankExpirationMonths, &settings.WeeklyRestEnabled,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Settings{}, company.ErrSettingsNotFound
		}
		return company.Settings{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	return settings, nil
}

// Upsert implements company.SettingsRepository.
func (s *settingsRepositoryImpl) Upsert(ctx context.Context, settings company.Settings) (company.Settings, error) {
	existing, err := s.Get(ctx)
	if err != nil && !errors.Is(err, company.ErrSettingsNotFound) {
		return company.Settings{}, err
	}

	q := GetQuerier(ctx, s.db)

	if errors.Is(err, company.ErrSettingsNotFound) {
		query := `
			INSERT INTO company_settings (
				id, razao_social, cnpj, endereco, tolerance_minutes, night_start, night_end,
				overtime_regime, bank_expiration_months, weekly_rest_enabled
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, razao_social, cnpj, endereco, tolerance_minutes, night_start, night_end,
				overtime_regime, bank_expiration_months, weekly_rest_enabled, created_at, updated_at
		`
		var saved company.Settings
		err := q.QueryRow(ctx, query,
			uuid.NewString(), settings.RazaoSocial, settings.CNPJ, settings.Endereco,
			settings.ToleranceMinutes, settings.NightStart, settings.NightEnd,
			settings.OvertimeRegime, settings.BankExpirationMonths, settings.WeeklyRestEnabled,
		).Scan(
			&saved.ID, &saved.RazaoSocial, &saved.CNPJ, &saved.Endereco,
			&saved.ToleranceMinutes, &saved.NightStart, &saved.NightEnd,
			&saved.OvertimeRegime, &saved.BankExpirationMonths, &saved.WeeklyRestEnabled,
			&saved.CreatedAt, &saved.UpdatedAt,
		)
		if err != nil {
			return company.Settings{}, fmt.Errorf("failed to insert company settings: %w", err)
		}
		return saved, nil
	}

	query := `
		UPDATE company_settings
		SET razao_social = $1, cnpj = $2, endereco = $3, tolerance_minutes = $4,
			night_start = $5, night_end = $6, overtime_regime = $7,
			bank_expiration_months = $8, weekly_rest_enabled = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING id, razao_social, cnpj, endereco, tolerance_minutes, night_start, night_end,
			overtime_regime, bank_expiration_months, weekly_rest_enabled, created_at, updated_at
	`
	var saved company.Settings
	err = q.QueryRow(ctx, query,
		settings.RazaoSocial, settings.CNPJ, settings.Endereco, settings.ToleranceMinutes,
		settings.NightStart, settings.NightEnd, settings.OvertimeRegime,
		settings.BankExpirationMonths, settings.WeeklyRestEnabled, existing.ID,
	).Scan(
		&saved.ID, &saved.RazaoSocial, &saved.CNPJ, &saved.Endereco,
		&saved.ToleranceMinutes, &saved.NightStart, &saved.NightEnd,
		&saved.OvertimeRegime, &saved.BankExpirationMonths, &saved.WeeklyRestEnabled,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return company.Settings{}, fmt.Errorf("failed to update company settings: %w", err)
	}
	return saved, nil
}

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) company.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements company.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, holiday company.Holiday) (company.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (id, date, description)
		VALUES ($1, $2, $3)
		RETURNING id, date, description, created_at
	`

	var created company.Holiday
	err := q.QueryRow(ctx, query, uuid.NewString(), holiday.Date, holiday.Description).Scan(
		&created.ID, &created.Date, &created.Description, &created.CreatedAt,
	)
	if err != nil {
		return company.Holiday{}, fmt.Errorf("failed to insert holiday: %w", err)
	}

	return created, nil
}

// ListByPeriod implements company.HolidayRepository.
func (h *holidayRepositoryImpl) ListByPeriod(ctx context.Context, start, end time.Time) ([]company.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, description, created_at
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// List implements company.HolidayRepository.
func (h *holidayRepositoryImpl) List(ctx context.Context) ([]company.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, description, created_at
		FROM holidays
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Delete implements company.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	query := `DELETE FROM holidays WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}

func scanHolidays(rows pgx.Rows) ([]company.Holiday, error) {
	var holidays []company.Holiday
	for rows.Next() {
		var holiday company.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Description, &holiday.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}
