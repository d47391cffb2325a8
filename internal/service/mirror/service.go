package mirror

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/adjustment"
	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

type Service interface {
	// ComputeMonthlyMirror builds the espelho de ponto for one employee and
	// one "YYYY-MM" period from the current punch/adjustment state.
	ComputeMonthlyMirror(ctx context.Context, employeeID string, monthKey string) (timesheet.MonthlyMirrorResponse, error)
}

type ServiceImpl struct {
	employee.EmployeeRepository
	company.SettingsRepository
	company.HolidayRepository
	punch.PunchRepository
	adjustment.AdjustmentRepository
}

func NewMirrorService(
	employeeRepo employee.EmployeeRepository,
	settingsRepo company.SettingsRepository,
	holidayRepo company.HolidayRepository,
	punchRepo punch.PunchRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
) Service {
	return &ServiceImpl{
		EmployeeRepository:   employeeRepo,
		SettingsRepository:   settingsRepo,
		HolidayRepository:    holidayRepo,
		PunchRepository:      punchRepo,
		AdjustmentRepository: adjustmentRepo,
	}
}

// ComputeMonthlyMirror implements Service. It only gathers inputs; the whole
// derivation is the pure BuildMonthlyMirror over plain values.
func (s *ServiceImpl) ComputeMonthlyMirror(ctx context.Context, employeeID string, monthKey string) (timesheet.MonthlyMirrorResponse, error) {
	monthStart, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, timesheet.ErrInvalidPeriod
	}
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, err
	}

	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if !errors.Is(err, company.ErrSettingsNotFound) {
			return timesheet.MonthlyMirrorResponse{}, fmt.Errorf("failed to get company settings: %w", err)
		}
		settings = company.DefaultSettings()
	}

	holidays, err := s.HolidayRepository.ListByPeriod(ctx, monthStart, monthEnd)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	punches, err := s.PunchRepository.ListByEmployeePeriod(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	approved, err := s.AdjustmentRepository.ListApprovedByEmployeePeriod(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, fmt.Errorf("failed to list approved adjustments: %w", err)
	}

	return BuildMonthlyMirror(emp, settings, holidays, punches, approved, monthKey)
}

// BuildMonthlyMirror runs the full reconciliation pipeline over plain inputs:
// pairing, night-shift overlap, daily rule evaluation and monthly
// aggregation. It reads no ambient state, so callers can run it concurrently
// for different employees or months.
func BuildMonthlyMirror(
	emp employee.Employee,
	settings company.Settings,
	holidays []company.Holiday,
	punches []punch.Punch,
	approved []adjustment.Adjustment,
	monthKey string,
) (timesheet.MonthlyMirrorResponse, error) {
	monthStart, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, timesheet.ErrInvalidPeriod
	}

	expected, err := ExpectedMinutes(emp.WorkSchedule)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, err
	}

	// Role-specific night window overrides the company default.
	nightStart := settings.NightStart
	nightEnd := settings.NightEnd
	if emp.NightStart != nil {
		nightStart = *emp.NightStart
	}
	if emp.NightEnd != nil {
		nightEnd = *emp.NightEnd
	}
	window, err := ParseNightWindow(nightStart, nightEnd)
	if err != nil {
		return timesheet.MonthlyMirrorResponse{}, err
	}

	holidayByDay := make(map[string]string, len(holidays))
	for _, h := range holidays {
		holidayByDay[h.Date.Format("2006-01-02")] = h.Description
	}

	punchesByDay := make(map[string][]time.Time)
	for _, p := range punches {
		if p.IsDeleted {
			continue
		}
		key := p.Timestamp.Format("2006-01-02")
		punchesByDay[key] = append(punchesByDay[key], p.Timestamp)
	}
	for _, day := range punchesByDay {
		sort.Slice(day, func(i, j int) bool { return day[i].Before(day[j]) })
	}

	var records []timesheet.DailyRecord
	for day := monthStart; day.Month() == monthStart.Month(); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")

		var holidayDesc *string
		if desc, ok := holidayByDay[key]; ok {
			holidayDesc = &desc
		}
		isOff := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday || holidayDesc != nil

		excused := false
		for _, adj := range approved {
			if adj.Status == adjustment.StatusApproved && adj.Type.Excuses() && adj.Covers(day) {
				excused = true
				break
			}
		}

		records = append(records, EvaluateDay(DayInput{
			Date:              day,
			Punches:           punchesByDay[key],
			ExpectedMinutes:   expected,
			ToleranceMinutes:  settings.ToleranceMinutes,
			ScheduleIntervals: len(strings.Split(emp.WorkSchedule, ",")),
			Window:            window,
			NightExtension:    emp.NightExtension,
			IsDayOff:          isOff,
			Holiday:           holidayDesc,
			IsExcused:         excused,
		}))
	}

	return timesheet.MonthlyMirrorResponse{
		Employee: timesheet.EmployeeInfo{
			ID:           emp.ID,
			FullName:     emp.FullName,
			CPF:          emp.CPF,
			PIS:          emp.PIS,
			Cargo:        emp.Cargo,
			WorkSchedule: emp.WorkSchedule,
		},
		Company: timesheet.CompanyInfo{
			RazaoSocial: settings.RazaoSocial,
			CNPJ:        settings.CNPJ,
			Endereco:    settings.Endereco,
		},
		Period:  monthKey,
		Records: records,
		Summary: Aggregate(records, settings.WeeklyRestEnabled),
	}, nil
}
