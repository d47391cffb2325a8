package mirror

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontocerto/ponto-backend-go/internal/domain/adjustment"
	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:           "emp-1",
		FullName:     "Maria da Silva",
		CPF:          "12345678901",
		PIS:          "10987654321",
		WorkSchedule: "08:00-12:00,13:00-17:00",
		Active:       true,
	}
}

func testSettings() company.Settings {
	s := company.DefaultSettings()
	s.RazaoSocial = "Ponto Certo LTDA"
	s.CNPJ = "12.345.678/0001-90"
	return s
}

func punchRow(t *testing.T, ts string) punch.Punch {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", ts)
	require.NoError(t, err)
	return punch.Punch{EmployeeID: "emp-1", Timestamp: parsed, Source: punch.SourceAFD}
}

func dayRecord(t *testing.T, resp timesheet.MonthlyMirrorResponse, date string) timesheet.DailyRecord {
	t.Helper()
	for _, rec := range resp.Records {
		if rec.Date == date {
			return rec
		}
	}
	t.Fatalf("no record for %s", date)
	return timesheet.DailyRecord{}
}

func TestBuildMonthlyMirrorCoversWholeMonth(t *testing.T) {
	resp, err := BuildMonthlyMirror(testEmployee(), testSettings(), nil, nil, nil, "2025-03")
	require.NoError(t, err)

	assert.Len(t, resp.Records, 31)
	assert.Equal(t, "2025-03", resp.Period)
	assert.Equal(t, "Maria da Silva", resp.Employee.FullName)
	assert.Equal(t, "Ponto Certo LTDA", resp.Company.RazaoSocial)

	// March 1st 2025 is a Saturday.
	assert.True(t, dayRecord(t, resp, "2025-03-01").IsDayOff)
	assert.False(t, dayRecord(t, resp, "2025-03-03").IsDayOff)
}

func TestBuildMonthlyMirrorInvalidPeriod(t *testing.T) {
	_, err := BuildMonthlyMirror(testEmployee(), testSettings(), nil, nil, nil, "03/2025")
	assert.ErrorIs(t, err, timesheet.ErrInvalidPeriod)
}

func TestBuildMonthlyMirrorMalformedSchedule(t *testing.T) {
	emp := testEmployee()
	emp.WorkSchedule = "whenever"

	_, err := BuildMonthlyMirror(emp, testSettings(), nil, nil, nil, "2025-03")
	assert.ErrorIs(t, err, timesheet.ErrInvalidWorkSchedule)
}

func TestBuildMonthlyMirrorHoliday(t *testing.T) {
	holidayDate, _ := time.Parse("2006-01-02", "2025-03-04")
	holidays := []company.Holiday{{Date: holidayDate, Description: "Carnaval"}}

	resp, err := BuildMonthlyMirror(testEmployee(), testSettings(), holidays, nil, nil, "2025-03")
	require.NoError(t, err)

	rec := dayRecord(t, resp, "2025-03-04")
	assert.True(t, rec.IsDayOff)
	require.NotNil(t, rec.Holiday)
	assert.Equal(t, "Carnaval", *rec.Holiday)
	assert.Equal(t, 0, rec.BalanceMinutes)
}

func TestBuildMonthlyMirrorFullDay(t *testing.T) {
	punches := []punch.Punch{
		punchRow(t, "2025-03-03 08:00"),
		punchRow(t, "2025-03-03 12:00"),
		punchRow(t, "2025-03-03 13:05"),
		punchRow(t, "2025-03-03 17:00"),
	}

	resp, err := BuildMonthlyMirror(testEmployee(), testSettings(), nil, punches, nil, "2025-03")
	require.NoError(t, err)

	rec := dayRecord(t, resp, "2025-03-03")
	assert.Equal(t, []string{"08:00", "12:00", "13:05", "17:00"}, rec.Punches)
	assert.Equal(t, "08:00", rec.TotalHours)
	assert.Equal(t, "+00:00", rec.Balance)
}

func TestBuildMonthlyMirrorIgnoresDeletedPunches(t *testing.T) {
	deleted := punchRow(t, "2025-03-03 08:00")
	deleted.IsDeleted = true

	resp, err := BuildMonthlyMirror(testEmployee(), testSettings(), nil, []punch.Punch{deleted}, nil, "2025-03")
	require.NoError(t, err)

	rec := dayRecord(t, resp, "2025-03-03")
	assert.Empty(t, rec.Punches)
	assert.Equal(t, -480, rec.BalanceMinutes)
}

func TestBuildMonthlyMirrorSortsPunchesWithinDay(t *testing.T) {
	punches := []punch.Punch{
		punchRow(t, "2025-03-03 17:00"),
		punchRow(t, "2025-03-03 08:00"),
	}

	resp, err := BuildMonthlyMirror(testEmployee(), testSettings(), nil, punches, nil, "2025-03")
	require.NoError(t, err)

	rec := dayRecord(t, resp, "2025-03-03")
	assert.Equal(t, []string{"08:00", "17:00"}, rec.Punches)
	assert.Equal(t, 540, rec.RawWorkedMinutes)
}

func TestBuildMonthlyMirrorExcusedByCertificate(t *testing.T) {
	covered, _ := time.Parse("2006-01-02", "2025-03-05")
	end, _ := time.Parse("2006-01-02", "2025-03-06")
	approved := []adjustment.Adjustment{{
		EmployeeID: "emp-1",
		Type:       adjustment.TypeMedicalCertificate,
		Timestamp:  &covered,
		EndDate:    &end,
		Status:     adjustment.StatusApproved,
	}}

	resp, err := BuildMonthlyMirror(testEmployee(), testSettings(), nil, nil, approved, "2025-03")
	require.NoError(t, err)

	for _, date := range []string{"2025-03-05", "2025-03-06"} {
		rec := dayRecord(t, resp, date)
		assert.True(t, rec.IsExcused, date)
		assert.Equal(t, 480, rec.WorkedMinutes, date)
		assert.Equal(t, 0, rec.BalanceMinutes, date)
	}

	// The day after the range is an ordinary absence.
	assert.False(t, dayRecord(t, resp, "2025-03-07").IsExcused)
	assert.Equal(t, -480, dayRecord(t, resp, "2025-03-07").BalanceMinutes)
}

func TestBuildMonthlyMirrorSynthesizedPunchClosesDay(t *testing.T) {
	// An approved missing-punch adjustment shows up as a regular punch row and
	// completes the pair.
	synthesized := punchRow(t, "2025-03-03 17:00")
	synthesized.Source = punch.SourceAdjustment

	punches := []punch.Punch{
		punchRow(t, "2025-03-03 08:00"),
		punchRow(t, "2025-03-03 12:00"),
		punchRow(t, "2025-03-03 13:00"),
		synthesized,
	}

	resp, err := BuildMonthlyMirror(testEmployee(), testSettings(), nil, punches, nil, "2025-03")
	require.NoError(t, err)

	rec := dayRecord(t, resp, "2025-03-03")
	assert.False(t, rec.IsInconsistent)
	assert.Equal(t, "08:00", rec.TotalHours)
}

func TestBuildMonthlyMirrorEmployeeNightWindowOverride(t *testing.T) {
	emp := testEmployee()
	emp.WorkSchedule = "20:00-23:00"
	nightStart, nightEnd := "20:00", "23:00"
	emp.NightStart = &nightStart
	emp.NightEnd = &nightEnd

	punches := []punch.Punch{
		punchRow(t, "2025-03-03 20:00"),
		punchRow(t, "2025-03-03 23:00"),
	}

	resp, err := BuildMonthlyMirror(emp, testSettings(), nil, punches, nil, "2025-03")
	require.NoError(t, err)

	rec := dayRecord(t, resp, "2025-03-03")
	assert.Equal(t, 180, rec.NightBonusMinutes)
}
