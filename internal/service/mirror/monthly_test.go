package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

func TestAggregateBalancedMonth(t *testing.T) {
	records := []timesheet.DailyRecord{
		{WorkedMinutes: 480, ExpectedMinutes: 480, BalanceMinutes: 0},
		{WorkedMinutes: 480, ExpectedMinutes: 480, BalanceMinutes: 0},
		{IsDayOff: true},
	}

	summary := Aggregate(records, true)

	assert.Equal(t, 960, summary.WorkedMinutes)
	assert.Equal(t, 0, summary.TotalBalanceMinutes)
	assert.Equal(t, "+00:00", summary.FinalBalance)
	assert.Equal(t, 0, summary.DSRMinutes)
}

func TestAggregateOvertimeReflectsDSR(t *testing.T) {
	// 4 working days with one hour extra each, 2 rest days:
	// DSR = 240 / 4 * 2 = 120.
	records := []timesheet.DailyRecord{
		{WorkedMinutes: 540, BalanceMinutes: 60},
		{WorkedMinutes: 540, BalanceMinutes: 60},
		{WorkedMinutes: 540, BalanceMinutes: 60},
		{WorkedMinutes: 540, BalanceMinutes: 60},
		{IsDayOff: true},
		{IsDayOff: true},
	}

	summary := Aggregate(records, true)

	assert.Equal(t, 240, summary.OvertimeMinutes)
	assert.Equal(t, 0, summary.ShortfallMinutes)
	assert.Equal(t, 120, summary.DSRMinutes)
	assert.Equal(t, "02:00", summary.DSR)
}

func TestAggregateWeeklyRestDisabled(t *testing.T) {
	records := []timesheet.DailyRecord{
		{WorkedMinutes: 540, BalanceMinutes: 60},
		{IsDayOff: true},
	}

	summary := Aggregate(records, false)

	assert.Equal(t, 60, summary.OvertimeMinutes)
	assert.Equal(t, 0, summary.DSRMinutes)
}

func TestAggregateShortfall(t *testing.T) {
	records := []timesheet.DailyRecord{
		{WorkedMinutes: 480, BalanceMinutes: 0},
		{WorkedMinutes: 0, BalanceMinutes: -480},
	}

	summary := Aggregate(records, true)

	assert.Equal(t, 0, summary.OvertimeMinutes)
	assert.Equal(t, 480, summary.ShortfallMinutes)
	assert.Equal(t, "-08:00", summary.FinalBalance)
	assert.Equal(t, 0, summary.DSRMinutes)
}

func TestAggregateIdleOffDayDoesNotDragBalance(t *testing.T) {
	// An untouched rest day carries a zero balance, not a shortfall.
	records := []timesheet.DailyRecord{
		{WorkedMinutes: 480, BalanceMinutes: 0},
		{IsDayOff: true, BalanceMinutes: 0},
	}

	summary := Aggregate(records, true)
	assert.Equal(t, 0, summary.TotalBalanceMinutes)
}

func TestAggregateWorkedOffDayCounts(t *testing.T) {
	records := []timesheet.DailyRecord{
		{WorkedMinutes: 480, BalanceMinutes: 0},
		{IsDayOff: true, RawWorkedMinutes: 240, WorkedMinutes: 240, BalanceMinutes: 240},
	}

	summary := Aggregate(records, true)
	assert.Equal(t, 240, summary.TotalBalanceMinutes)
	assert.Equal(t, 240, summary.OvertimeMinutes)
}

func TestAggregateAllDaysOffZeroGuard(t *testing.T) {
	// A month of only rest days must not divide by zero.
	records := []timesheet.DailyRecord{
		{IsDayOff: true},
		{IsDayOff: true, RawWorkedMinutes: 60, WorkedMinutes: 60, BalanceMinutes: 60},
	}

	summary := Aggregate(records, true)
	assert.Equal(t, 0, summary.DSRMinutes)
	assert.Equal(t, 60, summary.OvertimeMinutes)
}
