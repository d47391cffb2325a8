package mirror

import (
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

// DayInput is everything the daily evaluator needs for one calendar day.
// Punches must be the day's non-deleted punches in ascending order.
type DayInput struct {
	Date             time.Time
	Punches          []time.Time
	ExpectedMinutes  int
	ToleranceMinutes int

	// ScheduleIntervals is the number of entry/exit pairs a full working day
	// produces (2 for "08:00-12:00,13:00-17:00").
	ScheduleIntervals int

	Window         NightWindow
	NightExtension bool
	IsDayOff       bool
	Holiday        *string
	IsExcused      bool
}

// EvaluateDay derives the DailyRecord for one date: day kind, excused status,
// worked minutes from sequential pairing, night bank/bonus minutes, tolerance
// absorption and the signed balance.
func EvaluateDay(in DayInput) timesheet.DailyRecord {
	intervals, raw, inconsistent := PairPunches(in.Punches)

	// A working day that was punched at all but closed fewer pairs than the
	// schedule calls for is also inconsistent (a whole pair is missing).
	if !in.IsDayOff && len(in.Punches) > 0 && len(intervals) < in.ScheduleIntervals {
		inconsistent = true
	}

	var night NightMinutes
	for _, iv := range intervals {
		n := NightOverlap(iv, in.Window, in.NightExtension)
		night.BankMinutes += n.BankMinutes
		night.BonusMinutes += n.BonusMinutes
	}

	expected := in.ExpectedMinutes
	if in.IsDayOff {
		expected = 0
	}

	// Tolerance adjustment: an excused day earns full credit; a working day
	// within the CLT tolerance absorbs the discrepancy entirely.
	adjusted := raw
	if in.IsExcused {
		adjusted = expected
	} else if !in.IsDayOff && abs(raw-expected) <= in.ToleranceMinutes {
		adjusted = expected
	}

	// Any work on an off day is pure credit.
	var balance int
	if in.IsDayOff {
		balance = adjusted
	} else {
		balance = adjusted - expected
	}

	punches := make([]string, 0, len(in.Punches))
	for _, p := range in.Punches {
		punches = append(punches, p.Format("15:04"))
	}

	return timesheet.DailyRecord{
		Date:              in.Date.Format("2006-01-02"),
		Punches:           punches,
		IsDayOff:          in.IsDayOff,
		Holiday:           in.Holiday,
		IsExcused:         in.IsExcused,
		IsInconsistent:    inconsistent,
		RawWorkedMinutes:  raw,
		WorkedMinutes:     adjusted,
		ExpectedMinutes:   expected,
		BalanceMinutes:    balance,
		NightBankMinutes:  night.BankMinutes,
		NightBonusMinutes: night.BonusMinutes,
		TotalHours:        FormatMinutes(adjusted),
		Balance:           FormatSignedMinutes(balance),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
