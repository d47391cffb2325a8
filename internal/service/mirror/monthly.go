package mirror

import (
	"fmt"
	"math"

	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

// Aggregate folds one period of daily records into the monthly summary.
// Working-day balances always count; an off day contributes only when it was
// actually worked. The DSR reflex mirrors overtime and night bonus into paid
// weekly rest, proportionally to the period's working/rest day split;
// weeklyRest false suppresses it entirely.
func Aggregate(records []timesheet.DailyRecord, weeklyRest bool) timesheet.MonthlySummary {
	var (
		worked       int
		totalBalance int
		nightBank    int
		nightBonus   int
		workingDays  int
	)

	for _, r := range records {
		worked += r.WorkedMinutes
		nightBank += r.NightBankMinutes
		nightBonus += r.NightBonusMinutes

		if !r.IsDayOff {
			workingDays++
			totalBalance += r.BalanceMinutes
		} else if r.RawWorkedMinutes > 0 {
			totalBalance += r.BalanceMinutes
		}
	}

	restDays := len(records) - workingDays

	overtime := 0
	shortfall := 0
	if totalBalance > 0 {
		overtime = totalBalance
	} else {
		shortfall = -totalBalance
	}

	dsr := 0
	if weeklyRest && workingDays > 0 {
		dsr = int(math.Round(float64(overtime+nightBonus) / float64(workingDays) * float64(restDays)))
	}

	return timesheet.MonthlySummary{
		WorkedMinutes:       worked,
		TotalBalanceMinutes: totalBalance,
		OvertimeMinutes:     overtime,
		ShortfallMinutes:    shortfall,
		NightBankMinutes:    nightBank,
		NightBonusMinutes:   nightBonus,
		DSRMinutes:          dsr,
		TotalHours:          FormatMinutes(worked),
		FinalBalance:        FormatSignedMinutes(totalBalance),
		TotalOvertime:       FormatMinutes(overtime),
		TotalShortfall:      FormatMinutes(shortfall),
		NightBank:           FormatMinutes(nightBank),
		NightBonus:          FormatMinutes(nightBonus),
		DSR:                 FormatMinutes(dsr),
		DSRBasis: fmt.Sprintf(
			"(%s extras + %s adicional noturno) sobre %d dias úteis e %d dias de descanso",
			FormatMinutes(overtime), FormatMinutes(nightBonus), workingDays, restDays,
		),
	}
}
