package mirror

import (
	"math"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
)

// nightStretchFactor is the legal "reduced hour" conversion: each real minute
// inside the night window banks as 60/52.5 minutes.
const nightStretchFactor = 60.0 / 52.5

const minutesPerDay = 24 * 60

// NightWindow is a wall-clock window in minutes since midnight. When end is
// numerically at or before start the window crosses midnight.
type NightWindow struct {
	start int
	end   int
}

// ParseNightWindow builds a window from two "HH:mm" clock strings.
func ParseNightWindow(start, end string) (NightWindow, error) {
	s, okStart := parseClock(start)
	e, okEnd := parseClock(end)
	if !okStart || !okEnd {
		return NightWindow{}, company.ErrInvalidNightWindow
	}
	return NightWindow{start: s, end: e}, nil
}

// NightMinutes is the night-shift outcome of one interval. BankMinutes are
// stretched by the reduced-hour factor for banking; BonusMinutes keep the raw
// count used by the bonus percentage.
type NightMinutes struct {
	BankMinutes  int
	BonusMinutes int
}

// NightOverlap computes the minutes of iv that fall inside the window,
// treating wrap-around as two sub-ranges. With extension set, an interval
// that crosses the window's end boundary also earns the minutes between the
// window end and the actual exit, modelling the legal rule for shifts
// stretching past the night window.
//
// The overlap is closed-form rather than a minute walk; per-interval bank
// minutes round the stretch factor to the nearest whole minute.
func NightOverlap(iv Interval, w NightWindow, extension bool) NightMinutes {
	length := iv.Minutes()
	if length <= 0 {
		return NightMinutes{}
	}

	start := iv.Start.Hour()*60 + iv.Start.Minute()
	end := start + length

	// Window end unwrapped onto a timeline where it always follows the start.
	windowEnd := w.end
	if windowEnd <= w.start {
		windowEnd += minutesPerDay
	}

	raw := 0
	for k := -1; k <= 1; k++ {
		ws := w.start + k*minutesPerDay
		we := windowEnd + k*minutesPerDay
		raw += overlap(start, end, ws, we)

		// Extension overflow: the interval ran through the end of this window
		// occurrence and kept going.
		if extension && start < we && end > we {
			raw += end - we
		}
	}

	if raw == 0 {
		return NightMinutes{}
	}

	return NightMinutes{
		BankMinutes:  int(math.Round(float64(raw) * nightStretchFactor)),
		BonusMinutes: raw,
	}
}

func overlap(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}
