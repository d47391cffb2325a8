package mirror

import "time"

// Interval is one worked stretch between an entry punch and an exit punch.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the interval length in whole minutes.
func (iv Interval) Minutes() int {
	return int(iv.End.Sub(iv.Start).Minutes())
}

// PairPunches groups one day's ordered punches into entry/exit pairs: punches
// 1&2 form interval 1, punches 3&4 form interval 2, and so on. An odd trailing
// punch contributes zero minutes and flags the day as inconsistent; the
// complete pairs are still counted.
func PairPunches(punches []time.Time) (intervals []Interval, workedMinutes int, inconsistent bool) {
	for i := 0; i+1 < len(punches); i += 2 {
		iv := Interval{Start: punches[i], End: punches[i+1]}
		intervals = append(intervals, iv)
		workedMinutes += iv.Minutes()
	}
	inconsistent = len(punches)%2 != 0
	return intervals, workedMinutes, inconsistent
}
