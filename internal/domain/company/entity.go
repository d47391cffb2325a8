package company

import "time"

type OvertimeRegime string

const (
	OvertimeRegimeBanked OvertimeRegime = "banked"
	OvertimeRegimePaid   OvertimeRegime = "paid"
	OvertimeRegimeMixed  OvertimeRegime = "mixed"
)

// Settings is the company singleton: legal identity plus the policy every
// timesheet calculation reads.
type Settings struct {
	ID          string
	RazaoSocial string
	CNPJ        string
	Endereco    string

	// Policy
	ToleranceMinutes     int
	NightStart           string // HH:mm
	NightEnd             string // HH:mm, may be numerically before NightStart (crosses midnight)
	OvertimeRegime       OvertimeRegime
	BankExpirationMonths int
	WeeklyRestEnabled    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings returns the policy applied before HR configures anything:
// CLT 10-minute tolerance and the 22:00-05:00 legal night window.
func DefaultSettings() Settings {
	return Settings{
		ToleranceMinutes:     10,
		NightStart:           "22:00",
		NightEnd:             "05:00",
		OvertimeRegime:       OvertimeRegimeBanked,
		BankExpirationMonths: 6,
		WeeklyRestEnabled:    true,
	}
}

// Holiday marks a calendar day as non-working regardless of weekday.
type Holiday struct {
	ID          string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
