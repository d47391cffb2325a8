package employee

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Employee carries identity, the AFD matching keys (PIS/CPF), the expected
// work schedule and the night-shift role rules. Employees are never hard
// deleted; deactivation keeps historical timesheets intact.
type Employee struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	FullName     string
	CPF          string
	PIS          string
	Cargo        *string

	// WorkSchedule is an ordered interval list, e.g. "08:00-12:00,13:00-17:00".
	WorkSchedule string

	// Night-shift rules. NightStart/NightEnd override the company window when
	// set; NightExtension applies the legal overflow past the window end.
	NightStart        *string
	NightEnd          *string
	NightBonusPercent int
	NightExtension    bool

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
