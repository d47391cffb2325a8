package timesheet

// DailyRecord is the derived state of one calendar day. It is regenerated on
// every query and never persisted, so it always reflects the current punch
// and adjustment state.
type DailyRecord struct {
	Date    string   `json:"date"`    // YYYY-MM-DD
	Punches []string `json:"punches"` // HH:mm, ascending

	IsDayOff  bool    `json:"is_day_off"`
	Holiday   *string `json:"holiday,omitempty"`
	IsExcused bool    `json:"is_excused"`

	// IsInconsistent flags an odd trailing punch (missing exit). The day is
	// still computed from the complete pairs.
	IsInconsistent bool `json:"is_inconsistent"`

	// RawWorkedMinutes is the paired total; WorkedMinutes is after tolerance
	// absorption or excusal credit.
	RawWorkedMinutes int `json:"raw_worked_minutes"`
	WorkedMinutes    int `json:"worked_minutes"`
	ExpectedMinutes  int `json:"expected_minutes"`
	BalanceMinutes   int `json:"balance_minutes"`

	NightBankMinutes  int `json:"night_bank_minutes"`
	NightBonusMinutes int `json:"night_bonus_minutes"`

	TotalHours string `json:"total_hours"` // HH:mm of WorkedMinutes
	Balance    string `json:"balance"`     // signed ±HH:mm
}

// MonthlySummary folds a month of daily records.
type MonthlySummary struct {
	WorkedMinutes       int `json:"worked_minutes"`
	TotalBalanceMinutes int `json:"total_balance_minutes"`
	OvertimeMinutes     int `json:"overtime_minutes"`
	ShortfallMinutes    int `json:"shortfall_minutes"`
	NightBankMinutes    int `json:"night_bank_minutes"`
	NightBonusMinutes   int `json:"night_bonus_minutes"`
	DSRMinutes          int `json:"dsr_minutes"`

	TotalHours     string `json:"total_hours"`
	FinalBalance   string `json:"final_balance"`
	TotalOvertime  string `json:"total_overtime"`
	TotalShortfall string `json:"total_shortfall"`
	NightBank      string `json:"night_bank"`
	NightBonus     string `json:"night_bonus"`
	DSR            string `json:"dsr"`

	// DSRBasis explains the working-day/rest-day counts behind the reflex.
	DSRBasis string `json:"dsr_basis"`
}

type EmployeeInfo struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	CPF          string  `json:"cpf"`
	PIS          string  `json:"pis"`
	Cargo        *string `json:"cargo,omitempty"`
	WorkSchedule string  `json:"work_schedule"`
}

type CompanyInfo struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Endereco    string `json:"endereco"`
}

// MonthlyMirrorResponse is the espelho de ponto delivered to the caller.
type MonthlyMirrorResponse struct {
	Employee EmployeeInfo   `json:"employee"`
	Company  CompanyInfo    `json:"company"`
	Period   string         `json:"period"` // YYYY-MM
	Records  []DailyRecord  `json:"records"`
	Summary  MonthlySummary `json:"summary"`
}
