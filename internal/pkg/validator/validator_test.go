package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestStripNonDigits(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"123.456.789-01", "12345678901"},
		{" 109.87654.32-1 ", "10987654321"},
		{"abc", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripNonDigits(c.input); got != c.want {
			t.Errorf("StripNonDigits(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	valid := []string{"12345678901", "123.456.789-01"}
	invalid := []string{"", "123", "123456789012"}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = false, want true", cpf)
		}
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = true, want false", cpf)
		}
	}
}

func TestIsValidWorkSchedule(t *testing.T) {
	valid := []string{"08:00-12:00", "08:00-12:00,13:00-17:00", "22:00-05:00"}
	invalid := []string{"", "8:00-12:00", "08:00", "08:00-12:00,", "08h-12h"}
	for _, s := range valid {
		if !IsValidWorkSchedule(s) {
			t.Errorf("IsValidWorkSchedule(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidWorkSchedule(s) {
			t.Errorf("IsValidWorkSchedule(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2025-03"); !ok {
		t.Error("IsValidMonth(\"2025-03\") = false, want true")
	}
	for _, m := range []string{"2025-13", "03/2025", "2025-3", ""} {
		if _, ok := IsValidMonth(m); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2025-03-10T08:00:00Z", "2025-03-10T08:00:00-03:00"}
	invalid := []string{"2025-03-10", "10/03/2025 08:00", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"maria.silva", "admin", "user_01"}
	invalid := []string{"ab", "", "maria silva", "user@host"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}
