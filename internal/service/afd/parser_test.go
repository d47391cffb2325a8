package afd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
)

// afdLine builds one type-3 punch record: 9-digit NSR, type byte, DDMMYYYY,
// HHMM, 12-char identifier.
func afdLine(nsr, date, clock, id string) string {
	return nsr + "3" + date + clock + id
}

func TestParseFilePunchRecord(t *testing.T) {
	content := afdLine("000000001", "10032025", "0800", "012345678901") + "\n"

	parsed, err := ParseFile([]byte(content))
	require.NoError(t, err)
	require.Len(t, parsed, 1)

	assert.Equal(t, "012345678901", parsed[0].Identifier)
	want := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.Local)
	assert.True(t, parsed[0].Timestamp.Equal(want))
}

func TestParseFileSkipsOtherRecordTypes(t *testing.T) {
	lines := []string{
		"000000001" + "1" + "extra header content",
		afdLine("000000002", "10032025", "0800", "012345678901"),
		"000000003" + "9" + "trailer",
	}

	parsed, err := ParseFile([]byte(strings.Join(lines, "\n")))
	require.NoError(t, err)
	assert.Len(t, parsed, 1)
}

func TestParseFileSkipsGarbledLines(t *testing.T) {
	lines := []string{
		afdLine("000000001", "10032025", "0800", "012345678901"),
		afdLine("000000002", "99992025", "0800", "012345678901"), // impossible date
		afdLine("000000003", "1003XXXX", "0800", "012345678901"), // non-numeric year
		afdLine("000000004", "10032025", "2561", "012345678901"), // impossible time
		"short3",
	}

	parsed, err := ParseFile([]byte(strings.Join(lines, "\n")))
	require.NoError(t, err)
	assert.Len(t, parsed, 1)
}

func TestParseFileCRLFAndShortIdentifier(t *testing.T) {
	// Identifier shorter than 12 bytes: take what is there.
	content := afdLine("000000001", "10032025", "0800", "123456") + "\r\n"

	parsed, err := ParseFile([]byte(content))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "123456", parsed[0].Identifier)
}

func TestParseFileRejectsBinaryContent(t *testing.T) {
	_, err := ParseFile([]byte{0xff, 0xfe, 0x00, 0x81})
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestMatchPunchesByPIS(t *testing.T) {
	parsed := []ParsedPunch{
		{Identifier: "010987654321", Timestamp: time.Now(), RawLine: "raw-1"},
		{Identifier: "099999999999", Timestamp: time.Now(), RawLine: "raw-2"},
	}
	employees := []employee.Employee{
		{ID: "emp-1", PIS: "109.87654.32-1", Active: true},
	}

	importID := "import-1"
	inserts, matched := MatchPunches(parsed, employees, &importID)

	assert.Equal(t, 1, matched)
	require.Len(t, inserts, 1)
	assert.Equal(t, "emp-1", inserts[0].EmployeeID)
	assert.Equal(t, punch.SourceAFD, inserts[0].Source)
	require.NotNil(t, inserts[0].RawLine)
	assert.Equal(t, "raw-1", *inserts[0].RawLine)
	require.NotNil(t, inserts[0].ImportID)
	assert.Equal(t, "import-1", *inserts[0].ImportID)
}

func TestMatchPunchesFallsBackToCPF(t *testing.T) {
	parsed := []ParsedPunch{
		{Identifier: "012345678901", Timestamp: time.Now()},
	}
	employees := []employee.Employee{
		{ID: "emp-1", CPF: "123.456.789-01", Active: true},
	}

	_, matched := MatchPunches(parsed, employees, nil)
	assert.Equal(t, 1, matched)
}

func TestMatchPunchesSkipsInactiveEmployees(t *testing.T) {
	parsed := []ParsedPunch{
		{Identifier: "010987654321", Timestamp: time.Now()},
	}
	employees := []employee.Employee{
		{ID: "emp-1", PIS: "10987654321", Active: false},
	}

	inserts, matched := MatchPunches(parsed, employees, nil)
	assert.Zero(t, matched)
	assert.Empty(t, inserts)
}

func TestMatchPunchesEmptyIDsNeverMatch(t *testing.T) {
	// An employee without PIS or CPF must not match everything.
	parsed := []ParsedPunch{
		{Identifier: "012345678901", Timestamp: time.Now()},
	}
	employees := []employee.Employee{
		{ID: "emp-1", Active: true},
	}

	_, matched := MatchPunches(parsed, employees, nil)
	assert.Zero(t, matched)
}
