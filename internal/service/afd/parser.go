package afd

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

// ParsedPunch is one candidate decoded from a type-3 AFD record, before
// employee matching.
type ParsedPunch struct {
	Identifier string
	Timestamp  time.Time
	RawLine    string
}

// ParseFile decodes the fixed-width AFD export (Portaria 671). Layout of a
// punch record:
//
//	bytes [0:9)   NSR (ignored)
//	byte  [9]     record type; only '3' (punch event) is consumed
//	bytes [10:18) date DDMMYYYY
//	bytes [18:22) time HHMM
//	bytes [22:34) PIS/CPF identifier, trimmed
//
// Lines shorter than 10 bytes and lines with garbled date/time fields are
// skipped without aborting the batch; other record types are silently
// ignored. The only hard failure is content that is not valid text.
func ParseFile(content []byte) ([]ParsedPunch, error) {
	if !utf8.Valid(content) {
		return nil, ErrInvalidEncoding
	}

	var parsed []ParsedPunch
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 10 || line[9] != '3' {
			continue
		}
		if len(line) < 22 {
			continue
		}

		dateStr := line[10:18]
		timeStr := line[18:22]
		identifier := line[22:]
		if len(line) >= 34 {
			identifier = line[22:34]
		}
		identifier = strings.TrimSpace(identifier)

		day, errDay := strconv.Atoi(dateStr[0:2])
		month, errMonth := strconv.Atoi(dateStr[2:4])
		year, errYear := strconv.Atoi(dateStr[4:8])
		hour, errHour := strconv.Atoi(timeStr[0:2])
		minute, errMinute := strconv.Atoi(timeStr[2:4])
		if errDay != nil || errMonth != nil || errYear != nil || errHour != nil || errMinute != nil {
			continue
		}
		if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
			continue
		}

		parsed = append(parsed, ParsedPunch{
			Identifier: identifier,
			// Device timestamps are local wall-clock time; no zone conversion.
			Timestamp: time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local),
			RawLine:   line,
		})
	}

	return parsed, nil
}

// MatchPunches resolves candidates against the active employee set. An
// employee matches when their PIS or CPF, stripped to digits, is a substring
// of the candidate identifier (exports embed the id with padding or prefix
// noise). First match wins; unmatched candidates are dropped and reflected
// only in the returned count difference.
func MatchPunches(parsed []ParsedPunch, employees []employee.Employee, importID *string) (inserts []punch.PunchInsert, matched int) {
	for _, cand := range parsed {
		for _, emp := range employees {
			if !emp.Active {
				continue
			}
			pis := validator.StripNonDigits(emp.PIS)
			cpf := validator.StripNonDigits(emp.CPF)
			if (pis != "" && strings.Contains(cand.Identifier, pis)) ||
				(cpf != "" && strings.Contains(cand.Identifier, cpf)) {
				rawLine := cand.RawLine
				inserts = append(inserts, punch.PunchInsert{
					EmployeeID: emp.ID,
					Timestamp:  cand.Timestamp,
					Source:     punch.SourceAFD,
					RawLine:    &rawLine,
					ImportID:   importID,
				})
				matched++
				break
			}
		}
	}
	return inserts, matched
}
