package adjustment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypeSynthesizesPunch(t *testing.T) {
	assert.True(t, TypeMissingPunch.SynthesizesPunch())
	assert.True(t, TypeGenericAdjustment.SynthesizesPunch())
	assert.False(t, TypeMedicalCertificate.SynthesizesPunch())
	assert.False(t, TypeAbsenceExcused.SynthesizesPunch())
}

func TestTypeExcuses(t *testing.T) {
	assert.True(t, TypeMedicalCertificate.Excuses())
	assert.True(t, TypeAbsenceExcused.Excuses())
	assert.False(t, TypeMissingPunch.Excuses())
	assert.False(t, TypeGenericAdjustment.Excuses())
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestCoversSingleDay(t *testing.T) {
	covered := day(t, "2025-03-05")
	adj := Adjustment{Timestamp: &covered}

	assert.True(t, adj.Covers(day(t, "2025-03-05")))
	assert.False(t, adj.Covers(day(t, "2025-03-04")))
	assert.False(t, adj.Covers(day(t, "2025-03-06")))
}

func TestCoversRange(t *testing.T) {
	start := day(t, "2025-03-05")
	end := day(t, "2025-03-07")
	adj := Adjustment{Timestamp: &start, EndDate: &end}

	assert.False(t, adj.Covers(day(t, "2025-03-04")))
	assert.True(t, adj.Covers(day(t, "2025-03-05")))
	assert.True(t, adj.Covers(day(t, "2025-03-06")))
	assert.True(t, adj.Covers(day(t, "2025-03-07")))
	assert.False(t, adj.Covers(day(t, "2025-03-08")))
}

func TestCoversComparesByCalendarDay(t *testing.T) {
	// A certificate stored with a mid-day timestamp still covers the whole day.
	covered := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)
	adj := Adjustment{Timestamp: &covered}

	assert.True(t, adj.Covers(day(t, "2025-03-05")))
}

func TestCoversNilTimestamp(t *testing.T) {
	adj := Adjustment{}
	assert.False(t, adj.Covers(day(t, "2025-03-05")))
}

func TestCreateAdjustmentRequestValidate(t *testing.T) {
	endDate := "2025-03-07"

	cases := []struct {
		name    string
		req     CreateAdjustmentRequest
		wantErr bool
	}{
		{
			name: "missing punch with timestamp",
			req: CreateAdjustmentRequest{
				Type:          string(TypeMissingPunch),
				Timestamp:     "2025-03-05T17:00:00Z",
				Justification: "esqueci de bater o ponto",
			},
		},
		{
			name: "missing punch with bare date",
			req: CreateAdjustmentRequest{
				Type:          string(TypeMissingPunch),
				Timestamp:     "2025-03-05",
				Justification: "esqueci de bater o ponto",
			},
			wantErr: true,
		},
		{
			name: "missing punch rejects end date",
			req: CreateAdjustmentRequest{
				Type:          string(TypeMissingPunch),
				Timestamp:     "2025-03-05T17:00:00Z",
				EndDate:       &endDate,
				Justification: "esqueci de bater o ponto",
			},
			wantErr: true,
		},
		{
			name: "certificate with date range",
			req: CreateAdjustmentRequest{
				Type:          string(TypeMedicalCertificate),
				Timestamp:     "2025-03-05",
				EndDate:       &endDate,
				Justification: "atestado médico",
			},
		},
		{
			name: "unknown type",
			req: CreateAdjustmentRequest{
				Type:          "vacation",
				Timestamp:     "2025-03-05",
				Justification: "ok",
			},
			wantErr: true,
		},
		{
			name: "missing justification",
			req: CreateAdjustmentRequest{
				Type:      string(TypeAbsenceExcused),
				Timestamp: "2025-03-05",
			},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAdjustmentRequestValidate(t *testing.T) {
	ok := ProcessAdjustmentRequest{Decision: "approved"}
	assert.NoError(t, ok.Validate())

	rejected := ProcessAdjustmentRequest{Decision: "rejected"}
	assert.NoError(t, rejected.Validate())

	bad := ProcessAdjustmentRequest{Decision: "maybe"}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDecision)
}
