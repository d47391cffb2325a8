package adjustment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontocerto/ponto-backend-go/internal/domain/adjustment"
	"github.com/pontocerto/ponto-backend-go/internal/domain/audit"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
)

type txPassthrough struct{}

func (txPassthrough) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memAdjustmentRepo struct {
	adjustments map[string]adjustment.Adjustment
	nextID      int
}

func newMemAdjustmentRepo() *memAdjustmentRepo {
	return &memAdjustmentRepo{adjustments: map[string]adjustment.Adjustment{}}
}

func (r *memAdjustmentRepo) Create(_ context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	r.nextID++
	adj.ID = fmt.Sprintf("adj-%d", r.nextID)
	adj.CreatedAt = time.Now()
	r.adjustments[adj.ID] = adj
	return adj, nil
}

func (r *memAdjustmentRepo) GetByID(_ context.Context, id string) (adjustment.Adjustment, error) {
	adj, ok := r.adjustments[id]
	if !ok {
		return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
	}
	return adj, nil
}

func (r *memAdjustmentRepo) Update(_ context.Context, adj adjustment.Adjustment) error {
	if _, ok := r.adjustments[adj.ID]; !ok {
		return adjustment.ErrAdjustmentNotFound
	}
	r.adjustments[adj.ID] = adj
	return nil
}

func (r *memAdjustmentRepo) ListByEmployee(_ context.Context, employeeID string) ([]adjustment.Adjustment, error) {
	var out []adjustment.Adjustment
	for _, adj := range r.adjustments {
		if adj.EmployeeID == employeeID {
			out = append(out, adj)
		}
	}
	return out, nil
}

func (r *memAdjustmentRepo) ListPending(context.Context) ([]adjustment.Adjustment, error) {
	var out []adjustment.Adjustment
	for _, adj := range r.adjustments {
		if adj.Status == adjustment.StatusPending {
			out = append(out, adj)
		}
	}
	return out, nil
}

func (r *memAdjustmentRepo) ListApprovedByEmployeePeriod(_ context.Context, employeeID string, start, end time.Time) ([]adjustment.Adjustment, error) {
	var out []adjustment.Adjustment
	for _, adj := range r.adjustments {
		if adj.EmployeeID == employeeID && adj.Status == adjustment.StatusApproved {
			out = append(out, adj)
		}
	}
	return out, nil
}

type memPunchRepo struct {
	punches map[string]punch.Punch
	nextID  int
}

func newMemPunchRepo() *memPunchRepo {
	return &memPunchRepo{punches: map[string]punch.Punch{}}
}

func (r *memPunchRepo) Create(_ context.Context, insert punch.PunchInsert) (punch.Punch, error) {
	r.nextID++
	p := punch.Punch{
		ID:            fmt.Sprintf("punch-%d", r.nextID),
		EmployeeID:    insert.EmployeeID,
		Timestamp:     insert.Timestamp,
		Source:        insert.Source,
		RawLine:       insert.RawLine,
		ImportID:      insert.ImportID,
		AdjustmentID:  insert.AdjustmentID,
		Justification: insert.Justification,
	}
	r.punches[p.ID] = p
	return p, nil
}

func (r *memPunchRepo) CreateBatch(ctx context.Context, inserts []punch.PunchInsert) error {
	for _, insert := range inserts {
		if _, err := r.Create(ctx, insert); err != nil {
			return err
		}
	}
	return nil
}

func (r *memPunchRepo) GetByID(_ context.Context, id string) (punch.Punch, error) {
	p, ok := r.punches[id]
	if !ok {
		return punch.Punch{}, punch.ErrPunchNotFound
	}
	return p, nil
}

func (r *memPunchRepo) ListByEmployeePeriod(context.Context, string, time.Time, time.Time) ([]punch.Punch, error) {
	return nil, nil
}

func (r *memPunchRepo) Update(_ context.Context, p punch.Punch) error {
	r.punches[p.ID] = p
	return nil
}

func (r *memPunchRepo) CreateImportBatch(_ context.Context, filename string) (punch.ImportBatch, error) {
	return punch.ImportBatch{ID: "import-1", Filename: filename}, nil
}

func (r *memPunchRepo) SetImportRecordCount(context.Context, string, int) error {
	return nil
}

func (r *memPunchRepo) ListImportBatches(context.Context) ([]punch.ImportBatch, error) {
	return nil, nil
}

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *memEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *memEmployeeRepo) GetByUsername(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) List(context.Context, bool) ([]employee.Employee, error) {
	return nil, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	r.employees[emp.ID] = emp
	return nil
}

func (r *memEmployeeRepo) Deactivate(context.Context, string) error {
	return nil
}

type memAuditRepo struct {
	entries []audit.Entry
}

func (r *memAuditRepo) Append(_ context.Context, entry audit.Entry) (audit.Entry, error) {
	entry.ID = fmt.Sprintf("audit-%d", len(r.entries)+1)
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *memAuditRepo) ListByEmployee(context.Context, string) ([]audit.Entry, error) {
	return r.entries, nil
}

func (r *memAuditRepo) List(context.Context) ([]audit.Entry, error) {
	return r.entries, nil
}

func (r *memAuditRepo) actions() []string {
	var actions []string
	for _, e := range r.entries {
		actions = append(actions, e.Action)
	}
	return actions
}

func newTestService() (Service, *memAdjustmentRepo, *memPunchRepo, *memAuditRepo) {
	adjustmentRepo := newMemAdjustmentRepo()
	punchRepo := newMemPunchRepo()
	employeeRepo := &memEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Username: "maria.silva", FullName: "Maria da Silva", Active: true},
	}}
	auditRepo := &memAuditRepo{}
	svc := NewAdjustmentService(txPassthrough{}, adjustmentRepo, punchRepo, employeeRepo, auditRepo)
	return svc, adjustmentRepo, punchRepo, auditRepo
}

func submitMissingPunch(t *testing.T, svc Service, ts string) adjustment.AdjustmentResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:    "emp-1",
		Type:          string(adjustment.TypeMissingPunch),
		Timestamp:     ts,
		Justification: "esqueci de bater o ponto",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateStartsPending(t *testing.T) {
	svc, _, _, auditRepo := newTestService()

	resp := submitMissingPunch(t, svc, "2025-03-05T17:00:00Z")

	assert.Equal(t, string(adjustment.StatusPending), resp.Status)
	assert.Equal(t, []string{audit.ActionAdjustmentCreated}, auditRepo.actions())
}

func TestProcessApprovedMissingPunchSynthesizesOnePunch(t *testing.T) {
	svc, _, punchRepo, auditRepo := newTestService()
	created := submitMissingPunch(t, svc, "2025-03-05T17:00:00Z")

	result, err := svc.Process(context.Background(), adjustment.ProcessAdjustmentRequest{
		ID:       created.ID,
		Decision: string(adjustment.StatusApproved),
	}, "admin-1")
	require.NoError(t, err)

	require.Len(t, result.SynthesizedPunches, 1)
	require.Len(t, punchRepo.punches, 1)

	synthesized := punchRepo.punches[result.SynthesizedPunches[0]]
	wanted, _ := time.Parse(time.RFC3339, "2025-03-05T17:00:00Z")
	assert.True(t, synthesized.Timestamp.Equal(wanted))
	assert.Equal(t, punch.SourceAdjustment, synthesized.Source)
	assert.Equal(t, "from adjustment", string(synthesized.Source))
	require.NotNil(t, synthesized.AdjustmentID)
	assert.Equal(t, created.ID, *synthesized.AdjustmentID)

	assert.Equal(t, []string{
		audit.ActionAdjustmentCreated,
		audit.ActionAdjustmentDecided,
		audit.ActionPunchSynthesized,
	}, auditRepo.actions())
}

func TestProcessTransitionIsTerminal(t *testing.T) {
	svc, adjustmentRepo, punchRepo, _ := newTestService()
	created := submitMissingPunch(t, svc, "2025-03-05T17:00:00Z")

	_, err := svc.Process(context.Background(), adjustment.ProcessAdjustmentRequest{
		ID:       created.ID,
		Decision: string(adjustment.StatusApproved),
	}, "admin-1")
	require.NoError(t, err)

	// Neither a repeat approval nor a late rejection goes through.
	for _, decision := range []string{string(adjustment.StatusApproved), string(adjustment.StatusRejected)} {
		_, err = svc.Process(context.Background(), adjustment.ProcessAdjustmentRequest{
			ID:       created.ID,
			Decision: decision,
		}, "admin-2")
		assert.ErrorIs(t, err, adjustment.ErrAlreadyProcessed)
	}

	assert.Len(t, punchRepo.punches, 1)
	stored := adjustmentRepo.adjustments[created.ID]
	assert.Equal(t, adjustment.StatusApproved, stored.Status)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, "admin-1", *stored.ReviewedBy)
}

func TestProcessRejectedDoesNotSynthesize(t *testing.T) {
	svc, adjustmentRepo, punchRepo, auditRepo := newTestService()
	created := submitMissingPunch(t, svc, "2025-03-05T17:00:00Z")

	result, err := svc.Process(context.Background(), adjustment.ProcessAdjustmentRequest{
		ID:       created.ID,
		Decision: string(adjustment.StatusRejected),
	}, "admin-1")
	require.NoError(t, err)

	assert.Empty(t, result.SynthesizedPunches)
	assert.Empty(t, punchRepo.punches)
	assert.Equal(t, adjustment.StatusRejected, adjustmentRepo.adjustments[created.ID].Status)
	assert.Equal(t, []string{
		audit.ActionAdjustmentCreated,
		audit.ActionAdjustmentDecided,
	}, auditRepo.actions())
}

func TestProcessApprovedCertificateDoesNotSynthesize(t *testing.T) {
	svc, _, punchRepo, _ := newTestService()

	endDate := "2025-03-06"
	created, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:    "emp-1",
		Type:          string(adjustment.TypeMedicalCertificate),
		Timestamp:     "2025-03-05",
		EndDate:       &endDate,
		Justification: "atestado médico",
	})
	require.NoError(t, err)

	result, err := svc.Process(context.Background(), adjustment.ProcessAdjustmentRequest{
		ID:       created.ID,
		Decision: string(adjustment.StatusApproved),
	}, "admin-1")
	require.NoError(t, err)

	assert.Empty(t, result.SynthesizedPunches)
	assert.Empty(t, punchRepo.punches)
}
