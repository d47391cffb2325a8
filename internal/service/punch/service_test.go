package punch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontocerto/ponto-backend-go/internal/domain/audit"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
)

type txPassthrough struct{}

func (txPassthrough) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func (r *memPunchRepo) ListByEmployeePeriod(_ context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range r.punches {
		if p.EmployeeID == employeeID && !p.IsDeleted && !p.Timestamp.Before(start) && !p.Timestamp.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPunchRepo) Update(_ context.Context, p punch.Punch) error {
	if _, ok := r.punches[p.ID]; !ok {
		return punch.ErrPunchNotFound
	}
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

func (r *memEmployeeRepo) GetByUsername(_ context.Context, username string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Username == username {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		if activeOnly && !emp.Active {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	r.employees[emp.ID] = emp
	return nil
}

func (r *memEmployeeRepo) Deactivate(_ context.Context, id string) error {
	emp, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Active = false
	r.employees[id] = emp
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

func newTestService() (Service, *memPunchRepo, *memAuditRepo) {
	punchRepo := newMemPunchRepo()
	employeeRepo := &memEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Username: "maria.silva", FullName: "Maria da Silva", Active: true},
		"emp-2": {ID: "emp-2", Username: "joao.santos", FullName: "João Santos", Active: false},
	}}
	auditRepo := &memAuditRepo{}
	svc := NewPunchService(txPassthrough{}, punchRepo, employeeRepo, auditRepo)
	return svc, punchRepo, auditRepo
}

func seedPunch(t *testing.T, repo *memPunchRepo, ts string) punch.Punch {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	p, err := repo.Create(context.Background(), punch.PunchInsert{
		EmployeeID: "emp-1",
		Timestamp:  parsed,
		Source:     punch.SourceAFD,
	})
	require.NoError(t, err)
	return p
}

func TestCreateManualAppendsAudit(t *testing.T) {
	svc, punchRepo, auditRepo := newTestService()

	resp, err := svc.CreateManual(context.Background(), punch.ManualPunchRequest{
		EmployeeID: "emp-1",
		Timestamp:  "2025-03-10T08:00:00Z",
	}, punch.SourceManual, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "manual", resp.Source)
	assert.Len(t, punchRepo.punches, 1)
	assert.Equal(t, []string{audit.ActionPunchCreated}, auditRepo.actions())
	assert.Equal(t, "admin-1", auditRepo.entries[0].ActorID)
}

func TestCreateManualInactiveEmployee(t *testing.T) {
	svc, punchRepo, _ := newTestService()

	_, err := svc.CreateManual(context.Background(), punch.ManualPunchRequest{
		EmployeeID: "emp-2",
		Timestamp:  "2025-03-10T08:00:00Z",
	}, punch.SourceManual, "admin-1")

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
	assert.Empty(t, punchRepo.punches)
}

func TestEditKeepsOriginalTimestamp(t *testing.T) {
	svc, punchRepo, auditRepo := newTestService()
	seeded := seedPunch(t, punchRepo, "2025-03-10T08:00:00Z")

	resp, err := svc.Edit(context.Background(), punch.EditPunchRequest{
		ID:            seeded.ID,
		NewTimestamp:  "2025-03-10T08:05:00Z",
		Justification: "relógio adiantado",
	}, "admin-1")
	require.NoError(t, err)

	stored := punchRepo.punches[seeded.ID]
	require.NotNil(t, stored.OriginalTimestamp)
	assert.True(t, stored.OriginalTimestamp.Equal(seeded.Timestamp))
	assert.Equal(t, punch.SourceEdited, stored.Source)
	assert.Equal(t, "2025-03-10 08:05:00", resp.Timestamp)
	assert.Equal(t, []string{audit.ActionPunchEdited}, auditRepo.actions())
}

func TestSecondEditDoesNotOverwriteOriginalTimestamp(t *testing.T) {
	svc, punchRepo, _ := newTestService()
	seeded := seedPunch(t, punchRepo, "2025-03-10T08:00:00Z")

	_, err := svc.Edit(context.Background(), punch.EditPunchRequest{
		ID:            seeded.ID,
		NewTimestamp:  "2025-03-10T08:05:00Z",
		Justification: "primeira correção",
	}, "admin-1")
	require.NoError(t, err)

	_, err = svc.Edit(context.Background(), punch.EditPunchRequest{
		ID:            seeded.ID,
		NewTimestamp:  "2025-03-10T08:10:00Z",
		Justification: "segunda correção",
	}, "admin-1")
	require.NoError(t, err)

	stored := punchRepo.punches[seeded.ID]
	require.NotNil(t, stored.OriginalTimestamp)
	assert.True(t, stored.OriginalTimestamp.Equal(seeded.Timestamp))
	assert.Equal(t, "2025-03-10T08:10:00Z", stored.Timestamp.Format(time.RFC3339))
}

func TestEditDeletedPunchRejected(t *testing.T) {
	svc, punchRepo, _ := newTestService()
	seeded := seedPunch(t, punchRepo, "2025-03-10T08:00:00Z")
	deleted := punchRepo.punches[seeded.ID]
	deleted.IsDeleted = true
	punchRepo.punches[seeded.ID] = deleted

	_, err := svc.Edit(context.Background(), punch.EditPunchRequest{
		ID:            seeded.ID,
		NewTimestamp:  "2025-03-10T08:05:00Z",
		Justification: "tentativa",
	}, "admin-1")

	assert.ErrorIs(t, err, punch.ErrPunchDeleted)
}

func TestSoftDeleteKeepsRowAndAudits(t *testing.T) {
	svc, punchRepo, auditRepo := newTestService()
	seeded := seedPunch(t, punchRepo, "2025-03-10T08:00:00Z")

	err := svc.SoftDelete(context.Background(), punch.SoftDeletePunchRequest{
		ID:            seeded.ID,
		Justification: "batida duplicada",
	}, "admin-1")
	require.NoError(t, err)

	stored, ok := punchRepo.punches[seeded.ID]
	require.True(t, ok)
	assert.True(t, stored.IsDeleted)
	assert.Equal(t, []string{audit.ActionPunchSoftDeleted}, auditRepo.actions())
}

func TestSoftDeleteTwiceRejected(t *testing.T) {
	svc, punchRepo, _ := newTestService()
	seeded := seedPunch(t, punchRepo, "2025-03-10T08:00:00Z")

	require.NoError(t, svc.SoftDelete(context.Background(), punch.SoftDeletePunchRequest{
		ID:            seeded.ID,
		Justification: "batida duplicada",
	}, "admin-1"))

	err := svc.SoftDelete(context.Background(), punch.SoftDeletePunchRequest{
		ID:            seeded.ID,
		Justification: "de novo",
	}, "admin-1")

	assert.ErrorIs(t, err, punch.ErrPunchDeleted)
}
