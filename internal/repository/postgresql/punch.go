package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `id, employee_id, timestamp, source, raw_line, import_id,
		justification, adjustment_id, original_timestamp, is_deleted, created_at, updated_at`

func scanPunch(row pgx.Row) (punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Timestamp, &p.Source, &p.RawLine, &p.ImportID,
		&p.Justification, &p.AdjustmentID, &p.OriginalTimestamp, &p.IsDeleted,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, insert punch.PunchInsert) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, timestamp, source, raw_line, import_id, justification, adjustment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + punchColumns

	created, err := scanPunch(q.QueryRow(ctx, query,
		uuid.NewString(), insert.EmployeeID, insert.Timestamp, insert.Source,
		insert.RawLine, insert.ImportID, insert.Justification, insert.AdjustmentID,
	))
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to insert punch: %w", err)
	}

	return created, nil
}

// CreateBatch implements punch.PunchRepository. Row-by-row inserts inside the
// caller's transaction; an AFD import stays all-or-nothing.
func (r *punchRepositoryImpl) CreateBatch(ctx context.Context, inserts []punch.PunchInsert) error {
	if len(inserts) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, timestamp, source, raw_line, import_id, justification, adjustment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, insert := range inserts {
		if _, err := q.Exec(ctx, query,
			uuid.NewString(), insert.EmployeeID, insert.Timestamp, insert.Source,
			insert.RawLine, insert.ImportID, insert.Justification, insert.AdjustmentID,
		); err != nil {
			return fmt.Errorf("failed to insert punch batch row: %w", err)
		}
	}

	return nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + ` FROM punches WHERE id = $1`

	p, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to get punch by id: %w", err)
	}

	return p, nil
}

// ListByEmployeePeriod implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1 AND timestamp BETWEEN $2 AND $3 AND is_deleted = FALSE
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

// Update implements punch.PunchRepository.
func (r *punchRepositoryImpl) Update(ctx context.Context, p punch.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET timestamp = $1, source = $2, justification = $3,
			original_timestamp = $4, is_deleted = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		p.Timestamp, p.Source, p.Justification, p.OriginalTimestamp, p.IsDeleted, p.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to update punch: %w", err)
	}

	return nil
}

// CreateImportBatch implements punch.PunchRepository.
func (r *punchRepositoryImpl) CreateImportBatch(ctx context.Context, filename string) (punch.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO afd_imports (id, filename, record_count)
		VALUES ($1, $2, 0)
		RETURNING id, filename, record_count, uploaded_at
	`

	var batch punch.ImportBatch
	err := q.QueryRow(ctx, query, uuid.NewString(), filename).Scan(
		&batch.ID, &batch.Filename, &batch.RecordCount, &batch.UploadedAt,
	)
	if err != nil {
		return punch.ImportBatch{}, fmt.Errorf("failed to insert import batch: %w", err)
	}

	return batch, nil
}

// SetImportRecordCount implements punch.PunchRepository.
func (r *punchRepositoryImpl) SetImportRecordCount(ctx context.Context, importID string, count int) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE afd_imports SET record_count = $1 WHERE id = $2 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, count, importID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.ErrImportNotFound
		}
		return fmt.Errorf("failed to update import record count: %w", err)
	}

	return nil
}

// ListImportBatches implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListImportBatches(ctx context.Context) ([]punch.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, filename, record_count, uploaded_at
		FROM afd_imports
		ORDER BY uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []punch.ImportBatch
	for rows.Next() {
		var batch punch.ImportBatch
		if err := rows.Scan(&batch.ID, &batch.Filename, &batch.RecordCount, &batch.UploadedAt); err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
