package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/adjustment"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

const adjustmentColumns = `id, employee_id, type, timestamp, end_date, justification, attachment_url,
		status, reviewed_by, reviewed_at, feedback, created_at, updated_at`

func scanAdjustment(row pgx.Row) (adjustment.Adjustment, error) {
	var adj adjustment.Adjustment
	err := row.Scan(
		&adj.ID, &adj.EmployeeID, &adj.Type, &adj.Timestamp, &adj.EndDate,
		&adj.Justification, &adj.AttachmentURL, &adj.Status,
		&adj.ReviewedBy, &adj.ReviewedAt, &adj.Feedback,
		&adj.CreatedAt, &adj.UpdatedAt,
	)
	return adj, err
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustments (id, employee_id, type, timestamp, end_date, justification, attachment_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + adjustmentColumns

	created, err := scanAdjustment(q.QueryRow(ctx, query,
		uuid.NewString(), adj.EmployeeID, adj.Type, adj.Timestamp, adj.EndDate,
		adj.Justification, adj.AttachmentURL, adj.Status,
	))
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("failed to insert adjustment: %w", err)
	}

	return created, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE id = $1`

	adj, err := scanAdjustment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, fmt.Errorf("failed to get adjustment by id: %w", err)
	}

	return adj, nil
}

// Update implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Update(ctx context.Context, adj adjustment.Adjustment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE adjustments
		SET status = $1, reviewed_by = $2, reviewed_at = $3, feedback = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		adj.Status, adj.ReviewedBy, adj.ReviewedAt, adj.Feedback, adj.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.ErrAdjustmentNotFound
		}
		return fmt.Errorf("failed to update adjustment: %w", err)
	}

	return nil
}

// ListByEmployee implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

// ListPending implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) ListPending(ctx context.Context) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, adjustment.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

// ListApprovedByEmployeePeriod implements adjustment.AdjustmentRepository.
// An adjustment touches the period when its covered day, or any day of its
// [timestamp, end_date] range, falls inside [start, end].
func (r *adjustmentRepositoryImpl) ListApprovedByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments
		WHERE employee_id = $1 AND status = $2
			AND timestamp <= $4
			AND COALESCE(end_date, timestamp) >= $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, adjustment.StatusApproved, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

func collectAdjustments(rows pgx.Rows) ([]adjustment.Adjustment, error) {
	var adjustments []adjustment.Adjustment
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}
