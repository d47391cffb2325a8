package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/audit"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Append implements audit.AuditRepository.
func (r *auditRepositoryImpl) Append(ctx context.Context, entry audit.Entry) (audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_log (id, actor_id, employee_id, action, before, after)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, actor_id, employee_id, action, before, after, created_at
	`

	var created audit.Entry
	err := q.QueryRow(ctx, query,
		uuid.NewString(), entry.ActorID, entry.EmployeeID, entry.Action, entry.Before, entry.After,
	).Scan(
		&created.ID, &created.ActorID, &created.EmployeeID, &created.Action,
		&created.Before, &created.After, &created.CreatedAt,
	)
	if err != nil {
		return audit.Entry{}, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return created, nil
}

// ListByEmployee implements audit.AuditRepository.
func (r *auditRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, actor_id, employee_id, action, before, after, created_at
		FROM audit_log
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAuditEntries(rows)
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, actor_id, employee_id, action, before, after, created_at
		FROM audit_log
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAuditEntries(rows)
}

func collectAuditEntries(rows pgx.Rows) ([]audit.Entry, error) {
	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		if err := rows.Scan(
			&entry.ID, &entry.ActorID, &entry.EmployeeID, &entry.Action,
			&entry.Before, &entry.After, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
