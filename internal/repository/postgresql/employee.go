package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, username, password_hash, role, full_name, cpf, pis, cargo,
		work_schedule, night_start, night_end, night_bonus_percent, night_extension,
		active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Username, &emp.PasswordHash, &emp.Role, &emp.FullName,
		&emp.CPF, &emp.PIS, &emp.Cargo, &emp.WorkSchedule,
		&emp.NightStart, &emp.NightEnd, &emp.NightBonusPercent, &emp.NightExtension,
		&emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, username, password_hash, role, full_name, cpf, pis, cargo,
			work_schedule, night_start, night_end, night_bonus_percent, night_extension, active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(), emp.Username, emp.PasswordHash, emp.Role, emp.FullName,
		emp.CPF, emp.PIS, emp.Cargo, emp.WorkSchedule,
		emp.NightStart, emp.NightEnd, emp.NightBonusPercent, emp.NightExtension, emp.Active,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByUsername implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE username = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by username: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET password_hash = $1, role = $2, full_name = $3, cpf = $4, pis = $5, cargo = $6,
			work_schedule = $7, night_start = $8, night_end = $9,
			night_bonus_percent = $10, night_extension = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.PasswordHash, emp.Role, emp.FullName, emp.CPF, emp.PIS, emp.Cargo,
		emp.WorkSchedule, emp.NightStart, emp.NightEnd,
		emp.NightBonusPercent, emp.NightExtension, emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var deactivatedID string
	err := q.QueryRow(ctx, query, id).Scan(&deactivatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}
