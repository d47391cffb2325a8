package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUsername retrieves an employee by login username
	GetByUsername(ctx context.Context, username string) (Employee, error)

	// List retrieves employees; activeOnly filters out deactivated ones
	List(ctx context.Context, activeOnly bool) ([]Employee, error)

	// Update updates an existing employee record
	Update(ctx context.Context, emp Employee) error

	// Deactivate soft-deactivates an employee (never hard-deletes)
	Deactivate(ctx context.Context, id string) error
}
