package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUsernameExists   = errors.New("username already registered")
	ErrEmployeeInactive = errors.New("employee is deactivated")
	ErrAdminRequired    = errors.New("admin privilege required")
)
