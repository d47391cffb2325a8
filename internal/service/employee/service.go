package employee

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
)

type ServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &ServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.EmployeeRepository.GetByUsername(ctx, req.Username)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrUsernameExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		Username:          req.Username,
		PasswordHash:      string(hash),
		Role:              employee.Role(req.Role),
		FullName:          req.FullName,
		CPF:               req.CPF,
		PIS:               req.PIS,
		Cargo:             req.Cargo,
		WorkSchedule:      req.WorkSchedule,
		NightStart:        req.NightStart,
		NightEnd:          req.NightEnd,
		NightBonusPercent: req.NightBonusPercent,
		NightExtension:    req.NightExtension,
		Active:            true,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *ServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *ServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Nil fields are left unchanged.
func (s *ServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.CPF != nil {
		emp.CPF = *req.CPF
	}
	if req.PIS != nil {
		emp.PIS = *req.PIS
	}
	if req.Cargo != nil {
		emp.Cargo = req.Cargo
	}
	if req.WorkSchedule != nil {
		emp.WorkSchedule = *req.WorkSchedule
	}
	if req.NightStart != nil {
		emp.NightStart = req.NightStart
	}
	if req.NightEnd != nil {
		emp.NightEnd = req.NightEnd
	}
	if req.NightBonusPercent != nil {
		emp.NightBonusPercent = *req.NightBonusPercent
	}
	if req.NightExtension != nil {
		emp.NightExtension = *req.NightExtension
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *ServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.EmployeeRepository.Deactivate(ctx, id)
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                emp.ID,
		Username:          emp.Username,
		Role:              string(emp.Role),
		FullName:          emp.FullName,
		CPF:               emp.CPF,
		PIS:               emp.PIS,
		Cargo:             emp.Cargo,
		WorkSchedule:      emp.WorkSchedule,
		NightStart:        emp.NightStart,
		NightEnd:          emp.NightEnd,
		NightBonusPercent: emp.NightBonusPercent,
		NightExtension:    emp.NightExtension,
		Active:            emp.Active,
		CreatedAt:         emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
