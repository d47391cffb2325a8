package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/audit"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type Service interface {
	// CreateManual records a punch entered by an admin or the employee's web
	// clock-in. The source distinguishes the two.
	CreateManual(ctx context.Context, req punch.ManualPunchRequest, source punch.Source, actorID string) (punch.PunchResponse, error)

	// Edit moves a punch to a new timestamp. The original timestamp is kept on
	// the first edit and never overwritten afterwards.
	Edit(ctx context.Context, req punch.EditPunchRequest, actorID string) (punch.PunchResponse, error)

	// SoftDelete flags a punch deleted without removing the row.
	SoftDelete(ctx context.Context, req punch.SoftDeletePunchRequest, actorID string) error

	ListByEmployeePeriod(ctx context.Context, employeeID, monthKey string) ([]punch.PunchResponse, error)
}

type ServiceImpl struct {
	tx database.TxManager
	punch.PunchRepository
	employee.EmployeeRepository
	audit.AuditRepository
}

func NewPunchService(tx database.TxManager, punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository, auditRepo audit.AuditRepository) Service {
	return &ServiceImpl{
		tx:                 tx,
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		AuditRepository:    auditRepo,
	}
}

// CreateManual implements Service.
func (s *ServiceImpl) CreateManual(ctx context.Context, req punch.ManualPunchRequest, source punch.Source, actorID string) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if !emp.Active {
		return punch.PunchResponse{}, employee.ErrEmployeeInactive
	}

	timestamp, _ := validator.IsValidDateTime(req.Timestamp)

	var created punch.Punch
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.PunchRepository.Create(txCtx, punch.PunchInsert{
			EmployeeID:    emp.ID,
			Timestamp:     timestamp,
			Source:        source,
			Justification: req.Justification,
		})
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}

		after := fmt.Sprintf("punch %s at %s (%s)", created.ID, created.Timestamp.Format("2006-01-02 15:04"), source)
		if _, err := s.AuditRepository.Append(txCtx, audit.Entry{
			ActorID:    actorID,
			EmployeeID: emp.ID,
			Action:     audit.ActionPunchCreated,
			After:      &after,
		}); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return mapPunchToResponse(created), nil
}

// Edit implements Service.
func (s *ServiceImpl) Edit(ctx context.Context, req punch.EditPunchRequest, actorID string) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	p, err := s.PunchRepository.GetByID(ctx, req.ID)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if p.IsDeleted {
		return punch.PunchResponse{}, punch.ErrPunchDeleted
	}

	newTimestamp, _ := validator.IsValidDateTime(req.NewTimestamp)

	before := p.Timestamp.Format("2006-01-02 15:04:05")
	if p.OriginalTimestamp == nil {
		original := p.Timestamp
		p.OriginalTimestamp = &original
	}
	p.Timestamp = newTimestamp
	p.Source = punch.SourceEdited
	p.Justification = &req.Justification

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.PunchRepository.Update(txCtx, p); err != nil {
			return fmt.Errorf("failed to update punch: %w", err)
		}

		after := newTimestamp.Format("2006-01-02 15:04:05")
		if _, err := s.AuditRepository.Append(txCtx, audit.Entry{
			ActorID:    actorID,
			EmployeeID: p.EmployeeID,
			Action:     audit.ActionPunchEdited,
			Before:     &before,
			After:      &after,
		}); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return mapPunchToResponse(p), nil
}

// SoftDelete implements Service.
func (s *ServiceImpl) SoftDelete(ctx context.Context, req punch.SoftDeletePunchRequest, actorID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	p, err := s.PunchRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if p.IsDeleted {
		return punch.ErrPunchDeleted
	}

	before := p.Timestamp.Format("2006-01-02 15:04:05")
	p.IsDeleted = true
	p.Justification = &req.Justification

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.PunchRepository.Update(txCtx, p); err != nil {
			return fmt.Errorf("failed to soft delete punch: %w", err)
		}

		after := "deleted: " + req.Justification
		if _, err := s.AuditRepository.Append(txCtx, audit.Entry{
			ActorID:    actorID,
			EmployeeID: p.EmployeeID,
			Action:     audit.ActionPunchSoftDeleted,
			Before:     &before,
			After:      &after,
		}); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}
		return nil
	})
}

// ListByEmployeePeriod implements Service. monthKey is "YYYY-MM".
func (s *ServiceImpl) ListByEmployeePeriod(ctx context.Context, employeeID, monthKey string) ([]punch.PunchResponse, error) {
	monthStart, ok := validator.IsValidMonth(monthKey)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be YYYY-MM"}}
	}
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	punches, err := s.PunchRepository.ListByEmployeePeriod(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapPunchToResponse(p))
	}
	return responses, nil
}

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	var original *string
	if p.OriginalTimestamp != nil {
		formatted := p.OriginalTimestamp.Format("2006-01-02 15:04:05")
		original = &formatted
	}
	return punch.PunchResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		Timestamp:         p.Timestamp.Format("2006-01-02 15:04:05"),
		Source:            string(p.Source),
		RawLine:           p.RawLine,
		Justification:     p.Justification,
		AdjustmentID:      p.AdjustmentID,
		OriginalTimestamp: original,
		IsDeleted:         p.IsDeleted,
	}
}
