package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/adjustment"
	"github.com/pontocerto/ponto-backend-go/internal/domain/audit"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type Service interface {
	Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error)

	// Process applies the single pending -> approved|rejected transition and,
	// for approved punch-type adjustments, synthesizes the requested punch in
	// the same transaction.
	Process(ctx context.Context, req adjustment.ProcessAdjustmentRequest, reviewerID string) (adjustment.ProcessResult, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]adjustment.AdjustmentResponse, error)
	ListPending(ctx context.Context) ([]adjustment.AdjustmentResponse, error)
}

type ServiceImpl struct {
	tx database.TxManager
	adjustment.AdjustmentRepository
	punch.PunchRepository
	employee.EmployeeRepository
	audit.AuditRepository
}

func NewAdjustmentService(
	tx database.TxManager,
	adjustmentRepo adjustment.AdjustmentRepository,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.AuditRepository,
) Service {
	return &ServiceImpl{
		tx:                   tx,
		AdjustmentRepository: adjustmentRepo,
		PunchRepository:      punchRepo,
		EmployeeRepository:   employeeRepo,
		AuditRepository:      auditRepo,
	}
}

// Create implements Service. Requests always start pending.
func (s *ServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	timestamp, err := parseRequestTimestamp(req.Timestamp)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, ok := validator.IsValidDate(*req.EndDate)
		if !ok {
			return adjustment.AdjustmentResponse{}, adjustment.ErrTimestampRequired
		}
		endDate = &parsed
	}

	adj := adjustment.Adjustment{
		EmployeeID:    emp.ID,
		Type:          adjustment.Type(req.Type),
		Timestamp:     timestamp,
		EndDate:       endDate,
		Justification: req.Justification,
		AttachmentURL: req.AttachmentURL,
		Status:        adjustment.StatusPending,
	}

	created, err := s.AdjustmentRepository.Create(ctx, adj)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	after := fmt.Sprintf("adjustment %s (%s) submitted", created.ID, created.Type)
	if _, err := s.AuditRepository.Append(ctx, audit.Entry{
		ActorID:    emp.ID,
		EmployeeID: emp.ID,
		Action:     audit.ActionAdjustmentCreated,
		After:      &after,
	}); err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return mapAdjustmentToResponse(created), nil
}

// Process implements Service.
func (s *ServiceImpl) Process(ctx context.Context, req adjustment.ProcessAdjustmentRequest, reviewerID string) (adjustment.ProcessResult, error) {
	if err := req.Validate(); err != nil {
		return adjustment.ProcessResult{}, err
	}

	adj, err := s.AdjustmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return adjustment.ProcessResult{}, err
	}

	if adj.Status != adjustment.StatusPending {
		return adjustment.ProcessResult{}, adjustment.ErrAlreadyProcessed
	}

	now := time.Now()
	before := string(adj.Status)
	adj.Status = adjustment.Status(req.Decision)
	adj.ReviewedBy = &reviewerID
	adj.ReviewedAt = &now
	adj.Feedback = req.Feedback

	var synthesized []string
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.AdjustmentRepository.Update(txCtx, adj); err != nil {
			return fmt.Errorf("failed to update adjustment: %w", err)
		}

		after := fmt.Sprintf("adjustment %s %s by %s", adj.ID, adj.Status, reviewerID)
		if _, err := s.AuditRepository.Append(txCtx, audit.Entry{
			ActorID:    reviewerID,
			EmployeeID: adj.EmployeeID,
			Action:     audit.ActionAdjustmentDecided,
			Before:     &before,
			After:      &after,
		}); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}

		// Approved certificates/absences never mutate punches; the daily
		// evaluator recognizes them directly.
		if adj.Status != adjustment.StatusApproved || !adj.Type.SynthesizesPunch() {
			return nil
		}
		if adj.Timestamp == nil {
			return adjustment.ErrTimestampRequired
		}

		justification := adj.Justification
		created, err := s.PunchRepository.Create(txCtx, punch.PunchInsert{
			EmployeeID:    adj.EmployeeID,
			Timestamp:     *adj.Timestamp,
			Source:        punch.SourceAdjustment,
			AdjustmentID:  &adj.ID,
			Justification: &justification,
		})
		if err != nil {
			return fmt.Errorf("failed to synthesize punch: %w", err)
		}
		synthesized = append(synthesized, created.ID)

		punchAfter := fmt.Sprintf("punch %s at %s from adjustment %s",
			created.ID, created.Timestamp.Format("2006-01-02 15:04"), adj.ID)
		if _, err := s.AuditRepository.Append(txCtx, audit.Entry{
			ActorID:    reviewerID,
			EmployeeID: adj.EmployeeID,
			Action:     audit.ActionPunchSynthesized,
			After:      &punchAfter,
		}); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return adjustment.ProcessResult{}, err
	}

	return adjustment.ProcessResult{
		Adjustment:         mapAdjustmentToResponse(adj),
		SynthesizedPunches: synthesized,
	}, nil
}

// ListByEmployee implements Service.
func (s *ServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]adjustment.AdjustmentResponse, error) {
	adjustments, err := s.AdjustmentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	return mapAdjustmentsToResponses(adjustments), nil
}

// ListPending implements Service.
func (s *ServiceImpl) ListPending(ctx context.Context) ([]adjustment.AdjustmentResponse, error) {
	adjustments, err := s.AdjustmentRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending adjustments: %w", err)
	}
	return mapAdjustmentsToResponses(adjustments), nil
}

// parseRequestTimestamp accepts a full ISO8601 timestamp or a bare date for
// certificate/absence coverage.
func parseRequestTimestamp(value string) (*time.Time, error) {
	if t, ok := validator.IsValidDateTime(value); ok {
		return &t, nil
	}
	if t, ok := validator.IsValidDate(value); ok {
		return &t, nil
	}
	return nil, adjustment.ErrTimestampRequired
}

func timePtrToString(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(layout)
	return &formatted
}

func mapAdjustmentToResponse(adj adjustment.Adjustment) adjustment.AdjustmentResponse {
	return adjustment.AdjustmentResponse{
		ID:            adj.ID,
		EmployeeID:    adj.EmployeeID,
		Type:          string(adj.Type),
		Timestamp:     timePtrToString(adj.Timestamp, "2006-01-02 15:04:05"),
		EndDate:       timePtrToString(adj.EndDate, "2006-01-02"),
		Justification: adj.Justification,
		AttachmentURL: adj.AttachmentURL,
		Status:        string(adj.Status),
		ReviewedBy:    adj.ReviewedBy,
		ReviewedAt:    timePtrToString(adj.ReviewedAt, "2006-01-02 15:04:05"),
		Feedback:      adj.Feedback,
		CreatedAt:     adj.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapAdjustmentsToResponses(adjustments []adjustment.Adjustment) []adjustment.AdjustmentResponse {
	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, adj := range adjustments {
		responses = append(responses, mapAdjustmentToResponse(adj))
	}
	return responses
}
