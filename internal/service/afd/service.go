package afd

import (
	"context"
	"fmt"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

// ImportResult reports one processed AFD upload.
type ImportResult struct {
	ImportID     string `json:"import_id"`
	Filename     string `json:"filename"`
	TotalRecords int    `json:"total_records"`
	MatchedCount int    `json:"matched_count"`
}

type Service interface {
	// Import parses an uploaded AFD file, matches punches to active employees
	// and persists the batch atomically.
	Import(ctx context.Context, filename string, content []byte) (ImportResult, error)

	// ListImports retrieves past import batches, newest first.
	ListImports(ctx context.Context) ([]punch.ImportBatchResponse, error)
}

type ServiceImpl struct {
	tx database.TxManager
	punch.PunchRepository
	employee.EmployeeRepository
}

func NewAfdService(tx database.TxManager, punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository) Service {
	return &ServiceImpl{
		tx:                 tx,
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Import implements Service. Malformed lines and unmatched identifiers never
// fail the batch; they only show up in the processed-vs-matched counts.
// Re-importing the same file duplicates punches: deduplication is the
// caller's concern (by employee + timestamp + raw line).
func (s *ServiceImpl) Import(ctx context.Context, filename string, content []byte) (ImportResult, error) {
	parsed, err := ParseFile(content)
	if err != nil {
		return ImportResult{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx, true)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	var result ImportResult
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		batch, err := s.PunchRepository.CreateImportBatch(txCtx, filename)
		if err != nil {
			return fmt.Errorf("failed to create import batch: %w", err)
		}

		inserts, matched := MatchPunches(parsed, employees, &batch.ID)

		if err := s.PunchRepository.CreateBatch(txCtx, inserts); err != nil {
			return fmt.Errorf("failed to insert punches: %w", err)
		}

		if err := s.PunchRepository.SetImportRecordCount(txCtx, batch.ID, matched); err != nil {
			return fmt.Errorf("failed to update import record count: %w", err)
		}

		result = ImportResult{
			ImportID:     batch.ID,
			Filename:     filename,
			TotalRecords: len(parsed),
			MatchedCount: matched,
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	return result, nil
}

// ListImports implements Service.
func (s *ServiceImpl) ListImports(ctx context.Context) ([]punch.ImportBatchResponse, error) {
	batches, err := s.PunchRepository.ListImportBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}

	responses := make([]punch.ImportBatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, punch.ImportBatchResponse{
			ID:          b.ID,
			Filename:    b.Filename,
			RecordCount: b.RecordCount,
			UploadedAt:  b.UploadedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses, nil
}
