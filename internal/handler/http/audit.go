package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/audit"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditHandler(auditRepo audit.AuditRepository) AuditHandler {
	return &AuditHandlerImpl{auditRepo: auditRepo}
}

// List implements AuditHandler.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.auditRepo.List(r.Context())
	if err != nil {
		slog.Error("List audit entries error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapEntriesToResponses(entries))
}

// ListByEmployee implements AuditHandler.
func (h *AuditHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	entries, err := h.auditRepo.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListByEmployee audit entries error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapEntriesToResponses(entries))
}

func mapEntriesToResponses(entries []audit.Entry) []audit.EntryResponse {
	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, audit.EntryResponse{
			ID:         entry.ID,
			ActorID:    entry.ActorID,
			EmployeeID: entry.EmployeeID,
			Action:     entry.Action,
			Before:     entry.Before,
			After:      entry.After,
			CreatedAt:  entry.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses
}
