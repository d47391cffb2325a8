package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/adjustment"
	"github.com/pontocerto/ponto-backend-go/internal/domain/auth"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
	adjustmentService "github.com/pontocerto/ponto-backend-go/internal/service/adjustment"
)

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandlerImpl struct {
	adjustmentService adjustmentService.Service
}

func NewAdjustmentHandler(service adjustmentService.Service) AdjustmentHandler {
	return &AdjustmentHandlerImpl{adjustmentService: service}
}

// Create implements AdjustmentHandler. The request always belongs to the
// authenticated employee.
func (h *AdjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EmployeeID = employeeID

	created, err := h.adjustmentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment request submitted", created)
}

// Process implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var processReq adjustment.ProcessAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&processReq); err != nil {
		slog.Error("Process adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	processReq.ID = chi.URLParam(r, "id")

	result, err := h.adjustmentService.Process(r.Context(), processReq, reviewerID)
	if err != nil {
		slog.Error("Process adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Adjustment processed",
		"adjustment_id", processReq.ID,
		"decision", processReq.Decision,
		"synthesized", len(result.SynthesizedPunches),
	)
	response.Success(w, result)
}

// ListMine implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	adjustments, err := h.adjustmentService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListMine adjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, adjustments)
}

// ListPending implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	adjustments, err := h.adjustmentService.ListPending(r.Context())
	if err != nil {
		slog.Error("ListPending adjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, adjustments)
}
