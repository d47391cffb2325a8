package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/auth"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
	punchService "github.com/pontocerto/ponto-backend-go/internal/service/punch"
)

type PunchHandler interface {
	CreateManual(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	SoftDelete(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punchService.Service
}

func NewPunchHandler(service punchService.Service) PunchHandler {
	return &PunchHandlerImpl{punchService: service}
}

// CreateManual implements PunchHandler. Admin enters a punch on behalf of any
// employee.
func (h *PunchHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq punch.ManualPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateManual decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.punchService.CreateManual(r.Context(), createReq, punch.SourceManual, actorID)
	if err != nil {
		slog.Error("CreateManual service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch created", created)
}

// ClockIn implements PunchHandler. The authenticated employee records their
// own punch at the current time.
func (h *PunchHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	clockInReq := punch.ManualPunchRequest{
		EmployeeID: employeeID,
		Timestamp:  time.Now().Format(time.RFC3339),
	}

	created, err := h.punchService.CreateManual(r.Context(), clockInReq, punch.SourceWeb, employeeID)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch registered", created)
}

// Edit implements PunchHandler.
func (h *PunchHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var editReq punch.EditPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&editReq); err != nil {
		slog.Error("Edit punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	editReq.ID = chi.URLParam(r, "id")

	updated, err := h.punchService.Edit(r.Context(), editReq, actorID)
	if err != nil {
		slog.Error("Edit punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// SoftDelete implements PunchHandler.
func (h *PunchHandlerImpl) SoftDelete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var deleteReq punch.SoftDeletePunchRequest
	if err := json.NewDecoder(r.Body).Decode(&deleteReq); err != nil {
		slog.Error("SoftDelete punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	deleteReq.ID = chi.URLParam(r, "id")

	if err := h.punchService.SoftDelete(r.Context(), deleteReq, actorID); err != nil {
		slog.Error("SoftDelete punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}

// ListByEmployee implements PunchHandler.
func (h *PunchHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	monthKey := r.URL.Query().Get("month")

	punches, err := h.punchService.ListByEmployeePeriod(r.Context(), employeeID, monthKey)
	if err != nil {
		slog.Error("ListByEmployee punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}
