package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/auth"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
	"github.com/pontocerto/ponto-backend-go/internal/service/mirror"
)

type TimesheetHandler interface {
	GetMonthlyMirror(w http.ResponseWriter, r *http.Request)
	GetMyMonthlyMirror(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	mirrorService mirror.Service
}

func NewTimesheetHandler(mirrorService mirror.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{mirrorService: mirrorService}
}

// GetMonthlyMirror implements TimesheetHandler. Admin view of any employee's
// espelho de ponto.
func (h *TimesheetHandlerImpl) GetMonthlyMirror(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	monthKey := r.URL.Query().Get("month")

	mirrorResp, err := h.mirrorService.ComputeMonthlyMirror(r.Context(), employeeID, monthKey)
	if err != nil {
		slog.Error("GetMonthlyMirror service error", "error", err, "employee_id", employeeID, "month", monthKey)
		response.HandleError(w, err)
		return
	}

	response.Success(w, mirrorResp)
}

// GetMyMonthlyMirror implements TimesheetHandler. Employees read their own
// mirror only.
func (h *TimesheetHandlerImpl) GetMyMonthlyMirror(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	monthKey := r.URL.Query().Get("month")

	mirrorResp, err := h.mirrorService.ComputeMonthlyMirror(r.Context(), employeeID, monthKey)
	if err != nil {
		slog.Error("GetMyMonthlyMirror service error", "error", err, "month", monthKey)
		response.HandleError(w, err)
		return
	}

	response.Success(w, mirrorResp)
}
