package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
	companyService "github.com/pontocerto/ponto-backend-go/internal/service/company"
)

type CompanyHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService companyService.Service
}

func NewCompanyHandler(service companyService.Service) CompanyHandler {
	return &CompanyHandlerImpl{companyService: service}
}

// GetSettings implements CompanyHandler.
func (h *CompanyHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.companyService.GetSettings(r.Context())
	if err != nil {
		slog.Error("GetSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var updateReq company.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.companyService.UpdateSettings(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, saved)
}

// CreateHoliday implements CompanyHandler.
func (h *CompanyHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var createReq company.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.companyService.CreateHoliday(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// ListHolidays implements CompanyHandler.
func (h *CompanyHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.companyService.ListHolidays(r.Context())
	if err != nil {
		slog.Error("ListHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeleteHoliday implements CompanyHandler.
func (h *CompanyHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.companyService.DeleteHoliday(r.Context(), id); err != nil {
		slog.Error("DeleteHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
