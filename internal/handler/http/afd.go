package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
	afdService "github.com/pontocerto/ponto-backend-go/internal/service/afd"
)

type AfdHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListImports(w http.ResponseWriter, r *http.Request)
}

type AfdHandlerImpl struct {
	afdService afdService.Service
}

func NewAfdHandler(service afdService.Service) AfdHandler {
	return &AfdHandlerImpl{afdService: service}
}

// Upload implements AfdHandler. Expects a multipart form with the AFD export
// under the "file" field.
func (h *AfdHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		slog.Error("AFD file missing from form", "error", err)
		response.BadRequest(w, "AFD file is required under the 'file' field", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read AFD file", "error", err)
		response.InternalServerError(w, "Failed to read uploaded file")
		return
	}

	result, err := h.afdService.Import(r.Context(), fileHeader.Filename, content)
	if err != nil {
		slog.Error("AFD import service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("AFD import processed",
		"filename", result.Filename,
		"total", result.TotalRecords,
		"matched", result.MatchedCount,
	)
	response.Created(w, "AFD file imported", result)
}

// ListImports implements AfdHandler.
func (h *AfdHandlerImpl) ListImports(w http.ResponseWriter, r *http.Request) {
	batches, err := h.afdService.ListImports(r.Context())
	if err != nil {
		slog.Error("ListImports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, batches)
}
