package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finlight/pocketledger/internal/adapter/http/dto"
	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

// SourceService defines the write behavior needed by SourceHandler.
type SourceService interface {
	CreateSource(ctx context.Context, input usecase.CreateSourceInput) (*domain.Source, error)
}

// SourceQueryService defines the read behavior needed by SourceHandler.
type SourceQueryService interface {
	ListSources(ctx context.Context) (*usecase.SourcesSummary, error)
}

// SourceHandler handles source-related HTTP requests.
type SourceHandler struct {
	sourceUC SourceService
	queryUC  SourceQueryService
}

// NewSourceHandler creates a new SourceHandler.
func NewSourceHandler(sourceUC SourceService, queryUC SourceQueryService) *SourceHandler {
	return &SourceHandler{
		sourceUC: sourceUC,
		queryUC:  queryUC,
	}
}

// List returns all sources and their combined balance.
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	summary, err := h.queryUC.ListSources(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sources", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.ListSourcesResponse{
		Sources: dto.SourcesFromDomain(summary.Sources),
		Total:   summary.Total,
	})
}

// Create creates a new source.
func (h *SourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	source, err := h.sourceUC.CreateSource(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create source", errorDetails(status, err))

		return
	}

	writeJSON(w, http.StatusCreated, dto.SourceFromDomain(source))
}
