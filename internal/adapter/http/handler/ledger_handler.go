package handler

import (
	"context"
	"net/http"

	"github.com/finlight/pocketledger/internal/adapter/http/dto"
	"github.com/finlight/pocketledger/internal/usecase"
)

// ReconciliationService defines the behavior needed by LedgerHandler.
type ReconciliationService interface {
	CheckAll(ctx context.Context) (*usecase.ReconciliationReport, error)
}

// LedgerHandler handles ledger-wide HTTP requests.
type LedgerHandler struct {
	reconciliationUC ReconciliationService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(reconciliationUC ReconciliationService) *LedgerHandler {
	return &LedgerHandler{reconciliationUC: reconciliationUC}
}

// Reconcile checks every source balance against its transaction log.
func (h *LedgerHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciliationUC.CheckAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reconcile", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromUseCase(report))
}
