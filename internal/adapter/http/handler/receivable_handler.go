package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/finlight/pocketledger/internal/adapter/http/dto"
	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/infrastructure/metrics"
	"github.com/finlight/pocketledger/internal/usecase"
)

// ReceivableService defines the write behavior needed by ReceivableHandler.
type ReceivableService interface {
	LendMoney(ctx context.Context, input usecase.LendMoneyInput) (*domain.Receivable, error)
	SettleDebt(ctx context.Context, input usecase.SettleDebtInput) (*domain.Receivable, error)
}

// ReceivableQueryService defines the read behavior needed by ReceivableHandler.
type ReceivableQueryService interface {
	ListOpenReceivables(ctx context.Context) ([]*domain.Receivable, error)
}

// ReceivableHandler handles receivable-related HTTP requests.
type ReceivableHandler struct {
	ledgerUC ReceivableService
	queryUC  ReceivableQueryService
}

// NewReceivableHandler creates a new ReceivableHandler.
func NewReceivableHandler(ledgerUC ReceivableService, queryUC ReceivableQueryService) *ReceivableHandler {
	return &ReceivableHandler{
		ledgerUC: ledgerUC,
		queryUC:  queryUC,
	}
}

// List returns open receivables, newest first.
func (h *ReceivableHandler) List(w http.ResponseWriter, r *http.Request) {
	receivables, err := h.queryUC.ListOpenReceivables(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list receivables", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceivablesFromDomain(receivables))
}

// Lend records money lent out: an open receivable plus a debit on the source.
func (h *ReceivableHandler) Lend(w http.ResponseWriter, r *http.Request) {
	var req dto.LendMoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receivable, err := h.ledgerUC.LendMoney(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to lend money", errorDetails(status, err))

		return
	}

	metrics.MoneyLent.Inc()

	writeJSON(w, http.StatusCreated, dto.ReceivableFromDomain(receivable))
}

// Settle marks a receivable repaid and credits the source.
func (h *ReceivableHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receivable, err := h.ledgerUC.SettleDebt(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to settle debt", errorDetails(status, err))

		return
	}

	metrics.DebtsSettled.Inc()

	writeJSON(w, http.StatusOK, dto.ReceivableFromDomain(receivable))
}
