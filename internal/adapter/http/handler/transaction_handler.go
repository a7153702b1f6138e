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

// TransactionService defines the write behavior needed by TransactionHandler.
type TransactionService interface {
	RecordTransaction(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error)
}

// HistoryService defines the read behavior needed by TransactionHandler.
type HistoryService interface {
	ListHistory(ctx context.Context, input usecase.ListHistoryInput) (*usecase.HistoryPage, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledgerUC TransactionService
	queryUC  HistoryService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerUC TransactionService, queryUC HistoryService) *TransactionHandler {
	return &TransactionHandler{
		ledgerUC: ledgerUC,
		queryUC:  queryUC,
	}
}

// Create records a new transaction and adjusts the source balance.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.RecordTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record transaction", errorDetails(status, err))

		return
	}

	metrics.TransactionsRecorded.WithLabelValues(string(txn.Direction)).Inc()

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// History lists transactions newest first, one page at a time.
func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) {
	page, err := h.queryUC.ListHistory(r.Context(), usecase.ListHistoryInput{
		Page:     parseIntQuery(r, "page", 0),
		PageSize: parseIntQuery(r, "page_size", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list history", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryFromUseCase(page))
}
