package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/adapter/http/dto"
	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

type transactionServiceStub struct {
	recordFn func(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error)
}

func (s *transactionServiceStub) RecordTransaction(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error) {
	return s.recordFn(ctx, input)
}

type historyServiceStub struct {
	listFn func(ctx context.Context, input usecase.ListHistoryInput) (*usecase.HistoryPage, error)
}

func (s *historyServiceStub) ListHistory(ctx context.Context, input usecase.ListHistoryInput) (*usecase.HistoryPage, error) {
	return s.listFn(ctx, input)
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	sourceID := "src-1"
	txn := &domain.Transaction{
		ID:        "txn-1",
		Amount:    decimal.NewFromInt(50),
		Direction: domain.DirectionExpense,
		Category:  "Food",
		SourceID:  &sourceID,
	}

	var captured usecase.RecordTransactionInput
	handler := NewTransactionHandler(&transactionServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error) {
			captured = input
			return txn, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordTransactionRequest{
		Amount:    decimal.NewFromInt(50),
		Direction: "EXPENSE",
		Category:  "Food",
		SourceID:  "src-1",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.SourceID != "src-1" || captured.Direction != domain.DirectionExpense {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "txn-1" {
		t.Fatalf("expected transaction ID txn-1, got %s", resp.ID)
	}
}

func TestTransactionHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error) {
			t.Fatal("RecordTransaction should not be called for invalid payload")
			return nil, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_UnknownSource(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrSourceNotFound
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordTransactionRequest{
		Amount:    decimal.NewFromInt(50),
		Direction: "EXPENSE",
		SourceID:  "missing",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_InvalidAmount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordTransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrInvalidAmount
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordTransactionRequest{
		Amount:    decimal.NewFromInt(-5),
		Direction: "EXPENSE",
		SourceID:  "src-1",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_History_Success(t *testing.T) {
	sourceID := "src-1"
	page := &usecase.HistoryPage{
		Entries: []*domain.HistoryEntry{
			{
				Transaction: domain.Transaction{
					ID:        "txn-1",
					Amount:    decimal.NewFromInt(50),
					Direction: domain.DirectionExpense,
					Category:  "Food",
					SourceID:  &sourceID,
				},
				SourceName: "Cash in Wallet",
			},
		},
		Pagination: usecase.Pagination{
			Page:         2,
			PageSize:     10,
			TotalRecords: 25,
			TotalPages:   3,
		},
	}

	var captured usecase.ListHistoryInput
	handler := NewTransactionHandler(nil, &historyServiceStub{
		listFn: func(ctx context.Context, input usecase.ListHistoryInput) (*usecase.HistoryPage, error) {
			captured = input
			return page, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/history?page=2&page_size=10", nil)
	rec := httptest.NewRecorder()

	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Page != 2 || captured.PageSize != 10 {
		t.Fatalf("expected pagination input to match query, got %+v", captured)
	}

	var resp dto.HistoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Data) != 1 || resp.Data[0].SourceName != "Cash in Wallet" {
		t.Fatalf("unexpected history data: %+v", resp.Data)
	}

	if resp.Pagination.TotalPages != 3 || resp.Pagination.TotalRecords != 25 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
}
