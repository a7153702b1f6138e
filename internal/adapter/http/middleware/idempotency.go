package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	idempotencyTTL       = 24 * time.Hour
)

// IdempotencyStore defines the storage behavior the middleware needs.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// IdempotencyMiddleware replays stored responses for retried writes carrying
// the same Idempotency-Key, so a retry cannot record a transaction twice.
type IdempotencyMiddleware struct {
	store IdempotencyStore
}

// storedResponse is the envelope persisted per idempotency key. The status
// code is kept so a replayed 201 does not degrade to a 200.
type storedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(store IdempotencyStore) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{store: store}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		exists, cachedResponse, err := m.store.CheckAndSet(r.Context(), key, idempotencyTTL)
		if err != nil {
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if exists && cachedResponse != nil && string(cachedResponse) != "processing" {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Idempotency-Replay", "true")

			var stored storedResponse
			if err := json.Unmarshal(cachedResponse, &stored); err != nil || stored.Status == 0 {
				w.Write(cachedResponse)
				return
			}

			w.WriteHeader(stored.Status)
			w.Write(stored.Body)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		// Only successful responses are worth replaying
		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			envelope, err := json.Marshal(storedResponse{
				Status: recorder.statusCode,
				Body:   recorder.body.Bytes(),
			})
			if err != nil {
				return
			}
			m.store.Update(r.Context(), key, envelope, idempotencyTTL)
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
