package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/finlight/pocketledger/internal/adapter/http/dto"
)

// Recovery turns a handler panic into a 500 response. The panic value and
// stack are logged; the client sees the same error envelope as any other
// failure.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", chimiddleware.GetReqID(r.Context())).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "internal server error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
