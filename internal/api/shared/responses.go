package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/zaishu/zaishu-api/internal/platform/logger"
	"github.com/zaishu/zaishu-api/internal/redact"
)

// HandlerFunc is an API handler: it returns the success payload or an error,
// and never writes the response itself.
type HandlerFunc func(r *http.Request) (any, error)

// Handle adapts h to net/http, writing its result as an Envelope.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := h(r)
		if err != nil {
			RespondWithError(w, r, err)
			return
		}
		RespondWithJSON(w, r, http.StatusOK, Success(data))
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error(
			"failed to encode JSON response", "error", redact.Error(err))
	}
}

// RespondWithError writes err as an error Envelope and logs it.
//
// Business errors are written with HTTP 200 and logged at DEBUG; upstream
// failures are logged at WARN. Anything untyped is an internal failure: its cause
// is logged redacted at ERROR and the client gets a generic message with HTTP 500.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := AsError(err)
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.String("kind", apiErr.Kind.String()),
		slog.Int("code", apiErr.Code),
	}
	if apiErr.Err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(apiErr.Err)),
			slog.String("error_type", fmt.Sprintf("%T", apiErr.Err)))
	}

	level := slog.LevelDebug
	switch apiErr.Kind {
	case KindInternal:
		level = slog.LevelError
	case KindUpstream:
		level = slog.LevelWarn
	}
	log := logger.FromContext(r.Context())
	log.LogAttrs(r.Context(), level, "API error response", logAttrs...)

	RespondWithJSON(w, r, apiErr.HTTPStatus(), apiErr.Envelope())
}
