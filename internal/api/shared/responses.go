package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nugomed/nugomed-api/internal/redact"
)

// ErrorResponse is the standard error body. The Detail field carries a
// short machine-readable message; internal error text never appears here.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Code    int    `json:"-"` // Not serialized, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// ListResponse is the envelope used by collection endpoints, carried over
// from the original service's response shape.
type ListResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Result  int    `json:"result"`
	Data    any    `json:"data"`
}

// NewListResponse builds the success envelope for a page of rows.
func NewListResponse(result int, data any) ListResponse {
	return ListResponse{
		Status:  "Ok",
		Code:    "200",
		Message: "Success fetch all data",
		Result:  result,
		Data:    data,
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message, echoing the request's trace ID when present.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"detail", detail,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Detail:  detail,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a sanitized JSON error response and logs the
// underlying error server-side. 5xx responses log at ERROR level, everything
// else at DEBUG; the raw error string is redacted before logging and never
// sent to the client.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	detail string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("detail", detail),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Detail:  detail,
		Code:    status,
		TraceID: traceID,
	})
}
