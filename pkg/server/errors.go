package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/clusterlens/clusterlens/pkg/serializer"
)

// Error codes returned by the API.
const (
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
)

// ErrorResponse is the JSON body returned for all API errors.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Retryable bool   `json:"retryable"`
}

type contextKey string

const contextKeyRequestID contextKey = "requestID"

// requestIDFromContext returns the request ID set by the requestID
// middleware, generating one if the middleware did not run.
func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// writeError renders an ErrorResponse with the given status code.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message, details string, retryable bool) {
	resp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestIDFromContext(r.Context()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Retryable: retryable,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "code", code, "status", status, "path", r.URL.Path, "requestId", resp.RequestID, "details", details)
	}
	serializer.RespondJSON(w, status, resp)
}
