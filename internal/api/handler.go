package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/terracore-io/reserve-ledger/internal/types"
)

// Result pairs a JSON-serializable body with the status to answer with
type Result struct {
	Data       any
	StatusCode int
}

func NewResult(data any) *Result {
	return &Result{Data: data, StatusCode: http.StatusOK}
}

func NewResultWithStatus(data any, statusCode int) *Result {
	return &Result{Data: data, StatusCode: statusCode}
}

type handlerFunc func(*http.Request) (*Result, *types.Error)

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// registerHandler adapts a handlerFunc to net/http: encode the result or
// translate the service error into the wire error shape. Internal errors
// are logged with their cause but answered with a generic message.
func registerHandler(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, serviceErr := h(r)
		if serviceErr != nil {
			writeError(w, r, serviceErr)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(result.StatusCode)
		if result.Data == nil {
			return
		}
		if err := json.NewEncoder(w).Encode(result.Data); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response body")
		}
	}
}

func writeError(w http.ResponseWriter, r *http.Request, serviceErr *types.Error) {
	message := serviceErr.Error()
	if serviceErr.StatusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().
			Err(serviceErr.Err).
			Str("path", r.URL.Path).
			Msg("request failed")
		message = "internal service error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(serviceErr.StatusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		ErrorCode: serviceErr.ErrorCode.String(),
		Message:   message,
	}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to encode error body")
	}
}

// parseRequestPayload decodes the JSON body into payload, rejecting
// malformed or unparseable bodies uniformly
func parseRequestPayload(r *http.Request, payload any) *types.Error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return types.NewValidationError("invalid request body")
	}
	return nil
}
