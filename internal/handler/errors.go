package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// Machine-readable error codes carried in ErrorDetail.Code.
const (
	codeNotFound        = "not_found"
	codeValidation      = "validation_error"
	codeConflict        = "conflict"
	codeBadRequest      = "bad_request"
	codePayloadTooLarge = "payload_too_large"
	codeInternal        = "internal_error"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError maps a service error onto a status code.
// notFound is the message used for domain.ErrNotFound, because the handler is
// the layer that knows what was being looked up (e.g. "booking not found").
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFound)
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, unwrapMessage(err, domain.ErrConflict, "resource conflicts with an existing record"))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, unwrapMessage(err, domain.ErrValidation, "request violates a data constraint"))
	default:
		s.log.ErrorContext(r.Context(), "unhandled service error", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// requestError rejects a request before it reaches the service layer
// (e.g. missing or malformed body).
func requestError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, codePayloadTooLarge, "request body too large")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, unwrapMessage(err, domain.ErrValidation, err.Error()))
	default:
		writeError(w, http.StatusUnprocessableEntity, codeValidation, err.Error())
	}
}

// paramError rejects a malformed path or query parameter.
func paramError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, codeBadRequest, unwrapMessage(err, domain.ErrValidation, err.Error()))
		return
	}
	writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
}

// unwrapMessage extracts the human-readable part that follows a wrapped sentinel.
// e.g. "service.BookingService.Create: validation error: guest_name is required"
// → "guest_name is required". Errors joined with driver errors carry no
// readable message and get fallback.
func unwrapMessage(err, sentinel error, fallback string) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && len(msg) > i+len(marker) {
		return msg[i+len(marker):]
	}
	return fallback
}
