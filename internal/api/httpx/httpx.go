package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/accounts-backend/internal/services"
)

type APIError struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details map[string]string) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

var statusByKind = map[services.Kind]int{
	services.KindUnauthenticated:   http.StatusUnauthorized,
	services.KindInvalidInput:      http.StatusBadRequest,
	services.KindConflict:          http.StatusConflict,
	services.KindNotFound:          http.StatusNotFound,
	services.KindInvalidCredential: http.StatusBadRequest,
}

// WriteServiceError renders a service failure. Anything that is not a *services.Error,
// or is of KindInternal, is logged and reported with a generic message.
func WriteServiceError(w http.ResponseWriter, r *http.Request, requestID string, err error) {
	var se *services.Error
	if errors.As(err, &se) {
		if status, ok := statusByKind[se.Kind]; ok {
			WriteError(w, status, string(se.Kind), se.Message, se.Fields)
			return
		}
	}
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method, "path", r.URL.Path, "request_id", requestID, "err", err)
	WriteError(w, http.StatusInternalServerError, string(services.KindInternal), services.ErrInternal.Message, nil)
}
