package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/baharkarakas/accounts-backend/internal/api/httpx"
	"github.com/baharkarakas/accounts-backend/internal/middleware"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads r's body into v. On failure it has already written the 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "Invalid JSON body", nil)
		return false
	}
	return true
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	httpx.WriteServiceError(w, r, middleware.RequestIDFrom(r.Context()), err)
}

type message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
