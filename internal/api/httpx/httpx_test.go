package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/accounts-backend/internal/services"
)

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated", "Unauthorized"},
		{"conflict", services.ErrConflict, http.StatusConflict, "conflict", "Account already exists"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "not_found", "User not found"},
		{"wrong credential", services.ErrInvalidCredential, http.StatusBadRequest, "invalid_credential", "Current password is incorrect"},
		{"wrapped", fmt.Errorf("outer: %w", services.ErrConflict), http.StatusConflict, "conflict", "Account already exists"},
		{"foreign error", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal", "Internal server error"},
		{"internal kind", &services.Error{Kind: services.KindInternal, Message: "db exploded"}, http.StatusInternalServerError, "internal", "Internal server error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteServiceError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), "rid", c.err)

			require.Equal(t, c.status, rec.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, c.code, body.Code)
			assert.Equal(t, c.message, body.Error)
			assert.Empty(t, body.Details)
		})
	}
}

func TestWriteServiceError_Fields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &services.Error{Kind: services.KindInvalidInput, Message: "Invalid input", Fields: map[string]string{"email": "Invalid email"}}

	WriteServiceError(rec, httptest.NewRequest(http.MethodPost, "/register", nil), "", err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid input","code":"invalid_input","details":{"email":"Invalid email"}}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}
