package handlers

import (
	"context"
	"net/http"

	"github.com/baharkarakas/accounts-backend/internal/api/httpx"
	"github.com/baharkarakas/accounts-backend/internal/middleware"
	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/baharkarakas/accounts-backend/internal/services"
)

type Registrar interface {
	Register(ctx context.Context, in services.RegisterInput, client models.ClientInfo) (models.AccountSummary, error)
}

type AccountHandler struct {
	accounts Registrar
}

func NewAccountHandler(r Registrar) *AccountHandler {
	return &AccountHandler{accounts: r}
}

type registerResp struct {
	message
	User models.AccountSummary `json:"user"`
}

// Register handles POST /register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}
	acc, err := h.accounts.Register(r.Context(), in, middleware.ClientInfo(r))
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, registerResp{
		message: message{Success: true, Message: "Account created successfully"},
		User:    acc,
	})
}
