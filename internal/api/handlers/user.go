package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/baharkarakas/accounts-backend/internal/api/httpx"
	"github.com/baharkarakas/accounts-backend/internal/middleware"
	"github.com/baharkarakas/accounts-backend/internal/models"
	"github.com/baharkarakas/accounts-backend/internal/services"
)

// UserHandler serves the /user routes. Every call hands the gate's identity to the service.
type UserHandler struct {
	passwords *services.PasswordService
	profiles  *services.ProfileService
	settings  *services.SettingsService
	logs      *services.SecurityLogService
}

func NewUserHandler(p *services.PasswordService, pr *services.ProfileService, s *services.SettingsService, l *services.SecurityLogService) *UserHandler {
	return &UserHandler{passwords: p, profiles: pr, settings: s, logs: l}
}

// ChangePassword handles PUT /user/password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in services.ChangePasswordInput
	if !decodeJSON(w, r, &in) {
		return
	}
	err := h.passwords.ChangePassword(r.Context(), middleware.IdentityFrom(r.Context()), in, middleware.ClientInfo(r))
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, message{Success: true, Message: "Password updated successfully"})
}

var profileMessages = map[models.ProfileSection]string{
	models.SectionBasic:        "Basic information updated successfully",
	models.SectionProfessional: "Professional information updated successfully",
}

type profileResp struct {
	message
	User *models.Account `json:"user,omitempty"`
}

// UpdateProfile handles PUT /user/profile. The "type" tag selects the variant.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if !decodeJSON(w, r, &raw) {
		return
	}
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "Invalid JSON body", nil)
		return
	}

	var u services.ProfileUpdate
	switch models.ProfileSection(tag.Type) {
	case models.SectionBasic:
		var b services.BasicInfoUpdate
		if err := json.Unmarshal(raw, &b); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "Invalid JSON body", nil)
			return
		}
		u = b
	case models.SectionProfessional:
		var p services.ProfessionalInfoUpdate
		if err := json.Unmarshal(raw, &p); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "Invalid JSON body", nil)
			return
		}
		u = p
	}

	acc, err := h.profiles.Update(r.Context(), middleware.IdentityFrom(r.Context()), u, middleware.ClientInfo(r))
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileResp{
		message: message{Success: true, Message: profileMessages[u.Section()]},
		User:    acc,
	})
}

type settingsResp struct {
	Success bool            `json:"success"`
	Data    models.Settings `json:"data"`
}

// GetSettings handles GET /user/settings.
func (h *UserHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, settingsResp{Success: true, Data: s})
}

// UpdateSettings handles PUT /user/settings.
func (h *UserHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in services.SettingsInput
	if !decodeJSON(w, r, &in) {
		return
	}
	err := h.settings.Update(r.Context(), middleware.IdentityFrom(r.Context()), in, middleware.ClientInfo(r))
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, message{Success: true, Message: "Settings updated successfully"})
}

type securityLogsResp struct {
	Success    bool                `json:"success"`
	Data       []models.AuditEvent `json:"data"`
	Pagination services.Pagination `json:"pagination"`
}

// SecurityLogs handles GET /user/security-logs?limit=&offset=.
func (h *UserHandler) SecurityLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.logs.List(r.Context(), middleware.IdentityFrom(r.Context()), services.PageRequest{
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, securityLogsResp{Success: true, Data: page.Events, Pagination: page.Pagination})
}

// queryInt returns 0 for absent or unparsable values; the service applies defaults.
func queryInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
