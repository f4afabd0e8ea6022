package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type AuditAction string

const (
	ActionAccountRegistered    AuditAction = "account_registered"
	ActionPasswordChanged      AuditAction = "password_changed"
	ActionPasswordChangeFailed AuditAction = "password_change_failed"
	ActionProfileUpdated       AuditAction = "PROFILE_UPDATED"
	ActionSettingsUpdated      AuditAction = "settings_updated"
)

// AuditEvent is an append-only record of a security-relevant action.
type AuditEvent struct {
	ID        string      `json:"id"`
	AccountID string      `json:"-"`
	Action    AuditAction `json:"action"`
	Details   AuditDetail `json:"details"`
	Success   bool        `json:"success"`
	IPAddress string      `json:"ipAddress"`
	UserAgent string      `json:"userAgent"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AuditDetail is the closed set of per-action detail payloads.
type AuditDetail interface {
	Action() AuditAction
	sealed()
}

type RegisteredDetail struct {
	Email string `json:"email"`
}

type PasswordChangedDetail struct {
	Timestamp time.Time `json:"timestamp"`
}

type PasswordChangeFailedDetail struct {
	Reason string `json:"reason"`
}

const ReasonInvalidCurrentPassword = "invalid_current_password"

type ProfileSection string

const (
	SectionBasic        ProfileSection = "basic"
	SectionProfessional ProfileSection = "professional"
)

type ProfileUpdatedDetail struct {
	Section ProfileSection `json:"section"`
}

type SettingsUpdatedDetail struct {
	Changes   []string  `json:"changes"`
	Timestamp time.Time `json:"timestamp"`
}

func (RegisteredDetail) Action() AuditAction           { return ActionAccountRegistered }
func (PasswordChangedDetail) Action() AuditAction      { return ActionPasswordChanged }
func (PasswordChangeFailedDetail) Action() AuditAction { return ActionPasswordChangeFailed }
func (ProfileUpdatedDetail) Action() AuditAction       { return ActionProfileUpdated }
func (SettingsUpdatedDetail) Action() AuditAction      { return ActionSettingsUpdated }

func (RegisteredDetail) sealed()           {}
func (PasswordChangedDetail) sealed()      {}
func (PasswordChangeFailedDetail) sealed() {}
func (ProfileUpdatedDetail) sealed()       {}
func (SettingsUpdatedDetail) sealed()      {}

// DecodeAuditDetail turns a stored JSON payload back into the typed detail for action.
func DecodeAuditDetail(action AuditAction, raw []byte) (AuditDetail, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch action {
	case ActionAccountRegistered:
		return decodeDetail[RegisteredDetail](raw)
	case ActionPasswordChanged:
		return decodeDetail[PasswordChangedDetail](raw)
	case ActionPasswordChangeFailed:
		return decodeDetail[PasswordChangeFailedDetail](raw)
	case ActionProfileUpdated:
		return decodeDetail[ProfileUpdatedDetail](raw)
	case ActionSettingsUpdated:
		return decodeDetail[SettingsUpdatedDetail](raw)
	}
	return nil, fmt.Errorf("unknown audit action %q", action)
}

func decodeDetail[T AuditDetail](raw []byte) (AuditDetail, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
