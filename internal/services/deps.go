package services

import (
	"context"
	"strings"

	"github.com/baharkarakas/accounts-backend/internal/models"
)

// CredentialHasher hashes and verifies secrets; see auth.Hasher.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// AuditRecorder appends security events without failing the caller; see audit.Logger.
type AuditRecorder interface {
	Record(ctx context.Context, accountID string, detail models.AuditDetail, success bool, client models.ClientInfo)
}

// nullable maps "" to nil so empty optional fields are stored as NULL.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
