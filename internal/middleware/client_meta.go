package middleware

import (
	"net/http"
	"strings"

	"github.com/baharkarakas/accounts-backend/internal/models"
)

// ClientInfo extracts the originating address and user agent of r.
// X-Forwarded-For wins (first hop), then X-Real-IP, then "unknown".
func ClientInfo(r *http.Request) models.ClientInfo {
	return models.ClientInfo{
		Address: clientAddress(r),
		Agent:   orUnknown(strings.TrimSpace(r.Header.Get("User-Agent"))),
	}
}

func clientAddress(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return models.UnknownClient
}

func orUnknown(s string) string {
	if s == "" {
		return models.UnknownClient
	}
	return s
}
