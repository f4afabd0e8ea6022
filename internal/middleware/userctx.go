package middleware

import (
	"context"

	"github.com/baharkarakas/accounts-backend/internal/models"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the zero Identity when the gate resolved nothing.
func IdentityFrom(ctx context.Context) models.Identity {
	if v, ok := ctx.Value(identityKey{}).(models.Identity); ok {
		return v
	}
	return models.Identity{}
}
