package api

import (
	"context"

	"github.com/dailyink/blog-backend/models"
)

type keyType string

const (
	userKey keyType = "user"
)

// ctxWithUser stashes the resolved user on the request context. Identity is
// always carried this way; there is no process-wide "current user".
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromCtx returns the authenticated user for this request, or nil for
// an anonymous request.
func UserFromCtx(ctx context.Context) *models.User {
	if v := ctx.Value(userKey); v != nil {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
