package api

import (
	"context"

	"github.com/avalero/blog-backend/models"
)

type contextKey string

const actorContextKey contextKey = "actor"

func ctxWithActor(ctx context.Context, actor *models.User) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// actorFromCtx returns the authenticated user on the request context, or nil
// for anonymous requests.
func actorFromCtx(ctx context.Context) *models.User {
	actor, ok := ctx.Value(actorContextKey).(*models.User)
	if !ok {
		return nil
	}
	return actor
}
