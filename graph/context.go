package graph

import (
	"context"

	"github.com/avalero/blog-backend/models"
)

type contextKey string

const actorContextKey contextKey = "actor"

func ctxWithActor(ctx context.Context, actor *models.User) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func actorFromCtx(ctx context.Context) *models.User {
	actor, ok := ctx.Value(actorContextKey).(*models.User)
	if !ok {
		return nil
	}
	return actor
}
