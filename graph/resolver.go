package graph

import (
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/services"
)

// Resolver bundles the service layer for the GraphQL schema. Every field
// resolver delegates to the same services the REST handlers use.
type Resolver struct {
	accounts *services.AccountService
	blogs    *services.BlogService
	posts    *services.PostService
	tags     *services.TagService
}

func NewResolver(db database.Database, authService *auth.Service) *Resolver {
	return &Resolver{
		accounts: services.NewAccountService(db, authService),
		blogs:    services.NewBlogService(db),
		posts:    services.NewPostService(db),
		tags:     services.NewTagService(db),
	}
}

// idArg parses an ID argument, which reaches us as a string (ID scalar) or
// a number depending on the client.
func idArg(p graphql.ResolveParams, name string) (uint, error) {
	raw, ok := p.Args[name]
	if !ok {
		return 0, asResolverError(errs.NewBadRequestError("Missing " + name))
	}

	switch v := raw.(type) {
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, asResolverError(errs.NewBadRequestError("Invalid " + name))
		}
		return uint(id), nil
	case int:
		if v < 0 {
			return 0, asResolverError(errs.NewBadRequestError("Invalid " + name))
		}
		return uint(v), nil
	default:
		return 0, asResolverError(errs.NewBadRequestError("Invalid " + name))
	}
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

func optionalStringArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}
