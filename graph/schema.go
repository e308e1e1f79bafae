package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the full schema over the shared service layer. Queries
// are open to anonymous callers except where the service itself requires an
// actor; mutations re-check authorization per call.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	t := newTypes(r)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields(r, t),
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(r, t),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func queryFields(r *Resolver, t *schemaTypes) graphql.Fields {
	return graphql.Fields{
		"blogs": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.blog)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				blogs, err := r.blogs.List()
				if err != nil {
					return nil, asResolverError(err)
				}
				return blogs, nil
			},
		},
		"blog": &graphql.Field{
			Type: t.blog,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				blog, err := r.blogs.Get(id)
				if err != nil {
					return nil, asResolverError(err)
				}
				return blog, nil
			},
		},
		"blogsByUser": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.blog)),
			Args: graphql.FieldConfigArgument{
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				userID, err := idArg(p, "userId")
				if err != nil {
					return nil, err
				}
				blogs, err := r.blogs.ByUser(userID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return blogs, nil
			},
		},
		"blogsByTitle": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.blog)),
			Args: graphql.FieldConfigArgument{
				"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				blogs, err := r.blogs.ByTitle(stringArg(p, "title"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return blogs, nil
			},
		},
		"posts": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.post)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				posts, err := r.posts.List()
				if err != nil {
					return nil, asResolverError(err)
				}
				return posts, nil
			},
		},
		"post": &graphql.Field{
			Type: t.post,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				post, err := r.posts.Get(id)
				if err != nil {
					return nil, asResolverError(err)
				}
				return post, nil
			},
		},
		"postsByBlog": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.post)),
			Args: graphql.FieldConfigArgument{
				"blogId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				blogID, err := idArg(p, "blogId")
				if err != nil {
					return nil, err
				}
				posts, err := r.posts.ListByBlog(blogID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return posts, nil
			},
		},
		"postsByUser": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.post)),
			Args: graphql.FieldConfigArgument{
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				userID, err := idArg(p, "userId")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				posts, err := r.posts.ByUser(actor, userID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return posts, nil
			},
		},
		"postsByTitle": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.post)),
			Args: graphql.FieldConfigArgument{
				"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				posts, err := r.posts.ByTitle(stringArg(p, "title"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return posts, nil
			},
		},
		"tags": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.tag)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tags, err := r.tags.List()
				if err != nil {
					return nil, asResolverError(err)
				}
				return tags, nil
			},
		},
		"tag": &graphql.Field{
			Type: t.tag,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				tag, err := r.tags.Get(id)
				if err != nil {
					return nil, asResolverError(err)
				}
				return tag, nil
			},
		},
		"tagsByName": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.tag)),
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tags, err := r.tags.ByName(stringArg(p, "name"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return tags, nil
			},
		},
		"postsByTag": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.post)),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tagID, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				posts, err := r.tags.PostsByTag(tagID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return posts, nil
			},
		},
		"tagsByPost": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.tag)),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				postID, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				tags, err := r.tags.ByPost(postID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return tags, nil
			},
		},
		"tagsByPostTitle": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.tag)),
			Args: graphql.FieldConfigArgument{
				"postTitle": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tags, err := r.tags.ByPostTitle(stringArg(p, "postTitle"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return tags, nil
			},
		},
		"tagsByNameAndPostId": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.tag)),
			Args: graphql.FieldConfigArgument{
				"name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				postID, err := idArg(p, "postId")
				if err != nil {
					return nil, err
				}
				tags, err := r.tags.ByNameAndPost(stringArg(p, "name"), postID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return tags, nil
			},
		},
		"tagsByNameAndPostTitle": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.tag)),
			Args: graphql.FieldConfigArgument{
				"name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"postTitle": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tags, err := r.tags.ByNameAndPostTitle(stringArg(p, "name"), stringArg(p, "postTitle"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return tags, nil
			},
		},
		"users": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(t.user)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				users, err := r.accounts.List()
				if err != nil {
					return nil, asResolverError(err)
				}
				return users, nil
			},
		},
		"user": &graphql.Field{
			Type: t.user,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				user, err := r.accounts.Get(id)
				if err != nil {
					return nil, asResolverError(err)
				}
				return user, nil
			},
		},
	}
}

func mutationFields(r *Resolver, t *schemaTypes) graphql.Fields {
	return graphql.Fields{
		"createBlog": &graphql.Field{
			Type: t.blogPayload,
			Args: graphql.FieldConfigArgument{
				"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				actor := actorFromCtx(p.Context)
				blog, err := r.blogs.Create(actor, stringArg(p, "title"), stringArg(p, "description"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"blog":    blog,
					"message": "Blog created successfully",
					"success": true,
				}, nil
			},
		},
		"updateBlog": &graphql.Field{
			Type: t.blogPayload,
			Args: graphql.FieldConfigArgument{
				"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				blog, err := r.blogs.Update(actor, id, stringArg(p, "title"), stringArg(p, "description"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"blog":    blog,
					"message": "Blog updated successfully",
					"success": true,
				}, nil
			},
		},
		"deleteBlog": &graphql.Field{
			Type: t.deletePayload,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				if err := r.blogs.Delete(actor, id); err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"message": "Blog deleted successfully",
					"success": true,
				}, nil
			},
		},
		"createPost": &graphql.Field{
			Type: t.postPayload,
			Args: graphql.FieldConfigArgument{
				"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				actor := actorFromCtx(p.Context)
				post, err := r.posts.Create(actor, stringArg(p, "title"), stringArg(p, "content"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"post":    post,
					"message": "Post created successfully",
					"success": true,
				}, nil
			},
		},
		"updatePost": &graphql.Field{
			Type: t.postPayload,
			Args: graphql.FieldConfigArgument{
				"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				post, err := r.posts.Update(actor, id, stringArg(p, "title"), stringArg(p, "content"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"post":    post,
					"message": "Post updated successfully",
					"success": true,
				}, nil
			},
		},
		"deletePost": &graphql.Field{
			Type: t.deletePayload,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				if err := r.posts.Delete(actor, id); err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"message": "Post deleted successfully",
					"success": true,
				}, nil
			},
		},
		"createTag": &graphql.Field{
			Type: t.tagPayload,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				actor := actorFromCtx(p.Context)
				tag, err := r.tags.Create(actor, stringArg(p, "name"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"tag":     tag,
					"message": "Tag created successfully",
					"success": true,
				}, nil
			},
		},
		"updateTag": &graphql.Field{
			Type: t.tagPayload,
			Args: graphql.FieldConfigArgument{
				"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				tag, err := r.tags.Update(actor, id, stringArg(p, "name"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"tag":     tag,
					"message": "Tag updated successfully",
					"success": true,
				}, nil
			},
		},
		"deleteTag": &graphql.Field{
			Type: t.deletePayload,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id, err := idArg(p, "id")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				if err := r.tags.Delete(actor, id); err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"message": "Tag deleted successfully",
					"success": true,
				}, nil
			},
		},
		"addTagToPost": &graphql.Field{
			Type: t.postTagPayload,
			Args: graphql.FieldConfigArgument{
				"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"tagId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				postID, err := idArg(p, "postId")
				if err != nil {
					return nil, err
				}
				tagID, err := idArg(p, "tagId")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				post, tag, err := r.tags.AddToPost(actor, postID, tagID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"post":    post,
					"tag":     tag,
					"message": "Tag added to post successfully",
					"success": true,
				}, nil
			},
		},
		"removeTagFromPost": &graphql.Field{
			Type: t.postTagPayload,
			Args: graphql.FieldConfigArgument{
				"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"tagId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				postID, err := idArg(p, "postId")
				if err != nil {
					return nil, err
				}
				tagID, err := idArg(p, "tagId")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				post, tag, err := r.tags.RemoveFromPost(actor, postID, tagID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"post":    post,
					"tag":     tag,
					"message": "Tag removed from post successfully",
					"success": true,
				}, nil
			},
		},
		"createUser": &graphql.Field{
			Type: t.authPayload,
			Args: graphql.FieldConfigArgument{
				"username":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":           &graphql.ArgumentConfig{Type: graphql.String},
				"password":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"passwordConfirm": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				user, token, err := r.accounts.Register(
					stringArg(p, "username"),
					stringArg(p, "password"),
					stringArg(p, "passwordConfirm"),
					optionalStringArg(p, "email"),
				)
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"user":    user,
					"token":   token,
					"message": "User created successfully",
					"success": true,
				}, nil
			},
		},
		"loginUser": &graphql.Field{
			Type: t.authPayload,
			Args: graphql.FieldConfigArgument{
				"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				user, token, err := r.accounts.Login(stringArg(p, "username"), stringArg(p, "password"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"user":    user,
					"token":   token,
					"message": "Login successful",
					"success": true,
				}, nil
			},
		},
		"logoutUser": &graphql.Field{
			Type: t.deletePayload,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				actor := actorFromCtx(p.Context)
				if err := r.accounts.Logout(actor); err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"message": "Logout successful",
					"success": true,
				}, nil
			},
		},
		"deleteUser": &graphql.Field{
			Type: t.userPayload,
			Args: graphql.FieldConfigArgument{
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				userID, err := idArg(p, "userId")
				if err != nil {
					return nil, err
				}
				actor := actorFromCtx(p.Context)
				user, err := r.accounts.Delete(actor, userID)
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"user":    user,
					"message": "User deleted successfully",
					"success": true,
				}, nil
			},
		},
		"updatePassword": &graphql.Field{
			Type: t.userPayload,
			Args: graphql.FieldConfigArgument{
				"newPassword":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"confirmPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				actor := actorFromCtx(p.Context)
				user, err := r.accounts.UpdatePassword(actor, stringArg(p, "newPassword"), stringArg(p, "confirmPassword"))
				if err != nil {
					return nil, asResolverError(err)
				}
				return map[string]interface{}{
					"user":    user,
					"message": "Password updated successfully",
					"success": true,
				}, nil
			},
		},
	}
}
