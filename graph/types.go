package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/avalero/blog-backend/models"
)

type schemaTypes struct {
	user *graphql.Object
	blog *graphql.Object
	post *graphql.Object
	tag  *graphql.Object

	authPayload    *graphql.Object
	userPayload    *graphql.Object
	blogPayload    *graphql.Object
	postPayload    *graphql.Object
	tagPayload     *graphql.Object
	postTagPayload *graphql.Object
	deletePayload  *graphql.Object
}

func userSource(p graphql.ResolveParams) (*models.User, error) {
	switch src := p.Source.(type) {
	case *models.User:
		return src, nil
	case models.User:
		return &src, nil
	}
	return nil, fmt.Errorf("unexpected source type %T", p.Source)
}

func blogSource(p graphql.ResolveParams) (*models.Blog, error) {
	switch src := p.Source.(type) {
	case *models.Blog:
		return src, nil
	case models.Blog:
		return &src, nil
	}
	return nil, fmt.Errorf("unexpected source type %T", p.Source)
}

func postSource(p graphql.ResolveParams) (*models.Post, error) {
	switch src := p.Source.(type) {
	case *models.Post:
		return src, nil
	case models.Post:
		return &src, nil
	}
	return nil, fmt.Errorf("unexpected source type %T", p.Source)
}

func tagSource(p graphql.ResolveParams) (*models.Tag, error) {
	switch src := p.Source.(type) {
	case *models.Tag:
		return src, nil
	case models.Tag:
		return &src, nil
	}
	return nil, fmt.Errorf("unexpected source type %T", p.Source)
}

// newTypes builds the object types. The circular fields (blog.posts,
// post.blog, ...) are attached after construction via AddFieldConfig.
func newTypes(r *Resolver) *schemaTypes {
	t := &schemaTypes{}

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.ID, nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.Username, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					if u.Email == nil {
						return nil, nil
					}
					return *u.Email, nil
				},
			},
			"isSuperuser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.IsSuperuser, nil
				},
			},
			"isActive": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.IsActive, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.CreatedAt, nil
				},
			},
		},
	})

	t.blog = graphql.NewObject(graphql.ObjectConfig{
		Name: "Blog",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := blogSource(p)
					if err != nil {
						return nil, err
					}
					return b.ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := blogSource(p)
					if err != nil {
						return nil, err
					}
					return b.Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := blogSource(p)
					if err != nil {
						return nil, err
					}
					return b.Description, nil
				},
			},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := blogSource(p)
					if err != nil {
						return nil, err
					}
					return b.UserID, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := blogSource(p)
					if err != nil {
						return nil, err
					}
					return b.CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := blogSource(p)
					if err != nil {
						return nil, err
					}
					return b.UpdatedAt, nil
				},
			},
		},
	})

	t.post = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := postSource(p)
					if err != nil {
						return nil, err
					}
					return post.ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := postSource(p)
					if err != nil {
						return nil, err
					}
					return post.Title, nil
				},
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := postSource(p)
					if err != nil {
						return nil, err
					}
					return post.Content, nil
				},
			},
			"blogId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := postSource(p)
					if err != nil {
						return nil, err
					}
					return post.BlogID, nil
				},
			},
			"publishedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := postSource(p)
					if err != nil {
						return nil, err
					}
					return post.PublishedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := postSource(p)
					if err != nil {
						return nil, err
					}
					return post.UpdatedAt, nil
				},
			},
		},
	})

	t.tag = graphql.NewObject(graphql.ObjectConfig{
		Name: "Tag",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tag, err := tagSource(p)
					if err != nil {
						return nil, err
					}
					return tag.ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tag, err := tagSource(p)
					if err != nil {
						return nil, err
					}
					return tag.Name, nil
				},
			},
		},
	})

	t.user.AddFieldConfig("blog", &graphql.Field{
		Type: t.blog,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, err := userSource(p)
			if err != nil {
				return nil, err
			}
			blogs, err := r.blogs.ByUser(u.ID)
			if err != nil {
				return nil, asResolverError(err)
			}
			if len(blogs) == 0 {
				return nil, nil
			}
			return blogs[0], nil
		},
	})

	t.blog.AddFieldConfig("user", &graphql.Field{
		Type: t.user,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			b, err := blogSource(p)
			if err != nil {
				return nil, err
			}
			if b.User != nil {
				return b.User, nil
			}
			user, err := r.accounts.Get(b.UserID)
			if err != nil {
				return nil, asResolverError(err)
			}
			return user, nil
		},
	})

	t.blog.AddFieldConfig("posts", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(t.post)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			b, err := blogSource(p)
			if err != nil {
				return nil, err
			}
			posts, err := r.posts.ListByBlog(b.ID)
			if err != nil {
				return nil, asResolverError(err)
			}
			return posts, nil
		},
	})

	t.post.AddFieldConfig("blog", &graphql.Field{
		Type: t.blog,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			post, err := postSource(p)
			if err != nil {
				return nil, err
			}
			if post.Blog != nil {
				return post.Blog, nil
			}
			blog, err := r.blogs.Get(post.BlogID)
			if err != nil {
				return nil, asResolverError(err)
			}
			return blog, nil
		},
	})

	t.post.AddFieldConfig("tags", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(t.tag)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			post, err := postSource(p)
			if err != nil {
				return nil, err
			}
			tags, err := r.tags.ByPost(post.ID)
			if err != nil {
				return nil, asResolverError(err)
			}
			return tags, nil
		},
	})

	t.tag.AddFieldConfig("posts", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(t.post)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			tag, err := tagSource(p)
			if err != nil {
				return nil, err
			}
			posts, err := r.tags.PostsByTag(tag.ID)
			if err != nil {
				return nil, asResolverError(err)
			}
			return posts, nil
		},
	})

	t.authPayload = payloadObject("AuthPayload", graphql.Fields{
		"user":  &graphql.Field{Type: t.user},
		"token": &graphql.Field{Type: graphql.String},
	})
	t.userPayload = payloadObject("UserPayload", graphql.Fields{
		"user": &graphql.Field{Type: t.user},
	})
	t.blogPayload = payloadObject("BlogPayload", graphql.Fields{
		"blog": &graphql.Field{Type: t.blog},
	})
	t.postPayload = payloadObject("PostPayload", graphql.Fields{
		"post": &graphql.Field{Type: t.post},
	})
	t.tagPayload = payloadObject("TagPayload", graphql.Fields{
		"tag": &graphql.Field{Type: t.tag},
	})
	t.postTagPayload = payloadObject("PostTagPayload", graphql.Fields{
		"post": &graphql.Field{Type: t.post},
		"tag":  &graphql.Field{Type: t.tag},
	})
	t.deletePayload = payloadObject("DeletePayload", nil)

	return t
}

// payloadObject builds a mutation result type carrying message and success
// alongside the entity fields.
func payloadObject(name string, fields graphql.Fields) *graphql.Object {
	all := graphql.Fields{
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	}
	for key, field := range fields {
		all[key] = field
	}
	return graphql.NewObject(graphql.ObjectConfig{Name: name, Fields: all})
}
