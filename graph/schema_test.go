package graph

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avalero/blog-backend/auth"
	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/models"
)

type testEnv struct {
	schema graphql.Schema
	db     database.Database
	auth   *auth.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(gdb))

	db := database.New(gdb)
	authService := auth.NewService(db, []byte("test-signing-key"))

	schema, err := NewSchema(NewResolver(db, authService))
	require.NoError(t, err)

	return &testEnv{schema: schema, db: db, auth: authService}
}

func (e *testEnv) createUser(t *testing.T, username string, superuser bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{Username: username, PasswordHash: hash, IsSuperuser: superuser, IsActive: true}
	require.NoError(t, e.db.UserRepo().Add(user))
	return user
}

func (e *testEnv) execute(t *testing.T, actor *models.User, query string, vars map[string]interface{}) *graphql.Result {
	t.Helper()

	ctx := context.Background()
	if actor != nil {
		ctx = ctxWithActor(ctx, actor)
	}

	return graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
}

func errorCode(t *testing.T, result *graphql.Result) string {
	t.Helper()
	require.NotEmpty(t, result.Errors)
	code, _ := result.Errors[0].Extensions["code"].(string)
	return code
}

func TestCreateUserAndLoginMutations(t *testing.T) {
	env := newTestEnv(t)

	result := env.execute(t, nil, `
		mutation {
			createUser(username: "alvaro", password: "secret123", passwordConfirm: "secret123", email: "alvaro@example.com") {
				success
				message
				token
				user { username email }
			}
		}`, nil)
	require.Empty(t, result.Errors)

	payload := result.Data.(map[string]interface{})["createUser"].(map[string]interface{})
	assert.Equal(t, true, payload["success"])
	assert.NotEmpty(t, payload["token"])
	user := payload["user"].(map[string]interface{})
	assert.Equal(t, "alvaro", user["username"])

	t.Run("login reuses the token", func(t *testing.T) {
		result := env.execute(t, nil, `
			mutation {
				loginUser(username: "alvaro", password: "secret123") {
					success
					token
				}
			}`, nil)
		require.Empty(t, result.Errors)
		login := result.Data.(map[string]interface{})["loginUser"].(map[string]interface{})
		assert.Equal(t, payload["token"], login["token"])
	})

	t.Run("wrong credentials", func(t *testing.T) {
		result := env.execute(t, nil, `
			mutation {
				loginUser(username: "alvaro", password: "nope") { success }
			}`, nil)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, "Invalid credentials", result.Errors[0].Message)
		assert.Equal(t, errs.CodeInvalidCredentials, errorCode(t, result))
	})
}

func TestCreatePostMutation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alvaro", false)

	t.Run("anonymous is rejected with a typed code", func(t *testing.T) {
		result := env.execute(t, nil, `
			mutation {
				createPost(title: "Primera entrada", content: "Hola") { success }
			}`, nil)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, "You are not authenticated", result.Errors[0].Message)
		assert.Equal(t, errs.CodeAuthenticationRequired, errorCode(t, result))
	})

	result := env.execute(t, owner, `
		mutation {
			createPost(title: "Primera entrada", content: "Hola mundo") {
				success
				post {
					title
					blog { title }
				}
			}
		}`, nil)
	require.Empty(t, result.Errors)

	payload := result.Data.(map[string]interface{})["createPost"].(map[string]interface{})
	post := payload["post"].(map[string]interface{})
	assert.Equal(t, "Primera entrada", post["title"])
	blog := post["blog"].(map[string]interface{})
	assert.Equal(t, "Blog de alvaro", blog["title"])
}

func TestOwnershipOnMutations(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alvaro", false)
	other := env.createUser(t, "lucia", false)
	super := env.createUser(t, "admin", true)

	result := env.execute(t, owner, `
		mutation {
			createBlog(title: "Blog de cocina", description: "Recetas") {
				blog { id }
			}
		}`, nil)
	require.Empty(t, result.Errors)
	blogID := result.Data.(map[string]interface{})["createBlog"].(map[string]interface{})["blog"].(map[string]interface{})["id"]

	t.Run("non-owner update is denied", func(t *testing.T) {
		result := env.execute(t, other, `
			mutation ($id: ID!) {
				updateBlog(id: $id, title: "Blog ajeno", description: "x") { success }
			}`, map[string]interface{}{"id": blogID})
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, errs.CodePermissionDenied, errorCode(t, result))
		assert.Equal(t, "You are not allowed to update this blog", result.Errors[0].Message)
	})

	t.Run("superuser bypasses ownership", func(t *testing.T) {
		result := env.execute(t, super, `
			mutation ($id: ID!) {
				updateBlog(id: $id, title: "Blog moderado", description: "Revisado") {
					success
					blog { title }
				}
			}`, map[string]interface{}{"id": blogID})
		require.Empty(t, result.Errors)
		updated := result.Data.(map[string]interface{})["updateBlog"].(map[string]interface{})["blog"].(map[string]interface{})
		assert.Equal(t, "Blog moderado", updated["title"])
	})
}

func TestQueries(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alvaro", false)

	blog := &models.Blog{Title: "Blog de Alvaro", Description: "Personal", UserID: owner.ID}
	require.NoError(t, env.db.BlogRepo().Add(blog))
	post := &models.Post{Title: "Primera entrada", Content: "Hola", BlogID: blog.ID}
	require.NoError(t, env.db.PostRepo().Add(post))
	tag := &models.Tag{Name: "cocina"}
	require.NoError(t, env.db.TagRepo().Add(tag))
	require.NoError(t, env.db.PostRepo().AddTag(post, tag))

	t.Run("posts with nested blog and tags", func(t *testing.T) {
		result := env.execute(t, nil, `
			{
				posts {
					title
					blog { title user { username } }
					tags { name }
				}
			}`, nil)
		require.Empty(t, result.Errors)

		posts := result.Data.(map[string]interface{})["posts"].([]interface{})
		require.Len(t, posts, 1)
		first := posts[0].(map[string]interface{})
		assert.Equal(t, "Primera entrada", first["title"])
		assert.Equal(t, "Blog de Alvaro", first["blog"].(map[string]interface{})["title"])
		tags := first["tags"].([]interface{})
		require.Len(t, tags, 1)
		assert.Equal(t, "cocina", tags[0].(map[string]interface{})["name"])
	})

	t.Run("blogsByTitle", func(t *testing.T) {
		result := env.execute(t, nil, `{ blogsByTitle(title: "alvaro") { title } }`, nil)
		require.Empty(t, result.Errors)
		blogs := result.Data.(map[string]interface{})["blogsByTitle"].([]interface{})
		assert.Len(t, blogs, 1)
	})

	t.Run("postsByBlog rejects unknown blog", func(t *testing.T) {
		result := env.execute(t, nil, `{ postsByBlog(blogId: "9999") { title } }`, nil)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, "Invalid blog ID", result.Errors[0].Message)
		assert.Equal(t, errs.CodeBadRequest, errorCode(t, result))
	})

	t.Run("postsByUser requires authentication", func(t *testing.T) {
		query := fmt.Sprintf(`{ postsByUser(userId: "%d") { title } }`, owner.ID)

		result := env.execute(t, nil, query, nil)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, errs.CodeAuthenticationRequired, errorCode(t, result))

		result = env.execute(t, owner, query, nil)
		require.Empty(t, result.Errors)
		posts := result.Data.(map[string]interface{})["postsByUser"].([]interface{})
		assert.Len(t, posts, 1)
	})

	t.Run("tagsByNameAndPostTitle", func(t *testing.T) {
		result := env.execute(t, nil, `{ tagsByNameAndPostTitle(name: "coc", postTitle: "Primera entrada") { name } }`, nil)
		require.Empty(t, result.Errors)
		tags := result.Data.(map[string]interface{})["tagsByNameAndPostTitle"].([]interface{})
		require.Len(t, tags, 1)
	})

	t.Run("unknown post id", func(t *testing.T) {
		result := env.execute(t, nil, `{ post(id: "9999") { title } }`, nil)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, "Post not found", result.Errors[0].Message)
		assert.Equal(t, errs.CodeNotFound, errorCode(t, result))
	})
}

func TestTagAttachmentMutations(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alvaro", false)
	other := env.createUser(t, "lucia", false)

	blog := &models.Blog{Title: "Blog de Alvaro", Description: "Personal", UserID: owner.ID}
	require.NoError(t, env.db.BlogRepo().Add(blog))
	post := &models.Post{Title: "Primera entrada", Content: "Hola", BlogID: blog.ID}
	require.NoError(t, env.db.PostRepo().Add(post))

	result := env.execute(t, other, `mutation { createTag(name: "cocina") { tag { id } } }`, nil)
	require.Empty(t, result.Errors)
	tagID := result.Data.(map[string]interface{})["createTag"].(map[string]interface{})["tag"].(map[string]interface{})["id"]

	vars := map[string]interface{}{
		"postId": fmt.Sprintf("%d", post.ID),
		"tagId":  tagID,
	}

	t.Run("non-owner may not attach", func(t *testing.T) {
		result := env.execute(t, other, `
			mutation ($postId: ID!, $tagId: ID!) {
				addTagToPost(postId: $postId, tagId: $tagId) { success }
			}`, vars)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, errs.CodePermissionDenied, errorCode(t, result))
	})

	t.Run("owner attaches then detaches", func(t *testing.T) {
		result := env.execute(t, owner, `
			mutation ($postId: ID!, $tagId: ID!) {
				addTagToPost(postId: $postId, tagId: $tagId) {
					success
					post { tags { name } }
				}
			}`, vars)
		require.Empty(t, result.Errors)
		attached := result.Data.(map[string]interface{})["addTagToPost"].(map[string]interface{})["post"].(map[string]interface{})["tags"].([]interface{})
		require.Len(t, attached, 1)

		result = env.execute(t, owner, `
			mutation ($postId: ID!, $tagId: ID!) {
				removeTagFromPost(postId: $postId, tagId: $tagId) {
					success
					post { tags { name } }
				}
			}`, vars)
		require.Empty(t, result.Errors)
		detached := result.Data.(map[string]interface{})["removeTagFromPost"].(map[string]interface{})["post"].(map[string]interface{})["tags"]
		assert.Empty(t, detached)
	})
}

func TestLogoutAndDeleteUserMutations(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "alvaro", false)
	other := env.createUser(t, "lucia", false)
	super := env.createUser(t, "admin", true)

	token, err := env.auth.IssueToken(owner)
	require.NoError(t, err)

	result := env.execute(t, owner, `mutation { logoutUser { success message } }`, nil)
	require.Empty(t, result.Errors)

	_, err = env.auth.ResolveBearer("Bearer " + token)
	require.Error(t, err)

	t.Run("delete is self or superuser", func(t *testing.T) {
		vars := map[string]interface{}{"userId": fmt.Sprintf("%d", owner.ID)}

		result := env.execute(t, other, `
			mutation ($userId: ID!) { deleteUser(userId: $userId) { success } }`, vars)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, errs.CodePermissionDenied, errorCode(t, result))

		result = env.execute(t, super, `
			mutation ($userId: ID!) { deleteUser(userId: $userId) { success user { username } } }`, vars)
		require.Empty(t, result.Errors)
		deleted := result.Data.(map[string]interface{})["deleteUser"].(map[string]interface{})
		assert.Equal(t, "alvaro", deleted["user"].(map[string]interface{})["username"])
	})
}
