package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avalero/blog-backend/database"
)

func newTestRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(gdb))

	db := database.New(gdb)
	router, err := newRouter(db)
	require.NoError(t, err)

	return router, db
}

// doJSON performs a request against the router and decodes the JSON
// response body into a map.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// doJSONList is doJSON for endpoints whose body is a JSON array.
func doJSONList(t *testing.T, router http.Handler, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded []map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// registerUser registers an account through the API and returns its token.
func registerUser(t *testing.T, router http.Handler, username string) string {
	t.Helper()

	status, body := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]any{
		"username":         username,
		"password":         "secret123",
		"password_confirm": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
