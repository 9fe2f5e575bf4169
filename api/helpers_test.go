package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
)

type testEnv struct {
	store  *database.MemoryStore
	db     database.Database
	router http.Handler
}

func testConfig() config.Config {
	return config.Config{
		APIPrefix:       "/api",
		StoreDriver:     config.StoreDriverMemory,
		AcceptedOrigins: []string{"https://portfolio.example"},
		ServiceName:     "Portfolio API",
		ServiceVersion:  "1.0.0",
	}
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	store := database.NewMemoryStore()
	db := database.New(store)
	require.NoError(t, db.Bootstrap(context.Background()))

	return testEnv{
		store:  store,
		db:     db,
		router: newRouter(db, withConfig(testConfig()), withStartupTime(time.Now())),
	}
}

// envelope is a decoded response body.
type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Message string         `json:"message"`
	Error   string         `json:"error"`
	Code    string         `json:"code"`
}

func (e testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func dataList(t *testing.T, env envelope, key string) []any {
	t.Helper()
	list, ok := env.Data[key].([]any)
	require.True(t, ok, "data.%s is not a list: %v", key, env.Data[key])
	return list
}

func dataObject(t *testing.T, env envelope, key string) map[string]any {
	t.Helper()
	obj, ok := env.Data[key].(map[string]any)
	require.True(t, ok, "data.%s is not an object: %v", key, env.Data[key])
	return obj
}
