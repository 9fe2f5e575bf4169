package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "API is running successfully", body.Message)
	assert.Equal(t, "Portfolio API", body.Data["service"])
	assert.Equal(t, "1.0.0", body.Data["version"])

	rec, body = env.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body.Data["status"])
	assert.Equal(t, "portfolio-api", body.Data["service"])
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/nope", "/elsewhere", "/api/projects/a/b/c"} {
		rec, body := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.False(t, body.Success, path)
		assert.Equal(t, "NOT_FOUND", body.Code, path)
		assert.NotEmpty(t, body.Error, path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPatch, "/api/projects", map[string]any{})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.Code)
}

func TestTrailingSlashIsAccepted(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/projects/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataList(t, body, "projects"))
	assert.EqualValues(t, 0, body.Data["total"])
}

func TestStoreFailureIsInternalError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Close())

	rec, body := env.do(t, http.MethodGet, "/api/services", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Contains(t, body.Error, "store unavailable")
}

func TestPanicIsInternalError(t *testing.T) {
	handler := LogInternalServerErrors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error","code":"INTERNAL_ERROR"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("https://portfolio.example")
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "https://portfolio.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = preflight("https://evil.example")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"CORS_BLOCKED"`)
}
