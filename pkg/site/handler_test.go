package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"incubator/pkg/response"
)

func setupRouter(staticDir string, checks map[string]Check) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSiteHandler(staticDir, checks).RegisterRoutes(r)
	return r
}

func get(r *gin.Engine, p string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
	return w
}

func TestSiteHandler_Routes(t *testing.T) {
	w := get(setupRouter("", nil), "/routes")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		response.APIResponse
		Data []Route `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 11)
	require.Equal(t, "/", resp.Data[0].Path)
	require.Equal(t, "/get-involved", resp.Data[10].Path)
}

func TestSiteHandler_NotFoundEnvelope(t *testing.T) {
	w := get(setupRouter("", nil), "/nope")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "route not found", resp.Message)
}

func TestSiteHandler_Health(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	require.Equal(t, http.StatusOK, get(setupRouter("", map[string]Check{"catalog": ok}), "/healthz").Code)

	w := get(setupRouter("", map[string]Check{"catalog": ok, "postgres": down}), "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "connection refused")
}

func TestSiteHandler_SPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600))
	r := setupRouter(dir, nil)

	w := get(r, "/portfolio")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "<html>app</html>")

	w = get(r, "/assets/app.js")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "console.log(1)", w.Body.String())

	require.Equal(t, http.StatusNotFound, get(r, "/assets/missing.js").Code)
	require.Equal(t, http.StatusNotFound, get(r, "/missing.txt").Code)
}
