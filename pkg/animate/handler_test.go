package animate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"incubator/pkg/response"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAnimateHandler(steppingClock{start: t0, step: 100 * time.Millisecond}, nil).RegisterRoutes(r)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestAnimateHandler_Stats(t *testing.T) {
	w := get(setupRouter(), "/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		response.APIResponse
		Data []Stat `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, HomeStats(), resp.Data)
}

func TestAnimateHandler_CountUpParams(t *testing.T) {
	r := setupRouter()

	require.Equal(t, http.StatusBadRequest, get(r, "/stats/x/countup").Code)
	require.Equal(t, http.StatusNotFound, get(r, "/stats/4/countup").Code)
	require.Equal(t, http.StatusNotFound, get(r, "/stats/-1/countup").Code)
	require.Equal(t, http.StatusBadRequest, get(r, "/stats/0/countup?ratio=half").Code)
	for _, bad := range []string{"NaN", "nan", "-0.5", "1.5", "Inf", "-Inf"} {
		require.Equal(t, http.StatusBadRequest, get(r, "/stats/0/countup?ratio="+bad).Code, bad)
	}

	w := get(r, "/stats/0/countup?ratio=0.1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "below visibility threshold")
}

func TestAnimateHandler_CountUpStream(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	w := get(setupRouter(), "/stats/3/countup")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	require.Equal(t, 15, strings.Count(body, "event:frame"))
	require.Contains(t, body, `{"value":89,"text":"89","done":true}`)
}

func TestAnimateHandler_TypewriterStream(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	w := get(setupRouter(), "/hero/typewriter")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `"line1":"Fueling Bold Ideas into"`)
	require.Contains(t, body, `"phase":"done"`)
	require.True(t, strings.HasSuffix(strings.TrimSpace(body), `"caret2":true}`))
}
