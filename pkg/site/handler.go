package site

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"incubator/pkg/response"
)

// Check reports the health of one dependency.
type Check func(ctx context.Context) error

type SiteHandler struct {
	staticDir string
	checks    map[string]Check
}

// NewSiteHandler serves the route manifest, health and the not-found
// fallback. When staticDir is set, unknown GETs are served from the built SPA.
func NewSiteHandler(staticDir string, checks map[string]Check) *SiteHandler {
	return &SiteHandler{staticDir: staticDir, checks: checks}
}

func (h *SiteHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/routes", h.listRoutes)
	router.GET("/healthz", h.health)
	router.NoRoute(h.notFound)
}

// @Summary      Client routes
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=[]Route} "Routes"
// @Router       /routes [get]
func (h *SiteHandler) listRoutes(c *gin.Context) {
	response.SendAPIResponse(c, http.StatusOK, true, "routes listed", ClientRoutes)
}

// @Summary      Health check
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.APIResponse "Healthy"
// @Failure      503  {object}  response.APIResponse "A dependency is down"
// @Router       /healthz [get]
func (h *SiteHandler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		response.SendAPIResponse(c, http.StatusServiceUnavailable, false, "unhealthy", status)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "ok", status)
}

func (h *SiteHandler) notFound(c *gin.Context) {
	if h.staticDir != "" && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
		clean := path.Clean("/" + c.Request.URL.Path)
		if file := filepath.Join(h.staticDir, filepath.FromSlash(clean)); clean != "/" && isFile(file) {
			c.File(file)
			return
		}
		if isClientRoute(clean) || !strings.Contains(path.Base(clean), ".") {
			c.File(filepath.Join(h.staticDir, "index.html"))
			return
		}
	}

	response.SendAPIResponse(c, http.StatusNotFound, false, "route not found", gin.H{"path": c.Request.URL.Path})
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
