package animate

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"incubator/pkg/logging"
	"incubator/pkg/response"
)

type AnimateHandler struct {
	clock Clock
	stats []Stat
	hero  TypewriterConfig
	log   *logging.Logger
}

func NewAnimateHandler(clock Clock, log *logging.Logger) *AnimateHandler {
	if clock == nil {
		clock = SystemClock
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &AnimateHandler{clock: clock, stats: HomeStats(), hero: HeroTypewriter, log: log.Named("animate")}
}

func (h *AnimateHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/stats", h.listStats)
	router.GET("/stats/:index/countup", h.countUp)
	router.GET("/hero/typewriter", h.typewriter)
}

// @Summary      Home stats
// @Tags         animate
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=[]Stat} "Stats"
// @Router       /stats [get]
func (h *AnimateHandler) listStats(c *gin.Context) {
	response.SendAPIResponse(c, http.StatusOK, true, "home stats", h.stats)
}

// @Summary      Stream a count-up
// @Description  Server-sent "frame" events from 0 to the stat's value. The stream starts only when ratio reaches the visibility threshold.
// @Tags         animate
// @Produce      text/event-stream
// @Param        index     path   int     true   "Stat index"
// @Param        ratio     query  number  false  "Visible fraction of the element (default 1)"
// @Success      200  {object}  CountFrame "Frames"
// @Failure      400  {object}  response.APIResponse "Invalid index or ratio"
// @Failure      404  {object}  response.APIResponse "Stat not found"
// @Router       /stats/{index}/countup [get]
func (h *AnimateHandler) countUp(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid stat index", nil)
		return
	}
	if idx < 0 || idx >= len(h.stats) {
		response.SendAPIResponse(c, http.StatusNotFound, false, ErrStatNotFound.Error(), nil)
		return
	}

	ratio := 1.0
	if raw := c.Query("ratio"); raw != "" {
		ratio, err = strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
			response.SendAPIResponse(c, http.StatusBadRequest, false, "ratio must be a number between 0 and 1", nil)
			return
		}
	}

	cu := NewCountUp(h.stats[idx].Parts, 0, 0)
	if !cu.Visible(ratio, h.clock.Now()) {
		response.SendAPIResponse(c, http.StatusOK, true, "below visibility threshold", cu.Frame(h.clock.Now()))
		return
	}

	startStream(c)
	err = cu.Stream(c.Request.Context(), h.clock, func(f CountFrame) error {
		return sendEvent(c, "frame", f)
	})
	h.streamEnded("countup", err)
}

// @Summary      Stream the hero headline
// @Description  Server-sent "frame" events of the typewriter headline until it is done.
// @Tags         animate
// @Produce      text/event-stream
// @Success      200  {object}  TypeFrame "Frames"
// @Router       /hero/typewriter [get]
func (h *AnimateHandler) typewriter(c *gin.Context) {
	startStream(c)
	err := NewTypewriter(h.hero).Stream(c.Request.Context(), h.clock, func(f TypeFrame) error {
		return sendEvent(c, "frame", f)
	})
	h.streamEnded("typewriter", err)
}

func (h *AnimateHandler) streamEnded(name string, err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		h.log.Warn("animation stream failed", "stream", name, "error", err)
		return
	}
	h.log.Debug("animation stream ended", "stream", name)
}

func startStream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
}

func sendEvent(c *gin.Context, name string, data any) error {
	c.SSEvent(name, data)
	c.Writer.Flush()
	return c.Request.Context().Err()
}
