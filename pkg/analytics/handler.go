package analytics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"incubator/pkg/filter"
	"incubator/pkg/response"
)

type AnalyticsHandler struct {
	tracker *Tracker
}

func NewAnalyticsHandler(tracker *Tracker) *AnalyticsHandler {
	return &AnalyticsHandler{tracker: tracker}
}

// RegisterRoutes mounts the analytics endpoints. reportGuard protects the report.
func (h *AnalyticsHandler) RegisterRoutes(router *gin.Engine, reportGuard ...gin.HandlerFunc) {
	router.POST("/analytics/events", h.trackEvent)
	router.GET("/analytics/report", append(reportGuard, h.report)...)
	router.GET("/analytics/variant", h.variant)
}

type trackEventRequest struct {
	Action    string   `json:"action" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	Label     string   `json:"label"`
	Value     *float64 `json:"value"`
	Variant   string   `json:"variant"`
	Page      string   `json:"page"`
	UserID    string   `json:"user_id"`
	SessionID string   `json:"session_id"`
}

// @Summary      Record an analytics event
// @Description  Appends an event to the capped log. Missing user and session ids are generated and returned.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        request body trackEventRequest true "Event"
// @Success      202  {object}  response.APIResponse{data=Identity} "Event recorded"
// @Failure      400  {object}  response.APIResponse "Invalid event"
// @Router       /analytics/events [post]
func (h *AnalyticsHandler) trackEvent(c *gin.Context) {
	var req trackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid event: action and category are required", nil)
		return
	}

	e := h.tracker.Track(c.Request.Context(), Identity{UserID: req.UserID, SessionID: req.SessionID}, Event{
		Action:   req.Action,
		Category: req.Category,
		Label:    req.Label,
		Value:    req.Value,
		Variant:  req.Variant,
		Page:     req.Page,
	})

	response.SendAPIResponse(c, http.StatusAccepted, true, "event recorded", Identity{UserID: e.UserID, SessionID: e.SessionID})
}

// @Summary      Analytics report
// @Tags         analytics
// @Produce      json
// @Param        days  query  int  false  "Window in days (default 7, at most 365)"
// @Param        X-Admin-Key  header  string  true  "Admin key"
// @Success      200  {object}  response.APIResponse{data=Report} "Report"
// @Failure      400  {object}  response.APIResponse "Invalid days"
// @Failure      401  {object}  response.APIResponse "Missing or wrong admin key"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /analytics/report [get]
func (h *AnalyticsHandler) report(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.SendAPIResponse(c, http.StatusBadRequest, false, "days must be a positive integer", nil)
			return
		}
		days = min(n, MaxReportDays)
	}

	rep, err := h.tracker.Report(c.Request.Context(), days)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "analytics report", rep)
}

// @Summary      A/B variant assignment
// @Description  Deterministic and sticky variant for a visitor. A missing user_id is generated.
// @Tags         analytics
// @Produce      json
// @Param        test      query  string    true   "Test name"
// @Param        variants  query  []string  true   "Variants"  collectionFormat(csv)
// @Param        user_id   query  string    false  "Visitor id"
// @Success      200  {object}  response.APIResponse{data=Assignment} "Variant"
// @Failure      400  {object}  response.APIResponse "Missing test or variants"
// @Router       /analytics/variant [get]
func (h *AnalyticsHandler) variant(c *gin.Context) {
	test := strings.TrimSpace(c.Query("test"))
	if test == "" {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "test is required", nil)
		return
	}

	a, err := h.tracker.Variant(c.Request.Context(), Identity{UserID: c.Query("user_id")}, test, filter.Normalize(c.QueryArray("variants")))
	if err != nil {
		if errors.Is(err, ErrNoVariants) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "variant assigned", a)
}
