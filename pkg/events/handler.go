package events

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"incubator/pkg/filter"
	"incubator/pkg/response"
)

type EventHandler struct {
	service EventService
}

func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/events", h.listEvents)
	router.GET("/events/options", h.listOptions)
	router.GET("/events/:id", h.getEventByID)
	router.POST("/events/:id/rsvp", h.rsvp)
}

func criteriaFromQuery(c *gin.Context) (Criteria, error) {
	criteria := Criteria{
		Search: strings.TrimSpace(c.Query("q")),
		Types:  filter.Normalize(c.QueryArray("type")),
	}

	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		day, err := time.Parse(DateLayout, raw)
		if err != nil {
			return Criteria{}, err
		}
		criteria.Date = &day
	}

	if raw := c.Query("demo_day"); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return Criteria{}, err
		}
		criteria.DemoDaysOnly = on
	}
	return criteria, nil
}

// @Summary      Search events
// @Description  Filters the event calendar by search term, day, type and demo days
// @Tags         events
// @Produce      json
// @Param        q         query  string    false  "Search title, description and type"
// @Param        type      query  []string  false  "Event type"  collectionFormat(multi)
// @Param        date      query  string    false  "Calendar day, YYYY-MM-DD"
// @Param        demo_day  query  bool      false  "Demo days only"
// @Success      200  {object}  response.APIResponse{data=EventList} "Events listed"
// @Failure      400  {object}  response.APIResponse "Invalid query"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /events [get]
func (h *EventHandler) listEvents(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid date or demo_day", nil)
		return
	}

	list, err := h.service.SearchEvents(c.Request.Context(), criteria)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "events listed", list)
}

// @Summary      Event filter options
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=EventOptions} "Options listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /events/options [get]
func (h *EventHandler) listOptions(c *gin.Context) {
	opts, err := h.service.ListOptions(c.Request.Context())
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "event options", opts)
}

// @Summary      Get event by ID
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.APIResponse{data=Event} "Event fetched"
// @Failure      404  {object}  response.APIResponse "Event not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /events/{id} [get]
func (h *EventHandler) getEventByID(c *gin.Context) {
	event, err := h.service.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "event not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "event fetched", event)
}

// @Summary      RSVP for an event
// @Description  Registers an attendee. Investors must name their fund.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path  string       true  "Event ID"
// @Param        request  body  RSVPRequest  true  "RSVP details"
// @Success      201  {object}  response.APIResponse{data=RSVP} "RSVP confirmed"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      404  {object}  response.APIResponse "Event not found"
// @Failure      409  {object}  response.APIResponse "Event full or already registered"
// @Failure      503  {object}  response.APIResponse "RSVP unavailable"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /events/{id}/rsvp [post]
func (h *EventHandler) rsvp(c *gin.Context) {
	var req RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	created, err := h.service.RegisterRSVP(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRSVP):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, ErrEventNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "event not found", nil)
		case errors.Is(err, ErrEventFull), errors.Is(err, ErrAlreadyRegistered):
			response.SendAPIResponse(c, http.StatusConflict, false, err.Error(), nil)
		case errors.Is(err, ErrRSVPDisabled):
			response.SendAPIResponse(c, http.StatusServiceUnavailable, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "rsvp confirmed", created)
}
