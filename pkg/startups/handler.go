package startups

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"incubator/pkg/response"
)

type StartupHandler struct {
	service StartupService
}

func NewStartupHandler(service StartupService) *StartupHandler {
	return &StartupHandler{service: service}
}

func (h *StartupHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/startups", h.listStartups)
	router.GET("/startups/options", h.listOptions)
	router.GET("/startups/:id", h.getStartupByID)
}

// @Summary      Search the portfolio
// @Description  Filters portfolio startups by search term, sector and stage
// @Tags         startups
// @Produce      json
// @Param        q       query     string  false  "Search name and description"
// @Param        sector  query     string  false  "Sector, or All"
// @Param        stage   query     string  false  "Stage, or All"
// @Success      200  {object}  response.APIResponse{data=StartupList} "Startups retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups [get]
func (h *StartupHandler) listStartups(c *gin.Context) {
	criteria := Criteria{
		Search: strings.TrimSpace(c.Query("q")),
		Sector: strings.TrimSpace(c.DefaultQuery("sector", AllOption)),
		Stage:  strings.TrimSpace(c.DefaultQuery("stage", AllOption)),
	}

	list, err := h.service.SearchStartups(c.Request.Context(), criteria)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "startups listed", list)
}

// @Summary      Portfolio filter options
// @Tags         startups
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=StartupOptions} "Options listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/options [get]
func (h *StartupHandler) listOptions(c *gin.Context) {
	opts, err := h.service.ListOptions(c.Request.Context())
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "startup options", opts)
}

// @Summary      Get startup by ID
// @Description  Retrieves a single portfolio startup by its ID
// @Tags         startups
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Success      200  {object}  response.APIResponse{data=Startup} "Startup retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid startup ID"
// @Failure      404  {object}  response.APIResponse "Startup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id} [get]
func (h *StartupHandler) getStartupByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	startup, err := h.service.GetStartupByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStartupNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "startup not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "startup fetched", startup)
}
