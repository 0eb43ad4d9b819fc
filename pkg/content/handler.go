package content

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"incubator/pkg/response"
)

type ContentHandler struct {
	service ContentService
}

func NewContentHandler(service ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/team", h.listTeam)
	router.GET("/faq", h.listFAQ)
	router.GET("/programs", h.listPrograms)
	router.GET("/programs/:id", h.getProgram)
}

// @Summary      List team members
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=response.List[TeamMember]} "Team listed"
// @Router       /team [get]
func (h *ContentHandler) listTeam(c *gin.Context) {
	team, err := h.service.ListTeam(c.Request.Context())
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "team listed", team)
}

// @Summary      List FAQ entries
// @Tags         content
// @Produce      json
// @Param        q         query  string  false  "Search questions and answers"
// @Param        category  query  string  false  "FAQ category"
// @Success      200  {object}  response.APIResponse{data=response.List[FAQItem]} "FAQ listed"
// @Router       /faq [get]
func (h *ContentHandler) listFAQ(c *gin.Context) {
	faq, err := h.service.SearchFAQ(c.Request.Context(), strings.TrimSpace(c.Query("q")), strings.TrimSpace(c.Query("category")))
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "faq listed", faq)
}

// @Summary      List programs
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=response.List[Program]} "Programs listed"
// @Router       /programs [get]
func (h *ContentHandler) listPrograms(c *gin.Context) {
	programs, err := h.service.ListPrograms(c.Request.Context())
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "programs listed", programs)
}

// @Summary      Get a program
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Program ID or track name"
// @Success      200  {object}  response.APIResponse{data=Program} "Program fetched"
// @Failure      404  {object}  response.APIResponse "Program not found"
// @Router       /programs/{id} [get]
func (h *ContentHandler) getProgram(c *gin.Context) {
	p, err := h.service.GetProgram(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "program not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "program fetched", p)
}
