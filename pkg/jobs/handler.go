package jobs

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"incubator/pkg/filter"
	"incubator/pkg/response"
)

type JobHandler struct {
	service JobService
}

func NewJobHandler(service JobService) *JobHandler {
	return &JobHandler{service: service}
}

func (h *JobHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/jobs", h.listJobs)
	router.GET("/jobs/options", h.listOptions)
	router.GET("/jobs/:id", h.getJobByID)
}

func criteriaFromQuery(c *gin.Context) Criteria {
	return Criteria{
		Search:    strings.TrimSpace(c.Query("q")),
		Types:     filter.Normalize(c.QueryArray("type")),
		Locations: filter.Normalize(c.QueryArray("location")),
		Sectors:   filter.Normalize(c.QueryArray("sector")),
	}
}

// @Summary      Search jobs
// @Description  Filters the job board. Multi-select params may repeat or be comma separated.
// @Tags         jobs
// @Produce      json
// @Param        q         query  string  false  "Search title, company and description"
// @Param        type      query  []string  false  "Employment type"  collectionFormat(multi)
// @Param        location  query  []string  false  "Remote, On-site or a city"  collectionFormat(multi)
// @Param        sector    query  []string  false  "Sector"  collectionFormat(multi)
// @Success      200  {object}  response.APIResponse{data=JobList} "Jobs listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /jobs [get]
func (h *JobHandler) listJobs(c *gin.Context) {
	list, err := h.service.SearchJobs(c.Request.Context(), criteriaFromQuery(c))
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "jobs listed", list)
}

// @Summary      Job filter options
// @Description  Option lists for the job filters, with the number of jobs matching each option
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=JobOptions} "Options listed"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /jobs/options [get]
func (h *JobHandler) listOptions(c *gin.Context) {
	opts, err := h.service.ListOptions(c.Request.Context())
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "job options", opts)
}

// @Summary      Get job by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.APIResponse{data=Job} "Job fetched"
// @Failure      404  {object}  response.APIResponse "Job not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) getJobByID(c *gin.Context) {
	job, err := h.service.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "job not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "job fetched", job)
}
