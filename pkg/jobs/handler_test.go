package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"incubator/pkg/response"
)

type mockJobService struct {
	mock.Mock
}

func (m *mockJobService) SearchJobs(ctx context.Context, c Criteria) (JobList, error) {
	args := m.Called(ctx, c)
	list, _ := args.Get(0).(JobList)
	return list, args.Error(1)
}

func (m *mockJobService) GetJobByID(ctx context.Context, id string) (Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(Job)
	return job, args.Error(1)
}

func (m *mockJobService) ListOptions(ctx context.Context) (JobOptions, error) {
	args := m.Called(ctx)
	opts, _ := args.Get(0).(JobOptions)
	return opts, args.Error(1)
}

func setupRouter(service JobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewJobHandler(service)
	h.RegisterRoutes(r)
	return r
}

func TestJobHandler_ListJobs_ParsesMultiSelect(t *testing.T) {
	svc := new(mockJobService)
	r := setupRouter(svc)

	svc.On("SearchJobs", mock.Anything, Criteria{
		Search:    "design",
		Types:     []string{TypeFullTime, TypeContract},
		Locations: []string{LocationRemote},
		Sectors:   []string{},
	}).Return(JobList{Items: []Job{{ID: "job-1", Title: "Designer"}}, Count: 1, Total: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs?q=+design+&type=Full-Time,Contract&location=Remote&type=Contract", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "jobs listed", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, data["count"])
	require.EqualValues(t, 10, data["total"])

	svc.AssertExpectations(t)
}

func TestJobHandler_GetJob_NotFound(t *testing.T) {
	svc := new(mockJobService)
	r := setupRouter(svc)

	svc.On("GetJobByID", mock.Anything, "nope").Return(Job{}, ErrJobNotFound)

	req := httptest.NewRequest(http.MethodGet, "/jobs/nope", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "job not found", resp.Message)
}

func TestJobHandler_Options(t *testing.T) {
	svc := new(mockJobService)
	r := setupRouter(svc)

	svc.On("ListOptions", mock.Anything).Return(buildOptions(board()), nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs/options", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "GetJobByID", mock.Anything, mock.Anything)
}
