package startups

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

type mockStartupService struct {
	mock.Mock
}

func (m *mockStartupService) SearchStartups(ctx context.Context, c Criteria) (StartupList, error) {
	args := m.Called(ctx, c)
	list, _ := args.Get(0).(StartupList)
	return list, args.Error(1)
}

func (m *mockStartupService) GetStartupByID(ctx context.Context, id int64) (Startup, error) {
	args := m.Called(ctx, id)
	startup, _ := args.Get(0).(Startup)
	return startup, args.Error(1)
}

func (m *mockStartupService) ListOptions(ctx context.Context) (StartupOptions, error) {
	args := m.Called(ctx)
	opts, _ := args.Get(0).(StartupOptions)
	return opts, args.Error(1)
}

func setupRouter(service StartupService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStartupHandler(service)
	h.RegisterRoutes(r)
	return r
}

func TestStartupHandler_ListStartups_DefaultsToAll(t *testing.T) {
	svc := new(mockStartupService)
	r := setupRouter(svc)

	svc.On("SearchStartups", mock.Anything, Criteria{Sector: AllOption, Stage: AllOption}).
		Return(StartupList{Items: portfolio(), Count: 6, Total: 6}, nil)

	req := httptest.NewRequest(http.MethodGet, "/startups", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestStartupHandler_ListStartups_PassesCriteria(t *testing.T) {
	svc := new(mockStartupService)
	r := setupRouter(svc)

	svc.On("SearchStartups", mock.Anything, Criteria{Search: "ai", Sector: "HealthTech", Stage: "Seed"}).
		Return(StartupList{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/startups?q=ai&sector=HealthTech&stage=Seed", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestStartupHandler_GetStartupByID_InvalidID(t *testing.T) {
	svc := new(mockStartupService)
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/startups/abc", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetStartupByID", mock.Anything, mock.Anything)
}

func TestStartupHandler_GetStartupByID_NotFound(t *testing.T) {
	svc := new(mockStartupService)
	r := setupRouter(svc)

	svc.On("GetStartupByID", mock.Anything, int64(42)).Return(Startup{}, ErrStartupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/startups/42", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "startup not found", resp.Message)
}

type fixedSource []Startup

func (f fixedSource) Startups() ([]Startup, uint64) { return f, 3 }

func TestStartupService_SearchAndOptions(t *testing.T) {
	svc := NewStartupService(NewStaticStartupRepository(fixedSource(portfolio())))

	list, err := svc.SearchStartups(context.Background(), Criteria{Sector: "Mobility"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	require.Equal(t, 6, list.Total)

	opts, err := svc.ListOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, opts.Sectors, 7)

	_, err = svc.GetStartupByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrStartupNotFound)
}
