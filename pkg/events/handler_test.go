package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"incubator/pkg/response"
)

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) SearchEvents(ctx context.Context, c Criteria) (EventList, error) {
	args := m.Called(ctx, c)
	list, _ := args.Get(0).(EventList)
	return list, args.Error(1)
}

func (m *mockEventService) GetEventByID(ctx context.Context, id string) (Event, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(Event)
	return e, args.Error(1)
}

func (m *mockEventService) ListOptions(ctx context.Context) (EventOptions, error) {
	args := m.Called(ctx)
	opts, _ := args.Get(0).(EventOptions)
	return opts, args.Error(1)
}

func (m *mockEventService) RegisterRSVP(ctx context.Context, eventID string, req RSVPRequest) (RSVP, error) {
	args := m.Called(ctx, eventID, req)
	r, _ := args.Get(0).(RSVP)
	return r, args.Error(1)
}

func setupRouter(service EventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEventHandler(service)
	h.RegisterRoutes(r)
	return r
}

func TestEventHandler_ListEvents_ParsesQuery(t *testing.T) {
	svc := new(mockEventService)
	r := setupRouter(svc)

	svc.On("SearchEvents", mock.Anything, mock.MatchedBy(func(c Criteria) bool {
		return c.DemoDaysOnly &&
			c.Date != nil && c.Date.Equal(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)) &&
			len(c.Types) == 2 && c.Types[0] == "Workshop" && c.Types[1] == "Demo Day"
	})).Return(EventList{Items: []Event{}, Total: 5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/events?date=2025-03-15&demo_day=true&type=Workshop&type=Demo%20Day", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestEventHandler_ListEvents_BadDate(t *testing.T) {
	svc := new(mockEventService)
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/events?date=15-03-2025", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SearchEvents", mock.Anything, mock.Anything)
}

func TestEventHandler_RSVP_Created(t *testing.T) {
	svc := new(mockEventService)
	r := setupRouter(svc)

	svc.On("RegisterRSVP", mock.Anything, "e1", mock.MatchedBy(func(req RSVPRequest) bool {
		return req.Email == "ada@example.com" && req.IsInvestor == InvestorNo
	})).Return(RSVP{ID: "r1", EventID: "e1"}, nil)

	body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","is_investor":"no"}`
	req := httptest.NewRequest(http.MethodPost, "/events/e1/rsvp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "rsvp confirmed", resp.Message)
}

func TestEventHandler_RSVP_BindingErrors(t *testing.T) {
	svc := new(mockEventService)
	r := setupRouter(svc)

	cases := []string{
		`{"first_name":"Ada","last_name":"Lovelace","email":"not-an-email","is_investor":"no"}`,
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","is_investor":"maybe"}`,
		`{"last_name":"Lovelace","email":"ada@example.com","is_investor":"no"}`,
		`{bad json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/events/e1/rsvp", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	svc.AssertNotCalled(t, "RegisterRSVP", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventHandler_RSVP_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrEventNotFound, http.StatusNotFound},
		{ErrEventFull, http.StatusConflict},
		{ErrAlreadyRegistered, http.StatusConflict},
		{ErrRSVPDisabled, http.StatusServiceUnavailable},
		{RSVPRequest{IsInvestor: InvestorYes, FirstName: "a", LastName: "b"}.Validate(), http.StatusBadRequest},
	}

	for _, tc := range cases {
		svc := new(mockEventService)
		r := setupRouter(svc)
		svc.On("RegisterRSVP", mock.Anything, "e1", mock.Anything).Return(RSVP{}, tc.err)

		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","is_investor":"no"}`
		req := httptest.NewRequest(http.MethodPost, "/events/e1/rsvp", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		require.Equal(t, tc.code, w.Code, tc.err.Error())
	}
}

func TestEventHandler_GetEvent_NotFound(t *testing.T) {
	svc := new(mockEventService)
	r := setupRouter(svc)

	svc.On("GetEventByID", mock.Anything, "missing").Return(Event{}, ErrEventNotFound)

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
