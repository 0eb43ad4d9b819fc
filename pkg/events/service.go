package events

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"incubator/pkg/logging"
	"incubator/pkg/sendemail"
)

const mailTimeout = 10 * time.Second

type EventService interface {
	SearchEvents(ctx context.Context, c Criteria) (EventList, error)
	GetEventByID(ctx context.Context, id string) (Event, error)
	ListOptions(ctx context.Context) (EventOptions, error)
	RegisterRSVP(ctx context.Context, eventID string, req RSVPRequest) (RSVP, error)
}

type derived struct {
	version uint64
	stats   Stats
	options EventOptions
}

type eventService struct {
	repo  EventRepository
	rsvps RSVPRepository
	mail  sendemail.EmailService
	log   *logging.Logger

	mu  sync.Mutex
	agg *derived
}

// NewEventService builds the calendar service. rsvps may be nil, in which
// case RegisterRSVP reports ErrRSVPDisabled.
func NewEventService(repo EventRepository, rsvps RSVPRepository, mail sendemail.EmailService, log *logging.Logger) EventService {
	if log == nil {
		log = logging.NewNop()
	}
	return &eventService{repo: repo, rsvps: rsvps, mail: mail, log: log.Named("events")}
}

func (s *eventService) SearchEvents(ctx context.Context, c Criteria) (EventList, error) {
	all, version, err := s.repo.ListEvents(ctx)
	if err != nil {
		return EventList{}, err
	}

	items := s.withStoredRSVPs(ctx, Filter(all, c))
	return EventList{
		Items: items,
		Count: len(items),
		Total: len(all),
		Stats: s.aggregates(all, version).stats,
	}, nil
}

// GetEventByID adds stored RSVPs to the registered count when RSVPs are enabled.
func (s *eventService) GetEventByID(ctx context.Context, id string) (Event, error) {
	e, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if s.rsvps == nil {
		return e, nil
	}

	n, err := s.rsvps.CountRSVPs(ctx, id)
	if err != nil {
		s.log.Warn("count rsvps failed", "event_id", id, "error", err)
		return e, nil
	}
	e.Registered += n
	return e, nil
}

// withStoredRSVPs adds stored RSVPs to each item's registered count with a
// single grouped query. items must not alias the catalog snapshot.
func (s *eventService) withStoredRSVPs(ctx context.Context, items []Event) []Event {
	if s.rsvps == nil || len(items) == 0 {
		return items
	}
	counts, err := s.rsvps.CountRSVPsByEvent(ctx)
	if err != nil {
		s.log.Warn("count rsvps failed", "error", err)
		return items
	}
	for i := range items {
		items[i].Registered += counts[items[i].ID]
	}
	return items
}

func (s *eventService) ListOptions(ctx context.Context) (EventOptions, error) {
	all, version, err := s.repo.ListEvents(ctx)
	if err != nil {
		return EventOptions{}, err
	}
	return s.aggregates(all, version).options, nil
}

func (s *eventService) RegisterRSVP(ctx context.Context, eventID string, req RSVPRequest) (RSVP, error) {
	if err := req.Validate(); err != nil {
		return RSVP{}, err
	}

	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return RSVP{}, err
	}
	if s.rsvps == nil {
		return RSVP{}, ErrRSVPDisabled
	}
	if event.Full() {
		return RSVP{}, ErrEventFull
	}

	rsvp := RSVP{
		ID:                  uuid.NewString(),
		EventID:             event.ID,
		FirstName:           strings.TrimSpace(req.FirstName),
		LastName:            strings.TrimSpace(req.LastName),
		Email:               strings.ToLower(strings.TrimSpace(req.Email)),
		Company:             req.Company,
		Role:                req.Role,
		IsInvestor:          req.IsInvestor == InvestorYes,
		DietaryRestrictions: req.DietaryRestrictions,
		Questions:           req.Questions,
	}
	if rsvp.IsInvestor {
		rsvp.FundName = strings.TrimSpace(req.FundName)
	}

	created, err := s.rsvps.CreateRSVP(ctx, rsvp, event.Capacity-event.Registered)
	if err != nil {
		return RSVP{}, err
	}

	s.confirm(ctx, event, created)
	return created, nil
}

// confirm mails the attendee. Failures are logged only.
func (s *eventService) confirm(ctx context.Context, event Event, r RSVP) {
	if s.mail == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailTimeout)
	defer cancel()

	subject := fmt.Sprintf("RSVP Confirmed: %s", event.Title)
	text := fmt.Sprintf("Hi %s, you're registered for %s on %s at %s (%s).",
		r.FirstName, event.Title, event.Date, event.Time, event.Location)
	html := fmt.Sprintf("<p>Hi %s,</p><p>You're registered for <strong>%s</strong> on %s at %s (%s).</p>",
		r.FirstName, event.Title, event.Date, event.Time, event.Location)

	if err := s.mail.SendEmail(ctx, subject, r.Email, text, html); err != nil {
		s.log.Warn("rsvp confirmation not sent", "event_id", event.ID, "rsvp_id", r.ID, "error", err)
	}
}

func (s *eventService) aggregates(all []Event, version uint64) *derived {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.agg == nil || s.agg.version != version {
		s.agg = &derived{
			version: version,
			stats:   computeStats(all),
			options: buildOptions(all),
		}
	}
	return s.agg
}
