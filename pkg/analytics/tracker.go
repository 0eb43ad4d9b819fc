package analytics

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"incubator/pkg/logging"
)

var ErrNoVariants = errors.New("at least one variant is required")

// Tracker records site events. Recording is fire-and-forget: store failures
// are logged and never returned to the caller.
type Tracker struct {
	store Store
	log   *logging.Logger
	now   func() time.Time
}

func NewTracker(store Store, log *logging.Logger) *Tracker {
	if log == nil {
		log = logging.NewNop()
	}
	return &Tracker{store: store, log: log.Named("analytics"), now: time.Now}
}

// Identify fills in missing user and session ids.
func Identify(id Identity) Identity {
	if id.UserID == "" {
		id.UserID = "user_" + uuid.NewString()
	}
	if id.SessionID == "" {
		id.SessionID = "session_" + uuid.NewString()
	}
	return id
}

// Track stamps e and appends it to the log. The stamped event is returned.
func (t *Tracker) Track(ctx context.Context, id Identity, e Event) Event {
	id = Identify(id)
	e.UserID = id.UserID
	e.SessionID = id.SessionID
	e.Timestamp = t.now().UnixMilli()

	t.log.Debug("analytics event", "action", e.Action, "category", e.Category, "label", e.Label, "variant", e.Variant)
	if err := t.store.Append(ctx, e); err != nil {
		t.log.Error("failed to store analytics event", "action", e.Action, "error", err)
	}
	return e
}

func (t *Tracker) TrackCTAClick(ctx context.Context, id Identity, cta, variant, page string) Event {
	return t.Track(ctx, id, Event{Action: ActionCTAClick, Category: CategoryEngagement, Label: cta, Variant: variant, Page: page})
}

// TrackHeroCTA records a hero button click; variant is one of apply_now,
// learn_more, join_mentor or explore_startups.
func (t *Tracker) TrackHeroCTA(ctx context.Context, id Identity, variant string) Event {
	return t.Track(ctx, id, Event{Action: ActionHeroCTAClick, Category: CategoryConversion, Label: "hero_section", Variant: variant})
}

func (t *Tracker) TrackNavigation(ctx context.Context, id Identity, page, source string) Event {
	return t.Track(ctx, id, Event{Action: ActionPageView, Category: CategoryNavigation, Label: page, Variant: source})
}

func (t *Tracker) TrackFormSubmission(ctx context.Context, id Identity, form string, success bool) Event {
	action := ActionFormSubmitSuccess
	if !success {
		action = ActionFormSubmitError
	}
	return t.Track(ctx, id, Event{Action: action, Category: CategoryConversion, Label: form})
}

func (t *Tracker) TrackSearch(ctx context.Context, id Identity, query string, results int, category string) Event {
	v := float64(results)
	return t.Track(ctx, id, Event{Action: ActionSearch, Category: CategoryEngagement, Label: query, Value: &v, Variant: category})
}

func (t *Tracker) TrackFileDownload(ctx context.Context, id Identity, file, fileType string) Event {
	return t.Track(ctx, id, Event{Action: ActionFileDownload, Category: CategoryEngagement, Label: file, Variant: fileType})
}

// TrackChatbotInitialized records that the chat assistant came up.
func (t *Tracker) TrackChatbotInitialized(ctx context.Context, backend string) Event {
	return t.Track(ctx, Identity{UserID: "system", SessionID: "startup"},
		Event{Action: ActionChatbotInit, Category: CategoryEngagement, Label: backend})
}

// Variant returns the sticky A/B variant of userID for test. A stored
// assignment wins while it is still one of variants; otherwise the hash picks
// one, it is saved and an ab_variant_assigned event is recorded.
func (t *Tracker) Variant(ctx context.Context, id Identity, test string, variants []string) (Assignment, error) {
	if len(variants) == 0 {
		return Assignment{}, ErrNoVariants
	}
	id = Identify(id)

	existing, ok, err := t.store.Variant(ctx, id.UserID, test)
	if err != nil {
		t.log.Warn("variant lookup failed", "test", test, "error", err)
	}
	if ok && slices.Contains(variants, existing) {
		return Assignment{Test: test, Variant: existing, UserID: id.UserID}, nil
	}

	selected := Pick(id.UserID, test, variants)
	if err := t.store.SaveVariant(ctx, id.UserID, test, selected); err != nil {
		t.log.Error("failed to save variant", "test", test, "error", err)
	}
	t.Track(ctx, id, Event{Action: ActionVariantAssigned, Category: CategoryABTesting, Label: test, Variant: selected})

	return Assignment{Test: test, Variant: selected, UserID: id.UserID}, nil
}

// Report summarizes the last days days of events. days <= 0 means 7.
func (t *Tracker) Report(ctx context.Context, days int) (Report, error) {
	if days <= 0 {
		days = 7
	}
	days = min(days, MaxReportDays)
	now := t.now()
	events, err := t.store.Since(ctx, now.Add(-time.Duration(days)*24*time.Hour))
	if err != nil {
		return Report{}, err
	}
	return BuildReport(events, days, now.Location()), nil
}
