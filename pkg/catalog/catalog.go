// Package catalog owns the immutable record stores behind every listing.
// A Store holds one Snapshot at a time; reloads swap the whole snapshot so
// readers never observe a partially loaded catalog.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"incubator/pkg/content"
	"incubator/pkg/events"
	"incubator/pkg/jobs"
	"incubator/pkg/startups"
)

var (
	ErrDuplicateID   = errors.New("duplicate record id")
	ErrInvalidRecord = errors.New("invalid record")
)

// Data is one complete set of site collections, as produced by a Loader.
type Data struct {
	Jobs     []jobs.Job           `json:"jobs"`
	Startups []startups.Startup   `json:"startups"`
	Events   []events.Event       `json:"events"`
	Team     []content.TeamMember `json:"team"`
	FAQ      []content.FAQItem    `json:"faq"`
	Programs []content.Program    `json:"programs"`
}

type Snapshot struct {
	Data
	Version  uint64
	LoadedAt time.Time
}

var (
	_ jobs.Source     = (*Store)(nil)
	_ startups.Source = (*Store)(nil)
	_ events.Source   = (*Store)(nil)
	_ content.Source  = (*Store)(nil)
)

type Store struct {
	cur     atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// NewStore validates d and installs it as version 1.
func NewStore(d Data) (*Store, error) {
	s := &Store{}
	if _, err := s.Replace(d); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace validates d and swaps it in, returning the new version.
// On error the current snapshot is kept.
func (s *Store) Replace(d Data) (uint64, error) {
	if err := Validate(d); err != nil {
		return 0, err
	}
	snap := &Snapshot{Data: d, Version: s.version.Add(1), LoadedAt: time.Now()}
	s.cur.Store(snap)
	return snap.Version, nil
}

func (s *Store) Snapshot() *Snapshot {
	return s.cur.Load()
}

func (s *Store) Jobs() ([]jobs.Job, uint64) {
	snap := s.cur.Load()
	return snap.Jobs, snap.Version
}

func (s *Store) Startups() ([]startups.Startup, uint64) {
	snap := s.cur.Load()
	return snap.Startups, snap.Version
}

func (s *Store) Events() ([]events.Event, uint64) {
	snap := s.cur.Load()
	return snap.Events, snap.Version
}

func (s *Store) Team() []content.TeamMember { return s.cur.Load().Team }
func (s *Store) FAQ() []content.FAQItem { return s.cur.Load().FAQ }
func (s *Store) Programs() []content.Program { return s.cur.Load().Programs }

// Validate rejects collections that repeat an id or hold impossible values.
func Validate(d Data) error {
	if err := uniqueIDs("jobs", d.Jobs, func(j jobs.Job) string { return j.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("startups", d.Startups, func(s startups.Startup) string { return strconv.FormatInt(s.ID, 10) }); err != nil {
		return err
	}
	if err := uniqueIDs("events", d.Events, func(e events.Event) string { return e.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("team", d.Team, func(m content.TeamMember) string { return m.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("faq", d.FAQ, func(f content.FAQItem) string { return f.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("programs", d.Programs, func(p content.Program) string { return p.ID }); err != nil {
		return err
	}

	for _, e := range d.Events {
		if e.Capacity < 0 {
			return fmt.Errorf("%w: event %q has negative capacity", ErrInvalidRecord, e.ID)
		}
	}
	return nil
}

func uniqueIDs[T any](name string, records []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		key := id(r)
		if key == "" {
			return fmt.Errorf("%w: %s record %d has no id", ErrInvalidRecord, name, i)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s %q", ErrDuplicateID, name, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
