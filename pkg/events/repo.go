package events

import (
	"context"
	"errors"
)

var ErrEventNotFound = errors.New("event not found")

// Source exposes the current event store and its load version.
type Source interface {
	Events() ([]Event, uint64)
}

type EventRepository interface {
	ListEvents(ctx context.Context) ([]Event, uint64, error)
	GetEventByID(ctx context.Context, id string) (Event, error)
}

type staticEventRepository struct {
	src Source
}

func NewStaticEventRepository(src Source) EventRepository {
	return &staticEventRepository{src: src}
}

func (r *staticEventRepository) ListEvents(ctx context.Context) ([]Event, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	all, version := r.src.Events()
	return all, version, nil
}

func (r *staticEventRepository) GetEventByID(ctx context.Context, id string) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	all, _ := r.src.Events()
	for _, e := range all {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrEventNotFound
}
