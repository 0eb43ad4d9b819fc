package startups

import (
	"context"
	"errors"
)

var ErrStartupNotFound = errors.New("startup not found")

// Source exposes the current portfolio store and its load version.
type Source interface {
	Startups() ([]Startup, uint64)
}

type StartupRepository interface {
	ListStartups(ctx context.Context) ([]Startup, uint64, error)
	GetStartupByID(ctx context.Context, id int64) (Startup, error)
}

type staticStartupRepository struct {
	src Source
}

func NewStaticStartupRepository(src Source) StartupRepository {
	return &staticStartupRepository{src: src}
}

func (r *staticStartupRepository) ListStartups(ctx context.Context) ([]Startup, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	all, version := r.src.Startups()
	return all, version, nil
}

func (r *staticStartupRepository) GetStartupByID(ctx context.Context, id int64) (Startup, error) {
	if err := ctx.Err(); err != nil {
		return Startup{}, err
	}
	all, _ := r.src.Startups()
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return Startup{}, ErrStartupNotFound
}
