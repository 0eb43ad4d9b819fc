package startups

import (
	"context"
	"sync"
)

type StartupService interface {
	SearchStartups(ctx context.Context, c Criteria) (StartupList, error)
	GetStartupByID(ctx context.Context, id int64) (Startup, error)
	ListOptions(ctx context.Context) (StartupOptions, error)
}

type startupService struct {
	repo StartupRepository

	mu      sync.Mutex
	version uint64
	opts    *StartupOptions
}

func NewStartupService(repo StartupRepository) StartupService {
	return &startupService{repo: repo}
}

func (s *startupService) SearchStartups(ctx context.Context, c Criteria) (StartupList, error) {
	all, _, err := s.repo.ListStartups(ctx)
	if err != nil {
		return StartupList{}, err
	}

	items := Filter(all, c)
	return StartupList{Items: items, Count: len(items), Total: len(all)}, nil
}

func (s *startupService) GetStartupByID(ctx context.Context, id int64) (Startup, error) {
	return s.repo.GetStartupByID(ctx, id)
}

func (s *startupService) ListOptions(ctx context.Context) (StartupOptions, error) {
	all, version, err := s.repo.ListStartups(ctx)
	if err != nil {
		return StartupOptions{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opts == nil || s.version != version {
		opts := buildOptions(all)
		s.opts, s.version = &opts, version
	}
	return *s.opts, nil
}
