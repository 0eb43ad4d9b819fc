package jobs

import (
	"context"
	"sync"
)

type JobService interface {
	SearchJobs(ctx context.Context, c Criteria) (JobList, error)
	GetJobByID(ctx context.Context, id string) (Job, error)
	ListOptions(ctx context.Context) (JobOptions, error)
}

// derived holds the aggregates computed once per store version.
type derived struct {
	version uint64
	stats   Stats
	options JobOptions
}

type jobService struct {
	repo JobRepository

	mu  sync.Mutex
	agg *derived
}

func NewJobService(repo JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) SearchJobs(ctx context.Context, c Criteria) (JobList, error) {
	all, version, err := s.repo.ListJobs(ctx)
	if err != nil {
		return JobList{}, err
	}

	items := Filter(all, c)
	return JobList{
		Items: items,
		Count: len(items),
		Total: len(all),
		Stats: s.aggregates(all, version).stats,
	}, nil
}

func (s *jobService) GetJobByID(ctx context.Context, id string) (Job, error) {
	return s.repo.GetJobByID(ctx, id)
}

func (s *jobService) ListOptions(ctx context.Context) (JobOptions, error) {
	all, version, err := s.repo.ListJobs(ctx)
	if err != nil {
		return JobOptions{}, err
	}
	return s.aggregates(all, version).options, nil
}

func (s *jobService) aggregates(all []Job, version uint64) *derived {
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
