package jobs

import (
	"context"
	"errors"
)

var ErrJobNotFound = errors.New("job not found")

// Source exposes the current job store and its load version.
type Source interface {
	Jobs() ([]Job, uint64)
}

type JobRepository interface {
	ListJobs(ctx context.Context) ([]Job, uint64, error)
	GetJobByID(ctx context.Context, id string) (Job, error)
}

type staticJobRepository struct {
	src Source
}

func NewStaticJobRepository(src Source) JobRepository {
	return &staticJobRepository{src: src}
}

func (r *staticJobRepository) ListJobs(ctx context.Context) ([]Job, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	jobs, version := r.src.Jobs()
	return jobs, version, nil
}

func (r *staticJobRepository) GetJobByID(ctx context.Context, id string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	jobs, _ := r.src.Jobs()
	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return Job{}, ErrJobNotFound
}
