package content

import (
	"context"
	"errors"
)

var ErrProgramNotFound = errors.New("program not found")

// Source exposes the static site collections.
type Source interface {
	Team() []TeamMember
	FAQ() []FAQItem
	Programs() []Program
}

type ContentRepository interface {
	ListTeam(ctx context.Context) ([]TeamMember, error)
	ListFAQ(ctx context.Context) ([]FAQItem, error)
	ListPrograms(ctx context.Context) ([]Program, error)
}

type staticContentRepository struct {
	src Source
}

func NewStaticContentRepository(src Source) ContentRepository {
	return &staticContentRepository{src: src}
}

func (r *staticContentRepository) ListTeam(ctx context.Context) ([]TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.src.Team(), nil
}

func (r *staticContentRepository) ListFAQ(ctx context.Context) ([]FAQItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.src.FAQ(), nil
}

func (r *staticContentRepository) ListPrograms(ctx context.Context) ([]Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.src.Programs(), nil
}
