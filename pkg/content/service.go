package content

import (
	"context"
	"strings"

	"incubator/pkg/filter"
	"incubator/pkg/response"
)

type ContentService interface {
	ListTeam(ctx context.Context) (response.List[TeamMember], error)
	SearchFAQ(ctx context.Context, search, category string) (response.List[FAQItem], error)
	ListPrograms(ctx context.Context) (response.List[Program], error)
	GetProgram(ctx context.Context, id string) (Program, error)
}

type contentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) ListTeam(ctx context.Context) (response.List[TeamMember], error) {
	team, err := s.repo.ListTeam(ctx)
	if err != nil {
		return response.List[TeamMember]{}, err
	}
	return response.NewList(team, len(team)), nil
}

func (s *contentService) SearchFAQ(ctx context.Context, search, category string) (response.List[FAQItem], error) {
	all, err := s.repo.ListFAQ(ctx)
	if err != nil {
		return response.List[FAQItem]{}, err
	}

	var categories []string
	if category != "" {
		categories = []string{category}
	}
	items := filter.Apply(all,
		filter.Text(search, func(f FAQItem) []string { return []string{f.Question, f.Answer} }),
		filter.OneOf(categories, func(f FAQItem) string { return f.Category }),
	)
	return response.NewList(items, len(all)), nil
}

func (s *contentService) ListPrograms(ctx context.Context) (response.List[Program], error) {
	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return response.List[Program]{}, err
	}
	return response.NewList(programs, len(programs)), nil
}

// GetProgram looks a program up by id or, case-insensitively, by track name.
func (s *contentService) GetProgram(ctx context.Context, id string) (Program, error) {
	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return Program{}, err
	}
	for _, p := range programs {
		if p.ID == id || strings.EqualFold(p.Track, id) {
			return p, nil
		}
	}
	return Program{}, ErrProgramNotFound
}
