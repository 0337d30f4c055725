package catalog

import (
	"context"
	"strings"

	"buildconnect/internal/domain"

	"go.uber.org/zap"
)

type Service struct {
	categories CategoryRepository
	log        *zap.Logger
}

func NewService(categories CategoryRepository, log *zap.Logger) *Service {
	return &Service{categories: categories, log: log}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	return s.categories.List(ctx)
}

// SearchCategories filters by exact slug, then by a case-insensitive match of
// the query against name, description and service names.
func (s *Service) SearchCategories(ctx context.Context, q SearchQuery) ([]domain.ServiceCategory, error) {
	all, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(q.Category)
	needle := strings.ToLower(strings.TrimSpace(q.Query))

	out := make([]domain.ServiceCategory, 0, len(all))
	for _, c := range all {
		if slug != "" && c.Slug != slug {
			continue
		}
		if needle != "" && !matches(c, needle) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func matches(c domain.ServiceCategory, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle) {
		return true
	}
	for _, svc := range c.Services {
		if strings.Contains(strings.ToLower(svc), needle) {
			return true
		}
	}
	return false
}
