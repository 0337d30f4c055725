package catalog

import (
	"context"
	"testing"

	"buildconnect/internal/database/dbtest"
	"buildconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seeded(t *testing.T) *Service {
	t.Helper()
	svc := NewService(repository.NewCategoryRepository(dbtest.Open(t)), zap.NewNop())
	require.NoError(t, svc.Seed(context.Background()))
	return svc
}

func TestSeed_Idempotent(t *testing.T) {
	svc := seeded(t)
	require.NoError(t, svc.Seed(context.Background()))

	list, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, len(DefaultCategories()))
}

func TestSearchCategories(t *testing.T) {
	svc := seeded(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query SearchQuery
		slugs []string
	}{
		{"no filter", SearchQuery{}, nil},
		{"by slug", SearchQuery{Category: "security-safety"}, []string{"security-safety"}},
		{"unknown slug", SearchQuery{Category: "gardening"}, []string{}},
		{"service name any case", SearchQuery{Query: "PLUMBER"}, []string{"repair-maintenance"}},
		{"description", SearchQuery{Query: "spotless"}, []string{"cleaning-housekeeping"}},
		{"slug and query disagree", SearchQuery{Category: "office-services", Query: "plumber"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.SearchCategories(ctx, tt.query)
			require.NoError(t, err)

			if tt.slugs == nil {
				assert.Len(t, list, len(DefaultCategories()))
				return
			}
			got := make([]string, 0, len(list))
			for _, c := range list {
				got = append(got, c.Slug)
			}
			assert.ElementsMatch(t, tt.slugs, got)
		})
	}
}
