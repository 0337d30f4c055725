package catalog

import (
	"context"

	"buildconnect/internal/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.ServiceCategory, error)
	Upsert(ctx context.Context, c *domain.ServiceCategory) error
}
