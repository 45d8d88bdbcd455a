package ports

import (
	"context"

	"github.com/musicadmin/content-api/internal/core/domain"
)

// ResourceRepository persists one content collection. Implementations map a
// missing or malformed id to domain.ErrNotFound.
type ResourceRepository[R domain.Record] interface {
	// List returns records newest first. When activeOnly is set only records
	// with isActive=true are returned.
	List(ctx context.Context, activeOnly bool) ([]R, error)
	FindByID(ctx context.Context, id string) (R, error)
	// Insert stamps the record and returns it as stored, with its new id.
	Insert(ctx context.Context, record R) (R, error)
	// Update applies changes and returns the record as stored afterwards.
	Update(ctx context.Context, id string, changes domain.Changes) (R, error)
	Delete(ctx context.Context, id string) error
}
