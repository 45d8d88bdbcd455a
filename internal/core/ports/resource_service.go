package ports

import (
	"context"

	"github.com/musicadmin/content-api/internal/core/domain"
)

// ResourceService is the use-case surface shared by every content collection.
// C is the create payload, U the partial update payload.
type ResourceService[R domain.Record, C any, U any] interface {
	// Label is the human readable singular name, e.g. "Service".
	Label() string
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id string) (R, error)
	Create(ctx context.Context, input C) (R, error)
	Update(ctx context.Context, id string, input U) (R, error)
	Delete(ctx context.Context, id string) error
}
