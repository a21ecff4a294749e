package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	// CreateMany inserts the whole batch in one transaction; if any insert
	// fails nothing is persisted.
	CreateMany(ctx context.Context, ds []*Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context) ([]*Doctor, error)
}
