package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	// CreateMany inserts the whole batch in one transaction; if any insert
	// fails nothing is persisted.
	CreateMany(ctx context.Context, ps []*Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
}
