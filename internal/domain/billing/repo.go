package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/hms/hms/pkg/money"
)

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	List(ctx context.Context) ([]*Bill, error)
	// AddPayment applies the increment and status change in a single
	// guarded write, so two racing payments against one bill can never
	// lose an update. It fails with NotFound for an unknown bill and
	// InvalidPayment when the increment would overdraw the total.
	AddPayment(ctx context.Context, id uuid.UUID, amount money.Cents) (*Bill, error)
}
