package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/bulk"
)

// Service validates doctor records and applies the entity's bulk policy.
// Doctors use the atomic policy: one invalid record rejects the batch.
type Service struct {
	repo   Repository
	policy bulk.Policy
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, policy: bulk.Atomic}
}

// BulkPolicy returns the configured bulk-insert policy.
func (s *Service) BulkPolicy() bulk.Policy { return s.policy }

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, d)
}

// CreateMany inserts a batch of doctors. Validation failures reject the
// whole batch before anything is written; the insert itself is one
// transaction.
func (s *Service) CreateMany(ctx context.Context, ds []*Doctor) ([]*Doctor, error) {
	for i, d := range ds {
		if d == nil {
			return nil, apperr.Validationf("doctor %d: record is null", i)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("doctor %d: %w", i, err)
		}
	}
	if err := s.repo.CreateMany(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}
