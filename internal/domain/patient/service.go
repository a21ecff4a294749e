package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/bulk"
)

// Service validates patient records and applies the entity's bulk policy.
// Patients use the atomic policy: one invalid record rejects the batch.
type Service struct {
	repo   Repository
	policy bulk.Policy
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, policy: bulk.Atomic}
}

// BulkPolicy returns the configured bulk-insert policy.
func (s *Service) BulkPolicy() bulk.Policy { return s.policy }

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

// CreateMany inserts a batch of patients. Validation failures reject the
// whole batch before anything is written; the insert itself is one
// transaction.
func (s *Service) CreateMany(ctx context.Context, ps []*Patient) ([]*Patient, error) {
	for i, p := range ps {
		if p == nil {
			return nil, apperr.Validationf("patient %d: record is null", i)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("patient %d: %w", i, err)
		}
	}
	if err := s.repo.CreateMany(ctx, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}
