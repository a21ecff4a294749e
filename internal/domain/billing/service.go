package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hms/hms/internal/platform/apperr"
	"github.com/hms/hms/internal/platform/bulk"
	"github.com/hms/hms/pkg/money"
)

// Service owns bill construction and payment recording. Bills use the
// best-effort bulk policy: invalid records in a batch are skipped, not
// fatal.
type Service struct {
	repo   Repository
	policy bulk.Policy
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, policy: bulk.BestEffort}
}

// BulkPolicy returns the configured bulk-insert policy.
func (s *Service) BulkPolicy() bulk.Policy { return s.policy }

// Create validates the caller-supplied fields, computes the derived
// monetary fields, and persists the bill. Caller-supplied totalAmount or
// status are ignored.
func (s *Service) Create(ctx context.Context, b *Bill) error {
	if err := b.ValidateInput(); err != nil {
		return err
	}
	if err := Compute(b); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

// CreateMany inserts a batch of bills one at a time. Records that fail
// validation or insertion are logged and skipped; the returned slice
// holds only what was actually persisted.
func (s *Service) CreateMany(ctx context.Context, bs []*Bill) ([]*Bill, error) {
	saved := make([]*Bill, 0, len(bs))
	for i, b := range bs {
		if b == nil {
			log.Warn().Int("index", i).Msg("skipping null bill in batch")
			continue
		}
		if err := s.Create(ctx, b); err != nil {
			log.Warn().Err(err).Int("index", i).Str("patientName", b.PatientName).
				Msg("skipping unsaved bill in batch")
			continue
		}
		saved = append(saved, b)
	}
	return saved, nil
}

// RecordPayment applies a positive payment to a bill. The increment and
// the status change happen in one atomic repository write; a failed
// payment leaves the bill untouched.
func (s *Service) RecordPayment(ctx context.Context, id uuid.UUID, amount money.Cents) (*Bill, error) {
	if amount <= 0 {
		return nil, apperr.InvalidPaymentf("payment amount must be positive")
	}
	return s.repo.AddPayment(ctx, id, amount)
}

// Get returns a stored bill after checking its derived fields still
// hold. A mismatch means storage-level corruption and surfaces as an
// internal error rather than being silently repaired.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := VerifyDerived(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]*Bill, error) {
	return s.repo.List(ctx)
}
