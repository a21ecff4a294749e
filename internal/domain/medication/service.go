package medication

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hms/hms/internal/platform/bulk"
)

// Service validates medication records, derives status classifications on
// reads, and applies the entity's bulk policy. Medications use the
// best-effort policy: invalid records in a batch are skipped, not fatal.
type Service struct {
	repo   Repository
	policy bulk.Policy
	now    func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, policy: bulk.BestEffort, now: time.Now}
}

// BulkPolicy returns the configured bulk-insert policy.
func (s *Service) BulkPolicy() bulk.Policy { return s.policy }

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}
	m.Classify(s.now())
	return nil
}

// CreateMany inserts a batch of medications one at a time. Records that
// fail validation or insertion are logged and skipped; the returned slice
// holds only what was actually persisted.
func (s *Service) CreateMany(ctx context.Context, ms []*Medication) ([]*Medication, error) {
	today := s.now()
	saved := make([]*Medication, 0, len(ms))
	for i, m := range ms {
		if m == nil {
			log.Warn().Int("index", i).Msg("skipping null medication in batch")
			continue
		}
		if err := m.Validate(); err != nil {
			log.Warn().Err(err).Int("index", i).Str("name", m.Name).
				Msg("skipping invalid medication in batch")
			continue
		}
		if err := s.repo.Create(ctx, m); err != nil {
			log.Warn().Err(err).Int("index", i).Str("name", m.Name).
				Msg("skipping unsaved medication in batch")
			continue
		}
		m.Classify(today)
		saved = append(saved, m)
	}
	return saved, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Medication, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Classify(s.now())
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]*Medication, error) {
	ms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now()
	for _, m := range ms {
		m.Classify(today)
	}
	return ms, nil
}
