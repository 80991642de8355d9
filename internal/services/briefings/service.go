package briefings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"policymind/internal/domain"
	"policymind/internal/ports"
)

// Service owns the briefing lifecycle. Every method takes the caller's
// company id; records of other companies behave as missing.
type Service struct {
	repo ports.BriefingRepository
	now  func() time.Time
}

func New(repo ports.BriefingRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create stores a NEW, active briefing from an analysis.
func (s *Service) Create(ctx context.Context, companyID string, a domain.Analysis) (domain.Briefing, error) {
	now := s.now().UTC()
	b := domain.Briefing{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		Title:         a.Title,
		Summary:       a.Summary,
		ActionItems:   nonNil(a.ActionItems),
		NotifiedTeams: nonNil(a.NotifiedTeams),
		RiskLevel:     domain.ParseRiskLevel(string(a.RiskLevel)),
		Status:        domain.StatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return domain.Briefing{}, err
	}
	return b, nil
}

// Update applies a status change and/or unarchive request atomically.
func (s *Service) Update(ctx context.Context, companyID, id string, u domain.BriefingUpdate) (domain.Briefing, error) {
	if err := u.Validate(); err != nil {
		return domain.Briefing{}, err
	}
	return s.repo.Mutate(ctx, id, companyID, func(b *domain.Briefing) error {
		u.Apply(b, s.now().UTC())
		return nil
	})
}

// SetStatus parses status and applies it; DONE archives, anything else un-archives.
func (s *Service) SetStatus(ctx context.Context, companyID, id, status string) (domain.Briefing, error) {
	st, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Briefing{}, err
	}
	return s.Update(ctx, companyID, id, domain.BriefingUpdate{Status: &st})
}

// Unarchive clears the archive flag, demoting DONE to ASSIGNED.
func (s *Service) Unarchive(ctx context.Context, companyID, id string) (domain.Briefing, error) {
	return s.Update(ctx, companyID, id, domain.BriefingUpdate{Unarchive: true})
}

// Delete removes the briefing permanently.
func (s *Service) Delete(ctx context.Context, companyID, id string) error {
	return s.repo.Delete(ctx, id, companyID)
}

func (s *Service) Get(ctx context.Context, companyID, id string) (domain.Briefing, error) {
	return s.repo.Get(ctx, id, companyID)
}

// List returns active briefings newest first, or archived ones most recently
// archived first.
func (s *Service) List(ctx context.Context, companyID string, archived bool) ([]domain.Briefing, error) {
	return s.repo.List(ctx, companyID, archived)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
