package profiles

import (
	"context"
	"fmt"
	"strings"
	"time"

	"policymind/internal/domain"
	"policymind/internal/ports"
)

type Service struct {
	repo ports.ProfileRepository
	now  func() time.Time
}

func New(repo ports.ProfileRepository) *Service { return &Service{repo: repo, now: time.Now} }

// Save validates p and upserts it for the caller's company.
func (s *Service) Save(ctx context.Context, caller domain.Identity, p domain.CompanyProfile) (domain.CompanyProfile, error) {
	if caller.Subject == "" {
		return domain.CompanyProfile{}, domain.ErrUnauthenticated
	}
	if err := Validate(p); err != nil {
		return domain.CompanyProfile{}, err
	}
	return s.repo.Upsert(ctx, caller, p, s.now().UTC())
}

// Get returns the caller's profile; found is false before onboarding.
func (s *Service) Get(ctx context.Context, userID string) (domain.CompanyProfile, bool, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Draft returns the caller's saved profile, or the seeded starting profile
// when they have not onboarded yet.
func (s *Service) Draft(ctx context.Context, userID string) (domain.CompanyProfile, error) {
	p, found, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return domain.CompanyProfile{}, err
	}
	if !found {
		return domain.DraftProfile(), nil
	}
	return p, nil
}

// Validate checks the required strings, enum values and array shapes.
func Validate(p domain.CompanyProfile) error {
	required := []struct {
		field, value string
	}{
		{"companyName", p.CompanyName},
		{"hqCountry", p.HQCountry},
		{"employeeCount", p.EmployeeCount},
		{"riskStance", string(p.RiskStance)},
		{"notificationChannel", string(p.NotificationChannel)},
		{"summaryFocus", string(p.SummaryFocus)},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid("Missing or invalid field: %s", r.field)
		}
	}
	if !domain.RiskStances.Valid(p.RiskStance) {
		return invalid("Missing or invalid field: riskStance")
	}
	if !domain.NotificationChannels.Valid(p.NotificationChannel) {
		return invalid("Missing or invalid field: notificationChannel")
	}
	if !domain.SummaryCadences.Valid(p.SummaryFocus) {
		return invalid("Missing or invalid field: summaryFocus")
	}
	if p.Sectors == nil {
		return invalid("Sectors must be an array.")
	}
	if p.RegulatorFeeds == nil {
		return invalid("Regulator feeds must be an array.")
	}
	if p.PolicySnapshots == nil {
		return invalid("Policy snapshots must be an array.")
	}
	for i, snap := range p.PolicySnapshots {
		if domain.ParsePolicyMaturity(string(snap.Maturity)) != snap.Maturity {
			return invalid("Policy snapshot %d has invalid maturity %q", i, snap.Maturity)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return &domain.ValidationError{Msg: fmt.Sprintf(format, args...)}
}
