package ports

import (
	"context"
	"time"

	"policymind/internal/domain"
)

// MembershipRepository resolves which company a caller belongs to.
type MembershipRepository interface {
	// EarliestMembership returns the caller's oldest membership; found is false when none exists.
	EarliestMembership(ctx context.Context, userID string) (m domain.Membership, found bool, err error)
}

// BriefingRepository persists briefings. Every lookup is keyed by id and
// company id together so foreign records read as missing.
type BriefingRepository interface {
	Insert(ctx context.Context, b domain.Briefing) error
	Get(ctx context.Context, id, companyID string) (domain.Briefing, error)
	// Mutate loads, applies fn and writes back as one atomic step.
	Mutate(ctx context.Context, id, companyID string, fn func(*domain.Briefing) error) (domain.Briefing, error)
	Delete(ctx context.Context, id, companyID string) error
	List(ctx context.Context, companyID string, archived bool) ([]domain.Briefing, error)
}

// ProfileRepository stores one onboarding profile per company.
type ProfileRepository interface {
	// Upsert updates the profile of the caller's earliest company, or creates the
	// company and an owner membership, all in one transaction.
	Upsert(ctx context.Context, caller domain.Identity, p domain.CompanyProfile, now time.Time) (domain.CompanyProfile, error)
	GetByUser(ctx context.Context, userID string) (p domain.CompanyProfile, found bool, err error)
	GetByCompany(ctx context.Context, companyID string) (p domain.CompanyProfile, found bool, err error)
}
