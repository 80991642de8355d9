package companies

import (
	"context"

	"policymind/internal/domain"
	"policymind/internal/ports"
)

// Service resolves the company a caller acts for.
type Service struct {
	members ports.MembershipRepository
}

func New(members ports.MembershipRepository) *Service { return &Service{members: members} }

// CompanyID returns the company of the caller's earliest membership, or
// domain.ErrNoCompany.
func (s *Service) CompanyID(ctx context.Context, userID string) (string, error) {
	m, found, err := s.members.EarliestMembership(ctx, userID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", domain.ErrNoCompany
	}
	return m.CompanyID, nil
}
