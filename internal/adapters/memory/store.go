// Package memory is an in-process implementation of the repository ports,
// used for STORE_DRIVER=memory and in tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"policymind/internal/domain"
)

type Store struct {
	mu        sync.Mutex
	users     map[string]domain.Identity
	companies map[string]domain.Company
	profiles  map[string]domain.CompanyProfile // by company id
	members   []domain.Membership
	briefings map[string]domain.Briefing
}

func New() *Store {
	return &Store{
		users:     map[string]domain.Identity{},
		companies: map[string]domain.Company{},
		profiles:  map[string]domain.CompanyProfile{},
		briefings: map[string]domain.Briefing{},
	}
}

// AddMembership links a user to a company directly. Tests use it to set up
// multi-member companies.
func (s *Store) AddMembership(m domain.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, m)
}

// MembershipRepository

func (s *Store) EarliestMembership(_ context.Context, userID string) (domain.Membership, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.earliest(userID)
	return m, ok, nil
}

func (s *Store) earliest(userID string) (domain.Membership, bool) {
	var best domain.Membership
	found := false
	for _, m := range s.members {
		if m.UserID != userID {
			continue
		}
		if !found || m.CreatedAt.Before(best.CreatedAt) {
			best, found = m, true
		}
	}
	return best, found
}

// ProfileRepository

func (s *Store) Upsert(_ context.Context, caller domain.Identity, p domain.CompanyProfile, now time.Time) (domain.CompanyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.users[caller.Subject]
	u.Subject = caller.Subject
	if caller.Email != "" {
		u.Email = caller.Email
	}
	if caller.Name != "" {
		u.Name = caller.Name
	}
	if caller.Picture != "" {
		u.Picture = caller.Picture
	}
	s.users[caller.Subject] = u

	p.UpdatedAt = now
	if m, ok := s.earliest(caller.Subject); ok {
		c := s.companies[m.CompanyID]
		c.Name = p.CompanyName
		s.companies[m.CompanyID] = c
		s.profiles[m.CompanyID] = clone(p)
		return p, nil
	}

	id := uuid.NewString()
	s.companies[id] = domain.Company{ID: id, Name: p.CompanyName, CreatedByUserID: caller.Subject, CreatedAt: now}
	s.profiles[id] = clone(p)
	s.members = append(s.members, domain.Membership{
		UserID: caller.Subject, CompanyID: id, Role: domain.RoleOwner, Status: domain.MemberActive, CreatedAt: now,
	})
	return p, nil
}

func (s *Store) GetByUser(_ context.Context, userID string) (domain.CompanyProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.earliest(userID)
	if !ok {
		return domain.CompanyProfile{}, false, nil
	}
	p, ok := s.profiles[m.CompanyID]
	return clone(p), ok, nil
}

func (s *Store) GetByCompany(_ context.Context, companyID string) (domain.CompanyProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[companyID]
	return clone(p), ok, nil
}

// BriefingRepository

func (s *Store) Insert(_ context.Context, b domain.Briefing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.briefings[b.ID] = cloneBriefing(b)
	return nil
}

func (s *Store) Get(_ context.Context, id, companyID string) (domain.Briefing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.briefings[id]
	if !ok || b.CompanyID != companyID {
		return domain.Briefing{}, domain.ErrNotFound
	}
	return cloneBriefing(b), nil
}

func (s *Store) Mutate(_ context.Context, id, companyID string, fn func(*domain.Briefing) error) (domain.Briefing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.briefings[id]
	if !ok || b.CompanyID != companyID {
		return domain.Briefing{}, domain.ErrNotFound
	}
	b = cloneBriefing(b)
	if err := fn(&b); err != nil {
		return domain.Briefing{}, err
	}
	s.briefings[id] = b
	return cloneBriefing(b), nil
}

func (s *Store) Delete(_ context.Context, id, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.briefings[id]
	if !ok || b.CompanyID != companyID {
		return domain.ErrNotFound
	}
	delete(s.briefings, id)
	return nil
}

func (s *Store) List(_ context.Context, companyID string, archived bool) ([]domain.Briefing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Briefing{}
	for _, b := range s.briefings {
		if b.CompanyID == companyID && b.Archived() == archived {
			out = append(out, cloneBriefing(b))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if archived {
			return out[i].ArchivedAt.After(*out[j].ArchivedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func clone(p domain.CompanyProfile) domain.CompanyProfile {
	p.Sectors = slices.Clone(p.Sectors)
	p.RegulatorFeeds = slices.Clone(p.RegulatorFeeds)
	p.PolicySnapshots = slices.Clone(p.PolicySnapshots)
	return p
}

func cloneBriefing(b domain.Briefing) domain.Briefing {
	b.ActionItems = slices.Clone(b.ActionItems)
	b.NotifiedTeams = slices.Clone(b.NotifiedTeams)
	if b.ArchivedAt != nil {
		t := *b.ArchivedAt
		b.ArchivedAt = &t
	}
	return b
}
