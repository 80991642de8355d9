package memory

import (
	"context"
	"testing"
	"time"

	"policymind/internal/domain"
)

func TestEarliestMembershipWins(t *testing.T) {
	t.Parallel()

	s := New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.AddMembership(domain.Membership{UserID: "u1", CompanyID: "late", CreatedAt: base.Add(time.Hour)})
	s.AddMembership(domain.Membership{UserID: "u1", CompanyID: "early", CreatedAt: base})
	s.AddMembership(domain.Membership{UserID: "u2", CompanyID: "other", CreatedAt: base.Add(-time.Hour)})

	m, found, err := s.EarliestMembership(context.Background(), "u1")
	if err != nil || !found || m.CompanyID != "early" {
		t.Fatalf("EarliestMembership() = %+v, %v, %v; want early", m, found, err)
	}
	if _, found, _ := s.EarliestMembership(context.Background(), "nobody"); found {
		t.Fatal("EarliestMembership(nobody) found = true")
	}
}

func TestUpsertCreatesOnceThenUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	caller := domain.Identity{Subject: "u1", Email: "owner@acme.test"}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := domain.CompanyProfile{CompanyName: "Acme", Sectors: []string{}, RegulatorFeeds: []string{}, PolicySnapshots: []domain.PolicySnapshot{}}

	if _, err := s.Upsert(ctx, caller, p, now); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	first, _, _ := s.EarliestMembership(ctx, "u1")
	if first.Role != domain.RoleOwner || first.Status != domain.MemberActive {
		t.Fatalf("membership = %+v, want OWNER/ACTIVE", first)
	}

	p.CompanyName = "Acme GmbH"
	if _, err := s.Upsert(ctx, caller, p, now.Add(time.Minute)); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}
	second, _, _ := s.EarliestMembership(ctx, "u1")
	if second.CompanyID != first.CompanyID || len(s.companies) != 1 {
		t.Fatalf("second Upsert created a new company: %q vs %q", second.CompanyID, first.CompanyID)
	}
	got, found, _ := s.GetByUser(ctx, "u1")
	if !found || got.CompanyName != "Acme GmbH" || !got.UpdatedAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("GetByUser() = %+v, %v", got, found)
	}
}

func TestReturnedBriefingsAreCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	_ = s.Insert(ctx, domain.Briefing{ID: "b1", CompanyID: "c1", ActionItems: []string{"a"}})

	got, _ := s.Get(ctx, "b1", "c1")
	got.ActionItems[0] = "changed"
	again, _ := s.Get(ctx, "b1", "c1")
	if again.ActionItems[0] != "a" {
		t.Fatalf("stored briefing mutated through returned copy: %q", again.ActionItems)
	}
	if _, err := s.Get(ctx, "b1", "c2"); err != domain.ErrNotFound {
		t.Fatalf("Get(other company) err = %v, want ErrNotFound", err)
	}
}
