package profiles

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"policymind/internal/adapters/memory"
	"policymind/internal/domain"
)

func validProfile() domain.CompanyProfile {
	return domain.CompanyProfile{
		CompanyName:    "Acme",
		HQCountry:      "DE",
		EmployeeCount:  "51-200",
		Sectors:        []string{"Technology", "Finance"},
		RegulatorFeeds: []string{"EUR-Lex", "EBA"},
		PolicySnapshots: []domain.PolicySnapshot{
			{Area: "Data Privacy", Maturity: domain.MaturityApproved, OwnerTeam: "Legal", OwnerContact: "legal@acme.test"},
			{Area: "Data Privacy", Maturity: domain.MaturityDraft, OwnerTeam: "Security"},
		},
		RiskStance:          domain.StanceConservative,
		NotificationChannel: domain.ChannelGmail,
		SummaryFocus:        domain.CadenceBiweekly,
	}
}

func TestSaveThenGetRoundTrips(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(memory.New())
	caller := domain.Identity{Subject: "auth0|1", Email: "owner@acme.test"}

	in := validProfile()
	if _, err := s.Save(ctx, caller, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, found, err := s.Get(ctx, caller.Subject)
	if err != nil || !found {
		t.Fatalf("Get() = found %v, err %v", found, err)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not stamped")
	}
	got.UpdatedAt = time.Time{}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Get() = %+v, want %+v", got, in)
	}
}

func TestSaveUpdatesExistingCompany(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	s := New(store)
	caller := domain.Identity{Subject: "u1"}

	if _, err := s.Save(ctx, caller, validProfile()); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	first, _, _ := store.EarliestMembership(ctx, "u1")

	next := validProfile()
	next.CompanyName = "Acme Holdings"
	if _, err := s.Save(ctx, caller, next); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	second, _, _ := store.EarliestMembership(ctx, "u1")
	if first.CompanyID != second.CompanyID {
		t.Fatalf("company changed from %q to %q", first.CompanyID, second.CompanyID)
	}
	if first.Role != domain.RoleOwner || first.Status != domain.MemberActive {
		t.Fatalf("membership = %+v, want active owner", first)
	}
	got, _, _ := s.Get(ctx, "u1")
	if got.CompanyName != "Acme Holdings" {
		t.Fatalf("CompanyName = %q, want updated", got.CompanyName)
	}
}

func TestConcurrentSavesCreateOneCompany(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	s := New(store)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Save(ctx, domain.Identity{Subject: "racer"}, validProfile())
		}()
	}
	wg.Wait()

	m, _, _ := store.EarliestMembership(ctx, "racer")
	for i := 0; i < 8; i++ {
		if _, err := s.Save(ctx, domain.Identity{Subject: "racer"}, validProfile()); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		again, _, _ := store.EarliestMembership(ctx, "racer")
		if again.CompanyID != m.CompanyID {
			t.Fatalf("membership moved to %q", again.CompanyID)
		}
	}
}

func TestGetBeforeOnboarding(t *testing.T) {
	t.Parallel()

	_, found, err := New(memory.New()).Get(context.Background(), "new-user")
	if err != nil || found {
		t.Fatalf("Get() = found %v, err %v; want not found", found, err)
	}
}

func TestDraftSeedsUntilOnboarded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(memory.New())

	draft, err := s.Draft(ctx, "auth0|1")
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if !reflect.DeepEqual(draft.PolicySnapshots, domain.SeedPolicySnapshots()) {
		t.Fatalf("draft snapshots = %+v", draft.PolicySnapshots)
	}

	if _, err := s.Save(ctx, domain.Identity{Subject: "auth0|1"}, validProfile()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	saved, err := s.Draft(ctx, "auth0|1")
	if err != nil || saved.CompanyName != "Acme" {
		t.Fatalf("Draft() after save = %+v, %v", saved, err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.CompanyProfile)
		want   string
	}{
		{name: "missing name", mutate: func(p *domain.CompanyProfile) { p.CompanyName = " " }, want: "Missing or invalid field: companyName"},
		{name: "missing cadence", mutate: func(p *domain.CompanyProfile) { p.SummaryFocus = "" }, want: "Missing or invalid field: summaryFocus"},
		{name: "unknown stance", mutate: func(p *domain.CompanyProfile) { p.RiskStance = "yolo" }, want: "Missing or invalid field: riskStance"},
		{name: "sectors null", mutate: func(p *domain.CompanyProfile) { p.Sectors = nil }, want: "Sectors must be an array."},
		{name: "feeds null", mutate: func(p *domain.CompanyProfile) { p.RegulatorFeeds = nil }, want: "Regulator feeds must be an array."},
		{name: "snapshots null", mutate: func(p *domain.CompanyProfile) { p.PolicySnapshots = nil }, want: "Policy snapshots must be an array."},
		{name: "bad maturity", mutate: func(p *domain.CompanyProfile) { p.PolicySnapshots[0].Maturity = "perfect" }, want: `Policy snapshot 0 has invalid maturity "perfect"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validProfile()
			tt.mutate(&p)
			err := Validate(p)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Msg != tt.want {
				t.Fatalf("Validate() = %v, want %q", err, tt.want)
			}
		})
	}

	empty := validProfile()
	empty.Sectors, empty.RegulatorFeeds, empty.PolicySnapshots = []string{}, []string{}, []domain.PolicySnapshot{}
	if err := Validate(empty); err != nil {
		t.Fatalf("Validate(empty arrays) = %v, want nil", err)
	}
}

func TestSaveRequiresIdentity(t *testing.T) {
	t.Parallel()

	_, err := New(memory.New()).Save(context.Background(), domain.Identity{}, validProfile())
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("Save() err = %v, want ErrUnauthenticated", err)
	}
}
