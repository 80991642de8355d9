//go:build integration

package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"policymind/internal/domain"
)

// Run with: DATABASE_URL=postgres://... go test -tags integration ./internal/adapters/postgres/

func openTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL required")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db, err := Connect(ctx, url)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(db.Close)
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func testProfile(name string) domain.CompanyProfile {
	return domain.CompanyProfile{
		CompanyName:         name,
		HQCountry:           "DE",
		EmployeeCount:       "51-200",
		Sectors:             []string{"Technology"},
		RegulatorFeeds:      []string{"EUR-Lex"},
		PolicySnapshots:     domain.SeedPolicySnapshots(),
		RiskStance:          domain.StanceBalanced,
		NotificationChannel: domain.ChannelGmail,
		SummaryFocus:        domain.CadenceWeekly,
	}
}

func TestConcurrentFirstOnboardingCreatesOneCompany(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	caller := domain.Identity{Subject: "it-" + uuid.NewString(), Email: "owner@acme.test"}

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := db.Upsert(ctx, caller, testProfile("Acme"), time.Now().UTC())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	var memberships, companies int
	if err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM company_members WHERE user_id = $1`, caller.Subject).Scan(&memberships); err != nil {
		t.Fatalf("count memberships: %v", err)
	}
	if err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM companies WHERE created_by_user_id = $1`, caller.Subject).Scan(&companies); err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if memberships != 1 || companies != 1 {
		t.Fatalf("memberships = %d, companies = %d, want 1 and 1", memberships, companies)
	}

	m, found, err := db.EarliestMembership(ctx, caller.Subject)
	if err != nil || !found || m.Role != domain.RoleOwner {
		t.Fatalf("EarliestMembership() = %+v, %v, %v", m, found, err)
	}
}

func TestForeignBriefingIsNotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	owner := domain.Identity{Subject: "it-" + uuid.NewString()}
	other := domain.Identity{Subject: "it-" + uuid.NewString()}
	for _, id := range []domain.Identity{owner, other} {
		if _, err := db.Upsert(ctx, id, testProfile("Acme"), now); err != nil {
			t.Fatalf("Upsert(%s) error = %v", id.Subject, err)
		}
	}
	ownerCo, _, _ := db.EarliestMembership(ctx, owner.Subject)
	otherCo, _, _ := db.EarliestMembership(ctx, other.Subject)

	b := domain.Briefing{
		ID:          uuid.NewString(),
		CompanyID:   ownerCo.CompanyID,
		Title:       "AI Act",
		Summary:     "Risk assessments required.",
		ActionItems: []string{"Inventory AI systems"},
		RiskLevel:   domain.RiskHigh,
		Status:      domain.StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Insert(ctx, b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if _, err := db.Get(ctx, b.ID, otherCo.CompanyID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign Get() err = %v, want ErrNotFound", err)
	}
	if _, err := db.Mutate(ctx, b.ID, otherCo.CompanyID, func(*domain.Briefing) error { return nil }); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign Mutate() err = %v, want ErrNotFound", err)
	}
	if err := db.Delete(ctx, b.ID, otherCo.CompanyID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign Delete() err = %v, want ErrNotFound", err)
	}

	got, err := db.Get(ctx, b.ID, ownerCo.CompanyID)
	if err != nil || got.Title != "AI Act" || got.NotifiedTeams == nil {
		t.Fatalf("owner Get() = %+v, %v", got, err)
	}
	if err := db.Delete(ctx, b.ID, ownerCo.CompanyID); err != nil {
		t.Fatalf("owner Delete() error = %v", err)
	}
}
