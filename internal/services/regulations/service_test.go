package regulations

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"policymind/internal/adapters/memory"
	"policymind/internal/domain"
	"policymind/internal/logger"
	"policymind/internal/services/analysis"
	"policymind/internal/services/briefings"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractText(context.Context, []byte) (string, error) { return f.text, f.err }

func onboarded(t *testing.T, sectors []string) (*memory.Store, string) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	p := domain.CompanyProfile{
		CompanyName: "Acme", HQCountry: "DE", EmployeeCount: "11-50",
		Sectors: sectors, RegulatorFeeds: []string{}, PolicySnapshots: []domain.PolicySnapshot{},
		RiskStance: domain.StanceBalanced, NotificationChannel: domain.ChannelGmail, SummaryFocus: domain.CadenceWeekly,
	}
	if _, err := store.Upsert(ctx, domain.Identity{Subject: "u1"}, p, p.UpdatedAt); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	m, _, _ := store.EarliestMembership(ctx, "u1")
	return store, m.CompanyID
}

func newService(store *memory.Store, ex fakeExtractor) *Service {
	engine := analysis.New(analysis.WithLogger(logger.Discard()))
	s := New(store, ex, engine, briefings.New(store))
	s.log = logger.Discard()
	return s
}

func TestSubmitEndToEndFallback(t *testing.T) {
	t.Parallel()

	store, companyID := onboarded(t, []string{"Technology"})
	s := newService(store, fakeExtractor{text: "The AI Act requires risk assessments for high-risk systems by 2026."})

	b, err := s.Submit(context.Background(), companyID, Upload{ContentType: "application/pdf", Data: []byte("%PDF-1.4")})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if b.RiskLevel != domain.RiskMedium {
		t.Fatalf("risk = %q, want MEDIUM", b.RiskLevel)
	}
	if want := []string{"Assign an owner to review this mandate."}; !reflect.DeepEqual(b.ActionItems, want) {
		t.Fatalf("actionItems = %q, want %q", b.ActionItems, want)
	}
	if want := []string{"Technology"}; !reflect.DeepEqual(b.NotifiedTeams, want) {
		t.Fatalf("notifiedTeams = %q, want %q", b.NotifiedTeams, want)
	}
	if b.Status != domain.StatusNew || b.CompanyID != companyID {
		t.Fatalf("briefing = %+v", b)
	}
	listed, _ := store.List(context.Background(), companyID, false)
	if len(listed) != 1 {
		t.Fatalf("stored briefings = %d, want 1", len(listed))
	}
}

func TestSubmitRejections(t *testing.T) {
	t.Parallel()

	store, companyID := onboarded(t, nil)
	tests := []struct {
		name      string
		companyID string
		upload    Upload
		extractor fakeExtractor
		want      error
	}{
		{name: "wrong type", companyID: companyID, upload: Upload{ContentType: "image/png", Data: []byte("x")}, want: domain.ErrUnsupportedMedia},
		{name: "too large", companyID: companyID, upload: Upload{ContentType: "application/pdf", Data: bytes.Repeat([]byte("a"), MaxUploadBytes+1)}, want: domain.ErrPayloadTooLarge},
		{name: "not onboarded", companyID: "other", upload: Upload{Data: []byte("x")}, extractor: fakeExtractor{text: "t"}, want: domain.ErrOnboardingRequired},
		{name: "blank text", companyID: companyID, upload: Upload{Data: []byte("x")}, extractor: fakeExtractor{text: "  "}, want: domain.ErrNoExtractableText},
		{name: "extract error", companyID: companyID, upload: Upload{Data: []byte("x")}, extractor: fakeExtractor{err: errors.New("corrupt")}, want: domain.ErrAnalysisFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newService(store, tt.extractor).Submit(context.Background(), tt.companyID, tt.upload)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Submit() err = %v, want %v", err, tt.want)
			}
		})
	}
	if listed, _ := store.List(context.Background(), companyID, false); len(listed) != 0 {
		t.Fatalf("rejected uploads stored %d briefings", len(listed))
	}
}

func TestCheckUploadAcceptsParameters(t *testing.T) {
	t.Parallel()

	if err := CheckUpload("application/PDF; charset=binary", 10); err != nil {
		t.Fatalf("CheckUpload() = %v, want nil", err)
	}
	if err := CheckUpload("", MaxUploadBytes); err != nil {
		t.Fatalf("CheckUpload(untyped) = %v, want nil", err)
	}
}
