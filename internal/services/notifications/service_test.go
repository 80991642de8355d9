package notifications

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"policymind/internal/adapters/memory"
	"policymind/internal/domain"
	"policymind/internal/logger"
	"policymind/internal/ports"
)

type fakeMailer struct {
	sent []ports.OutgoingMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m ports.OutgoingMail) (ports.MailReceipt, error) {
	if f.err != nil {
		return ports.MailReceipt{}, f.err
	}
	f.sent = append(f.sent, m)
	return ports.MailReceipt{MessageID: "<id@test>", Transport: "log"}, nil
}

func setup(t *testing.T, snapshots []domain.PolicySnapshot, teams []string) (*memory.Store, string, domain.Briefing) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	p := domain.CompanyProfile{CompanyName: "Acme", Sectors: []string{}, RegulatorFeeds: []string{}, PolicySnapshots: snapshots}
	if _, err := store.Upsert(ctx, domain.Identity{Subject: "u1"}, p, time.Now()); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	m, _, _ := store.EarliestMembership(ctx, "u1")
	b := domain.Briefing{
		ID: "b1", CompanyID: m.CompanyID, Title: "AI Act", Summary: "Summary.",
		ActionItems: []string{"Map systems"}, NotifiedTeams: teams, RiskLevel: domain.RiskHigh, Status: domain.StatusNew,
	}
	if err := store.Insert(ctx, b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	return store, m.CompanyID, b
}

func newService(store *memory.Store, mailer ports.Mailer, configured []string) *Service {
	s := New(store, store, mailer, configured)
	s.log = logger.Discard()
	return s
}

func TestSendPreview(t *testing.T) {
	t.Parallel()

	snapshots := []domain.PolicySnapshot{{Area: "Data Privacy", OwnerTeam: "Legal Ops", OwnerContact: "legal@acme.test"}}
	store, companyID, _ := setup(t, snapshots, []string{"Legal"})
	mailer := &fakeMailer{}

	got, err := newService(store, mailer, []string{"ops@acme.test"}).
		SendPreview(context.Background(), domain.Identity{Subject: "u1", Email: "user@acme.test"}, companyID, "b1")
	if err != nil {
		t.Fatalf("SendPreview() error = %v", err)
	}
	want := Receipt{
		Channel:    "Email",
		Recipients: []string{"legal@acme.test", "ops@acme.test", "user@acme.test"},
		Subject:    "Acme | AI Act (Risk: HIGH)",
		MessageID:  "<id@test>",
		Transport:  "log",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SendPreview() = %+v, want %+v", got, want)
	}
	if len(mailer.sent) != 1 || !reflect.DeepEqual(mailer.sent[0].To, want.Recipients) {
		t.Fatalf("sent = %+v", mailer.sent)
	}
}

func TestSendPreviewNoRecipientsSkipsTransport(t *testing.T) {
	t.Parallel()

	store, companyID, _ := setup(t, nil, []string{"Legal"})
	mailer := &fakeMailer{}
	_, err := newService(store, mailer, nil).SendPreview(context.Background(), domain.Identity{Subject: "u1"}, companyID, "b1")
	if !errors.Is(err, domain.ErrNoRecipients) {
		t.Fatalf("SendPreview() err = %v, want ErrNoRecipients", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("transport called %d times", len(mailer.sent))
	}
}

func TestSendPreviewWrapsTransportFailure(t *testing.T) {
	t.Parallel()

	store, companyID, _ := setup(t, nil, nil)
	cause := errors.New("connection refused")
	_, err := newService(store, &fakeMailer{err: cause}, nil).
		SendPreview(context.Background(), domain.Identity{Subject: "u1", Email: "me@acme.test"}, companyID, "b1")
	var de *domain.DeliveryError
	if !errors.As(err, &de) || !errors.Is(err, cause) {
		t.Fatalf("SendPreview() err = %v, want DeliveryError wrapping cause", err)
	}
}

func TestSendPreviewForeignBriefing(t *testing.T) {
	t.Parallel()

	store, _, _ := setup(t, nil, nil)
	_, err := newService(store, &fakeMailer{}, []string{"ops@acme.test"}).
		SendPreview(context.Background(), domain.Identity{Subject: "u2"}, "another-company", "b1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("SendPreview() err = %v, want ErrNotFound", err)
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	msg := Compose(domain.Briefing{
		Title: "DORA", Summary: "Banks <must> test.", RiskLevel: domain.RiskMedium,
		ActionItems: []string{"Run tests", "Report"}, NotifiedTeams: []string{"IT", "Risk"},
	}, "Acme")

	if msg.Subject != "Acme | DORA (Risk: MEDIUM)" {
		t.Fatalf("subject = %q", msg.Subject)
	}
	wantText := "Banks <must> test.\n\nTop actions:\n• Run tests\n• Report\n\nLoop in: IT, Risk"
	if msg.Text != wantText {
		t.Fatalf("text = %q, want %q", msg.Text, wantText)
	}
	for _, frag := range []string{"<p>Banks &lt;must&gt; test.</p>", "<li>Run tests</li>", "<li>Report</li>", "<strong>Loop in:</strong> IT, Risk"} {
		if !strings.Contains(msg.HTML, frag) {
			t.Fatalf("html missing %q:\n%s", frag, msg.HTML)
		}
	}
}

func TestComposeDefaults(t *testing.T) {
	t.Parallel()

	msg := Compose(domain.Briefing{Title: "T", Summary: "S", RiskLevel: domain.RiskLow}, "Acme")
	for _, body := range []string{msg.Text, msg.HTML} {
		if !strings.Contains(body, "Review this update with the policy owner.") || !strings.Contains(body, "core compliance team") {
			t.Fatalf("body missing defaults: %q", body)
		}
	}
}
