package mailer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"policymind/internal/logger"
	"policymind/internal/ports"
)

type countingMailer struct{}

func (countingMailer) Send(context.Context, ports.OutgoingMail) (ports.MailReceipt, error) {
	return ports.MailReceipt{MessageID: "m", Transport: "fake"}, nil
}

func TestLazyBuildsOnce(t *testing.T) {
	t.Parallel()

	var builds atomic.Int32
	lazy := NewLazy(func() (ports.Mailer, error) {
		builds.Add(1)
		return countingMailer{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := lazy.Send(context.Background(), ports.OutgoingMail{To: []string{"a@b.co"}}); err != nil {
				t.Errorf("Send() error = %v", err)
			}
		}()
	}
	wg.Wait()
	if n := builds.Load(); n != 1 {
		t.Fatalf("builds = %d, want 1", n)
	}
}

func TestLazySurfacesBuildError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad config")
	lazy := NewLazy(func() (ports.Mailer, error) { return nil, cause })
	if _, err := lazy.Send(context.Background(), ports.OutgoingMail{}); !errors.Is(err, cause) {
		t.Fatalf("Send() err = %v, want cause", err)
	}
}

func TestFromConfigWithoutSMTPUsesLog(t *testing.T) {
	t.Parallel()

	m, err := FromConfig(Config{From: "PolicyMind <no-reply@policymind.test>"}, logger.Discard())()
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	res, err := m.Send(context.Background(), ports.OutgoingMail{To: []string{"ops@acme.test"}, Subject: "S", Text: "T", HTML: "<p>T</p>"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if res.Transport != TransportLog || !strings.HasPrefix(res.MessageID, "<") {
		t.Fatalf("receipt = %+v", res)
	}
}

func TestFromConfigWithSMTP(t *testing.T) {
	t.Parallel()

	m, err := FromConfig(Config{Host: "smtp.example.test", Port: 465, User: "u", Pass: "p", From: "no-reply@policymind.test"}, logger.Discard())()
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if _, ok := m.(*SMTP); !ok {
		t.Fatalf("transport = %T, want *SMTP", m)
	}
}

func TestLogRejectsBadAddresses(t *testing.T) {
	t.Parallel()

	l := NewLog("no-reply@policymind.test", logger.Discard())
	if _, err := l.Send(context.Background(), ports.OutgoingMail{}); err == nil {
		t.Fatal("Send() without recipients err = nil")
	}
	if _, err := l.Send(context.Background(), ports.OutgoingMail{To: []string{"not an address"}}); err == nil {
		t.Fatal("Send() with invalid recipient err = nil")
	}
}
