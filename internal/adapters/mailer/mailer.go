// Package mailer provides the outbound mail transports.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"

	"policymind/internal/ports"
)

const (
	TransportSMTP = "smtp"
	TransportLog  = "log"
)

type Config struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Secure bool
	From   string
}

func (c Config) smtpEnabled() bool { return c.Host != "" && c.User != "" && c.Pass != "" }

// Lazy builds its transport on first use and reuses it for the process
// lifetime. Concurrent first calls construct it exactly once.
type Lazy struct {
	get func() (ports.Mailer, error)
}

func NewLazy(build func() (ports.Mailer, error)) *Lazy {
	return &Lazy{get: sync.OnceValues(build)}
}

func (l *Lazy) Send(ctx context.Context, m ports.OutgoingMail) (ports.MailReceipt, error) {
	t, err := l.get()
	if err != nil {
		return ports.MailReceipt{}, fmt.Errorf("init mail transport: %w", err)
	}
	return t.Send(ctx, m)
}

// FromConfig picks SMTP when credentials are present and the log transport otherwise.
func FromConfig(cfg Config, log logrus.FieldLogger) func() (ports.Mailer, error) {
	return func() (ports.Mailer, error) {
		if cfg.smtpEnabled() {
			log.WithField("host", cfg.Host).Info("mail transport: smtp")
			return NewSMTP(cfg)
		}
		log.Info("mail transport: log (SMTP not configured)")
		return NewLog(cfg.From, log), nil
	}
}

// SMTP sends through a relay.
type SMTP struct {
	client *mail.Client
	from   string
}

func NewSMTP(cfg Config) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Pass),
	}
	if cfg.Secure || cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTP{client: client, from: cfg.From}, nil
}

func (s *SMTP) Send(ctx context.Context, m ports.OutgoingMail) (ports.MailReceipt, error) {
	msg, err := buildMsg(s.from, m, "")
	if err != nil {
		return ports.MailReceipt{}, err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return ports.MailReceipt{}, fmt.Errorf("smtp send: %w", err)
	}
	return ports.MailReceipt{MessageID: messageID(msg), Transport: TransportSMTP}, nil
}

// buildMsg assembles a multipart/alternative message. An empty id lets
// go-mail generate the Message-ID.
func buildMsg(from string, m ports.OutgoingMail, id string) (*mail.Msg, error) {
	if len(m.To) == 0 {
		return nil, errors.New("at least one recipient is required")
	}
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(m.To...); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}
	msg.Subject(m.Subject)
	if id == "" {
		msg.SetMessageID()
	} else {
		msg.SetMessageIDWithValue(id)
	}
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	if m.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	}
	return msg, nil
}

func messageID(msg *mail.Msg) string {
	if ids := msg.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// Log writes messages to the logger instead of delivering them.
type Log struct {
	from string
	log  logrus.FieldLogger
}

func NewLog(from string, log logrus.FieldLogger) *Log { return &Log{from: from, log: log} }

func (l *Log) Send(ctx context.Context, m ports.OutgoingMail) (ports.MailReceipt, error) {
	if err := ctx.Err(); err != nil {
		return ports.MailReceipt{}, err
	}
	msg, err := buildMsg(l.from, m, uuid.NewString()+"@policymind.local")
	if err != nil {
		return ports.MailReceipt{}, err
	}
	id := messageID(msg)
	l.log.WithFields(logrus.Fields{
		"message_id": id,
		"to":         strings.Join(m.To, ", "),
		"subject":    m.Subject,
	}).Info(m.Text)
	return ports.MailReceipt{MessageID: id, Transport: TransportLog}, nil
}
