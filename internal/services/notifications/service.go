package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"policymind/internal/domain"
	"policymind/internal/logger"
	"policymind/internal/ports"
	"policymind/internal/services/recipients"
)

const channelEmail = "Email"

// Receipt describes one delivered notification.
type Receipt struct {
	Channel    string   `json:"channel"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	MessageID  string   `json:"messageId"`
	PreviewURL string   `json:"previewUrl,omitempty"`
	Transport  string   `json:"transport"`
}

type Service struct {
	briefings  ports.BriefingRepository
	profiles   ports.ProfileRepository
	mailer     ports.Mailer
	configured []string
	log        logrus.FieldLogger
}

// New builds the sender. configured is the static recipient list added to
// every notification.
func New(briefings ports.BriefingRepository, profiles ports.ProfileRepository, mailer ports.Mailer, configured []string) *Service {
	return &Service{briefings: briefings, profiles: profiles, mailer: mailer, configured: configured, log: logger.Log}
}

// SendPreview composes and sends one briefing. It fails with
// domain.ErrNoRecipients before touching the transport when nobody resolves.
func (s *Service) SendPreview(ctx context.Context, caller domain.Identity, companyID, briefingID string) (Receipt, error) {
	b, err := s.briefings.Get(ctx, briefingID, companyID)
	if err != nil {
		return Receipt{}, err
	}
	profile, _, err := s.profiles.GetByCompany(ctx, companyID)
	if err != nil {
		return Receipt{}, fmt.Errorf("load company profile: %w", err)
	}
	companyName := profile.CompanyName
	if companyName == "" {
		companyName = "Your company"
	}

	to := recipients.Resolve(b.NotifiedTeams, profile.PolicySnapshots, caller.Email, s.configured)
	if len(to) == 0 {
		return Receipt{}, domain.ErrNoRecipients
	}

	msg := Compose(b, companyName)
	res, err := s.mailer.Send(ctx, ports.OutgoingMail{To: to, Subject: msg.Subject, Text: msg.Text, HTML: msg.HTML})
	if err != nil {
		var de *domain.DeliveryError
		if errors.As(err, &de) {
			return Receipt{}, err
		}
		return Receipt{}, domain.NewSendError(err)
	}
	s.log.WithFields(logrus.Fields{"briefing": b.ID, "recipients": len(to), "transport": res.Transport}).Info("notification sent")

	return Receipt{
		Channel:    channelEmail,
		Recipients: to,
		Subject:    msg.Subject,
		MessageID:  res.MessageID,
		PreviewURL: res.PreviewURL,
		Transport:  res.Transport,
	}, nil
}
