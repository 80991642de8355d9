package regulations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"policymind/internal/domain"
	"policymind/internal/logger"
	"policymind/internal/ports"
)

// MaxUploadBytes is the largest accepted PDF.
const MaxUploadBytes = 8 << 20

const pdfContentType = "application/pdf"

// Upload is one submitted document.
type Upload struct {
	Title       string
	ContentType string
	Data        []byte
}

// Creator persists analyzed briefings.
type Creator interface {
	Create(ctx context.Context, companyID string, a domain.Analysis) (domain.Briefing, error)
}

// Service runs extract -> analyze -> persist for uploaded regulations.
type Service struct {
	profiles  ports.ProfileRepository
	extractor ports.TextExtractor
	analyzer  ports.Analyzer
	briefings Creator
	log       logrus.FieldLogger
}

func New(profiles ports.ProfileRepository, extractor ports.TextExtractor, analyzer ports.Analyzer, briefings Creator) *Service {
	return &Service{profiles: profiles, extractor: extractor, analyzer: analyzer, briefings: briefings, log: logger.Log}
}

// CheckUpload validates type and size without reading the content.
func CheckUpload(contentType string, size int64) error {
	if ct := strings.TrimSpace(contentType); ct != "" && !strings.EqualFold(mediaType(ct), pdfContentType) {
		return domain.ErrUnsupportedMedia
	}
	if size > MaxUploadBytes {
		return domain.ErrPayloadTooLarge
	}
	return nil
}

// Submit analyzes u for the company and stores the briefing.
func (s *Service) Submit(ctx context.Context, companyID string, u Upload) (domain.Briefing, error) {
	if err := CheckUpload(u.ContentType, int64(len(u.Data))); err != nil {
		return domain.Briefing{}, err
	}
	profile, found, err := s.profiles.GetByCompany(ctx, companyID)
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("load company profile: %w", err)
	}
	if !found {
		return domain.Briefing{}, domain.ErrOnboardingRequired
	}

	text, err := s.extractor.ExtractText(ctx, u.Data)
	if err != nil {
		s.log.WithError(err).Warn("pdf text extraction failed")
		return domain.Briefing{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Briefing{}, domain.ErrNoExtractableText
	}

	analysis, err := s.analyzer.Analyze(ctx, ports.Document{Title: u.Title, Text: text}, profile.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDocument) {
			return domain.Briefing{}, err
		}
		return domain.Briefing{}, fmt.Errorf("analyze regulation: %w", err)
	}
	b, err := s.briefings.Create(ctx, companyID, analysis)
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("store briefing: %w", err)
	}
	s.log.WithFields(logrus.Fields{"briefing": b.ID, "risk": b.RiskLevel}).Info("regulation analyzed")
	return b, nil
}

func mediaType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}
