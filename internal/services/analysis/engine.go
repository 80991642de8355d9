package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"policymind/internal/domain"
	"policymind/internal/logger"
	"policymind/internal/ports"
)

const (
	// MaxExcerptChars bounds the document text sent to the provider.
	MaxExcerptChars = 16000
	DefaultTitle    = "Uploaded regulation"

	instruction = "You are PolicyMind's EU compliance copilot. Given the JSON input, return JSON with keys: " +
		"title, summary, actionItems (array of strings), notifiedTeams (array), riskLevel (LOW/MEDIUM/HIGH). " +
		"Focus on actionable steps tied to the company's sectors and policies. Keep output under 180 words."
)

// Engine turns document text into briefing content. The provider is optional;
// without one, or when it fails, the heuristic fallback answers.
type Engine struct {
	provider ports.Completion
	limiter  *rate.Limiter
	log      logrus.FieldLogger
}

type Option func(*Engine)

// WithProvider enables enrichment through p.
func WithProvider(p ports.Completion) Option {
	return func(e *Engine) { e.provider = p }
}

// WithRateLimit caps provider calls per minute. Calls over budget go straight
// to the fallback instead of waiting.
func WithRateLimit(rpm int) Option {
	return func(e *Engine) {
		if rpm > 0 {
			e.limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), max(1, rpm/10))
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

func New(opts ...Option) *Engine {
	e := &Engine{log: logger.Log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// request is the normalized payload handed to the provider.
type request struct {
	Title       string                  `json:"title"`
	CompanyName string                  `json:"companyName"`
	Sectors     []string                `json:"sectors"`
	Policies    []domain.PolicySnapshot `json:"policies"`
	Excerpt     string                  `json:"excerpt"`
}

// Analyze fails only with domain.ErrEmptyDocument. Provider errors are logged
// and absorbed.
func (e *Engine) Analyze(ctx context.Context, doc ports.Document, company domain.CompanyContext) (domain.Analysis, error) {
	text := strings.TrimSpace(doc.Text)
	if text == "" {
		return domain.Analysis{}, domain.ErrEmptyDocument
	}
	req := request{
		Title:       strings.TrimSpace(doc.Title),
		CompanyName: company.CompanyName,
		Sectors:     nonNil(company.Sectors),
		Policies:    company.Policies,
		Excerpt:     truncateRunes(text, MaxExcerptChars),
	}
	if req.Title == "" {
		req.Title = DefaultTitle
	}
	if req.Policies == nil {
		req.Policies = []domain.PolicySnapshot{}
	}

	if e.provider != nil {
		out, err := e.enrich(ctx, req)
		if err == nil {
			return out, nil
		}
		e.log.WithError(err).Warn("falling back to heuristic regulation summary")
	}
	return fallback(req), nil
}

func (e *Engine) enrich(ctx context.Context, req request) (domain.Analysis, error) {
	if e.limiter != nil && !e.limiter.Allow() {
		return domain.Analysis{}, fmt.Errorf("provider rate limit exceeded")
	}
	input, err := json.Marshal(req)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("marshal provider input: %w", err)
	}
	raw, err := e.provider.Complete(ctx, instruction, "Input: "+string(input))
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("provider call: %w", err)
	}
	out, err := parseResponse(raw, req.Title)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("parse provider response: %w", err)
	}
	return out, nil
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
