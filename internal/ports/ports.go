package ports

import (
	"context"

	"policymind/internal/domain"
)

// Completion is an optional text-completion provider used to enrich analyses.
type Completion interface {
	Complete(ctx context.Context, instruction, input string) (string, error)
}

// TextExtractor turns PDF bytes into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}

// OutgoingMail is one message handed to the mail transport.
type OutgoingMail struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

// MailReceipt is what the transport reports after accepting a message.
type MailReceipt struct {
	MessageID  string
	Transport  string
	PreviewURL string
}

// Mailer delivers mail. Retries and bounces are its own business.
type Mailer interface {
	Send(ctx context.Context, m OutgoingMail) (MailReceipt, error)
}

// Analyzer derives briefing content from document text.
type Analyzer interface {
	Analyze(ctx context.Context, doc Document, company domain.CompanyContext) (domain.Analysis, error)
}

// Document is extracted text plus the optional caller-supplied title.
type Document struct {
	Title string
	Text  string
}
