package domain

type errString string

func (e errString) Error() string { return string(e) }

var (
	ErrUnauthenticated = errString("authentication required")
	// ErrNotFound covers both missing records and records owned by another
	// company. Callers must not be able to tell the two apart.
	ErrNotFound = errString("not found")
	// ErrNoCompany means the caller has no membership yet.
	ErrNoCompany = errString("no company association")
	// ErrAnalysisFailed is a document the parser could not read. It is a
	// server-side failure, unlike a readable PDF with no text.
	ErrAnalysisFailed = errString("Failed to analyze PDF")
)

// ValidationError is malformed caller input. Its message is safe to show.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

var (
	ErrEmptyDocument      = &ValidationError{Msg: "Regulation text is empty"}
	ErrNoExtractableText  = &ValidationError{Msg: "Could not extract text from PDF"}
	ErrInvalidStatus      = &ValidationError{Msg: "Invalid status"}
	ErrEmptyUpdate        = &ValidationError{Msg: "Provide a status or set unarchive to true"}
	ErrOnboardingRequired = &ValidationError{Msg: "Complete onboarding first"}
	ErrUnsupportedMedia   = &ValidationError{Msg: "Only PDF files are supported"}
	ErrPayloadTooLarge    = &ValidationError{Msg: "PDF too large (limit 8MB)"}
)

// DeliveryError is a failed or impossible notification send. It is retryable
// from the caller's point of view.
type DeliveryError struct {
	Msg string
	Err error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *DeliveryError) Unwrap() error { return e.Err }

var ErrNoRecipients = &DeliveryError{Msg: "Add NOTIFICATION_RECIPIENTS or ensure your profile exposes an email"}

// NewSendError wraps a transport failure.
func NewSendError(err error) error {
	return &DeliveryError{Msg: "Notification send failed", Err: err}
}
