package notifications

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"policymind/internal/domain"
)

const (
	genericAction  = "Review this update with the policy owner."
	genericLoopIn  = "core compliance team"
	actionsHeading = "Top actions"
)

// Message is a rendered notification. Text and HTML carry the same content.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Compose renders b for companyName.
func Compose(b domain.Briefing, companyName string) Message {
	actions := b.ActionItems
	if len(actions) == 0 {
		actions = []string{genericAction}
	}
	loopIn := genericLoopIn
	if len(b.NotifiedTeams) > 0 {
		loopIn = strings.Join(b.NotifiedTeams, ", ")
	}

	var text strings.Builder
	text.WriteString(b.Summary)
	text.WriteString("\n\n" + actionsHeading + ":\n")
	for _, a := range actions {
		text.WriteString("• " + a + "\n")
	}
	text.WriteString("\nLoop in: " + loopIn)

	var body strings.Builder
	fmt.Fprintf(&body, "<p>%s</p>\n", html.EscapeString(b.Summary))
	fmt.Fprintf(&body, "<p><strong>%s</strong></p>\n<ul>\n", actionsHeading)
	for _, a := range actions {
		fmt.Fprintf(&body, "  <li>%s</li>\n", html.EscapeString(a))
	}
	body.WriteString("</ul>\n")
	fmt.Fprintf(&body, "<p><strong>Loop in:</strong> %s</p>", html.EscapeString(loopIn))

	return Message{
		Subject: fmt.Sprintf("%s | %s (Risk: %s)", companyName, b.Title, b.RiskLevel),
		Text:    text.String(),
		HTML:    body.String(),
	}
}
