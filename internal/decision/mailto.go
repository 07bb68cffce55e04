package decision

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrUnknownDecision = errors.New("unknown decision")

type mailTemplate struct {
	subject string
	body    string
}

var mailTemplates = map[Decision]mailTemplate{
	Accept: {
		subject: "Application Status Update - Congratulations!",
		body:    "Hi there!\n\nGreat news! We'd love to move forward with your application. Let's schedule a time to chat!\n\nBest regards,\nThe Team",
	},
	Maybe: {
		subject: "Application Status Update - Next Steps",
		body:    "Hi there!\n\nThanks for your application! We'd like to learn more about you. Are you available for a quick call this week?\n\nBest regards,\nThe Team",
	},
	Reject: {
		subject: "Application Status Update - Thank You",
		body:    "Hi there!\n\nThank you for taking the time to apply. While we won't be moving forward at this time, we appreciate your interest and encourage you to apply for future opportunities.\n\nBest of luck!\nThe Team",
	},
}

// MailtoURI builds the reply link for a candidate. Subject and body are fixed per decision.
func MailtoURI(email string, d Decision) (string, error) {
	tmpl, ok := mailTemplates[d]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDecision, string(d))
	}

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		email,
		encodeURIComponent(tmpl.subject),
		encodeURIComponent(tmpl.body),
	), nil
}

// encodeURIComponent escapes like the ECMAScript function of the same name:
// spaces become %20 and !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
