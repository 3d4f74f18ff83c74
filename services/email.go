package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"time"

	"tribunal_app_go/config"

	"github.com/resend/resend-go/v2"
)

// Email is an outbound message.
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail delivers through the Resend API. In test mode the message is
// logged instead of sent, so development and tests never hit the wire.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email has no body")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func logEmailToConsole(email *Email) {
	log.Printf("--- EMAIL (test mode, not sent) ---")
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	if email.TextBody != "" {
		log.Printf("Body:\n%s", email.TextBody)
	}
	log.Printf("-----------------------------------")
}

var scheduledEmailHTML = template.Must(template.New("scheduled").Parse(`
<p>Dear {{.Recipient}},</p>
<p>A {{.Kind}} has been scheduled for appeal <strong>{{.FileNumber}}</strong>.</p>
<p>Date: {{.Date}}{{if .Time}} at {{.Time}}{{end}}<br>
{{if .Location}}Location: {{.Location}}{{end}}</p>
<p>Metis Settlements Appeal Tribunal</p>
`))

type scheduledEmailData struct {
	Recipient  string
	Kind       string
	FileNumber string
	Date       string
	Time       string
	Location   string
}

// BuildScheduledEmail composes the notice sent to parties when a mediation
// or hearing is booked.
func BuildScheduledEmail(recipientName, recipientEmail, kind, fileNumber string, date time.Time, timeOfDay, location *string) (*Email, error) {
	data := scheduledEmailData{
		Recipient:  recipientName,
		Kind:       kind,
		FileNumber: fileNumber,
		Date:       date.Format("January 2, 2006"),
	}
	if timeOfDay != nil {
		data.Time = *timeOfDay
	}
	if location != nil {
		data.Location = *location
	}

	var buf bytes.Buffer
	if err := scheduledEmailHTML.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render email: %w", err)
	}

	text := fmt.Sprintf("Dear %s,\n\nA %s has been scheduled for appeal %s on %s.\n\nMetis Settlements Appeal Tribunal",
		data.Recipient, data.Kind, data.FileNumber, data.Date)

	return &Email{
		To:       []string{recipientEmail},
		Subject:  fmt.Sprintf("%s scheduled for appeal %s", kind, fileNumber),
		HTMLBody: buf.String(),
		TextBody: text,
	}, nil
}

var orderIssuedEmailHTML = template.Must(template.New("order").Parse(`
<p>Dear {{.Recipient}},</p>
<p>Order <strong>No. {{.OrderNumber}}</strong> has been issued on appeal
<strong>{{.FileNumber}}</strong>, dated {{.IssueDate}}.</p>
<p>Metis Settlements Appeal Tribunal</p>
`))

// BuildOrderIssuedEmail composes the notice sent when an order is recorded.
func BuildOrderIssuedEmail(recipientName, recipientEmail, fileNumber string, orderNumber int, issueDate time.Time) (*Email, error) {
	var buf bytes.Buffer
	err := orderIssuedEmailHTML.Execute(&buf, map[string]interface{}{
		"Recipient":   recipientName,
		"OrderNumber": orderNumber,
		"FileNumber":  fileNumber,
		"IssueDate":   issueDate.Format("January 2, 2006"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render email: %w", err)
	}

	text := fmt.Sprintf("Dear %s,\n\nOrder No. %d has been issued on appeal %s, dated %s.\n\nMetis Settlements Appeal Tribunal",
		recipientName, orderNumber, fileNumber, issueDate.Format("January 2, 2006"))

	return &Email{
		To:       []string{recipientEmail},
		Subject:  fmt.Sprintf("Order No. %d issued on appeal %s", orderNumber, fileNumber),
		HTMLBody: buf.String(),
		TextBody: text,
	}, nil
}
