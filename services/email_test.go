package services

import (
	"testing"
	"time"

	"tribunal_app_go/config"

	"github.com/stretchr/testify/assert"
)

func TestSendEmailTestModeSkipsDelivery(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}

	err := SendEmail(cfg, &Email{
		To:       []string{"party@example.com"},
		Subject:  "Hearing scheduled",
		TextBody: "body",
	})
	assert.NoError(t, err)
}

func TestSendEmailRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false}

	err := SendEmail(cfg, &Email{To: []string{"a@b.c"}, Subject: "s", TextBody: "b"})
	assert.Error(t, err)
}

func TestBuildScheduledEmail(t *testing.T) {
	loc := "Tribunal offices, Edmonton"
	when := "10:00 AM"
	email, err := BuildScheduledEmail("Jane Cardinal", "jane@example.com", "hearing", "03-0001-25",
		time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), &when, &loc)
	assert.NoError(t, err)

	assert.Equal(t, []string{"jane@example.com"}, email.To)
	assert.Contains(t, email.Subject, "03-0001-25")
	assert.Contains(t, email.HTMLBody, "June 12, 2025")
	assert.Contains(t, email.HTMLBody, "10:00 AM")
	assert.Contains(t, email.TextBody, "hearing")
}

func TestBuildOrderIssuedEmail(t *testing.T) {
	email, err := BuildOrderIssuedEmail("Jane Cardinal", "jane@example.com", "03-0001-25", 217,
		time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	assert.Contains(t, email.Subject, "Order No. 217")
	assert.Contains(t, email.HTMLBody, "03-0001-25")
	assert.Contains(t, email.TextBody, "July 3, 2025")
}
