package notifier

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperschule/booking-api/internal/config"
	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/service"
)

func testConfig() *config.SMTPConfig {
	return &config.SMTPConfig{
		Host: "mail.example.com",
		Port: "587",
		From: "noreply@example.com",
		To:   "office@example.com",
	}
}

func testNotice() service.CampNotice {
	return service.CampNotice{
		Guardian: domain.ContactSnapshot{Name: "Lena Weber", Email: "lena@example.com", Phone: "+49 170 1234567"},
		Event: domain.Event{
			Title:     "Sommercamp",
			StartDate: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 7, 24, 0, 0, 0, 0, time.UTC),
			Location:  "Sportpark Nord",
		},
		Keepers: []domain.Keeper{
			{FirstName: "Mats", LastName: "Weber"},
			{FirstName: "Finn", LastName: "Weber"},
		},
	}
}

func TestMailer_NotifyCampRegistration(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewMailer(testConfig())
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	}

	err := m.NotifyCampRegistration(context.Background(), testNotice())
	require.NoError(t, err)

	assert.Equal(t, "mail.example.com:587", gotAddr)
	assert.Equal(t, "noreply@example.com", gotFrom)
	assert.Equal(t, []string{"office@example.com"}, gotTo)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: Neue Camp-Anmeldung: Sommercamp")
	assert.Contains(t, body, "Zeitraum: 20.07.2026 - 24.07.2026")
	assert.Contains(t, body, "Kontakt: Lena Weber (lena@example.com, +49 170 1234567)")
	assert.Contains(t, body, "Angemeldete Keeper: Mats Weber, Finn Weber")
}

func TestMailer_NotifyCampRegistrationSendFailure(t *testing.T) {
	m := NewMailer(testConfig())
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("dial tcp: connection refused")
	}

	err := m.NotifyCampRegistration(context.Background(), testNotice())
	assert.Error(t, err)
}
