package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/keeperschule/booking-api/internal/config"
	"github.com/keeperschule/booking-api/internal/service"
)

// Mailer sends the office notification after a new camp registration. It is
// called fire-and-forget; callers log failures and move on.
type Mailer struct {
	conf *config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(conf *config.SMTPConfig) *Mailer {
	return &Mailer{
		conf: conf,
		send: smtp.SendMail,
	}
}

func (m *Mailer) NotifyCampRegistration(_ context.Context, notice service.CampNotice) error {
	var names []string
	for _, k := range notice.Keepers {
		names = append(names, k.FullName())
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Subject: Neue Camp-Anmeldung: %v\r\n", notice.Event.Title)
	fmt.Fprintf(&body, "From: %v\r\n", m.conf.From)
	fmt.Fprintf(&body, "To: %v\r\n\r\n", m.conf.To)
	fmt.Fprintf(&body, "Camp: %v\r\n", notice.Event.Title)
	fmt.Fprintf(&body, "Zeitraum: %v - %v\r\n",
		notice.Event.StartDate.Format("02.01.2006"),
		notice.Event.EndDate.Format("02.01.2006"))
	fmt.Fprintf(&body, "Ort: %v\r\n\r\n", notice.Event.Location)
	fmt.Fprintf(&body, "Kontakt: %v (%v, %v)\r\n", notice.Guardian.Name, notice.Guardian.Email, notice.Guardian.Phone)
	fmt.Fprintf(&body, "Angemeldete Keeper: %v\r\n", strings.Join(names, ", "))

	addr := fmt.Sprintf("%v:%v", m.conf.Host, m.conf.Port)

	var auth smtp.Auth
	if m.conf.Username != "" {
		auth = smtp.PlainAuth("", m.conf.Username, m.conf.Password, m.conf.Host)
	}

	if err := m.send(addr, auth, m.conf.From, []string{m.conf.To}, []byte(body.String())); err != nil {
		return fmt.Errorf("smtp.SendMail -> %w", err)
	}

	return nil
}
