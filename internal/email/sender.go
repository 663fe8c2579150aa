// internal/email/sender.go
package email

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"netshots-service/internal/config"
	"netshots-service/internal/email/templates"

	"gopkg.in/gomail.v2"
)

type Sender struct {
	cfg *config.Config
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	log.Printf("📧 [SEND] To: %s | Subject: %s", to, subject)

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.cfg.SMTPFromName, s.cfg.SMTPFrom))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	smtpPort, err := strconv.Atoi(s.cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT %q: %w", s.cfg.SMTPPort, err)
	}
	dialer := gomail.NewDialer(s.cfg.SMTPHost, smtpPort, s.cfg.SMTPUser, s.cfg.SMTPPass)

	// Exponential backoff: 1s, 2s, 4s → max 3 retries
	for attempt := 0; attempt < 3; attempt++ {
		if err := dialer.DialAndSend(m); err != nil {
			delay := time.Duration(1<<attempt) * time.Second
			log.Printf("❌ [ATTEMPT %d] Failed to send email to %s: %v → retrying in %v", attempt+1, to, err, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("email send cancelled: %w", ctx.Err())
			}
			continue
		}
		log.Printf("✅ [SUCCESS] Email sent to %s (Subject: %s)", to, subject)
		return nil
	}

	log.Printf("💥 [FAILED] All retries exhausted for %s", to)
	return fmt.Errorf("failed to send email to %s after 3 attempts", to)
}

// SendWelcome fires the first-profile welcome email in the background.
// Failures are logged and absorbed; profile creation never waits on SMTP.
func (s *Sender) SendWelcome(to, firstName string) {
	body, err := templates.RenderWelcomeEmail(templates.WelcomeData{
		FirstName: firstName,
	})
	if err != nil {
		log.Printf("⚠️ [EMAIL] welcome: render failed for %s: %v", to, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if sendErr := s.Send(ctx, to, "Welcome to NetShots 🎾", body); sendErr != nil {
			log.Printf("⚠️ [EMAIL] Background welcome email failed for %s: %v", to, sendErr)
		}
	}()
}
