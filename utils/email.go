package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/tanjid017/membership-registration-backend/config"
)

// sendEmail delivers one plain-text email over SMTP with STARTTLS. When SMTP
// is not configured it logs and returns nil so callers need no special case.
func sendEmail(cfg *config.Config, to, subject, body string) error {
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		fmt.Println("⚠️ SMTP not configured. Email not sent.")
		return nil
	}

	fromEmail := cfg.SMTPFromEmail
	if fromEmail == "" {
		fromEmail = cfg.SMTPUsername
	}

	addr := fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort)

	client, err := smtp.Dial(addr)
	if err != nil {
		fmt.Printf("❌ Failed to dial SMTP server: %v\n", err)
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         cfg.SMTPHost,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		fmt.Printf("❌ TLS connection error: %v\n", err)
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		fmt.Printf("❌ SMTP auth error: %v\n", err)
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := client.Mail(fromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	from := cfg.SMTPFromName
	if from == "" {
		from = fromEmail
	} else {
		from = fmt.Sprintf("%s <%s>", cfg.SMTPFromName, fromEmail)
	}

	msg := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n%s", from, to, subject, body))

	if _, err = w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	if err := client.Quit(); err != nil {
		fmt.Printf("⚠️ QUIT command error (non-critical): %v\n", err)
	}

	fmt.Println("✅ Email sent successfully!")
	return nil
}

// NotifySubmission emails the admin about a new membership submission.
// Called from a goroutine after the record is stored, so failures are logged
// rather than returned to the applicant.
func NotifySubmission(cfg *config.Config, submissionID, applicantName string) {
	if cfg.AdminNotifyEmail == "" {
		return
	}
	name := strings.TrimSpace(applicantName)
	if name == "" {
		name = "N/A"
	}
	subject := fmt.Sprintf("New membership submission: %s", submissionID)
	body := fmt.Sprintf("A new membership application has been submitted.\n\nSubmission ID: %s\nApplicant: %s\n\nOpen the admin panel to review it.", submissionID, name)
	if err := sendEmail(cfg, cfg.AdminNotifyEmail, subject, body); err != nil {
		fmt.Printf("❌ Failed to send submission notification: %v\n", err)
	}
}
