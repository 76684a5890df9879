package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"circles-of-care-site/config"
	"circles-of-care-site/internal/domain"
)

// EmailService delivers inquiries to the office inbox via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	siteName  string

	// deliver is swapped out in tests
	deliver func(ctx context.Context, from string, to []string, msg []byte) error
}

// contactEmailData holds the data rendered into the inquiry email
type contactEmailData struct {
	SiteName     string
	ReferenceID  string
	ReceivedAt   string
	SenderName   string
	SenderEmail  string
	Phone        string
	ServiceTitle string
	Message      string
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config, siteName string) *EmailService {
	s := &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		siteName:  siteName,
	}
	if s.fromEmail == "" {
		s.fromEmail = cfg.SMTPUsername // Brevo accepts the login as sender
	}
	s.deliver = s.smtpDeliver
	return s
}

// contactEmailTemplate is the HTML template for inquiry emails
var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Website Enquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #ff5d10; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #ff5d10; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Website Enquiry</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            {{if .Phone}}<div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>{{end}}
            <div class="field">
                <div class="label">Service interest:</div>
                <div class="value">{{if .ServiceTitle}}{{.ServiceTitle}}{{else}}Not specified{{end}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the {{.SiteName}} contact form on {{.ReceivedAt}}.</p>
            <p>Reference: {{.ReferenceID}}. The sender agreed to the privacy policy.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`))

// SendInquiry sends an inquiry email to the configured recipient
func (s *EmailService) SendInquiry(ctx context.Context, inquiry *domain.Inquiry) error {
	if !s.IsConfigured() {
		return domain.ErrEmailNotConfigured
	}

	msg, err := s.buildMessage(inquiry)
	if err != nil {
		return err
	}

	if err := s.deliver(ctx, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) buildMessage(inquiry *domain.Inquiry) ([]byte, error) {
	sub := inquiry.Submission
	data := contactEmailData{
		SiteName:     s.siteName,
		ReferenceID:  inquiry.ReferenceID,
		ReceivedAt:   inquiry.ReceivedAt.Format(time.RFC1123),
		SenderName:   sub.Name,
		SenderEmail:  sub.Email,
		Phone:        sub.Phone,
		ServiceTitle: inquiry.ServiceTitle,
		Message:      sub.Message,
	}

	var body bytes.Buffer
	if err := contactEmailTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := "Website enquiry from " + sub.Name
	if inquiry.ServiceTitle != "" {
		subject += " (" + inquiry.ServiceTitle + ")"
	}

	// Construct MIME message
	msg := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"X-Enquiry-Reference: %s\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		headerSafe(sub.Email),
		mime.QEncoding.Encode("utf-8", headerSafe(subject)),
		inquiry.ReferenceID,
		body.String(),
	)
	return []byte(msg), nil
}

// smtpDeliver is smtp.SendMail with the dial bound to ctx
func (s *EmailService) smtpDeliver(ctx context.Context, from string, to []string, msg []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return err
		}
	}
	if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return err
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// headerSafe drops CR/LF so visitor input cannot inject extra headers
func headerSafe(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}
