package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/noah-isme/hackathon-portal-api/pkg/config"
)

// Message is a single transactional email.
type Message struct {
	ToEmail   string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Sender delivers transactional email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns a SendGrid sender when mail is enabled and configured, otherwise a no-op.
func New(cfg config.MailConfig) Sender {
	if !cfg.Enabled || cfg.APIKey == "" {
		return NopSender{}
	}
	return NewSendGridSender(cfg.APIKey, cfg.FromEmail, cfg.FromName)
}

// SendGridSender sends mail through the SendGrid v3 API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridSender builds a SendGrid backed sender.
func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send delivers msg, treating any 4xx/5xx response as a failure.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	res, err := s.client.SendWithContext(ctx, s.build(msg))
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", res.StatusCode, res.Body)
	}
	return nil
}

func (s *SendGridSender) build(msg Message) *sgmail.SGMailV3 {
	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	return sgmail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)
}

// NopSender drops every message.
type NopSender struct{}

// Send implements Sender.
func (NopSender) Send(context.Context, Message) error { return nil }
