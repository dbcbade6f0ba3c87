package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/aleister1102/gistwatch/internal/config"
	"github.com/aleister1102/gistwatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// EmailSink sends the alert as a plain-text message through an SMTP relay.
// A new connection is made per alert.
type EmailSink struct {
	cfg    config.EmailConfig
	logger zerolog.Logger
}

// NewEmailSink creates an EmailSink. The relay is not contacted until Notify.
func NewEmailSink(cfg config.EmailConfig, logger zerolog.Logger) (*EmailSink, error) {
	if cfg.SMTPServer == "" {
		return nil, fmt.Errorf("email sink: smtp server is required")
	}
	if cfg.Sender == "" || cfg.Recipient == "" {
		return nil, fmt.Errorf("email sink: sender and recipient are required")
	}
	if cfg.Subject == "" {
		cfg.Subject = config.DefaultEmailSubject
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = config.DefaultEmailSMTPPort
	}

	return &EmailSink{
		cfg:    cfg,
		logger: logger.With().Str("component", "EmailSink").Logger(),
	}, nil
}

func (s *EmailSink) Name() string { return EmailSinkName }

// Notify builds and delivers one message. Any failure is returned to the caller.
func (s *EmailSink) Notify(ctx context.Context, alert models.Alert) error {
	msg, err := s.buildMessage(alert)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.SMTPServer, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client for %s: %w", s.relay(), err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email via %s: %w", s.relay(), err)
	}

	s.logger.Debug().Str("relay", s.relay()).Str("recipient", s.cfg.Recipient).Msg("Email notification sent")
	return nil
}

func (s *EmailSink) buildMessage(alert models.Alert) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", s.cfg.Sender, err)
	}
	if err := msg.To(s.cfg.Recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", s.cfg.Recipient, err)
	}
	msg.Subject(s.cfg.Subject)
	msg.SetBodyString(mail.TypeTextPlain, alert.Text)
	return msg, nil
}

func (s *EmailSink) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTPPort),
		mail.WithTimeout(s.cfg.Timeout()),
		mail.WithTLSPolicy(tlsPolicy(s.cfg.TLSPolicy)),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

func (s *EmailSink) relay() string {
	return fmt.Sprintf("%s:%d", s.cfg.SMTPServer, s.cfg.SMTPPort)
}

func tlsPolicy(policy string) mail.TLSPolicy {
	switch strings.ToLower(policy) {
	case config.TLSPolicyNone:
		return mail.NoTLS
	case config.TLSPolicyMandatory:
		return mail.TLSMandatory
	default:
		return mail.TLSOpportunistic
	}
}
