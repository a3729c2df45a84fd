package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"nutricoach/config"
	"nutricoach/infras/otel"
	"nutricoach/shared/constant"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrSubject = "subject"
)

type Email struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer delivers transactional email such as booking confirmations.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type resendMailer struct {
	client *resend.Client
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	return &resendMailer{
		client: resend.NewClient(cfg.External.Email.APIKey),
		config: cfg,
		otel:   otl,
	}
}

func (m *resendMailer) Send(ctx context.Context, email Email) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrSubject, email.Subject)

	params := &resend.SendEmailRequest{
		From:    m.config.External.Email.FromAddress,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("subject", email.Subject).Msg("Failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("messageID", sent.Id).Str("subject", email.Subject).Msg("Email sent")

	return nil
}
