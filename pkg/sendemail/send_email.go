package sendemail

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrSendFailed = errors.New("failed to send email")

type EmailService interface {
	SendEmail(ctx context.Context, subject, toEmail, plainTextContent, htmlContent string) error
}

type emailService struct {
	client      *sendgrid.Client
	senderEmail string
	senderName  string
}

// NewEmailService returns a SendGrid backed sender, or a no-op sender when
// apiKey is empty so local runs never reach the network.
func NewEmailService(apiKey, senderEmail, senderName string) EmailService {
	if apiKey == "" {
		return noopEmailService{}
	}
	return &emailService{
		client:      sendgrid.NewSendClient(apiKey),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (e *emailService) SendEmail(ctx context.Context, subject, toEmail, plainTextContent, htmlContent string) error {
	from := mail.NewEmail(e.senderName, e.senderEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d", ErrSendFailed, response.StatusCode)
	}
	return nil
}

type noopEmailService struct{}

func (noopEmailService) SendEmail(context.Context, string, string, string, string) error {
	return nil
}
