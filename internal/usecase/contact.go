package usecase

import (
	"context"
	"fmt"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const senderDisplayName = "Portfolio Contact"

// contactFieldMessages pins the message shown for each field whatever rule failed
var contactFieldMessages = map[string]string{
	domain.FieldName:    domain.ErrMsgName,
	domain.FieldEmail:   domain.ErrMsgEmail,
	domain.FieldMessage: domain.ErrMsgMessage,
}

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
	mailbox  string
}

// NewContactUsecase creates a new contact usecase. mailbox is both the
// sender and the recipient of every contact email.
func NewContactUsecase(sender email.Sender, validate *validator.Validate, mailbox string) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
		mailbox:  mailbox,
	}
}

// SendContactMessage validates the submission and sends exactly one email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.ContactSubmission) error {
	if err := uc.validate.Struct(sub); err != nil {
		fields := validation.FieldMessages(err, contactFieldMessages)
		if fields == nil {
			return fmt.Errorf("validate contact submission: %w", err)
		}
		logger.Log.Debug("Contact submission rejected", "fields", fields)
		return apperror.Validation(fields)
	}

	name := strings.TrimSpace(sub.Name)
	html, err := email.RenderContactHTML(email.ContactEmailData{
		SenderName:  name,
		SenderEmail: sub.Email,
		Message:     strings.TrimSpace(sub.Message),
	})
	if err != nil {
		return err
	}

	msg := &email.Message{
		FromName: senderDisplayName,
		From:     uc.mailbox,
		To:       uc.mailbox,
		ReplyTo:  sub.Email,
		Subject:  "New message from " + name,
		HTML:     html,
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	logger.Log.Info("Contact message sent", "reply_to", sub.Email)
	return nil
}
