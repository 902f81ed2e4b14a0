package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mailbox = "owner@example.com"

// MockSender records every message instead of talking to a provider
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func newContactUC(sender email.Sender) domain.ContactUsecase {
	return usecase.NewContactUsecase(sender, validation.New(), mailbox)
}

func sentMessage(t *testing.T, sender *MockSender) *email.Message {
	t.Helper()
	require.Len(t, sender.Calls, 1)
	return sender.Calls[0].Arguments.Get(1).(*email.Message)
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	return appErr.Fields
}

func TestSendContactMessageValid(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("*email.Message")).Return(nil)
	uc := newContactUC(sender)

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name:    "Jo",
		Email:   "a@b.co",
		Message: "1234567890",
	})
	require.NoError(t, err)

	msg := sentMessage(t, sender)
	assert.Equal(t, "Portfolio Contact", msg.FromName)
	assert.Equal(t, mailbox, msg.From)
	assert.Equal(t, mailbox, msg.To)
	assert.Equal(t, "a@b.co", msg.ReplyTo)
	assert.Equal(t, "New message from Jo", msg.Subject)
	assert.Contains(t, msg.HTML, "Jo &lt;a@b.co&gt;")
	assert.Contains(t, msg.HTML, "1234567890")
}

func TestSendContactMessageLineBreaks(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUC(sender)

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name:    "Ann Lee",
		Email:   "ann@example.com",
		Message: "hello\nworld this is long enough",
	})
	require.NoError(t, err)

	msg := sentMessage(t, sender)
	assert.Contains(t, msg.HTML, "hello<br/>world this is long enough")
	assert.Equal(t, "New message from Ann Lee", msg.Subject)
}

func TestSendContactMessageAllInvalid(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name:    "",
		Email:   "bad",
		Message: "short",
	})

	assert.Equal(t, map[string]string{
		"name":    "Name is required",
		"email":   "Valid email is required",
		"message": "Message must be at least 10 characters",
	}, fieldErrors(t, err))
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendContactMessageSingleViolation(t *testing.T) {
	valid := domain.ContactSubmission{Name: "Jo", Email: "a@b.co", Message: "1234567890"}

	tests := []struct {
		name   string
		mutate func(*domain.ContactSubmission)
		field  string
		msg    string
	}{
		{"name one char", func(s *domain.ContactSubmission) { s.Name = "J" }, "name", domain.ErrMsgName},
		{"name only spaces", func(s *domain.ContactSubmission) { s.Name = "   " }, "name", domain.ErrMsgName},
		{"name padded single char", func(s *domain.ContactSubmission) { s.Name = " J " }, "name", domain.ErrMsgName},
		{"email missing", func(s *domain.ContactSubmission) { s.Email = "" }, "email", domain.ErrMsgEmail},
		{"email without dot in domain", func(s *domain.ContactSubmission) { s.Email = "a@b" }, "email", domain.ErrMsgEmail},
		{"email with space", func(s *domain.ContactSubmission) { s.Email = "a b@c.co" }, "email", domain.ErrMsgEmail},
		{"message nine chars", func(s *domain.ContactSubmission) { s.Message = "123456789" }, "message", domain.ErrMsgMessage},
		{"message padded nine chars", func(s *domain.ContactSubmission) { s.Message = "  123456789\n" }, "message", domain.ErrMsgMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(MockSender)
			uc := newContactUC(sender)

			sub := valid
			tt.mutate(&sub)
			err := uc.SendContactMessage(context.Background(), &sub)

			assert.Equal(t, map[string]string{tt.field: tt.msg}, fieldErrors(t, err))
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSendContactMessageTwoViolations(t *testing.T) {
	uc := newContactUC(new(MockSender))

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name:    "Jo",
		Email:   "nope",
		Message: "tiny",
	})

	fields := fieldErrors(t, err)
	assert.Len(t, fields, 2)
	assert.Equal(t, domain.ErrMsgEmail, fields["email"])
	assert.Equal(t, domain.ErrMsgMessage, fields["message"])
}

func TestSendContactMessageBoundaries(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUC(sender)

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name:    "  Jo  ",
		Email:   "a@b.co",
		Message: " " + strings.Repeat("x", 10) + " ",
	})
	require.NoError(t, err)
	assert.Equal(t, "New message from Jo", sentMessage(t, sender).Subject)
}

func TestSendContactMessageNoDeduplication(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	uc := newContactUC(sender)

	sub := &domain.ContactSubmission{Name: "Jo", Email: "a@b.co", Message: "1234567890"}
	require.NoError(t, uc.SendContactMessage(context.Background(), sub))
	require.NoError(t, uc.SendContactMessage(context.Background(), sub))

	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestSendContactMessageTransportFailure(t *testing.T) {
	smtpErr := errors.New("535 5.7.8 Username and Password not accepted")
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(smtpErr)
	uc := newContactUC(sender)

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name:    "Jo",
		Email:   "a@b.co",
		Message: "1234567890",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, smtpErr)
	var appErr *apperror.AppError
	assert.False(t, errors.As(err, &appErr))
	sender.AssertNumberOfCalls(t, "Send", 1)
}
