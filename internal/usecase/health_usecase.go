package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
)

// MailStatus is implemented by senders that can report missing credentials
type MailStatus interface {
	IsConfigured() bool
}

type healthUsecase struct {
	mail MailStatus
}

func NewHealthUsecase(mail MailStatus) domain.HealthUsecase {
	return &healthUsecase{mail: mail}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	mail := "configured"
	if u.mail == nil || !u.mail.IsConfigured() {
		mail = "unconfigured"
	}
	return map[string]string{
		"status": "ok",
		"mail":   mail,
	}
}
