package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/mail"
	"github.com/vite-gourmand/catering-service/internal/models"
)

// ContactStore is the contact message persistence the contact service needs.
type ContactStore interface {
	Create(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
}

// ContactService handles inbound contact messages.
type ContactService struct {
	messages   ContactStore
	mailer     mail.Mailer
	adminEmail string
}

// NewContactService creates a new contact service.
func NewContactService(messages ContactStore, mailer mail.Mailer, adminEmail string) *ContactService {
	return &ContactService{
		messages:   messages,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// Create stores a contact message and notifies the admin mailbox
// best-effort.
func (s *ContactService) Create(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return nil, Invalid("Tous les champs obligatoires doivent être remplis.")
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		return nil, Internal(err)
	}

	if err := s.mailer.Send(s.adminEmail, "Nouveau message de contact : "+created.Subject,
		"<p><strong>De :</strong> "+created.Name+" ("+created.Email+")</p>"+
			"<p><strong>Sujet :</strong> "+created.Subject+"</p>"+
			"<p><strong>Message :</strong></p><p>"+created.Message+"</p>"); err != nil {
		logrus.WithError(err).Warn("failed to send contact notification")
	}

	return created, nil
}
