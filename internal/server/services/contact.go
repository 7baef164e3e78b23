package services

import (
	"context"
	"fmt"

	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/i18n"
	"github.com/domunity/backend/internal/server/models"
	"github.com/domunity/backend/internal/server/repositories/contacts"
	"github.com/domunity/backend/internal/server/validation"
)

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name    string `validate:"person_name"`
	Phone   string `validate:"phone_number"`
	Email   string `validate:"email_address"`
	Message string `validate:"not_blank,max=5000" msg:"not_blank:Message cannot be empty|max:Message is too long (max 5000 characters)"`
}

type newsletterInput struct {
	Email string `validate:"email_address"`
}

// Confirmation is the outcome of an accepted lead: the stored record id (empty
// for newsletter subscriptions) and a message in the caller's language.
type Confirmation struct {
	ID      string
	Message string
}

type ContactService struct {
	repo      contacts.Repository
	validator *validation.Validator
	log       logging.Logger
}

func NewContactService(repo contacts.Repository, v *validation.Validator, log logging.Logger) *ContactService {
	return &ContactService{repo: repo, validator: v, log: log}
}

func (s *ContactService) SubmitContact(ctx context.Context, in ContactInput) (*Confirmation, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	sub, err := s.repo.CreateSubmission(ctx, &models.ContactSubmission{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Message: in.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("save contact submission: %w", err)
	}

	s.log.Info(ctx, "contact submission stored", "submission_id", sub.ID)
	return &Confirmation{ID: sub.ID.String(), Message: i18n.Sprintf(ctx, i18n.ContactSubmitted)}, nil
}

// SubscribeNewsletter subscribes email, reactivating an earlier subscription.
func (s *ContactService) SubscribeNewsletter(ctx context.Context, email string) (*Confirmation, error) {
	if err := s.validator.Struct(newsletterInput{Email: email}); err != nil {
		return nil, err
	}

	sub, err := s.repo.SubscribeNewsletter(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("subscribe newsletter: %w", err)
	}

	s.log.Info(ctx, "newsletter subscription active", "subscription_id", sub.ID)
	return &Confirmation{Message: i18n.Sprintf(ctx, i18n.NewsletterSubscribed)}, nil
}
