// Package contacts stores contact-form submissions and newsletter
// subscriptions.
package contacts

import (
	"context"

	"github.com/domunity/backend/internal/server/models"
)

type Repository interface {
	CreateSubmission(ctx context.Context, s *models.ContactSubmission) (*models.ContactSubmission, error)
	// SubscribeNewsletter is idempotent per email: a repeat call reactivates
	// the subscription and refreshes its timestamp.
	SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscription, error)
}
