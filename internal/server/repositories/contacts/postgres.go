package contacts

import (
	"context"
	"fmt"

	"github.com/domunity/backend/internal/dbx"
	"github.com/domunity/backend/internal/server/models"
)

type PostgresRepository struct {
	db  dbx.DBTX
	obs dbx.Observer
}

func NewPostgresRepository(db dbx.DBTX, obs dbx.Observer) *PostgresRepository {
	if obs == nil {
		obs = dbx.NopObserver{}
	}
	return &PostgresRepository{db: db, obs: obs}
}

func (r *PostgresRepository) CreateSubmission(ctx context.Context, s *models.ContactSubmission) (*models.ContactSubmission, error) {
	query :=
		`INSERT INTO contact_submissions (name, phone, email, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.obs.ObserveDB("contacts.create_submission", func() error {
		return r.db.QueryRowContext(ctx, query, s.Name, s.Phone, s.Email, s.Message).Scan(&s.ID, &s.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	query :=
		`INSERT INTO newsletter_subscriptions (email, is_active)
		 VALUES ($1, true)
		 ON CONFLICT (email) DO UPDATE SET is_active = true, subscribed_at = NOW()
		 RETURNING id, email, is_active, subscribed_at
		 `

	sub := &models.NewsletterSubscription{}
	err := r.obs.ObserveDB("contacts.subscribe_newsletter", func() error {
		return r.db.QueryRowContext(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return sub, nil
}
