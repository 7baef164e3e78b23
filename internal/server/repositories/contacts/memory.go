package contacts

import (
	"context"
	"sync"
	"time"

	"github.com/domunity/backend/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu          sync.Mutex
	submissions []models.ContactSubmission
	newsletter  map[string]models.NewsletterSubscription
	now         func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		newsletter: make(map[string]models.NewsletterSubscription),
		now:        time.Now,
	}
}

func (r *MemoryRepository) CreateSubmission(_ context.Context, s *models.ContactSubmission) (*models.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *s
	stored.ID = uuid.New()
	stored.CreatedAt = r.now().UTC()
	r.submissions = append(r.submissions, stored)
	return &stored, nil
}

func (r *MemoryRepository) SubscribeNewsletter(_ context.Context, email string) (*models.NewsletterSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.newsletter[email]
	if !ok {
		sub = models.NewsletterSubscription{ID: uuid.New(), Email: email}
	}
	sub.IsActive = true
	sub.SubscribedAt = r.now().UTC()
	r.newsletter[email] = sub
	return &sub, nil
}

// Submissions returns a snapshot of stored submissions.
func (r *MemoryRepository) Submissions() []models.ContactSubmission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ContactSubmission(nil), r.submissions...)
}
