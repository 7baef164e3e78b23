package offers

import (
	"context"
	"sync"
	"time"

	"github.com/domunity/backend/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu            sync.Mutex
	offers        []models.OfferRequest
	presentations []models.PresentationRequest
	now           func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) CreateOffer(_ context.Context, o *models.OfferRequest) (*models.OfferRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *o
	stored.ID = uuid.New()
	stored.CreatedAt = r.now().UTC()
	r.offers = append(r.offers, stored)
	return &stored, nil
}

func (r *MemoryRepository) CreatePresentation(_ context.Context, p *models.PresentationRequest) (*models.PresentationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	stored.ID = uuid.New()
	stored.CreatedAt = r.now().UTC()
	r.presentations = append(r.presentations, stored)
	return &stored, nil
}

func (r *MemoryRepository) Offers() []models.OfferRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.OfferRequest(nil), r.offers...)
}

func (r *MemoryRepository) Presentations() []models.PresentationRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.PresentationRequest(nil), r.presentations...)
}
