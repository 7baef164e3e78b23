// Package offers stores valuation-offer and property-presentation requests.
package offers

import (
	"context"

	"github.com/domunity/backend/internal/server/models"
)

type Repository interface {
	CreateOffer(ctx context.Context, o *models.OfferRequest) (*models.OfferRequest, error)
	CreatePresentation(ctx context.Context, p *models.PresentationRequest) (*models.PresentationRequest, error)
}
