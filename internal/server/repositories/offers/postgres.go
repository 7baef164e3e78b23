package offers

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

func (r *PostgresRepository) CreateOffer(ctx context.Context, o *models.OfferRequest) (*models.OfferRequest, error) {
	query :=
		`INSERT INTO offer_requests (phone, email, city, property_count, address, additional_info, agreed_to_privacy)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		 RETURNING id, created_at
		 `

	err := r.obs.ObserveDB("offers.create_offer", func() error {
		return r.db.QueryRowContext(ctx, query,
			o.Phone, o.Email, o.City, o.PropertyCount, o.Address, deref(o.AdditionalInfo), o.AgreedToPrivacy).
			Scan(&o.ID, &o.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *PostgresRepository) CreatePresentation(ctx context.Context, p *models.PresentationRequest) (*models.PresentationRequest, error) {
	query :=
		`INSERT INTO presentation_requests (presentation_date, building_type, phone, email, address, agreed_to_privacy)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING id, created_at
		 `

	err := r.obs.ObserveDB("offers.create_presentation", func() error {
		return r.db.QueryRowContext(ctx, query,
			p.PresentationDate, p.BuildingType, p.Phone, p.Email, deref(p.Address), p.AgreedToPrivacy).
			Scan(&p.ID, &p.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
