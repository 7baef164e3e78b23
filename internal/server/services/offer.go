package services

import (
	"context"
	"fmt"
	"time"

	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/i18n"
	"github.com/domunity/backend/internal/server/models"
	"github.com/domunity/backend/internal/server/repositories/offers"
	"github.com/domunity/backend/internal/server/validation"
)

const MsgPresentationInPast = "Presentation date must be in the future"

type OfferInput struct {
	Phone           string `validate:"phone_number"`
	Email           string `validate:"email_address"`
	City            string `validate:"not_blank" msg:"not_blank:City cannot be empty"`
	PropertyCount   int32  `validate:"gte=1" msg:"gte:Property count must be at least 1"`
	Address         string `validate:"not_blank" msg:"not_blank:Address cannot be empty"`
	AdditionalInfo  string
	AgreedToPrivacy bool `validate:"required" msg:"required:You must agree to the privacy policy"`
}

type PresentationInput struct {
	Phone            string `validate:"phone_number"`
	Email            string `validate:"email_address"`
	BuildingType     string `validate:"not_blank" msg:"not_blank:Building type cannot be empty"`
	AgreedToPrivacy  bool   `validate:"required" msg:"required:You must agree to the privacy policy"`
	PresentationDate string `validate:"iso_date"`
	Address          string
}

type OfferService struct {
	repo      offers.Repository
	validator *validation.Validator
	log       logging.Logger
	now       func() time.Time
}

func NewOfferService(repo offers.Repository, v *validation.Validator, log logging.Logger, now func() time.Time) *OfferService {
	if now == nil {
		now = time.Now
	}
	return &OfferService{repo: repo, validator: v, log: log, now: now}
}

func (s *OfferService) SubmitOffer(ctx context.Context, in OfferInput) (*Confirmation, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	offer, err := s.repo.CreateOffer(ctx, &models.OfferRequest{
		Phone:           in.Phone,
		Email:           in.Email,
		City:            in.City,
		PropertyCount:   in.PropertyCount,
		Address:         in.Address,
		AdditionalInfo:  models.OptionalString(in.AdditionalInfo),
		AgreedToPrivacy: in.AgreedToPrivacy,
	})
	if err != nil {
		return nil, fmt.Errorf("save offer request: %w", err)
	}

	s.log.Info(ctx, "offer request stored", "request_id", offer.ID, "property_count", offer.PropertyCount, "city", offer.City)
	return &Confirmation{ID: offer.ID.String(), Message: i18n.Sprintf(ctx, i18n.OfferReceived)}, nil
}

// RequestPresentation books a presentation for today or a later UTC date.
func (s *OfferService) RequestPresentation(ctx context.Context, in PresentationInput) (*Confirmation, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	date, err := validation.Date(in.PresentationDate)
	if err != nil {
		return nil, err
	}
	y, m, d := s.now().UTC().Date()
	if date.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return nil, common.InvalidArgument(MsgPresentationInPast)
	}

	p, err := s.repo.CreatePresentation(ctx, &models.PresentationRequest{
		PresentationDate: date,
		BuildingType:     in.BuildingType,
		Phone:            in.Phone,
		Email:            in.Email,
		Address:          models.OptionalString(in.Address),
		AgreedToPrivacy:  in.AgreedToPrivacy,
	})
	if err != nil {
		return nil, fmt.Errorf("save presentation request: %w", err)
	}

	s.log.Info(ctx, "presentation request stored", "request_id", p.ID, "building_type", p.BuildingType)
	return &Confirmation{
		ID:      p.ID.String(),
		Message: i18n.Sprintf(ctx, i18n.PresentationConfirmed, p.PresentationDate.Format(validation.DateLayout)),
	}, nil
}
