package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Message   string
	CreatedAt time.Time
}

type NewsletterSubscription struct {
	ID           uuid.UUID
	Email        string
	IsActive     bool
	SubscribedAt time.Time
}

type OfferRequest struct {
	ID              uuid.UUID
	Phone           string
	Email           string
	City            string
	PropertyCount   int32
	Address         string
	AdditionalInfo  *string
	AgreedToPrivacy bool
	CreatedAt       time.Time
}

type PresentationRequest struct {
	ID               uuid.UUID
	PresentationDate time.Time
	BuildingType     string
	Phone            string
	Email            string
	Address          *string
	AgreedToPrivacy  bool
	CreatedAt        time.Time
}
