package grpc

import (
	"context"

	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/services"

	pb "github.com/domunity/backend/internal/proto/apiv1"
)

type offerHandler struct {
	pb.UnimplementedOfferServiceServer
	svc    OfferService
	logger logging.Logger
}

func (h *offerHandler) SubmitOffer(ctx context.Context, req *pb.OfferRequest) (*pb.OfferResponse, error) {
	res, err := h.svc.SubmitOffer(ctx, services.OfferInput{
		Phone:           req.Phone,
		Email:           req.Email,
		City:            req.City,
		PropertyCount:   req.PropertyCount,
		Address:         req.Address,
		AdditionalInfo:  req.AdditionalInfo,
		AgreedToPrivacy: req.AgreedToPrivacy,
	})
	if err != nil {
		return nil, failure(ctx, h.logger, "submit offer", err)
	}
	return &pb.OfferResponse{Success: true, Message: res.Message, RequestID: res.ID}, nil
}

func (h *offerHandler) RequestPresentation(ctx context.Context, req *pb.PresentationRequest) (*pb.PresentationResponse, error) {
	res, err := h.svc.RequestPresentation(ctx, services.PresentationInput{
		Phone:            req.Phone,
		Email:            req.Email,
		BuildingType:     req.BuildingType,
		AgreedToPrivacy:  req.AgreedToPrivacy,
		PresentationDate: req.PresentationDate,
		Address:          req.Address,
	})
	if err != nil {
		return nil, failure(ctx, h.logger, "request presentation", err)
	}
	return &pb.PresentationResponse{Success: true, Message: res.Message, RequestID: res.ID}, nil
}
