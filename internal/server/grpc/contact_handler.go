package grpc

import (
	"context"

	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/services"

	pb "github.com/domunity/backend/internal/proto/apiv1"
)

type contactHandler struct {
	pb.UnimplementedContactServiceServer
	svc    ContactService
	logger logging.Logger
}

func (h *contactHandler) SubmitContact(ctx context.Context, req *pb.ContactRequest) (*pb.ContactResponse, error) {
	res, err := h.svc.SubmitContact(ctx, services.ContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return nil, failure(ctx, h.logger, "submit contact", err)
	}
	return &pb.ContactResponse{Success: true, Message: res.Message, SubmissionID: res.ID}, nil
}

func (h *contactHandler) SubscribeNewsletter(ctx context.Context, req *pb.NewsletterRequest) (*pb.NewsletterResponse, error) {
	res, err := h.svc.SubscribeNewsletter(ctx, req.Email)
	if err != nil {
		return nil, failure(ctx, h.logger, "subscribe newsletter", err)
	}
	return &pb.NewsletterResponse{Success: true, Message: res.Message}, nil
}
