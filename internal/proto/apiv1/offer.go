package apiv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type OfferRequest struct {
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	City            string `json:"city"`
	PropertyCount   int32  `json:"propertyCount"`
	Address         string `json:"address"`
	AdditionalInfo  string `json:"additionalInfo,omitempty"`
	AgreedToPrivacy bool   `json:"agreedToPrivacy"`
}

type OfferResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// PresentationRequest asks for an on-site presentation. PresentationDate is
// YYYY-MM-DD.
type PresentationRequest struct {
	PresentationDate string `json:"presentationDate"`
	BuildingType     string `json:"buildingType"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address,omitempty"`
	AgreedToPrivacy  bool   `json:"agreedToPrivacy"`
}

type PresentationResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

const (
	OfferService_SubmitOffer_FullMethodName         = "/api.v1.OfferService/SubmitOffer"
	OfferService_RequestPresentation_FullMethodName = "/api.v1.OfferService/RequestPresentation"
)

type OfferServiceClient interface {
	SubmitOffer(ctx context.Context, in *OfferRequest, opts ...grpc.CallOption) (*OfferResponse, error)
	RequestPresentation(ctx context.Context, in *PresentationRequest, opts ...grpc.CallOption) (*PresentationResponse, error)
}

type offerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOfferServiceClient(cc grpc.ClientConnInterface) OfferServiceClient {
	return &offerServiceClient{cc}
}

func (c *offerServiceClient) SubmitOffer(ctx context.Context, in *OfferRequest, opts ...grpc.CallOption) (*OfferResponse, error) {
	return invoke[OfferResponse](ctx, c.cc, OfferService_SubmitOffer_FullMethodName, in, opts)
}

func (c *offerServiceClient) RequestPresentation(ctx context.Context, in *PresentationRequest, opts ...grpc.CallOption) (*PresentationResponse, error) {
	return invoke[PresentationResponse](ctx, c.cc, OfferService_RequestPresentation_FullMethodName, in, opts)
}

type OfferServiceServer interface {
	SubmitOffer(context.Context, *OfferRequest) (*OfferResponse, error)
	RequestPresentation(context.Context, *PresentationRequest) (*PresentationResponse, error)
	mustEmbedUnimplementedOfferServiceServer()
}

type UnimplementedOfferServiceServer struct{}

func (UnimplementedOfferServiceServer) SubmitOffer(context.Context, *OfferRequest) (*OfferResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitOffer not implemented")
}
func (UnimplementedOfferServiceServer) RequestPresentation(context.Context, *PresentationRequest) (*PresentationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestPresentation not implemented")
}
func (UnimplementedOfferServiceServer) mustEmbedUnimplementedOfferServiceServer() {}

func RegisterOfferServiceServer(s grpc.ServiceRegistrar, srv OfferServiceServer) {
	s.RegisterService(&OfferService_ServiceDesc, srv)
}

var OfferService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "api.v1.OfferService",
	HandlerType: (*OfferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitOffer",
			Handler: unaryHandler(OfferService_SubmitOffer_FullMethodName, func(srv any, ctx context.Context, in *OfferRequest) (*OfferResponse, error) {
				return srv.(OfferServiceServer).SubmitOffer(ctx, in)
			}),
		},
		{
			MethodName: "RequestPresentation",
			Handler: unaryHandler(OfferService_RequestPresentation_FullMethodName, func(srv any, ctx context.Context, in *PresentationRequest) (*PresentationResponse, error) {
				return srv.(OfferServiceServer).RequestPresentation(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/v1/offer.proto",
}
