package apiv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

type NewsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	ContactService_SubmitContact_FullMethodName       = "/api.v1.ContactService/SubmitContact"
	ContactService_SubscribeNewsletter_FullMethodName = "/api.v1.ContactService/SubscribeNewsletter"
)

type ContactServiceClient interface {
	SubmitContact(ctx context.Context, in *ContactRequest, opts ...grpc.CallOption) (*ContactResponse, error)
	SubscribeNewsletter(ctx context.Context, in *NewsletterRequest, opts ...grpc.CallOption) (*NewsletterResponse, error)
}

type contactServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContactServiceClient(cc grpc.ClientConnInterface) ContactServiceClient {
	return &contactServiceClient{cc}
}

func (c *contactServiceClient) SubmitContact(ctx context.Context, in *ContactRequest, opts ...grpc.CallOption) (*ContactResponse, error) {
	return invoke[ContactResponse](ctx, c.cc, ContactService_SubmitContact_FullMethodName, in, opts)
}

func (c *contactServiceClient) SubscribeNewsletter(ctx context.Context, in *NewsletterRequest, opts ...grpc.CallOption) (*NewsletterResponse, error) {
	return invoke[NewsletterResponse](ctx, c.cc, ContactService_SubscribeNewsletter_FullMethodName, in, opts)
}

type ContactServiceServer interface {
	SubmitContact(context.Context, *ContactRequest) (*ContactResponse, error)
	SubscribeNewsletter(context.Context, *NewsletterRequest) (*NewsletterResponse, error)
	mustEmbedUnimplementedContactServiceServer()
}

type UnimplementedContactServiceServer struct{}

func (UnimplementedContactServiceServer) SubmitContact(context.Context, *ContactRequest) (*ContactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitContact not implemented")
}
func (UnimplementedContactServiceServer) SubscribeNewsletter(context.Context, *NewsletterRequest) (*NewsletterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubscribeNewsletter not implemented")
}
func (UnimplementedContactServiceServer) mustEmbedUnimplementedContactServiceServer() {}

func RegisterContactServiceServer(s grpc.ServiceRegistrar, srv ContactServiceServer) {
	s.RegisterService(&ContactService_ServiceDesc, srv)
}

var ContactService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "api.v1.ContactService",
	HandlerType: (*ContactServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitContact",
			Handler: unaryHandler(ContactService_SubmitContact_FullMethodName, func(srv any, ctx context.Context, in *ContactRequest) (*ContactResponse, error) {
				return srv.(ContactServiceServer).SubmitContact(ctx, in)
			}),
		},
		{
			MethodName: "SubscribeNewsletter",
			Handler: unaryHandler(ContactService_SubscribeNewsletter_FullMethodName, func(srv any, ctx context.Context, in *NewsletterRequest) (*NewsletterResponse, error) {
				return srv.(ContactServiceServer).SubscribeNewsletter(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/v1/contact.proto",
}
