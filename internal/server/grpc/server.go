package grpc

import (
	"context"
	"net"

	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/metrics"
	"github.com/domunity/backend/internal/server/models"
	"github.com/domunity/backend/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/domunity/backend/internal/proto/apiv1"
)

type AuthService interface {
	Signup(ctx context.Context, in services.SignupInput) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context) bool
	GetCurrentUser(ctx context.Context, authorization string) (*models.PublicUser, error)
}

type ContactService interface {
	SubmitContact(ctx context.Context, in services.ContactInput) (*services.Confirmation, error)
	SubscribeNewsletter(ctx context.Context, email string) (*services.Confirmation, error)
}

type OfferService interface {
	SubmitOffer(ctx context.Context, in services.OfferInput) (*services.Confirmation, error)
	RequestPresentation(ctx context.Context, in services.PresentationInput) (*services.Confirmation, error)
}

type GRPCServer struct {
	address  string
	logger   logging.Logger
	auth     AuthService
	contacts ContactService
	offers   OfferService
	metrics  *metrics.Metrics
	health   *health.Server
}

type Option func(*GRPCServer)

// WithMetrics records RPC counters and latencies into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *GRPCServer) { s.metrics = m }
}

func NewGRPCServer(address string, l logging.Logger, auth AuthService, contacts ContactService, offers OfferService, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		auth:     auth,
		contacts: contacts,
		offers:   offers,
		health:   health.NewServer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// service pairs a descriptor with its implementation.
type service struct {
	desc *grpc.ServiceDesc
	impl any
}

func (s *GRPCServer) services() []service {
	return []service{
		{&pb.AuthService_ServiceDesc, &authHandler{svc: s.auth, logger: s.logger}},
		{&pb.ContactService_ServiceDesc, &contactHandler{svc: s.contacts, logger: s.logger}},
		{&pb.OfferService_ServiceDesc, &offerHandler{svc: s.offers, logger: s.logger}},
	}
}

func (s *GRPCServer) unaryInterceptors() []grpc.UnaryServerInterceptor {
	interceptors := []grpc.UnaryServerInterceptor{localeInterceptor, s.loggingInterceptor}
	if s.metrics != nil {
		interceptors = append(interceptors, s.metrics.UnaryServerInterceptor())
	}
	return interceptors
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.unaryInterceptors()...),
	)

	for _, svc := range s.services() {
		srv.RegisterService(svc.desc, svc.impl)
	}
	healthpb.RegisterHealthServer(srv, s.health)

	for _, name := range []string{"", pb.AuthService_ServiceDesc.ServiceName, pb.ContactService_ServiceDesc.ServiceName, pb.OfferService_ServiceDesc.ServiceName} {
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then drains
// in-flight calls.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
