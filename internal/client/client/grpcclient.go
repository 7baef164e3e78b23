package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/domunity/backend/internal/client/models"
	"github.com/domunity/backend/internal/common"
	pb "github.com/domunity/backend/internal/proto/apiv1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const callTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	auth        pb.AuthServiceClient
	health      healthpb.HealthClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(string)
}

func withAuthorization(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

// refreshable reports whether an Unauthenticated failure of method can be
// cured with a new access token.
func refreshable(method string) bool {
	switch method {
	case pb.AuthService_Login_FullMethodName,
		pb.AuthService_Signup_FullMethodName,
		pb.AuthService_RefreshToken_FullMethodName:
		return false
	}
	return true
}

func (s *GRPCClient) authorizationInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	accessToken, refreshToken := s.Tokens()
	if accessToken != "" {
		ctx = withAuthorization(ctx, accessToken)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	if status.Code(err) != codes.Unauthenticated || !refreshable(method) || refreshToken == "" {
		return err
	}

	resp, refreshErr := s.auth.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if refreshErr != nil {
		return err
	}

	s.setAccessToken(resp.AccessToken)

	return invoker(withAuthorization(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient creates a client for endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.authorizationInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.auth = pb.NewAuthServiceClient(conn)
	c.health = healthpb.NewHealthClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

func (s *GRPCClient) OnRefresh(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) setAccessToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	fn := s.onRefresh
	s.mu.Unlock()

	if fn != nil {
		fn(token)
	}
}

func (s *GRPCClient) Signup(ctx context.Context, p models.SignupParams) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.auth.Signup(ctx, &pb.SignupRequest{
		Email:    p.Email,
		Password: p.Password,
		FullName: p.FullName,
		Phone:    p.Phone,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return toUser(resp.User), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.auth.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return toUser(resp.User), nil
}

// Refresh exchanges the held refresh token for a new access token.
func (s *GRPCClient) Refresh(ctx context.Context) (string, error) {
	_, refreshToken := s.Tokens()
	if refreshToken == "" {
		return "", ErrNotSignedIn
	}

	resp, err := s.auth.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", s.mapError(err)
	}

	s.setAccessToken(resp.AccessToken)
	return resp.AccessToken, nil
}

// Logout notifies the server and forgets the tokens even if the call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, err := s.auth.Logout(ctx, &pb.LogoutRequest{})
	s.SetTokens("", "")
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CurrentUser(ctx context.Context) (*models.User, error) {
	if accessToken, _ := s.Tokens(); accessToken == "" {
		return nil, ErrNotSignedIn
	}

	resp, err := s.auth.GetCurrentUser(ctx, &pb.GetCurrentUserRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return toUser(resp.User), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}

	return nil
}

func toUser(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	created, _ := time.Parse(time.RFC3339, u.CreatedAt)
	return &models.User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: created,
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
