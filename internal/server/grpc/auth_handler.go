package grpc

import (
	"context"
	"time"

	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/models"
	"github.com/domunity/backend/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"

	pb "github.com/domunity/backend/internal/proto/apiv1"
)

type authHandler struct {
	pb.UnimplementedAuthServiceServer
	svc    AuthService
	logger logging.Logger
}

func (h *authHandler) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error) {
	res, err := h.svc.Signup(ctx, services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		return nil, failure(ctx, h.logger, "signup", err)
	}

	h.logger.Info(ctx, "Registered", "user_id", res.User.ID)
	return toAuthResponse(res), nil
}

func (h *authHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, failure(ctx, h.logger, "login", err)
	}
	return toAuthResponse(res), nil
}

func (h *authHandler) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	access, err := h.svc.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, failure(ctx, h.logger, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: access}, nil
}

func (h *authHandler) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	return &pb.LogoutResponse{Success: h.svc.Logout(ctx)}, nil
}

func (h *authHandler) GetCurrentUser(ctx context.Context, _ *pb.GetCurrentUserRequest) (*pb.UserResponse, error) {
	user, err := h.svc.GetCurrentUser(ctx, authorizationFromContext(ctx))
	if err != nil {
		return nil, failure(ctx, h.logger, "get current user", err)
	}
	return &pb.UserResponse{User: toPBUser(*user)}, nil
}

func authorizationFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func toAuthResponse(res *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         toPBUser(res.User),
	}
}

func toPBUser(u models.PublicUser) *pb.User {
	return &pb.User{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// failure converts err to a status and logs the full cause of internal
// failures, which the caller never sees.
func failure(ctx context.Context, l logging.Logger, op string, err error) error {
	code, _ := classify(err)
	if code == codes.Internal {
		l.Error(ctx, op+" failed", "error", err.Error())
	}
	return toStatus(err)
}
