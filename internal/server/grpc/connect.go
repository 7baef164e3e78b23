package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/domunity/backend/internal/common"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	connectContentType   = "application/json"
	connectTimeoutHeader = "Connect-Timeout-Ms"
	maxConnectBodyBytes  = 1 << 20
)

// connectCodes maps gRPC codes to Connect error codes and HTTP statuses.
var connectCodes = map[codes.Code]struct {
	name       string
	httpStatus int
}{
	codes.Canceled:           {"canceled", 499},
	codes.Unknown:            {"unknown", http.StatusInternalServerError},
	codes.InvalidArgument:    {"invalid_argument", http.StatusBadRequest},
	codes.DeadlineExceeded:   {"deadline_exceeded", http.StatusGatewayTimeout},
	codes.NotFound:           {"not_found", http.StatusNotFound},
	codes.AlreadyExists:      {"already_exists", http.StatusConflict},
	codes.PermissionDenied:   {"permission_denied", http.StatusForbidden},
	codes.ResourceExhausted:  {"resource_exhausted", http.StatusTooManyRequests},
	codes.FailedPrecondition: {"failed_precondition", http.StatusBadRequest},
	codes.Aborted:            {"aborted", http.StatusConflict},
	codes.OutOfRange:         {"out_of_range", http.StatusBadRequest},
	codes.Unimplemented:      {"unimplemented", http.StatusNotImplemented},
	codes.Internal:           {"internal", http.StatusInternalServerError},
	codes.Unavailable:        {"unavailable", http.StatusServiceUnavailable},
	codes.DataLoss:           {"data_loss", http.StatusInternalServerError},
	codes.Unauthenticated:    {"unauthenticated", http.StatusUnauthorized},
}

type connectError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// RegisterConnectRoutes mounts every unary RPC as a Connect protocol JSON
// endpoint, POST /<package>.<Service>/<Method>, so browsers can call the API
// over HTTP/1.1. Calls run through the same interceptors as gRPC.
func (s *GRPCServer) RegisterConnectRoutes(r gin.IRoutes) {
	interceptor := chainUnary(s.unaryInterceptors())
	for _, svc := range s.services() {
		for _, md := range svc.desc.Methods {
			r.POST("/"+svc.desc.ServiceName+"/"+md.MethodName, connectHandler(svc.impl, md, interceptor))
		}
	}
}

func connectHandler(impl any, md grpc.MethodDesc, interceptor grpc.UnaryServerInterceptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != connectContentType {
			c.AbortWithStatus(http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxConnectBodyBytes))
		if err != nil {
			writeConnectError(c, status.New(codes.InvalidArgument, "request body too large or unreadable"))
			return
		}

		ctx, cancel, err := connectContext(c)
		if err != nil {
			writeConnectError(c, status.New(codes.InvalidArgument, err.Error()))
			return
		}
		defer cancel()

		dec := func(v any) error {
			if len(body) == 0 {
				return nil
			}
			if err := json.Unmarshal(body, v); err != nil {
				return status.Error(codes.InvalidArgument, "malformed request body")
			}
			return nil
		}

		resp, err := md.Handler(impl, ctx, dec, interceptor)
		if err != nil {
			writeConnectError(c, status.Convert(err))
			return
		}

		out, err := json.Marshal(resp)
		if err != nil {
			writeConnectError(c, status.New(codes.Internal, internalMessage))
			return
		}
		c.Data(http.StatusOK, connectContentType, out)
	}
}

// connectContext carries the authorization and locale headers into incoming
// metadata and applies the caller's Connect-Timeout-Ms.
func connectContext(c *gin.Context) (context.Context, context.CancelFunc, error) {
	md := metadata.MD{}
	if v := c.GetHeader("Authorization"); v != "" {
		md.Set(common.AuthorizationHeaderName, v)
	}
	if v := c.GetHeader("Accept-Language"); v != "" {
		md.Set(common.AcceptLanguageHeaderName, v)
	}
	ctx := metadata.NewIncomingContext(c.Request.Context(), md)

	raw := c.GetHeader(connectTimeoutHeader)
	if raw == "" {
		return ctx, func() {}, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms <= 0 {
		return nil, nil, errors.New("invalid " + connectTimeoutHeader)
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(ms)*time.Millisecond)
	return ctx, cancel, nil
}

func writeConnectError(c *gin.Context, st *status.Status) {
	mapped, ok := connectCodes[st.Code()]
	if !ok {
		mapped = connectCodes[codes.Unknown]
	}
	out, _ := json.Marshal(connectError{Code: mapped.name, Message: st.Message()})
	c.Data(mapped.httpStatus, connectContentType, out)
}

// chainUnary folds interceptors into one, outermost first, matching
// grpc.ChainUnaryInterceptor.
func chainUnary(interceptors []grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		next := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			ic, h := interceptors[i], next
			next = func(ctx context.Context, req any) (any, error) {
				return ic(ctx, req, info, h)
			}
		}
		return next(ctx, req)
	}
}
