package grpc

import (
	"errors"

	"github.com/domunity/backend/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is the errdetails.ErrorInfo domain of every error status.
const ErrorDomain = "api.domunity.bg"

const internalMessage = "internal error"

var errorKinds = []struct {
	kind   error
	code   codes.Code
	reason string
}{
	// Configuration failures must never surface as caller mistakes.
	{common.ErrConfig, codes.Internal, "INTERNAL"},
	{common.ErrorInvalidArgument, codes.InvalidArgument, "INVALID_ARGUMENT"},
	{common.ErrorUnauthorized, codes.Unauthenticated, "UNAUTHENTICATED"},
	{common.ErrInvalidToken, codes.Unauthenticated, "INVALID_TOKEN"},
	{common.ErrMalformedSubject, codes.Unauthenticated, "INVALID_TOKEN"},
	{common.ErrorAlreadyExists, codes.AlreadyExists, "ALREADY_EXISTS"},
	{common.ErrorNotFound, codes.NotFound, "NOT_FOUND"},
}

func classify(err error) (codes.Code, string) {
	for _, k := range errorKinds {
		if errors.Is(err, k.kind) {
			return k.code, k.reason
		}
	}
	return codes.Internal, "INTERNAL"
}

// toStatus converts a service error into a gRPC status error. Only public
// messages reach the caller; anything classified Internal is opaque.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	code, reason := classify(err)

	msg := internalMessage
	if code != codes.Internal {
		if public, ok := common.PublicMessage(err); ok {
			msg = public
		} else {
			msg = code.String()
		}
	}

	st := status.New(code, msg)
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}
