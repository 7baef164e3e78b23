package grpc

import (
	"context"
	"testing"

	"github.com/domunity/backend/internal/logging"
	"github.com/domunity/backend/internal/server/i18n"
	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	levels []string
}

func (r *recordingLogger) Debug(context.Context, string, ...any) { r.levels = append(r.levels, "debug") }
func (r *recordingLogger) Info(context.Context, string, ...any)  { r.levels = append(r.levels, "info") }
func (r *recordingLogger) Warn(context.Context, string, ...any)  { r.levels = append(r.levels, "warn") }
func (r *recordingLogger) Error(context.Context, string, ...any) { r.levels = append(r.levels, "error") }
func (r *recordingLogger) With(...any) logging.Logger            { return r }

func TestLocaleInterceptor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("accept-language", "en-GB,en;q=0.8"))
	info := &grpc.UnaryServerInfo{FullMethod: "/api.v1.ContactService/SubmitContact"}

	var got language.Tag
	_, err := localeInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		got = i18n.FromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != language.English {
		t.Fatalf("locale = %v, want en", got)
	}
}

func TestLoggingInterceptor_LevelByCode(t *testing.T) {
	rec := &recordingLogger{}
	s := &GRPCServer{logger: rec}
	info := &grpc.UnaryServerInfo{FullMethod: "/api.v1.AuthService/Login"}

	for _, code := range []codes.Code{codes.OK, codes.Unauthenticated, codes.Internal} {
		_, _ = s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
			if code == codes.OK {
				return "ok", nil
			}
			return nil, status.Error(code, "x")
		})
	}

	want := []string{"info", "warn", "error"}
	if len(rec.levels) != len(want) {
		t.Fatalf("levels = %v, want %v", rec.levels, want)
	}
	for i := range want {
		if rec.levels[i] != want[i] {
			t.Fatalf("levels = %v, want %v", rec.levels, want)
		}
	}
}
