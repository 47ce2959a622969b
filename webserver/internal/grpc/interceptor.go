package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pbauth "github.com/jaconsta/rag-gallery/proto/auth"

	"github.com/jaconsta/rag-gallery/pkg/authsession"
)

const metadataKeyAuthorization = "x-authorization"

type userIDKey struct{}

// UserIDFromContext returns the user_id the auth interceptor resolved
// for this call, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok
}

// openMethods lists the fully-qualified gRPC methods that establish a
// session and so must be reachable without one.
var openMethods = map[string]bool{
	pbauth.AuthGreeter_GreetAuth_FullMethodName:    true,
	pbauth.AuthGreeter_ExchangeAuth_FullMethodName: true,
}

// AuthInterceptor validates the "x-authorization" metadata entry against
// the session manager for every method except the handshake itself, and
// injects the resolved user_id into the handler's context.
func AuthInterceptor(sessions *authsession.Manager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if openMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		token, err := bearerFromMetadata(ctx)
		if err != nil {
			return nil, err
		}

		userID, err := sessions.Validate(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired session")
		}

		ctx = context.WithValue(ctx, userIDKey{}, userID)
		return handler(ctx, req)
	}
}

func bearerFromMetadata(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing metadata")
	}
	vals := md.Get(metadataKeyAuthorization)
	if len(vals) == 0 || vals[0] == "" {
		return "", status.Error(codes.Unauthenticated, "missing x-authorization metadata")
	}
	return strings.TrimPrefix(vals[0], "Bearer "), nil
}
