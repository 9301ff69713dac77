package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"org-access-control/internal/identity"
)

const bearerPrefix = "bearer "

// Metadata keys trusted by HeaderIdentityUnary.
const (
	UserIDHeader    = "x-user-id"
	UserEmailHeader = "x-user-email"
	UserNameHeader  = "x-user-name"
)

// TokenVerifier turns a bearer token into the caller it was issued for.
type TokenVerifier interface {
	Verify(token string) (identity.Caller, error)
}

var errUnauthenticated = status.Error(codes.Unauthenticated, "missing or invalid authorization")

// AuthUnary returns a unary server interceptor that verifies the Bearer identity token from gRPC
// metadata and stores the caller in the context for protected RPCs.
// publicMethods is the set of full method names that do not require a token (e.g. health checks);
// they still receive the caller when a valid token is sent.
func AuthUnary(verifier TokenVerifier, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		public := publicMethods[info.FullMethod]
		token := extractBearer(ctx)
		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, errUnauthenticated
		}
		caller, err := verifier.Verify(token)
		if err != nil {
			if public {
				return handler(ctx, req)
			}
			return nil, errUnauthenticated
		}
		return handler(identity.WithCaller(ctx, caller), req)
	}
}

// HeaderIdentityUnary trusts x-user-id / x-user-email / x-user-name metadata as the caller.
// Development only; the server refuses to use it in production.
func HeaderIdentityUnary(publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		userID := firstMD(ctx, UserIDHeader)
		if userID == "" {
			if publicMethods[info.FullMethod] {
				return handler(ctx, req)
			}
			return nil, errUnauthenticated
		}
		caller := identity.Caller{
			UserID: userID,
			Email:  identity.NormalizeEmail(firstMD(ctx, UserEmailHeader)),
			Name:   firstMD(ctx, UserNameHeader),
		}
		return handler(identity.WithCaller(ctx, caller), req)
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	v := firstMD(ctx, "authorization")
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
