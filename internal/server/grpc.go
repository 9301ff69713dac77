package server

import (
	"context"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	invitationv1 "org-access-control/api/invitation/v1"
	organizationv1 "org-access-control/api/organization/v1"
	healthhandler "org-access-control/internal/health/handler"
	invitationhandler "org-access-control/internal/invitation/handler"
	"org-access-control/internal/logger"
	organizationhandler "org-access-control/internal/organization/handler"
	"org-access-control/internal/server/interceptors"
)

// Deps holds the service dependencies for gRPC handlers.
type Deps struct {
	// Organizations backs the organization lifecycle and membership RPCs. If nil, they return Unimplemented.
	Organizations organizationhandler.OrganizationService
	// InvitationIssuer backs InviteUser and GetInvitations. If nil, they return Unimplemented.
	InvitationIssuer organizationhandler.InvitationIssuer
	// Invitations backs AcceptInvitation and GetPendingInvitations. If nil, they return Unimplemented.
	Invitations invitationhandler.InvitationService
	// Health is the standard health service. If nil, a health server that always reports SERVING is used.
	Health *healthhandler.Server
}

// ServiceNames lists the application services reported by the health service.
var ServiceNames = []string{organizationv1.ServiceName, invitationv1.ServiceName}

// PublicMethods are the full method names callable without an identity.
func PublicMethods() map[string]bool {
	return map[string]bool{
		healthpb.Health_Check_FullMethodName: true,
		healthpb.Health_Watch_FullMethodName: true,
		healthpb.Health_List_FullMethodName:  true,
	}
}

// RegisterServices registers all gRPC services with the given server.
//
// Service → handler mapping:
//   - OrganizationService → internal/organization/handler
//   - InvitationService   → internal/invitation/handler
//   - grpc.health.v1      → internal/health/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	organizationv1.RegisterOrganizationServiceServer(s, organizationhandler.NewServer(deps.Organizations, deps.InvitationIssuer))
	invitationv1.RegisterInvitationServiceServer(s, invitationhandler.NewServer(deps.Invitations))
	h := deps.Health
	if h == nil {
		h = healthhandler.NewServer(nil, ServiceNames...)
		h.Probe(context.Background())
	}
	healthpb.RegisterHealthServer(s, h)
}

// Options configures New.
type Options struct {
	// Authenticator admits callers for protected RPCs. Use interceptors.AuthUnary or
	// interceptors.HeaderIdentityUnary.
	Authenticator grpc.UnaryServerInterceptor
	// Logger receives one line per RPC. If nil, the standard logger is used.
	Logger *logger.Logger
	// Telemetry enables the otelgrpc stats handler.
	Telemetry bool
}

// New returns a gRPC server with logging and authentication interceptors and all services registered.
func New(opts Options, deps Deps) *grpc.Server {
	log := opts.Logger
	if log == nil {
		log = logger.New()
	}
	chain := []grpc.UnaryServerInterceptor{interceptors.LoggingUnary(log, PublicMethods())}
	if opts.Authenticator != nil {
		chain = append(chain, opts.Authenticator)
	}
	serverOpts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(chain...)}
	if opts.Telemetry {
		serverOpts = append(serverOpts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}
	s := grpc.NewServer(serverOpts...)
	RegisterServices(s, deps)
	return s
}
