package invitationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"org-access-control/api/rpc"
)

const ServiceName = "orgaccess.invitation.v1.InvitationService"

const (
	InvitationService_AcceptInvitation_FullMethodName      = "/" + ServiceName + "/AcceptInvitation"
	InvitationService_GetPendingInvitations_FullMethodName = "/" + ServiceName + "/GetPendingInvitations"
)

// InvitationServiceServer is the server API for InvitationService.
type InvitationServiceServer interface {
	AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error)
	GetPendingInvitations(context.Context, *GetPendingInvitationsRequest) (*GetPendingInvitationsResponse, error)
}

// UnimplementedInvitationServiceServer returns Unimplemented for every method.
type UnimplementedInvitationServiceServer struct{}

func (UnimplementedInvitationServiceServer) AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptInvitation not implemented")
}
func (UnimplementedInvitationServiceServer) GetPendingInvitations(context.Context, *GetPendingInvitationsRequest) (*GetPendingInvitationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPendingInvitations not implemented")
}

// InvitationService_ServiceDesc is the grpc.ServiceDesc for InvitationService.
var InvitationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InvitationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AcceptInvitation", Handler: rpc.Unary(InvitationService_AcceptInvitation_FullMethodName, InvitationServiceServer.AcceptInvitation)},
		{MethodName: "GetPendingInvitations", Handler: rpc.Unary(InvitationService_GetPendingInvitations_FullMethodName, InvitationServiceServer.GetPendingInvitations)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invitation/v1/invitation.api",
}

// RegisterInvitationServiceServer registers srv on s.
func RegisterInvitationServiceServer(s grpc.ServiceRegistrar, srv InvitationServiceServer) {
	s.RegisterService(&InvitationService_ServiceDesc, srv)
}

// InvitationServiceClient is the client API for InvitationService.
type InvitationServiceClient interface {
	AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error)
	GetPendingInvitations(ctx context.Context, in *GetPendingInvitationsRequest, opts ...grpc.CallOption) (*GetPendingInvitationsResponse, error)
}

type invitationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInvitationServiceClient returns a client that speaks the JSON codec over cc.
func NewInvitationServiceClient(cc grpc.ClientConnInterface) InvitationServiceClient {
	return &invitationServiceClient{cc: cc}
}

func (c *invitationServiceClient) AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error) {
	return rpc.Invoke[AcceptInvitationResponse](ctx, c.cc, InvitationService_AcceptInvitation_FullMethodName, in, opts...)
}

func (c *invitationServiceClient) GetPendingInvitations(ctx context.Context, in *GetPendingInvitationsRequest, opts ...grpc.CallOption) (*GetPendingInvitationsResponse, error) {
	return rpc.Invoke[GetPendingInvitationsResponse](ctx, c.cc, InvitationService_GetPendingInvitations_FullMethodName, in, opts...)
}
