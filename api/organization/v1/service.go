package organizationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"org-access-control/api/rpc"
)

const ServiceName = "orgaccess.organization.v1.OrganizationService"

const (
	OrganizationService_CreateOrganization_FullMethodName = "/" + ServiceName + "/CreateOrganization"
	OrganizationService_GetOrganization_FullMethodName    = "/" + ServiceName + "/GetOrganization"
	OrganizationService_ListOrganizations_FullMethodName  = "/" + ServiceName + "/ListOrganizations"
	OrganizationService_UpdateOrganization_FullMethodName = "/" + ServiceName + "/UpdateOrganization"
	OrganizationService_InviteUser_FullMethodName         = "/" + ServiceName + "/InviteUser"
	OrganizationService_GetInvitations_FullMethodName     = "/" + ServiceName + "/GetInvitations"
	OrganizationService_GetMembers_FullMethodName         = "/" + ServiceName + "/GetMembers"
	OrganizationService_GetMembership_FullMethodName      = "/" + ServiceName + "/GetMembership"
)

// OrganizationServiceServer is the server API for OrganizationService.
// Implementations should embed UnimplementedOrganizationServiceServer.
type OrganizationServiceServer interface {
	CreateOrganization(context.Context, *CreateOrganizationRequest) (*CreateOrganizationResponse, error)
	GetOrganization(context.Context, *GetOrganizationRequest) (*GetOrganizationResponse, error)
	ListOrganizations(context.Context, *ListOrganizationsRequest) (*ListOrganizationsResponse, error)
	UpdateOrganization(context.Context, *UpdateOrganizationRequest) (*UpdateOrganizationResponse, error)
	InviteUser(context.Context, *InviteUserRequest) (*InviteUserResponse, error)
	GetInvitations(context.Context, *GetInvitationsRequest) (*GetInvitationsResponse, error)
	GetMembers(context.Context, *GetMembersRequest) (*GetMembersResponse, error)
	GetMembership(context.Context, *GetMembershipRequest) (*GetMembershipResponse, error)
}

// UnimplementedOrganizationServiceServer returns Unimplemented for every method.
type UnimplementedOrganizationServiceServer struct{}

func (UnimplementedOrganizationServiceServer) CreateOrganization(context.Context, *CreateOrganizationRequest) (*CreateOrganizationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateOrganization not implemented")
}
func (UnimplementedOrganizationServiceServer) GetOrganization(context.Context, *GetOrganizationRequest) (*GetOrganizationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrganization not implemented")
}
func (UnimplementedOrganizationServiceServer) ListOrganizations(context.Context, *ListOrganizationsRequest) (*ListOrganizationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOrganizations not implemented")
}
func (UnimplementedOrganizationServiceServer) UpdateOrganization(context.Context, *UpdateOrganizationRequest) (*UpdateOrganizationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateOrganization not implemented")
}
func (UnimplementedOrganizationServiceServer) InviteUser(context.Context, *InviteUserRequest) (*InviteUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InviteUser not implemented")
}
func (UnimplementedOrganizationServiceServer) GetInvitations(context.Context, *GetInvitationsRequest) (*GetInvitationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvitations not implemented")
}
func (UnimplementedOrganizationServiceServer) GetMembers(context.Context, *GetMembersRequest) (*GetMembersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMembers not implemented")
}
func (UnimplementedOrganizationServiceServer) GetMembership(context.Context, *GetMembershipRequest) (*GetMembershipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMembership not implemented")
}

// OrganizationService_ServiceDesc is the grpc.ServiceDesc for OrganizationService.
var OrganizationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrganizationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateOrganization", Handler: rpc.Unary(OrganizationService_CreateOrganization_FullMethodName, OrganizationServiceServer.CreateOrganization)},
		{MethodName: "GetOrganization", Handler: rpc.Unary(OrganizationService_GetOrganization_FullMethodName, OrganizationServiceServer.GetOrganization)},
		{MethodName: "ListOrganizations", Handler: rpc.Unary(OrganizationService_ListOrganizations_FullMethodName, OrganizationServiceServer.ListOrganizations)},
		{MethodName: "UpdateOrganization", Handler: rpc.Unary(OrganizationService_UpdateOrganization_FullMethodName, OrganizationServiceServer.UpdateOrganization)},
		{MethodName: "InviteUser", Handler: rpc.Unary(OrganizationService_InviteUser_FullMethodName, OrganizationServiceServer.InviteUser)},
		{MethodName: "GetInvitations", Handler: rpc.Unary(OrganizationService_GetInvitations_FullMethodName, OrganizationServiceServer.GetInvitations)},
		{MethodName: "GetMembers", Handler: rpc.Unary(OrganizationService_GetMembers_FullMethodName, OrganizationServiceServer.GetMembers)},
		{MethodName: "GetMembership", Handler: rpc.Unary(OrganizationService_GetMembership_FullMethodName, OrganizationServiceServer.GetMembership)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "organization/v1/organization.api",
}

// RegisterOrganizationServiceServer registers srv on s.
func RegisterOrganizationServiceServer(s grpc.ServiceRegistrar, srv OrganizationServiceServer) {
	s.RegisterService(&OrganizationService_ServiceDesc, srv)
}

// OrganizationServiceClient is the client API for OrganizationService.
type OrganizationServiceClient interface {
	CreateOrganization(ctx context.Context, in *CreateOrganizationRequest, opts ...grpc.CallOption) (*CreateOrganizationResponse, error)
	GetOrganization(ctx context.Context, in *GetOrganizationRequest, opts ...grpc.CallOption) (*GetOrganizationResponse, error)
	ListOrganizations(ctx context.Context, in *ListOrganizationsRequest, opts ...grpc.CallOption) (*ListOrganizationsResponse, error)
	UpdateOrganization(ctx context.Context, in *UpdateOrganizationRequest, opts ...grpc.CallOption) (*UpdateOrganizationResponse, error)
	InviteUser(ctx context.Context, in *InviteUserRequest, opts ...grpc.CallOption) (*InviteUserResponse, error)
	GetInvitations(ctx context.Context, in *GetInvitationsRequest, opts ...grpc.CallOption) (*GetInvitationsResponse, error)
	GetMembers(ctx context.Context, in *GetMembersRequest, opts ...grpc.CallOption) (*GetMembersResponse, error)
	GetMembership(ctx context.Context, in *GetMembershipRequest, opts ...grpc.CallOption) (*GetMembershipResponse, error)
}

type organizationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOrganizationServiceClient returns a client that speaks the JSON codec over cc.
func NewOrganizationServiceClient(cc grpc.ClientConnInterface) OrganizationServiceClient {
	return &organizationServiceClient{cc: cc}
}

func (c *organizationServiceClient) CreateOrganization(ctx context.Context, in *CreateOrganizationRequest, opts ...grpc.CallOption) (*CreateOrganizationResponse, error) {
	return rpc.Invoke[CreateOrganizationResponse](ctx, c.cc, OrganizationService_CreateOrganization_FullMethodName, in, opts...)
}

func (c *organizationServiceClient) GetOrganization(ctx context.Context, in *GetOrganizationRequest, opts ...grpc.CallOption) (*GetOrganizationResponse, error) {
	return rpc.Invoke[GetOrganizationResponse](ctx, c.cc, OrganizationService_GetOrganization_FullMethodName, in, opts...)
}

func (c *organizationServiceClient) ListOrganizations(ctx context.Context, in *ListOrganizationsRequest, opts ...grpc.CallOption) (*ListOrganizationsResponse, error) {
	return rpc.Invoke[ListOrganizationsResponse](ctx, c.cc, OrganizationService_ListOrganizations_FullMethodName, in, opts...)
}

func (c *organizationServiceClient) UpdateOrganization(ctx context.Context, in *UpdateOrganizationRequest, opts ...grpc.CallOption) (*UpdateOrganizationResponse, error) {
	return rpc.Invoke[UpdateOrganizationResponse](ctx, c.cc, OrganizationService_UpdateOrganization_FullMethodName, in, opts...)
}

func (c *organizationServiceClient) InviteUser(ctx context.Context, in *InviteUserRequest, opts ...grpc.CallOption) (*InviteUserResponse, error) {
	return rpc.Invoke[InviteUserResponse](ctx, c.cc, OrganizationService_InviteUser_FullMethodName, in, opts...)
}

func (c *organizationServiceClient) GetInvitations(ctx context.Context, in *GetInvitationsRequest, opts ...grpc.CallOption) (*GetInvitationsResponse, error) {
	return rpc.Invoke[GetInvitationsResponse](ctx, c.cc, OrganizationService_GetInvitations_FullMethodName, in, opts...)
}

func (c *organizationServiceClient) GetMembers(ctx context.Context, in *GetMembersRequest, opts ...grpc.CallOption) (*GetMembersResponse, error) {
	return rpc.Invoke[GetMembersResponse](ctx, c.cc, OrganizationService_GetMembers_FullMethodName, in, opts...)
}

func (c *organizationServiceClient) GetMembership(ctx context.Context, in *GetMembershipRequest, opts ...grpc.CallOption) (*GetMembershipResponse, error) {
	return rpc.Invoke[GetMembershipResponse](ctx, c.cc, OrganizationService_GetMembership_FullMethodName, in, opts...)
}
