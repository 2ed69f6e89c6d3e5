package integrationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jcmexdev/ecommerce-integration/internal/api/codec"
)

const (
	Integration_ProcessBatch_FullMethodName = "/integration.v1.Integration/ProcessBatch"
)

// IntegrationClient is the client API for the Integration service.
type IntegrationClient interface {
	ProcessBatch(ctx context.Context, in *ProcessBatchRequest, opts ...grpc.CallOption) (*ProcessBatchResponse, error)
}

type integrationClient struct {
	cc grpc.ClientConnInterface
}

func NewIntegrationClient(cc grpc.ClientConnInterface) IntegrationClient {
	return &integrationClient{cc}
}

func (c *integrationClient) ProcessBatch(ctx context.Context, in *ProcessBatchRequest, opts ...grpc.CallOption) (*ProcessBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	out := new(ProcessBatchResponse)
	err := c.cc.Invoke(ctx, Integration_ProcessBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IntegrationServer is the server API for the Integration service.
// Implementations must embed UnimplementedIntegrationServer.
type IntegrationServer interface {
	ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error)
	mustEmbedUnimplementedIntegrationServer()
}

type UnimplementedIntegrationServer struct{}

func (UnimplementedIntegrationServer) ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessBatch not implemented")
}
func (UnimplementedIntegrationServer) mustEmbedUnimplementedIntegrationServer() {}

func RegisterIntegrationServer(s grpc.ServiceRegistrar, srv IntegrationServer) {
	s.RegisterService(&Integration_ServiceDesc, srv)
}

func _Integration_ProcessBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IntegrationServer).ProcessBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Integration_ProcessBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IntegrationServer).ProcessBatch(ctx, req.(*ProcessBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Integration_ServiceDesc is the grpc.ServiceDesc for the Integration service.
var Integration_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "integration.v1.Integration",
	HandlerType: (*IntegrationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessBatch",
			Handler:    _Integration_ProcessBatch_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "integration/v1/integration.go",
}
