package productv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/jcmexdev/ecommerce-integration/internal/api/codec"
)

const (
	Product_GetProductByReference_FullMethodName = "/product.v1.Product/GetProductByReference"
)

// ProductClient is the client API for the Product service.
type ProductClient interface {
	GetProductByReference(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*ProductResponse, error)
}

type productClient struct {
	cc grpc.ClientConnInterface
}

func NewProductClient(cc grpc.ClientConnInterface) ProductClient {
	return &productClient{cc}
}

func (c *productClient) GetProductByReference(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*ProductResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	out := new(ProductResponse)
	err := c.cc.Invoke(ctx, Product_GetProductByReference_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProductServer is the server API for the Product service.
// Implementations must embed UnimplementedProductServer.
type ProductServer interface {
	GetProductByReference(context.Context, *wrapperspb.StringValue) (*ProductResponse, error)
	mustEmbedUnimplementedProductServer()
}

type UnimplementedProductServer struct{}

func (UnimplementedProductServer) GetProductByReference(context.Context, *wrapperspb.StringValue) (*ProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProductByReference not implemented")
}
func (UnimplementedProductServer) mustEmbedUnimplementedProductServer() {}

func RegisterProductServer(s grpc.ServiceRegistrar, srv ProductServer) {
	s.RegisterService(&Product_ServiceDesc, srv)
}

func _Product_GetProductByReference_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductServer).GetProductByReference(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Product_GetProductByReference_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProductServer).GetProductByReference(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Product_ServiceDesc is the grpc.ServiceDesc for the Product service.
var Product_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "product.v1.Product",
	HandlerType: (*ProductServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProductByReference",
			Handler:    _Product_GetProductByReference_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "product/v1/product.go",
}
