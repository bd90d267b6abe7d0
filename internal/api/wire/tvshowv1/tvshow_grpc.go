package tvshowv1

// Hand-maintained client stubs and service descriptor for TVShowService,
// matching the moviev1 layout.

import (
	"context"

	"screencat/internal/api/wire"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// ServiceName is the full gRPC service name for the TV show catalog.
	ServiceName = "tvshow.v1.TVShowService"

	methodGetTVShow     = "/tvshow.v1.TVShowService/GetTVShow"
	methodSearchTVShows = "/tvshow.v1.TVShowService/SearchTVShows"
)

// TVShowServiceClient is the client API for TVShowService.
type TVShowServiceClient interface {
	GetTVShow(ctx context.Context, in *GetTVShowRequest, opts ...grpc.CallOption) (*GetTVShowResponse, error)
	SearchTVShows(ctx context.Context, in *SearchTVShowsRequest, opts ...grpc.CallOption) (*SearchTVShowsResponse, error)
}

type tvShowServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTVShowServiceClient returns a TVShowService client over conn.
func NewTVShowServiceClient(cc grpc.ClientConnInterface) TVShowServiceClient {
	return &tvShowServiceClient{cc: cc}
}

func (c *tvShowServiceClient) GetTVShow(ctx context.Context, in *GetTVShowRequest, opts ...grpc.CallOption) (*GetTVShowResponse, error) {
	out := new(GetTVShowResponse)
	if err := c.cc.Invoke(ctx, methodGetTVShow, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tvShowServiceClient) SearchTVShows(ctx context.Context, in *SearchTVShowsRequest, opts ...grpc.CallOption) (*SearchTVShowsResponse, error) {
	out := new(SearchTVShowsResponse)
	if err := c.cc.Invoke(ctx, methodSearchTVShows, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(wire.CodecName)}, opts...)
}

// TVShowServiceServer is the server API for TVShowService.
type TVShowServiceServer interface {
	GetTVShow(ctx context.Context, in *GetTVShowRequest) (*GetTVShowResponse, error)
	SearchTVShows(ctx context.Context, in *SearchTVShowsRequest) (*SearchTVShowsResponse, error)
}

// UnimplementedTVShowServiceServer provides forward-compatible default
// implementations.
type UnimplementedTVShowServiceServer struct{}

func (UnimplementedTVShowServiceServer) GetTVShow(context.Context, *GetTVShowRequest) (*GetTVShowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTVShow not implemented")
}

func (UnimplementedTVShowServiceServer) SearchTVShows(context.Context, *SearchTVShowsRequest) (*SearchTVShowsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchTVShows not implemented")
}

// RegisterTVShowServiceServer registers srv on s.
func RegisterTVShowServiceServer(s grpc.ServiceRegistrar, srv TVShowServiceServer) {
	s.RegisterService(&TVShowService_ServiceDesc, srv)
}

func _TVShowService_GetTVShow_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTVShowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TVShowServiceServer).GetTVShow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetTVShow}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TVShowServiceServer).GetTVShow(ctx, req.(*GetTVShowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TVShowService_SearchTVShows_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchTVShowsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TVShowServiceServer).SearchTVShows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSearchTVShows}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TVShowServiceServer).SearchTVShows(ctx, req.(*SearchTVShowsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TVShowService_ServiceDesc is the grpc.ServiceDesc for TVShowService.
var TVShowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TVShowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTVShow", Handler: _TVShowService_GetTVShow_Handler},
		{MethodName: "SearchTVShows", Handler: _TVShowService_SearchTVShows_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "screencat/internal/api/wire/tvshowv1",
}
