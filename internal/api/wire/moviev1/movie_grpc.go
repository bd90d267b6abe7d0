package moviev1

// Hand-maintained client stubs and service descriptor for MovieService.
// Layout follows protoc-gen-go-grpc output; messages travel under the wire
// package's "json" content-subtype.

import (
	"context"

	"screencat/internal/api/wire"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// ServiceName is the full gRPC service name for the movie catalog.
	ServiceName = "movie.v1.MovieService"

	methodGetMovie     = "/movie.v1.MovieService/GetMovie"
	methodSearchMovies = "/movie.v1.MovieService/SearchMovies"
	methodCreateMovie  = "/movie.v1.MovieService/CreateMovie"
)

// MovieServiceClient is the client API for MovieService.
type MovieServiceClient interface {
	GetMovie(ctx context.Context, in *GetMovieRequest, opts ...grpc.CallOption) (*GetMovieResponse, error)
	SearchMovies(ctx context.Context, in *SearchMoviesRequest, opts ...grpc.CallOption) (*SearchMoviesResponse, error)
	CreateMovie(ctx context.Context, in *CreateMovieRequest, opts ...grpc.CallOption) (*CreateMovieResponse, error)
}

type movieServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMovieServiceClient returns a MovieService client over conn.
func NewMovieServiceClient(cc grpc.ClientConnInterface) MovieServiceClient {
	return &movieServiceClient{cc: cc}
}

func (c *movieServiceClient) GetMovie(ctx context.Context, in *GetMovieRequest, opts ...grpc.CallOption) (*GetMovieResponse, error) {
	out := new(GetMovieResponse)
	if err := c.cc.Invoke(ctx, methodGetMovie, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *movieServiceClient) SearchMovies(ctx context.Context, in *SearchMoviesRequest, opts ...grpc.CallOption) (*SearchMoviesResponse, error) {
	out := new(SearchMoviesResponse)
	if err := c.cc.Invoke(ctx, methodSearchMovies, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *movieServiceClient) CreateMovie(ctx context.Context, in *CreateMovieRequest, opts ...grpc.CallOption) (*CreateMovieResponse, error) {
	out := new(CreateMovieResponse)
	if err := c.cc.Invoke(ctx, methodCreateMovie, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(wire.CodecName)}, opts...)
}

// MovieServiceServer is the server API for MovieService.
type MovieServiceServer interface {
	GetMovie(ctx context.Context, in *GetMovieRequest) (*GetMovieResponse, error)
	SearchMovies(ctx context.Context, in *SearchMoviesRequest) (*SearchMoviesResponse, error)
	CreateMovie(ctx context.Context, in *CreateMovieRequest) (*CreateMovieResponse, error)
}

// UnimplementedMovieServiceServer provides forward-compatible default
// implementations.
type UnimplementedMovieServiceServer struct{}

func (UnimplementedMovieServiceServer) GetMovie(context.Context, *GetMovieRequest) (*GetMovieResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMovie not implemented")
}

func (UnimplementedMovieServiceServer) SearchMovies(context.Context, *SearchMoviesRequest) (*SearchMoviesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchMovies not implemented")
}

func (UnimplementedMovieServiceServer) CreateMovie(context.Context, *CreateMovieRequest) (*CreateMovieResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMovie not implemented")
}

// RegisterMovieServiceServer registers srv on s.
func RegisterMovieServiceServer(s grpc.ServiceRegistrar, srv MovieServiceServer) {
	s.RegisterService(&MovieService_ServiceDesc, srv)
}

func _MovieService_GetMovie_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetMovieRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).GetMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMovie}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MovieServiceServer).GetMovie(ctx, req.(*GetMovieRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovieService_SearchMovies_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchMoviesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).SearchMovies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSearchMovies}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MovieServiceServer).SearchMovies(ctx, req.(*SearchMoviesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovieService_CreateMovie_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateMovieRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).CreateMovie(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCreateMovie}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MovieServiceServer).CreateMovie(ctx, req.(*CreateMovieRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MovieService_ServiceDesc is the grpc.ServiceDesc for MovieService.
var MovieService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MovieServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetMovie", Handler: _MovieService_GetMovie_Handler},
		{MethodName: "SearchMovies", Handler: _MovieService_SearchMovies_Handler},
		{MethodName: "CreateMovie", Handler: _MovieService_CreateMovie_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "screencat/internal/api/wire/moviev1",
}
