package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName         = "orgrepos.Languages"
	membersMethod       = "/" + serviceName + "/Members"
	userLanguagesMethod = "/" + serviceName + "/UserLanguages"
)

// LanguagesServer is the server API for orgrepos.Languages service.
// Messages are protobuf well known types, so no generated code is needed.
type LanguagesServer interface {
	Members(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	UserLanguages(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
}

// RegisterLanguagesServer registers srv in grpc server s.
func RegisterLanguagesServer(s grpc.ServiceRegistrar, srv LanguagesServer) {
	s.RegisterService(&languagesServiceDesc, srv)
}

var languagesServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LanguagesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Members",
			Handler:    membersHandler,
		},
		{
			MethodName: "UserLanguages",
			Handler:    userLanguagesHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func membersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LanguagesServer).Members(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: membersMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LanguagesServer).Members(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func userLanguagesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LanguagesServer).UserLanguages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: userLanguagesMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LanguagesServer).UserLanguages(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
