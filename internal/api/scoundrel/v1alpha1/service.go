package scoundrelv1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "scoundrel.api.v1alpha1.GameService"

// Method names
const (
	MethodNewGame        = "NewGame"
	MethodGetState       = "GetState"
	MethodPlayCard       = "PlayCard"
	MethodResolveMonster = "ResolveMonster"
	MethodSkipRoom       = "SkipRoom"
	MethodRestart        = "Restart"
	MethodEndGame        = "EndGame"
)

// FullMethod returns the "/service/method" path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	NewGame(context.Context, *NewGameRequest) (*NewGameResponse, error)
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	PlayCard(context.Context, *PlayCardRequest) (*PlayCardResponse, error)
	ResolveMonster(context.Context, *ResolveMonsterRequest) (*ResolveMonsterResponse, error)
	SkipRoom(context.Context, *SkipRoomRequest) (*SkipRoomResponse, error)
	Restart(context.Context, *RestartRequest) (*RestartResponse, error)
	EndGame(context.Context, *EndGameRequest) (*EndGameResponse, error)
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// GameServiceDesc is the grpc.ServiceDesc for the game service
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodNewGame, Handler: unaryHandler(MethodNewGame, GameServiceServer.NewGame)},
		{MethodName: MethodGetState, Handler: unaryHandler(MethodGetState, GameServiceServer.GetState)},
		{MethodName: MethodPlayCard, Handler: unaryHandler(MethodPlayCard, GameServiceServer.PlayCard)},
		{MethodName: MethodResolveMonster, Handler: unaryHandler(MethodResolveMonster, GameServiceServer.ResolveMonster)},
		{MethodName: MethodSkipRoom, Handler: unaryHandler(MethodSkipRoom, GameServiceServer.SkipRoom)},
		{MethodName: MethodRestart, Handler: unaryHandler(MethodRestart, GameServiceServer.Restart)},
		{MethodName: MethodEndGame, Handler: unaryHandler(MethodEndGame, GameServiceServer.EndGame)},
	},
	Streams: []grpc.StreamDesc{},
}

// unaryHandler adapts a typed server method to grpc.MethodHandler, running
// the server's interceptor chain when one is installed.
func unaryHandler[Req, Resp any](
	method string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GameServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GameServiceClient is the client API for the game service
type GameServiceClient interface {
	NewGame(ctx context.Context, in *NewGameRequest, opts ...grpc.CallOption) (*NewGameResponse, error)
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	PlayCard(ctx context.Context, in *PlayCardRequest, opts ...grpc.CallOption) (*PlayCardResponse, error)
	ResolveMonster(ctx context.Context, in *ResolveMonsterRequest, opts ...grpc.CallOption) (*ResolveMonsterResponse, error)
	SkipRoom(ctx context.Context, in *SkipRoomRequest, opts ...grpc.CallOption) (*SkipRoomResponse, error)
	Restart(ctx context.Context, in *RestartRequest, opts ...grpc.CallOption) (*RestartResponse, error)
	EndGame(ctx context.Context, in *EndGameRequest, opts ...grpc.CallOption) (*EndGameResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client that always negotiates the JSON codec
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func (c *gameServiceClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *gameServiceClient) NewGame(ctx context.Context, in *NewGameRequest, opts ...grpc.CallOption) (*NewGameResponse, error) {
	out := new(NewGameResponse)
	if err := c.invoke(ctx, MethodNewGame, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	out := new(GetStateResponse)
	if err := c.invoke(ctx, MethodGetState, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) PlayCard(ctx context.Context, in *PlayCardRequest, opts ...grpc.CallOption) (*PlayCardResponse, error) {
	out := new(PlayCardResponse)
	if err := c.invoke(ctx, MethodPlayCard, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) ResolveMonster(ctx context.Context, in *ResolveMonsterRequest, opts ...grpc.CallOption) (*ResolveMonsterResponse, error) {
	out := new(ResolveMonsterResponse)
	if err := c.invoke(ctx, MethodResolveMonster, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) SkipRoom(ctx context.Context, in *SkipRoomRequest, opts ...grpc.CallOption) (*SkipRoomResponse, error) {
	out := new(SkipRoomResponse)
	if err := c.invoke(ctx, MethodSkipRoom, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) Restart(ctx context.Context, in *RestartRequest, opts ...grpc.CallOption) (*RestartResponse, error) {
	out := new(RestartResponse)
	if err := c.invoke(ctx, MethodRestart, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) EndGame(ctx context.Context, in *EndGameRequest, opts ...grpc.CallOption) (*EndGameResponse, error) {
	out := new(EndGameResponse)
	if err := c.invoke(ctx, MethodEndGame, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
