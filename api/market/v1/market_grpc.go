package marketv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "market.v1.MarketService"

// Full method names for the market.v1.MarketService service.
const (
	MarketServiceGetMarketInfoFullMethod    = "/market.v1.MarketService/GetMarketInfo"
	MarketServiceCreateCollectionFullMethod = "/market.v1.MarketService/CreateCollection"
	MarketServiceMintTokenFullMethod        = "/market.v1.MarketService/MintToken"
	MarketServiceGetTokenFullMethod         = "/market.v1.MarketService/GetToken"
	MarketServiceSetApprovalFullMethod      = "/market.v1.MarketService/SetApproval"
	MarketServiceTransferTokenFullMethod    = "/market.v1.MarketService/TransferToken"
	MarketServiceDepositFullMethod          = "/market.v1.MarketService/Deposit"
	MarketServiceGetBalanceFullMethod       = "/market.v1.MarketService/GetBalance"
	MarketServiceCreateListingFullMethod    = "/market.v1.MarketService/CreateListing"
	MarketServiceGetListingFullMethod       = "/market.v1.MarketService/GetListing"
	MarketServiceListListingsFullMethod     = "/market.v1.MarketService/ListListings"
	MarketServiceTotalPriceFullMethod       = "/market.v1.MarketService/TotalPrice"
	MarketServicePurchaseFullMethod         = "/market.v1.MarketService/Purchase"
	MarketServiceListEventsFullMethod       = "/market.v1.MarketService/ListEvents"
)

// MarketServiceServer is the server contract for market.v1.MarketService.
type MarketServiceServer interface {
	GetMarketInfo(context.Context, *GetMarketInfoRequest) (*GetMarketInfoResponse, error)
	CreateCollection(context.Context, *CreateCollectionRequest) (*CreateCollectionResponse, error)
	MintToken(context.Context, *MintTokenRequest) (*MintTokenResponse, error)
	GetToken(context.Context, *GetTokenRequest) (*GetTokenResponse, error)
	SetApproval(context.Context, *SetApprovalRequest) (*SetApprovalResponse, error)
	TransferToken(context.Context, *TransferTokenRequest) (*TransferTokenResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	CreateListing(context.Context, *CreateListingRequest) (*CreateListingResponse, error)
	GetListing(context.Context, *GetListingRequest) (*GetListingResponse, error)
	ListListings(context.Context, *ListListingsRequest) (*ListListingsResponse, error)
	TotalPrice(context.Context, *TotalPriceRequest) (*TotalPriceResponse, error)
	Purchase(context.Context, *PurchaseRequest) (*PurchaseResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
}

// UnimplementedMarketServiceServer provides forward-compatible defaults.
type UnimplementedMarketServiceServer struct{}

func (UnimplementedMarketServiceServer) GetMarketInfo(context.Context, *GetMarketInfoRequest) (*GetMarketInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMarketInfo not implemented")
}
func (UnimplementedMarketServiceServer) CreateCollection(context.Context, *CreateCollectionRequest) (*CreateCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCollection not implemented")
}
func (UnimplementedMarketServiceServer) MintToken(context.Context, *MintTokenRequest) (*MintTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MintToken not implemented")
}
func (UnimplementedMarketServiceServer) GetToken(context.Context, *GetTokenRequest) (*GetTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetToken not implemented")
}
func (UnimplementedMarketServiceServer) SetApproval(context.Context, *SetApprovalRequest) (*SetApprovalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetApproval not implemented")
}
func (UnimplementedMarketServiceServer) TransferToken(context.Context, *TransferTokenRequest) (*TransferTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TransferToken not implemented")
}
func (UnimplementedMarketServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedMarketServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedMarketServiceServer) CreateListing(context.Context, *CreateListingRequest) (*CreateListingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateListing not implemented")
}
func (UnimplementedMarketServiceServer) GetListing(context.Context, *GetListingRequest) (*GetListingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetListing not implemented")
}
func (UnimplementedMarketServiceServer) ListListings(context.Context, *ListListingsRequest) (*ListListingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListListings not implemented")
}
func (UnimplementedMarketServiceServer) TotalPrice(context.Context, *TotalPriceRequest) (*TotalPriceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TotalPrice not implemented")
}
func (UnimplementedMarketServiceServer) Purchase(context.Context, *PurchaseRequest) (*PurchaseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Purchase not implemented")
}
func (UnimplementedMarketServiceServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEvents not implemented")
}

// RegisterMarketServiceServer registers srv on a gRPC service registrar.
func RegisterMarketServiceServer(s grpc.ServiceRegistrar, srv MarketServiceServer) {
	s.RegisterService(&MarketService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](fullMethod string, call func(MarketServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MarketServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MarketServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// MarketService_ServiceDesc is the grpc.ServiceDesc for market.v1.MarketService.
var MarketService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MarketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMarketInfo",
			Handler:    unaryHandler(MarketServiceGetMarketInfoFullMethod, MarketServiceServer.GetMarketInfo),
		},
		{
			MethodName: "CreateCollection",
			Handler:    unaryHandler(MarketServiceCreateCollectionFullMethod, MarketServiceServer.CreateCollection),
		},
		{
			MethodName: "MintToken",
			Handler:    unaryHandler(MarketServiceMintTokenFullMethod, MarketServiceServer.MintToken),
		},
		{
			MethodName: "GetToken",
			Handler:    unaryHandler(MarketServiceGetTokenFullMethod, MarketServiceServer.GetToken),
		},
		{
			MethodName: "SetApproval",
			Handler:    unaryHandler(MarketServiceSetApprovalFullMethod, MarketServiceServer.SetApproval),
		},
		{
			MethodName: "TransferToken",
			Handler:    unaryHandler(MarketServiceTransferTokenFullMethod, MarketServiceServer.TransferToken),
		},
		{
			MethodName: "Deposit",
			Handler:    unaryHandler(MarketServiceDepositFullMethod, MarketServiceServer.Deposit),
		},
		{
			MethodName: "GetBalance",
			Handler:    unaryHandler(MarketServiceGetBalanceFullMethod, MarketServiceServer.GetBalance),
		},
		{
			MethodName: "CreateListing",
			Handler:    unaryHandler(MarketServiceCreateListingFullMethod, MarketServiceServer.CreateListing),
		},
		{
			MethodName: "GetListing",
			Handler:    unaryHandler(MarketServiceGetListingFullMethod, MarketServiceServer.GetListing),
		},
		{
			MethodName: "ListListings",
			Handler:    unaryHandler(MarketServiceListListingsFullMethod, MarketServiceServer.ListListings),
		},
		{
			MethodName: "TotalPrice",
			Handler:    unaryHandler(MarketServiceTotalPriceFullMethod, MarketServiceServer.TotalPrice),
		},
		{
			MethodName: "Purchase",
			Handler:    unaryHandler(MarketServicePurchaseFullMethod, MarketServiceServer.Purchase),
		},
		{
			MethodName: "ListEvents",
			Handler:    unaryHandler(MarketServiceListEventsFullMethod, MarketServiceServer.ListEvents),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "market/v1/market.json",
}

// MarketServiceClient is the client contract for market.v1.MarketService.
type MarketServiceClient interface {
	GetMarketInfo(ctx context.Context, in *GetMarketInfoRequest, opts ...grpc.CallOption) (*GetMarketInfoResponse, error)
	CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CreateCollectionResponse, error)
	MintToken(ctx context.Context, in *MintTokenRequest, opts ...grpc.CallOption) (*MintTokenResponse, error)
	GetToken(ctx context.Context, in *GetTokenRequest, opts ...grpc.CallOption) (*GetTokenResponse, error)
	SetApproval(ctx context.Context, in *SetApprovalRequest, opts ...grpc.CallOption) (*SetApprovalResponse, error)
	TransferToken(ctx context.Context, in *TransferTokenRequest, opts ...grpc.CallOption) (*TransferTokenResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	CreateListing(ctx context.Context, in *CreateListingRequest, opts ...grpc.CallOption) (*CreateListingResponse, error)
	GetListing(ctx context.Context, in *GetListingRequest, opts ...grpc.CallOption) (*GetListingResponse, error)
	ListListings(ctx context.Context, in *ListListingsRequest, opts ...grpc.CallOption) (*ListListingsResponse, error)
	TotalPrice(ctx context.Context, in *TotalPriceRequest, opts ...grpc.CallOption) (*TotalPriceResponse, error)
	Purchase(ctx context.Context, in *PurchaseRequest, opts ...grpc.CallOption) (*PurchaseResponse, error)
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
}

type marketServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMarketServiceClient creates a market.v1.MarketService client. The
// connection must carry the JSON codec as its default call option.
func NewMarketServiceClient(cc grpc.ClientConnInterface) MarketServiceClient {
	return &marketServiceClient{cc: cc}
}

func invoke[Req any, Resp any](ctx context.Context, cc grpc.ClientConnInterface, fullMethod string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketServiceClient) GetMarketInfo(ctx context.Context, in *GetMarketInfoRequest, opts ...grpc.CallOption) (*GetMarketInfoResponse, error) {
	return invoke[GetMarketInfoRequest, GetMarketInfoResponse](ctx, c.cc, MarketServiceGetMarketInfoFullMethod, in, opts...)
}

func (c *marketServiceClient) CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CreateCollectionResponse, error) {
	return invoke[CreateCollectionRequest, CreateCollectionResponse](ctx, c.cc, MarketServiceCreateCollectionFullMethod, in, opts...)
}

func (c *marketServiceClient) MintToken(ctx context.Context, in *MintTokenRequest, opts ...grpc.CallOption) (*MintTokenResponse, error) {
	return invoke[MintTokenRequest, MintTokenResponse](ctx, c.cc, MarketServiceMintTokenFullMethod, in, opts...)
}

func (c *marketServiceClient) GetToken(ctx context.Context, in *GetTokenRequest, opts ...grpc.CallOption) (*GetTokenResponse, error) {
	return invoke[GetTokenRequest, GetTokenResponse](ctx, c.cc, MarketServiceGetTokenFullMethod, in, opts...)
}

func (c *marketServiceClient) SetApproval(ctx context.Context, in *SetApprovalRequest, opts ...grpc.CallOption) (*SetApprovalResponse, error) {
	return invoke[SetApprovalRequest, SetApprovalResponse](ctx, c.cc, MarketServiceSetApprovalFullMethod, in, opts...)
}

func (c *marketServiceClient) TransferToken(ctx context.Context, in *TransferTokenRequest, opts ...grpc.CallOption) (*TransferTokenResponse, error) {
	return invoke[TransferTokenRequest, TransferTokenResponse](ctx, c.cc, MarketServiceTransferTokenFullMethod, in, opts...)
}

func (c *marketServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	return invoke[DepositRequest, DepositResponse](ctx, c.cc, MarketServiceDepositFullMethod, in, opts...)
}

func (c *marketServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	return invoke[GetBalanceRequest, GetBalanceResponse](ctx, c.cc, MarketServiceGetBalanceFullMethod, in, opts...)
}

func (c *marketServiceClient) CreateListing(ctx context.Context, in *CreateListingRequest, opts ...grpc.CallOption) (*CreateListingResponse, error) {
	return invoke[CreateListingRequest, CreateListingResponse](ctx, c.cc, MarketServiceCreateListingFullMethod, in, opts...)
}

func (c *marketServiceClient) GetListing(ctx context.Context, in *GetListingRequest, opts ...grpc.CallOption) (*GetListingResponse, error) {
	return invoke[GetListingRequest, GetListingResponse](ctx, c.cc, MarketServiceGetListingFullMethod, in, opts...)
}

func (c *marketServiceClient) ListListings(ctx context.Context, in *ListListingsRequest, opts ...grpc.CallOption) (*ListListingsResponse, error) {
	return invoke[ListListingsRequest, ListListingsResponse](ctx, c.cc, MarketServiceListListingsFullMethod, in, opts...)
}

func (c *marketServiceClient) TotalPrice(ctx context.Context, in *TotalPriceRequest, opts ...grpc.CallOption) (*TotalPriceResponse, error) {
	return invoke[TotalPriceRequest, TotalPriceResponse](ctx, c.cc, MarketServiceTotalPriceFullMethod, in, opts...)
}

func (c *marketServiceClient) Purchase(ctx context.Context, in *PurchaseRequest, opts ...grpc.CallOption) (*PurchaseResponse, error) {
	return invoke[PurchaseRequest, PurchaseResponse](ctx, c.cc, MarketServicePurchaseFullMethod, in, opts...)
}

func (c *marketServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	return invoke[ListEventsRequest, ListEventsResponse](ctx, c.cc, MarketServiceListEventsFullMethod, in, opts...)
}
