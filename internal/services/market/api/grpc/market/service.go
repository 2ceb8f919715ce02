// Package market exposes the market.v1 gRPC operations over marketplace
// storage.
package market

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	marketv1 "github.com/openmint/marketplace/api/market/v1"
	apperrors "github.com/openmint/marketplace/internal/errors"
	"github.com/openmint/marketplace/internal/market/domain"
	"github.com/openmint/marketplace/internal/market/ident"
	"github.com/openmint/marketplace/internal/platform/grpc/pagination"
	"github.com/openmint/marketplace/internal/services/market/storage"
)

const (
	defaultListPageSize = 10
	maxListPageSize     = 50
)

// Service exposes market.v1 gRPC operations.
type Service struct {
	marketv1.UnimplementedMarketServiceServer
	store storage.Store
}

// NewService creates a market service backed by marketplace storage.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// GetMarketInfo returns the marketplace configuration: the operator address
// sellers approve before listing, and the fee terms applied to every sale.
func (s *Service) GetMarketInfo(ctx context.Context, in *marketv1.GetMarketInfoRequest) (*marketv1.GetMarketInfoResponse, error) {
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	fee := s.store.FeeConfig()
	return &marketv1.GetMarketInfoResponse{
		OperatorAddress: s.store.EscrowAddress(),
		FeeRecipient:    fee.Recipient,
		FeePercent:      int32(fee.Percent),
	}, nil
}

// CreateCollection registers a new token collection and derives its contract
// address.
func (s *Service) CreateCollection(ctx context.Context, in *marketv1.CreateCollectionRequest) (*marketv1.CreateCollectionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create collection request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}

	name := strings.TrimSpace(in.Name)
	symbol := strings.TrimSpace(in.Symbol)
	if name == "" {
		return nil, apperrors.ToGRPC(apperrors.New(apperrors.CodeCollectionEmptyName, "collection name is required"))
	}
	if symbol == "" {
		return nil, apperrors.ToGRPC(apperrors.New(apperrors.CodeCollectionEmptySymbol, "collection symbol is required"))
	}

	contract, err := ident.DeriveCollectionAddress(name, symbol)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "derive collection address: %v", err)
	}
	record := storage.Collection{
		Contract: contract,
		Name:     name,
		Symbol:   symbol,
	}
	if err := s.store.CreateCollection(ctx, record); err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.CreateCollectionResponse{
		Collection: &marketv1.Collection{
			Contract: record.Contract,
			Name:     record.Name,
			Symbol:   record.Symbol,
		},
	}, nil
}

// MintToken registers a new token in a collection. Token ids are assigned by
// the collection counter, starting at 1.
func (s *Service) MintToken(ctx context.Context, in *marketv1.MintTokenRequest) (*marketv1.MintTokenResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "mint token request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	contract, err := ident.Normalize(in.Contract)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	to, err := ident.Normalize(in.To)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}

	token, err := s.store.MintToken(ctx, contract, to, strings.TrimSpace(in.Uri))
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.MintTokenResponse{Token: tokenToWire(token)}, nil
}

// GetToken returns one token by collection contract and token id.
func (s *Service) GetToken(ctx context.Context, in *marketv1.GetTokenRequest) (*marketv1.GetTokenResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get token request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	contract, err := ident.Normalize(in.Contract)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}

	token, err := s.store.GetToken(ctx, contract, in.TokenId)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.GetTokenResponse{Token: tokenToWire(token)}, nil
}

// SetApproval grants or revokes an operator over all of the owner's tokens in
// a collection. Sellers approve the market operator address before listing.
func (s *Service) SetApproval(ctx context.Context, in *marketv1.SetApprovalRequest) (*marketv1.SetApprovalResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "set approval request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	contract, err := ident.Normalize(in.Contract)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	owner, err := ident.Normalize(in.Owner)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	operator, err := ident.Normalize(in.Operator)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}

	err = s.store.SetApproval(ctx, storage.Approval{
		Contract: contract,
		Owner:    owner,
		Operator: operator,
		Approved: in.Approved,
	})
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.SetApprovalResponse{}, nil
}

// TransferToken moves a token between holders. The caller must be the current
// holder or an approved operator; an empty caller defaults to the holder.
func (s *Service) TransferToken(ctx context.Context, in *marketv1.TransferTokenRequest) (*marketv1.TransferTokenResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "transfer token request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	contract, err := ident.Normalize(in.Contract)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	from, err := ident.Normalize(in.From)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	to, err := ident.Normalize(in.To)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	caller := from
	if strings.TrimSpace(in.Caller) != "" {
		caller, err = ident.Normalize(in.Caller)
		if err != nil {
			return nil, apperrors.ToGRPC(err)
		}
	}

	token, err := s.store.TransferToken(ctx, contract, in.TokenId, from, to, caller)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.TransferTokenResponse{Token: tokenToWire(token)}, nil
}

// Deposit credits an account with funds and returns the new balance.
func (s *Service) Deposit(ctx context.Context, in *marketv1.DepositRequest) (*marketv1.DepositResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "deposit request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	account, err := ident.Normalize(in.Account)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	if in.Amount <= 0 {
		return nil, apperrors.ToGRPC(apperrors.New(apperrors.CodeAccountInvalidAmount, "deposit amount must be greater than zero"))
	}

	balance, err := s.store.Deposit(ctx, account, in.Amount)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.DepositResponse{Balance: balance}, nil
}

// GetBalance returns an account balance. Unknown accounts hold zero.
func (s *Service) GetBalance(ctx context.Context, in *marketv1.GetBalanceRequest) (*marketv1.GetBalanceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get balance request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	account, err := ident.Normalize(in.Account)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}

	balance, err := s.store.Balance(ctx, account)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.GetBalanceResponse{Balance: balance}, nil
}

// CreateListing offers a token for sale. The token moves into market custody
// and the offered notification is returned alongside the listing.
func (s *Service) CreateListing(ctx context.Context, in *marketv1.CreateListingRequest) (*marketv1.CreateListingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create listing request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	contract, err := ident.Normalize(in.AssetContract)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	seller, err := ident.Normalize(in.Seller)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	if err := domain.ValidatePrice(in.Price); err != nil {
		return nil, apperrors.ToGRPC(err)
	}

	listing, err := s.store.CreateListing(ctx, contract, in.AssetId, in.Price, seller)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.CreateListingResponse{
		Listing: listingToWire(listing),
		Offered: &marketv1.OfferedEvent{
			ListingId:     listing.ID,
			AssetContract: listing.AssetContract,
			AssetId:       listing.AssetID,
			Price:         listing.Price,
			Seller:        listing.Seller,
		},
	}, nil
}

// GetListing returns one listing by id. Sold listings remain readable.
func (s *Service) GetListing(ctx context.Context, in *marketv1.GetListingRequest) (*marketv1.GetListingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get listing request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}

	listing, err := s.store.GetListing(ctx, in.Id)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.GetListingResponse{Listing: listingToWire(listing)}, nil
}

// ListListings returns a page of listings ordered by id.
func (s *Service) ListListings(ctx context.Context, in *marketv1.ListListingsRequest) (*marketv1.ListListingsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list listings request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}

	pageSize := pagination.ClampPageSize(in.PageSize, pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})
	page, err := s.store.ListListings(ctx, pageSize, in.PageToken)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "list listings: %v", err)
	}

	resp := &marketv1.ListListingsResponse{
		Listings:      make([]*marketv1.Listing, 0, len(page.Listings)),
		NextPageToken: page.NextPageToken,
	}
	for _, listing := range page.Listings {
		resp.Listings = append(resp.Listings, listingToWire(listing))
	}
	return resp, nil
}

// TotalPrice returns the amount a buyer must pay for a listing: the listing
// price plus the truncated percentage fee.
func (s *Service) TotalPrice(ctx context.Context, in *marketv1.TotalPriceRequest) (*marketv1.TotalPriceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "total price request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}

	listing, err := s.store.GetListing(ctx, in.Id)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.TotalPriceResponse{
		Total: domain.TotalPrice(listing.Price, s.store.FeeConfig().Percent),
	}, nil
}

// Purchase settles a listing sale and returns the bought notification. The
// payment must cover the fee-inclusive total; any excess is retained by the
// market, not refunded.
func (s *Service) Purchase(ctx context.Context, in *marketv1.PurchaseRequest) (*marketv1.PurchaseResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "purchase request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}
	buyer, err := ident.Normalize(in.Buyer)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}

	listing, err := s.store.PurchaseListing(ctx, in.Id, in.Payment, buyer)
	if err != nil {
		return nil, apperrors.ToGRPC(err)
	}
	return &marketv1.PurchaseResponse{
		Listing: listingToWire(listing),
		Bought: &marketv1.BoughtEvent{
			ListingId:     listing.ID,
			AssetContract: listing.AssetContract,
			AssetId:       listing.AssetID,
			Price:         listing.Price,
			Seller:        listing.Seller,
			Buyer:         listing.Buyer,
		},
	}, nil
}

// ListEvents returns a page of the append-only notification log.
func (s *Service) ListEvents(ctx context.Context, in *marketv1.ListEventsRequest) (*marketv1.ListEventsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list events request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "market store is not configured")
	}

	pageSize := pagination.ClampPageSize(in.PageSize, pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})
	page, err := s.store.ListEvents(ctx, pageSize, in.PageToken)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "list events: %v", err)
	}

	resp := &marketv1.ListEventsResponse{
		Events:        make([]*marketv1.Event, 0, len(page.Events)),
		NextPageToken: page.NextPageToken,
	}
	for _, event := range page.Events {
		resp.Events = append(resp.Events, &marketv1.Event{
			Seq:             event.Seq,
			Kind:            string(event.Kind),
			ListingId:       event.ListingID,
			AssetContract:   event.AssetContract,
			AssetId:         event.AssetID,
			Price:           event.Price,
			Seller:          event.Seller,
			Buyer:           event.Buyer,
			CreatedAtMillis: event.CreatedAt.UTC().UnixMilli(),
		})
	}
	return resp, nil
}

func tokenToWire(token storage.Token) *marketv1.Token {
	return &marketv1.Token{
		Contract: token.Contract,
		TokenId:  token.TokenID,
		Owner:    token.Owner,
		Uri:      token.URI,
	}
}

func listingToWire(listing storage.Listing) *marketv1.Listing {
	wire := &marketv1.Listing{
		Id:              listing.ID,
		AssetContract:   listing.AssetContract,
		AssetId:         listing.AssetID,
		Price:           listing.Price,
		Seller:          listing.Seller,
		Sold:            listing.Sold,
		Buyer:           listing.Buyer,
		CreatedAtMillis: listing.CreatedAt.UTC().UnixMilli(),
	}
	if !listing.SoldAt.IsZero() {
		wire.SoldAtMillis = listing.SoldAt.UTC().UnixMilli()
	}
	return wire
}

var _ marketv1.MarketServiceServer = (*Service)(nil)
