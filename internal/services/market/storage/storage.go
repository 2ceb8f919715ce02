// Package storage defines persistence contracts for marketplace state.
package storage

import (
	"context"
	"time"

	apperrors "github.com/openmint/marketplace/internal/errors"
	"github.com/openmint/marketplace/internal/market/domain"
)

// Sentinel domain errors surfaced by stores. Matching is by code, so wrapped
// copies compare equal with errors.Is.
var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")
	// ErrCollectionNotFound indicates an unknown asset contract.
	ErrCollectionNotFound = apperrors.New(apperrors.CodeCollectionNotFound, "collection not found")
	// ErrCollectionExists indicates a collection address collision.
	ErrCollectionExists = apperrors.New(apperrors.CodeCollectionExists, "collection already exists")
	// ErrTokenNotFound indicates an unknown (contract, token id) pair.
	ErrTokenNotFound = apperrors.New(apperrors.CodeTokenNotFound, "token not found")
	// ErrTokenNotOwner indicates the declared holder does not own the token.
	ErrTokenNotOwner = apperrors.New(apperrors.CodeTokenNotOwner, "caller does not own token")
	// ErrTransferNotAuthorized indicates the operator lacks approval to move the token.
	ErrTransferNotAuthorized = apperrors.New(apperrors.CodeTransferNotAuthorized, "transfer not authorized")
	// ErrListingNotFound indicates a listing id outside the issued range.
	ErrListingNotFound = apperrors.New(apperrors.CodeListingNotFound, "listing not found")
	// ErrListingAlreadySold indicates a second purchase of the same listing.
	ErrListingAlreadySold = apperrors.New(apperrors.CodeListingAlreadySold, "listing already sold")
	// ErrPaymentInsufficient indicates a payment below the fee-inclusive total.
	ErrPaymentInsufficient = apperrors.New(apperrors.CodePaymentInsufficient, "payment below total price")
	// ErrInsufficientFunds indicates the buyer's balance cannot cover the payment.
	ErrInsufficientFunds = apperrors.New(apperrors.CodeAccountInsufficientFunds, "insufficient account balance")
	// ErrFeeConfigMismatch indicates a reopen with a different fee configuration.
	ErrFeeConfigMismatch = apperrors.New(apperrors.CodeFeeConfigMismatch, "fee configuration differs from pinned configuration")
)

// Collection stores one token registry instance.
type Collection struct {
	Contract  string
	Name      string
	Symbol    string
	CreatedAt time.Time
}

// Token stores one registered asset and its current holder.
type Token struct {
	Contract string
	TokenID  int64
	Owner    string
	URI      string
	MintedAt time.Time
}

// Approval stores an operator grant for all of an owner's tokens in a collection.
type Approval struct {
	Contract string
	Owner    string
	Operator string
	Approved bool
}

// Listing stores one marketplace listing. Records are append-only: a listing
// is mutated exactly once, when it is sold, and never deleted.
type Listing struct {
	ID            int64
	AssetContract string
	AssetID       int64
	Price         int64
	Seller        string
	Sold          bool
	Buyer         string
	CreatedAt     time.Time
	SoldAt        time.Time
}

// ListingPage stores one page of listing records.
type ListingPage struct {
	Listings      []Listing
	NextPageToken string
}

// EventKind names a notification log entry type.
type EventKind string

const (
	// EventOffered records a listing creation.
	EventOffered EventKind = "offered"
	// EventBought records a completed purchase.
	EventBought EventKind = "bought"
)

// Event stores one entry of the append-only notification log.
type Event struct {
	Seq           int64
	Kind          EventKind
	ListingID     int64
	AssetContract string
	AssetID       int64
	Price         int64
	Seller        string
	Buyer         string
	CreatedAt     time.Time
}

// EventPage stores one page of notification log entries.
type EventPage struct {
	Events        []Event
	NextPageToken string
}

// Store persists all marketplace state. Mutating operations commit atomically:
// either every effect of a call is visible or none is.
type Store interface {
	// Registry
	CreateCollection(ctx context.Context, collection Collection) error
	GetCollection(ctx context.Context, contract string) (Collection, error)
	MintToken(ctx context.Context, contract, to, uri string) (Token, error)
	GetToken(ctx context.Context, contract string, tokenID int64) (Token, error)
	SetApproval(ctx context.Context, approval Approval) error
	IsApproved(ctx context.Context, contract, owner, operator string) (bool, error)
	TransferToken(ctx context.Context, contract string, tokenID int64, from, to, caller string) (Token, error)

	// Funds
	Deposit(ctx context.Context, account string, amount int64) (int64, error)
	Balance(ctx context.Context, account string) (int64, error)

	// Listing ledger
	CreateListing(ctx context.Context, contract string, tokenID, price int64, seller string) (Listing, error)
	GetListing(ctx context.Context, id int64) (Listing, error)
	ListListings(ctx context.Context, pageSize int, pageToken string) (ListingPage, error)
	PurchaseListing(ctx context.Context, id, payment int64, buyer string) (Listing, error)
	ListEvents(ctx context.Context, pageSize int, pageToken string) (EventPage, error)

	// Construction-time configuration
	FeeConfig() domain.FeeConfig
	EscrowAddress() string
}
