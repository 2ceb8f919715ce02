// Package errors provides structured domain errors for the marketplace.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Listing errors
	CodeListingInvalidPrice Code = "LISTING_INVALID_PRICE"
	CodeListingNotFound     Code = "LISTING_NOT_FOUND"
	CodeListingAlreadySold  Code = "LISTING_ALREADY_SOLD"
	CodePaymentInsufficient Code = "PAYMENT_INSUFFICIENT"

	// Registry errors
	CodeCollectionNotFound    Code = "COLLECTION_NOT_FOUND"
	CodeCollectionExists      Code = "COLLECTION_ALREADY_EXISTS"
	CodeCollectionEmptyName   Code = "COLLECTION_EMPTY_NAME"
	CodeCollectionEmptySymbol Code = "COLLECTION_EMPTY_SYMBOL"
	CodeTokenNotFound         Code = "TOKEN_NOT_FOUND"
	CodeTokenNotOwner         Code = "TOKEN_NOT_OWNER"
	CodeTransferNotAuthorized Code = "TRANSFER_NOT_AUTHORIZED"

	// Account errors
	CodeAccountInvalidAddress    Code = "ACCOUNT_INVALID_ADDRESS"
	CodeAccountInvalidAmount     Code = "ACCOUNT_INVALID_AMOUNT"
	CodeAccountInsufficientFunds Code = "ACCOUNT_INSUFFICIENT_FUNDS"

	// Configuration errors
	CodeFeeConfigInvalid  Code = "FEE_CONFIG_INVALID"
	CodeFeeConfigMismatch Code = "FEE_CONFIG_MISMATCH"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeListingInvalidPrice,
		CodeCollectionEmptyName,
		CodeCollectionEmptySymbol,
		CodeAccountInvalidAddress,
		CodeAccountInvalidAmount,
		CodeFeeConfigInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeListingAlreadySold,
		CodePaymentInsufficient,
		CodeAccountInsufficientFunds,
		CodeFeeConfigMismatch:
		return codes.FailedPrecondition

	// PermissionDenied - caller may not move the asset or funds
	case CodeTokenNotOwner,
		CodeTransferNotAuthorized:
		return codes.PermissionDenied

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeListingNotFound,
		CodeCollectionNotFound,
		CodeTokenNotFound:
		return codes.NotFound

	case CodeCollectionExists:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}
