package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/openmint/marketplace/internal/errors"
	"github.com/openmint/marketplace/internal/market/domain"
	"github.com/openmint/marketplace/internal/services/market/storage"
)

const (
	sellerAddr    = "0x1111111111111111111111111111111111111111"
	buyerAddr     = "0x2222222222222222222222222222222222222222"
	operatorAddr  = "0x3333333333333333333333333333333333333333"
	recipientAddr = "0x4444444444444444444444444444444444444444"
	contractAddr  = "0x5555555555555555555555555555555555555555"
)

func openTempStore(t *testing.T, feePercent int) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "market.db"), domain.FeeConfig{
		Recipient: recipientAddr,
		Percent:   feePercent,
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func mustCreateCollection(t *testing.T, store *Store) {
	t.Helper()
	err := store.CreateCollection(context.Background(), storage.Collection{
		Contract: contractAddr,
		Name:     "Openmint Originals",
		Symbol:   "OMO",
	})
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
}

// mintListedToken mints a token to the seller, approves the escrow operator
// and lists the token, returning the listing.
func mintListedToken(t *testing.T, store *Store, price int64) storage.Listing {
	t.Helper()
	token, err := store.MintToken(context.Background(), contractAddr, sellerAddr, "ipfs://item")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	err = store.SetApproval(context.Background(), storage.Approval{
		Contract: contractAddr,
		Owner:    sellerAddr,
		Operator: store.EscrowAddress(),
		Approved: true,
	})
	if err != nil {
		t.Fatalf("approve escrow: %v", err)
	}
	listing, err := store.CreateListing(context.Background(), contractAddr, token.TokenID, price, sellerAddr)
	if err != nil {
		t.Fatalf("create listing: %v", err)
	}
	return listing
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("", domain.FeeConfig{Recipient: recipientAddr, Percent: 1}); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenValidatesFeeConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "market.db")
	if _, err := Open(path, domain.FeeConfig{Recipient: recipientAddr, Percent: 101}); err == nil {
		t.Fatal("expected fee percent error")
	}
	if _, err := Open(path, domain.FeeConfig{Recipient: "not-an-address", Percent: 1}); err == nil {
		t.Fatal("expected recipient address error")
	}
}

func TestOpenPinsFeeConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "market.db")
	first, err := Open(path, domain.FeeConfig{Recipient: recipientAddr, Percent: 2})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	escrow := first.EscrowAddress()
	if escrow == "" {
		t.Fatal("expected escrow address")
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	// Same config reopens and keeps the pinned escrow address.
	second, err := Open(path, domain.FeeConfig{Recipient: recipientAddr, Percent: 2})
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if second.EscrowAddress() != escrow {
		t.Fatalf("escrow = %s, want %s", second.EscrowAddress(), escrow)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	// A different fee percent must be rejected.
	_, err = Open(path, domain.FeeConfig{Recipient: recipientAddr, Percent: 3})
	if !errors.Is(err, storage.ErrFeeConfigMismatch) {
		t.Fatalf("reopen error = %v, want %v", err, storage.ErrFeeConfigMismatch)
	}
}

func TestCreateCollectionRejectsDuplicates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	err := store.CreateCollection(context.Background(), storage.Collection{
		Contract: contractAddr,
		Name:     "Duplicate",
		Symbol:   "DUP",
	})
	if !errors.Is(err, storage.ErrCollectionExists) {
		t.Fatalf("duplicate error = %v, want %v", err, storage.ErrCollectionExists)
	}
}

func TestMintTokenAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)

	for want := int64(1); want <= 3; want++ {
		token, err := store.MintToken(context.Background(), contractAddr, sellerAddr, "ipfs://item")
		if err != nil {
			t.Fatalf("mint token %d: %v", want, err)
		}
		if token.TokenID != want {
			t.Fatalf("token id = %d, want %d", token.TokenID, want)
		}
		if token.Owner != sellerAddr {
			t.Fatalf("owner = %s, want %s", token.Owner, sellerAddr)
		}
	}
}

func TestMintTokenUnknownCollection(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	_, err := store.MintToken(context.Background(), contractAddr, sellerAddr, "ipfs://item")
	if !errors.Is(err, storage.ErrCollectionNotFound) {
		t.Fatalf("mint error = %v, want %v", err, storage.ErrCollectionNotFound)
	}
}

func TestTransferTokenAuthorization(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	token, err := store.MintToken(context.Background(), contractAddr, sellerAddr, "ipfs://item")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	// Wrong holder.
	_, err = store.TransferToken(context.Background(), contractAddr, token.TokenID, buyerAddr, operatorAddr, buyerAddr)
	if !errors.Is(err, storage.ErrTokenNotOwner) {
		t.Fatalf("wrong holder error = %v, want %v", err, storage.ErrTokenNotOwner)
	}

	// Unapproved operator.
	_, err = store.TransferToken(context.Background(), contractAddr, token.TokenID, sellerAddr, buyerAddr, operatorAddr)
	if !errors.Is(err, storage.ErrTransferNotAuthorized) {
		t.Fatalf("unapproved operator error = %v, want %v", err, storage.ErrTransferNotAuthorized)
	}

	// Holder transfers directly.
	moved, err := store.TransferToken(context.Background(), contractAddr, token.TokenID, sellerAddr, buyerAddr, sellerAddr)
	if err != nil {
		t.Fatalf("holder transfer: %v", err)
	}
	if moved.Owner != buyerAddr {
		t.Fatalf("owner = %s, want %s", moved.Owner, buyerAddr)
	}

	// Approved operator transfers on behalf of the new holder.
	err = store.SetApproval(context.Background(), storage.Approval{
		Contract: contractAddr,
		Owner:    buyerAddr,
		Operator: operatorAddr,
		Approved: true,
	})
	if err != nil {
		t.Fatalf("approve operator: %v", err)
	}
	moved, err = store.TransferToken(context.Background(), contractAddr, token.TokenID, buyerAddr, sellerAddr, operatorAddr)
	if err != nil {
		t.Fatalf("operator transfer: %v", err)
	}
	if moved.Owner != sellerAddr {
		t.Fatalf("owner = %s, want %s", moved.Owner, sellerAddr)
	}

	// Revoked approval blocks further transfers.
	err = store.SetApproval(context.Background(), storage.Approval{
		Contract: contractAddr,
		Owner:    sellerAddr,
		Operator: operatorAddr,
		Approved: false,
	})
	if err != nil {
		t.Fatalf("revoke operator: %v", err)
	}
	_, err = store.TransferToken(context.Background(), contractAddr, token.TokenID, sellerAddr, buyerAddr, operatorAddr)
	if !errors.Is(err, storage.ErrTransferNotAuthorized) {
		t.Fatalf("revoked operator error = %v, want %v", err, storage.ErrTransferNotAuthorized)
	}
}

func TestDepositAccumulatesBalance(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	balance, err := store.Deposit(context.Background(), buyerAddr, 100)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if balance != 100 {
		t.Fatalf("balance = %d, want 100", balance)
	}
	balance, err = store.Deposit(context.Background(), buyerAddr, 50)
	if err != nil {
		t.Fatalf("second deposit: %v", err)
	}
	if balance != 150 {
		t.Fatalf("balance = %d, want 150", balance)
	}
	unknown, err := store.Balance(context.Background(), operatorAddr)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if unknown != 0 {
		t.Fatalf("unknown account balance = %d, want 0", unknown)
	}
}

func TestCreateListingEscrowsToken(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	listing := mintListedToken(t, store, 200)

	if listing.ID != 1 {
		t.Fatalf("listing id = %d, want 1", listing.ID)
	}
	if listing.Sold {
		t.Fatal("new listing must not be sold")
	}
	token, err := store.GetToken(context.Background(), contractAddr, listing.AssetID)
	if err != nil {
		t.Fatalf("get token: %v", err)
	}
	if token.Owner != store.EscrowAddress() {
		t.Fatalf("custody = %s, want escrow %s", token.Owner, store.EscrowAddress())
	}

	events, err := store.ListEvents(context.Background(), 10, "")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events.Events) != 1 || events.Events[0].Kind != storage.EventOffered {
		t.Fatalf("events = %+v, want one offered event", events.Events)
	}
}

func TestCreateListingPreconditions(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	token, err := store.MintToken(context.Background(), contractAddr, sellerAddr, "ipfs://item")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	// Non-positive price fails before any custody movement is attempted.
	for _, price := range []int64{0, -5} {
		_, err = store.CreateListing(context.Background(), contractAddr, token.TokenID, price, sellerAddr)
		if !apperrors.IsCode(err, apperrors.CodeListingInvalidPrice) {
			t.Fatalf("price %d error = %v, want invalid price", price, err)
		}
	}
	got, err := store.GetToken(context.Background(), contractAddr, token.TokenID)
	if err != nil {
		t.Fatalf("get token: %v", err)
	}
	if got.Owner != sellerAddr {
		t.Fatalf("owner changed on failed listing: %s", got.Owner)
	}

	// Missing approval.
	_, err = store.CreateListing(context.Background(), contractAddr, token.TokenID, 10, sellerAddr)
	if !errors.Is(err, storage.ErrTransferNotAuthorized) {
		t.Fatalf("unapproved error = %v, want %v", err, storage.ErrTransferNotAuthorized)
	}

	// Caller not the owner.
	_, err = store.CreateListing(context.Background(), contractAddr, token.TokenID, 10, buyerAddr)
	if !errors.Is(err, storage.ErrTokenNotOwner) {
		t.Fatalf("not owner error = %v, want %v", err, storage.ErrTokenNotOwner)
	}

	// Unknown token.
	_, err = store.CreateListing(context.Background(), contractAddr, 99, 10, sellerAddr)
	if !errors.Is(err, storage.ErrTokenNotFound) {
		t.Fatalf("unknown token error = %v, want %v", err, storage.ErrTokenNotFound)
	}
}

func TestGetListingNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	for _, id := range []int64{0, 1, 99} {
		_, err := store.GetListing(context.Background(), id)
		if !errors.Is(err, storage.ErrListingNotFound) {
			t.Fatalf("id %d error = %v, want %v", id, err, storage.ErrListingNotFound)
		}
	}
}

func TestPurchaseListingSettlesAtomically(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	listing := mintListedToken(t, store, 200)
	total := domain.TotalPrice(listing.Price, store.FeeConfig().Percent)
	if total != 202 {
		t.Fatalf("total = %d, want 202", total)
	}

	if _, err := store.Deposit(context.Background(), buyerAddr, 500); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	// Overpay by 8; the excess is retained by the escrow account.
	sold, err := store.PurchaseListing(context.Background(), listing.ID, total+8, buyerAddr)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if !sold.Sold || sold.Buyer != buyerAddr {
		t.Fatalf("sold listing = %+v", sold)
	}

	checks := []struct {
		name    string
		account string
		want    int64
	}{
		{name: "buyer debited full payment", account: buyerAddr, want: 500 - (total + 8)},
		{name: "seller receives price", account: sellerAddr, want: 200},
		{name: "fee recipient receives fee", account: store.FeeConfig().Recipient, want: 2},
		{name: "escrow retains overpayment", account: store.EscrowAddress(), want: 8},
	}
	for _, check := range checks {
		balance, err := store.Balance(context.Background(), check.account)
		if err != nil {
			t.Fatalf("%s: %v", check.name, err)
		}
		if balance != check.want {
			t.Fatalf("%s: balance = %d, want %d", check.name, balance, check.want)
		}
	}

	token, err := store.GetToken(context.Background(), contractAddr, listing.AssetID)
	if err != nil {
		t.Fatalf("get token: %v", err)
	}
	if token.Owner != buyerAddr {
		t.Fatalf("custody = %s, want buyer %s", token.Owner, buyerAddr)
	}

	// The sold flag flips exactly once.
	_, err = store.PurchaseListing(context.Background(), listing.ID, total, buyerAddr)
	if !errors.Is(err, storage.ErrListingAlreadySold) {
		t.Fatalf("second purchase error = %v, want %v", err, storage.ErrListingAlreadySold)
	}
}

func TestPurchaseListingZeroFeeTruncation(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	listing := mintListedToken(t, store, 2)
	total := domain.TotalPrice(listing.Price, store.FeeConfig().Percent)
	if total != 2 {
		t.Fatalf("total = %d, want 2 (fee truncates to zero)", total)
	}

	if _, err := store.Deposit(context.Background(), buyerAddr, 2); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := store.PurchaseListing(context.Background(), listing.ID, total, buyerAddr); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	feeBalance, err := store.Balance(context.Background(), store.FeeConfig().Recipient)
	if err != nil {
		t.Fatalf("fee balance: %v", err)
	}
	if feeBalance != 0 {
		t.Fatalf("fee balance = %d, want 0", feeBalance)
	}
}

func TestPurchaseListingPreconditionOrder(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	listing := mintListedToken(t, store, 200)
	total := domain.TotalPrice(listing.Price, store.FeeConfig().Percent)

	// Nonexistent ids fail first, including the reserved id 0.
	for _, id := range []int64{0, listing.ID + 1} {
		_, err := store.PurchaseListing(context.Background(), id, total, buyerAddr)
		if !errors.Is(err, storage.ErrListingNotFound) {
			t.Fatalf("id %d error = %v, want %v", id, err, storage.ErrListingNotFound)
		}
	}

	// Underpayment reports before any funds check.
	_, err := store.PurchaseListing(context.Background(), listing.ID, total-1, buyerAddr)
	if !errors.Is(err, storage.ErrPaymentInsufficient) {
		t.Fatalf("underpay error = %v, want %v", err, storage.ErrPaymentInsufficient)
	}

	// Sufficient payment but an empty account rolls everything back.
	_, err = store.PurchaseListing(context.Background(), listing.ID, total, buyerAddr)
	if !errors.Is(err, storage.ErrInsufficientFunds) {
		t.Fatalf("no funds error = %v, want %v", err, storage.ErrInsufficientFunds)
	}

	// Nothing committed: listing unsold, custody still in escrow, no bought event.
	current, err := store.GetListing(context.Background(), listing.ID)
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if current.Sold {
		t.Fatal("listing marked sold after failed purchase")
	}
	token, err := store.GetToken(context.Background(), contractAddr, listing.AssetID)
	if err != nil {
		t.Fatalf("get token: %v", err)
	}
	if token.Owner != store.EscrowAddress() {
		t.Fatalf("custody = %s, want escrow", token.Owner)
	}
	events, err := store.ListEvents(context.Background(), 10, "")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	for _, event := range events.Events {
		if event.Kind == storage.EventBought {
			t.Fatalf("unexpected bought event: %+v", event)
		}
	}
}

func TestListListingsPaginates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	mustCreateCollection(t, store)
	for i := 0; i < 3; i++ {
		mintListedToken(t, store, 100)
	}

	pageOne, err := store.ListListings(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("list page one: %v", err)
	}
	if len(pageOne.Listings) != 2 {
		t.Fatalf("page one len = %d, want 2", len(pageOne.Listings))
	}
	if pageOne.NextPageToken == "" {
		t.Fatal("expected page one next token")
	}

	pageTwo, err := store.ListListings(context.Background(), 2, pageOne.NextPageToken)
	if err != nil {
		t.Fatalf("list page two: %v", err)
	}
	if len(pageTwo.Listings) != 1 {
		t.Fatalf("page two len = %d, want 1", len(pageTwo.Listings))
	}
	if pageTwo.NextPageToken != "" {
		t.Fatalf("page two next token = %q, want empty", pageTwo.NextPageToken)
	}
	if pageTwo.Listings[0].ID != 3 {
		t.Fatalf("page two id = %d, want 3", pageTwo.Listings[0].ID)
	}
}

func TestEventLogRecordsLifecycle(t *testing.T) {
	t.Parallel()

	store := openTempStore(t, 1)
	store.clock = func() time.Time {
		return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	}
	mustCreateCollection(t, store)
	listing := mintListedToken(t, store, 200)
	if _, err := store.Deposit(context.Background(), buyerAddr, 300); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	total := domain.TotalPrice(listing.Price, store.FeeConfig().Percent)
	if _, err := store.PurchaseListing(context.Background(), listing.ID, total, buyerAddr); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	events, err := store.ListEvents(context.Background(), 10, "")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events.Events) != 2 {
		t.Fatalf("events len = %d, want 2", len(events.Events))
	}
	offered, bought := events.Events[0], events.Events[1]
	if offered.Kind != storage.EventOffered || offered.ListingID != listing.ID || offered.Buyer != "" {
		t.Fatalf("offered event = %+v", offered)
	}
	if bought.Kind != storage.EventBought || bought.Buyer != buyerAddr || bought.Price != 200 {
		t.Fatalf("bought event = %+v", bought)
	}
	if !bought.CreatedAt.Equal(time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("bought at = %v", bought.CreatedAt)
	}
}
