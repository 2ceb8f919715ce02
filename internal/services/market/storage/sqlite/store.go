// Package sqlite provides a SQLite-backed marketplace storage implementation.
//
// All marketplace state (collections, tokens, approvals, account balances,
// listings and the notification log) lives in one database so that every
// mutating operation commits in a single transaction.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/openmint/marketplace/internal/market/domain"
	"github.com/openmint/marketplace/internal/market/ident"
	"github.com/openmint/marketplace/internal/platform/grpc/pagination"
	sqlitemigrate "github.com/openmint/marketplace/internal/platform/storage/sqlitemigrate"
	"github.com/openmint/marketplace/internal/services/market/storage"
	"github.com/openmint/marketplace/internal/services/market/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	metaKeyFeeRecipient  = "fee_recipient"
	metaKeyFeePercent    = "fee_percent"
	metaKeyEscrowAddress = "escrow_address"
)

// Store persists marketplace state in SQLite.
type Store struct {
	sqlDB  *sql.DB
	fee    domain.FeeConfig
	escrow string
	clock  func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite marketplace store, applies embedded migrations and pins
// the fee configuration. The fee pair and the escrow address are written on
// first open and immutable afterwards: reopening an existing database with a
// different fee configuration fails with ErrFeeConfigMismatch.
func Open(path string, fee domain.FeeConfig) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := fee.Validate(); err != nil {
		return nil, err
	}
	recipient, err := ident.Normalize(fee.Recipient)
	if err != nil {
		return nil, err
	}
	fee.Recipient = recipient

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		fee:   fee,
		clock: time.Now,
	}
	if err := store.pinConfig(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// FeeConfig returns the pinned fee configuration.
func (s *Store) FeeConfig() domain.FeeConfig {
	return s.fee
}

// EscrowAddress returns the account holding custody of listed tokens and
// retained overpayments.
func (s *Store) EscrowAddress() string {
	return s.escrow
}

func (s *Store) pinConfig() error {
	return s.inTx(context.Background(), func(tx *sql.Tx) error {
		recipient, err := readMeta(tx, metaKeyFeeRecipient)
		if err != nil {
			return err
		}
		if recipient == "" {
			if err := writeMeta(tx, metaKeyFeeRecipient, s.fee.Recipient); err != nil {
				return err
			}
			if err := writeMeta(tx, metaKeyFeePercent, fmt.Sprintf("%d", s.fee.Percent)); err != nil {
				return err
			}
			escrow, err := ident.NewEscrowAddress()
			if err != nil {
				return err
			}
			if err := writeMeta(tx, metaKeyEscrowAddress, escrow); err != nil {
				return err
			}
			s.escrow = escrow
			return nil
		}

		percent, err := readMeta(tx, metaKeyFeePercent)
		if err != nil {
			return err
		}
		if !ident.Equal(recipient, s.fee.Recipient) || percent != fmt.Sprintf("%d", s.fee.Percent) {
			return storage.ErrFeeConfigMismatch
		}
		escrow, err := readMeta(tx, metaKeyEscrowAddress)
		if err != nil {
			return err
		}
		if escrow == "" {
			return fmt.Errorf("escrow address missing from meta table")
		}
		s.escrow = escrow
		return nil
	})
}

func readMeta(tx *sql.Tx, key string) (string, error) {
	var value string
	err := tx.QueryRow("SELECT value FROM market_meta WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read meta %s: %w", key, err)
	}
	return value, nil
}

func writeMeta(tx *sql.Tx, key, value string) error {
	if _, err := tx.Exec("INSERT INTO market_meta (key, value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("write meta %s: %w", key, err)
	}
	return nil
}

// inTx runs fn inside one transaction, committing on success and rolling back
// on any error so mutations are all-or-nothing.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) now() time.Time {
	if s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
}

// CreateCollection inserts one collection record.
func (s *Store) CreateCollection(ctx context.Context, collection storage.Collection) error {
	createdAt := collection.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow("SELECT COUNT(1) FROM collections WHERE contract = ?", collection.Contract).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check collection: %w", err)
		}
		if exists > 0 {
			return storage.ErrCollectionExists
		}
		_, err = tx.Exec(
			`INSERT INTO collections (contract, name, symbol, next_token_id, created_at)
			 VALUES (?, ?, ?, 1, ?)`,
			collection.Contract,
			collection.Name,
			collection.Symbol,
			toMillis(createdAt),
		)
		if err != nil {
			return fmt.Errorf("create collection: %w", err)
		}
		return nil
	})
}

// GetCollection returns one collection by contract address.
func (s *Store) GetCollection(ctx context.Context, contract string) (storage.Collection, error) {
	if err := ctx.Err(); err != nil {
		return storage.Collection{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Collection{}, fmt.Errorf("storage is not configured")
	}
	var collection storage.Collection
	var createdAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT contract, name, symbol, created_at FROM collections WHERE contract = ?",
		contract,
	).Scan(&collection.Contract, &collection.Name, &collection.Symbol, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Collection{}, storage.ErrCollectionNotFound
	}
	if err != nil {
		return storage.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	collection.CreatedAt = fromMillis(createdAt)
	return collection, nil
}

// MintToken assigns the collection's next token id to a new token owned by
// the recipient. Ids start at 1 and increase by one per mint.
func (s *Store) MintToken(ctx context.Context, contract, to, uri string) (storage.Token, error) {
	token := storage.Token{
		Contract: contract,
		Owner:    to,
		URI:      uri,
		MintedAt: s.now(),
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var nextID int64
		err := tx.QueryRow("SELECT next_token_id FROM collections WHERE contract = ?", contract).Scan(&nextID)
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrCollectionNotFound
		}
		if err != nil {
			return fmt.Errorf("read next token id: %w", err)
		}
		if _, err := tx.Exec(
			"UPDATE collections SET next_token_id = ? WHERE contract = ?",
			nextID+1, contract,
		); err != nil {
			return fmt.Errorf("advance token counter: %w", err)
		}
		if _, err := tx.Exec(
			"INSERT INTO tokens (contract, token_id, owner, uri, minted_at) VALUES (?, ?, ?, ?, ?)",
			contract, nextID, to, uri, toMillis(token.MintedAt),
		); err != nil {
			return fmt.Errorf("mint token: %w", err)
		}
		token.TokenID = nextID
		return nil
	})
	if err != nil {
		return storage.Token{}, err
	}
	return token, nil
}

// GetToken returns one token by (contract, token id).
func (s *Store) GetToken(ctx context.Context, contract string, tokenID int64) (storage.Token, error) {
	if err := ctx.Err(); err != nil {
		return storage.Token{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Token{}, fmt.Errorf("storage is not configured")
	}
	return getToken(ctx, s.sqlDB, contract, tokenID)
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getToken(ctx context.Context, q rowQuerier, contract string, tokenID int64) (storage.Token, error) {
	var token storage.Token
	var mintedAt int64
	err := q.QueryRowContext(
		ctx,
		"SELECT contract, token_id, owner, uri, minted_at FROM tokens WHERE contract = ? AND token_id = ?",
		contract, tokenID,
	).Scan(&token.Contract, &token.TokenID, &token.Owner, &token.URI, &mintedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Token{}, storage.ErrTokenNotFound
	}
	if err != nil {
		return storage.Token{}, fmt.Errorf("get token: %w", err)
	}
	token.MintedAt = fromMillis(mintedAt)
	return token, nil
}

// SetApproval records an operator grant for all of an owner's tokens in a
// collection.
func (s *Store) SetApproval(ctx context.Context, approval storage.Approval) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		approved := 0
		if approval.Approved {
			approved = 1
		}
		_, err := tx.Exec(
			`INSERT INTO approvals (contract, owner, operator, approved) VALUES (?, ?, ?, ?)
			 ON CONFLICT(contract, owner, operator) DO UPDATE SET approved = excluded.approved`,
			approval.Contract, approval.Owner, approval.Operator, approved,
		)
		if err != nil {
			return fmt.Errorf("set approval: %w", err)
		}
		return nil
	})
}

// IsApproved reports whether operator may move all of owner's tokens in the
// collection.
func (s *Store) IsApproved(ctx context.Context, contract, owner, operator string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	var approved int
	err := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT approved FROM approvals WHERE contract = ? AND owner = ? AND operator = ?",
		contract, owner, operator,
	).Scan(&approved)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read approval: %w", err)
	}
	return approved == 1, nil
}

// TransferToken moves a token from one holder to another. The caller must be
// the holder or an approved operator for the holder's tokens.
func (s *Store) TransferToken(ctx context.Context, contract string, tokenID int64, from, to, caller string) (storage.Token, error) {
	var token storage.Token
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := getToken(ctx, tx, contract, tokenID)
		if err != nil {
			return err
		}
		if current.Owner != from {
			return storage.ErrTokenNotOwner
		}
		if caller != from {
			approved, err := isApprovedTx(tx, contract, from, caller)
			if err != nil {
				return err
			}
			if !approved {
				return storage.ErrTransferNotAuthorized
			}
		}
		if _, err := tx.Exec(
			"UPDATE tokens SET owner = ? WHERE contract = ? AND token_id = ?",
			to, contract, tokenID,
		); err != nil {
			return fmt.Errorf("transfer token: %w", err)
		}
		current.Owner = to
		token = current
		return nil
	})
	if err != nil {
		return storage.Token{}, err
	}
	return token, nil
}

func isApprovedTx(tx *sql.Tx, contract, owner, operator string) (bool, error) {
	var approved int
	err := tx.QueryRow(
		"SELECT approved FROM approvals WHERE contract = ? AND owner = ? AND operator = ?",
		contract, owner, operator,
	).Scan(&approved)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read approval: %w", err)
	}
	return approved == 1, nil
}

// Deposit credits an account and returns the new balance.
func (s *Store) Deposit(ctx context.Context, account string, amount int64) (int64, error) {
	var balance int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := credit(tx, account, amount); err != nil {
			return err
		}
		if err := tx.QueryRow("SELECT balance FROM accounts WHERE address = ?", account).Scan(&balance); err != nil {
			return fmt.Errorf("read balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Balance returns an account balance; unknown accounts hold zero.
func (s *Store) Balance(ctx context.Context, account string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var balance int64
	err := s.sqlDB.QueryRowContext(ctx, "SELECT balance FROM accounts WHERE address = ?", account).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read balance: %w", err)
	}
	return balance, nil
}

func credit(tx *sql.Tx, account string, amount int64) error {
	if amount == 0 {
		return nil
	}
	_, err := tx.Exec(
		`INSERT INTO accounts (address, balance) VALUES (?, ?)
		 ON CONFLICT(address) DO UPDATE SET balance = balance + excluded.balance`,
		account, amount,
	)
	if err != nil {
		return fmt.Errorf("credit %s: %w", account, err)
	}
	return nil
}

func debit(tx *sql.Tx, account string, amount int64) error {
	res, err := tx.Exec(
		"UPDATE accounts SET balance = balance - ? WHERE address = ? AND balance >= ?",
		amount, account, amount,
	)
	if err != nil {
		return fmt.Errorf("debit %s: %w", account, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit %s: %w", account, err)
	}
	if affected == 0 {
		return storage.ErrInsufficientFunds
	}
	return nil
}

// CreateListing escrows the token and inserts a new listing in one
// transaction. The seller must own the token and must have approved the
// escrow operator beforehand.
func (s *Store) CreateListing(ctx context.Context, contract string, tokenID, price int64, seller string) (storage.Listing, error) {
	if err := domain.ValidatePrice(price); err != nil {
		return storage.Listing{}, err
	}
	listing := storage.Listing{
		AssetContract: contract,
		AssetID:       tokenID,
		Price:         price,
		Seller:        seller,
		CreatedAt:     s.now(),
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		token, err := getToken(ctx, tx, contract, tokenID)
		if err != nil {
			return err
		}
		if token.Owner != seller {
			return storage.ErrTokenNotOwner
		}
		approved, err := isApprovedTx(tx, contract, seller, s.escrow)
		if err != nil {
			return err
		}
		if !approved {
			return storage.ErrTransferNotAuthorized
		}
		if _, err := tx.Exec(
			"UPDATE tokens SET owner = ? WHERE contract = ? AND token_id = ?",
			s.escrow, contract, tokenID,
		); err != nil {
			return fmt.Errorf("escrow token: %w", err)
		}
		res, err := tx.Exec(
			`INSERT INTO listings (asset_contract, asset_id, price, seller, sold, created_at)
			 VALUES (?, ?, ?, ?, 0, ?)`,
			contract, tokenID, price, seller, toMillis(listing.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("create listing: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("read listing id: %w", err)
		}
		listing.ID = id
		return appendEvent(tx, storage.Event{
			Kind:          storage.EventOffered,
			ListingID:     id,
			AssetContract: contract,
			AssetID:       tokenID,
			Price:         price,
			Seller:        seller,
			CreatedAt:     listing.CreatedAt,
		})
	})
	if err != nil {
		return storage.Listing{}, err
	}
	return listing, nil
}

// GetListing returns one listing by id. Sold listings remain readable.
func (s *Store) GetListing(ctx context.Context, id int64) (storage.Listing, error) {
	if err := ctx.Err(); err != nil {
		return storage.Listing{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Listing{}, fmt.Errorf("storage is not configured")
	}
	return getListing(ctx, s.sqlDB, id)
}

func getListing(ctx context.Context, q rowQuerier, id int64) (storage.Listing, error) {
	var listing storage.Listing
	var sold int
	var buyer sql.NullString
	var createdAt int64
	var soldAt sql.NullInt64
	err := q.QueryRowContext(
		ctx,
		`SELECT id, asset_contract, asset_id, price, seller, sold, buyer, created_at, sold_at
		   FROM listings WHERE id = ?`,
		id,
	).Scan(&listing.ID, &listing.AssetContract, &listing.AssetID, &listing.Price,
		&listing.Seller, &sold, &buyer, &createdAt, &soldAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Listing{}, storage.ErrListingNotFound
	}
	if err != nil {
		return storage.Listing{}, fmt.Errorf("get listing: %w", err)
	}
	listing.Sold = sold == 1
	listing.Buyer = buyer.String
	listing.CreatedAt = fromMillis(createdAt)
	if soldAt.Valid {
		listing.SoldAt = fromMillis(soldAt.Int64)
	}
	return listing, nil
}

// ListListings returns one page of listings ordered by id.
func (s *Store) ListListings(ctx context.Context, pageSize int, pageToken string) (storage.ListingPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.ListingPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ListingPage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.ListingPage{}, fmt.Errorf("page size must be greater than zero")
	}
	afterID, err := pagination.ParseIntToken(pageToken)
	if err != nil {
		return storage.ListingPage{}, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, asset_contract, asset_id, price, seller, sold, buyer, created_at, sold_at
		   FROM listings
		  WHERE id > ?
		  ORDER BY id ASC
		  LIMIT ?`,
		afterID, pageSize+1,
	)
	if err != nil {
		return storage.ListingPage{}, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	page := storage.ListingPage{
		Listings: make([]storage.Listing, 0, pageSize),
	}
	for rows.Next() {
		var listing storage.Listing
		var sold int
		var buyer sql.NullString
		var createdAt int64
		var soldAt sql.NullInt64
		if err := rows.Scan(&listing.ID, &listing.AssetContract, &listing.AssetID, &listing.Price,
			&listing.Seller, &sold, &buyer, &createdAt, &soldAt); err != nil {
			return storage.ListingPage{}, fmt.Errorf("list listings: %w", err)
		}
		listing.Sold = sold == 1
		listing.Buyer = buyer.String
		listing.CreatedAt = fromMillis(createdAt)
		if soldAt.Valid {
			listing.SoldAt = fromMillis(soldAt.Int64)
		}
		page.Listings = append(page.Listings, listing)
	}
	if err := rows.Err(); err != nil {
		return storage.ListingPage{}, fmt.Errorf("list listings: %w", err)
	}
	if len(page.Listings) > pageSize {
		page.NextPageToken = pagination.FormatIntToken(page.Listings[pageSize-1].ID)
		page.Listings = page.Listings[:pageSize]
	}
	return page, nil
}

// PurchaseListing settles a sale in one transaction: the buyer pays the full
// payment amount, the seller receives the listing price, the fee recipient
// receives the truncated fee, custody moves from escrow to the buyer and the
// listing flips to sold. Overpayment above the fee-inclusive total is
// retained by the escrow account, not refunded.
//
// Preconditions are checked in a fixed order: listing existence, payment
// against total price, sold flag, then buyer funds. The first failure
// reports and nothing is committed.
func (s *Store) PurchaseListing(ctx context.Context, id, payment int64, buyer string) (storage.Listing, error) {
	var result storage.Listing
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		listing, err := getListing(ctx, tx, id)
		if err != nil {
			return err
		}
		total := domain.TotalPrice(listing.Price, s.fee.Percent)
		if payment < total {
			return storage.ErrPaymentInsufficient
		}
		if listing.Sold {
			return storage.ErrListingAlreadySold
		}
		if err := debit(tx, buyer, payment); err != nil {
			return err
		}
		if err := credit(tx, listing.Seller, listing.Price); err != nil {
			return err
		}
		if err := credit(tx, s.fee.Recipient, total-listing.Price); err != nil {
			return err
		}
		if err := credit(tx, s.escrow, payment-total); err != nil {
			return err
		}

		res, err := tx.Exec(
			"UPDATE tokens SET owner = ? WHERE contract = ? AND token_id = ? AND owner = ?",
			buyer, listing.AssetContract, listing.AssetID, s.escrow,
		)
		if err != nil {
			return fmt.Errorf("release escrowed token: %w", err)
		}
		moved, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("release escrowed token: %w", err)
		}
		if moved == 0 {
			return fmt.Errorf("listing %d token not held in escrow", id)
		}

		soldAt := s.now()
		res, err = tx.Exec(
			"UPDATE listings SET sold = 1, buyer = ?, sold_at = ? WHERE id = ? AND sold = 0",
			buyer, toMillis(soldAt), id,
		)
		if err != nil {
			return fmt.Errorf("mark listing sold: %w", err)
		}
		flipped, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("mark listing sold: %w", err)
		}
		if flipped == 0 {
			return storage.ErrListingAlreadySold
		}

		listing.Sold = true
		listing.Buyer = buyer
		listing.SoldAt = soldAt
		result = listing
		return appendEvent(tx, storage.Event{
			Kind:          storage.EventBought,
			ListingID:     listing.ID,
			AssetContract: listing.AssetContract,
			AssetID:       listing.AssetID,
			Price:         listing.Price,
			Seller:        listing.Seller,
			Buyer:         buyer,
			CreatedAt:     soldAt,
		})
	})
	if err != nil {
		return storage.Listing{}, err
	}
	return result, nil
}

func appendEvent(tx *sql.Tx, event storage.Event) error {
	var buyer any
	if event.Buyer != "" {
		buyer = event.Buyer
	}
	_, err := tx.Exec(
		`INSERT INTO events (kind, listing_id, asset_contract, asset_id, price, seller, buyer, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(event.Kind), event.ListingID, event.AssetContract, event.AssetID,
		event.Price, event.Seller, buyer, toMillis(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("append %s event: %w", event.Kind, err)
	}
	return nil
}

// ListEvents returns one page of the notification log ordered by sequence.
func (s *Store) ListEvents(ctx context.Context, pageSize int, pageToken string) (storage.EventPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.EventPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.EventPage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.EventPage{}, fmt.Errorf("page size must be greater than zero")
	}
	afterSeq, err := pagination.ParseIntToken(pageToken)
	if err != nil {
		return storage.EventPage{}, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT seq, kind, listing_id, asset_contract, asset_id, price, seller, buyer, created_at
		   FROM events
		  WHERE seq > ?
		  ORDER BY seq ASC
		  LIMIT ?`,
		afterSeq, pageSize+1,
	)
	if err != nil {
		return storage.EventPage{}, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	page := storage.EventPage{
		Events: make([]storage.Event, 0, pageSize),
	}
	for rows.Next() {
		var event storage.Event
		var kind string
		var buyer sql.NullString
		var createdAt int64
		if err := rows.Scan(&event.Seq, &kind, &event.ListingID, &event.AssetContract,
			&event.AssetID, &event.Price, &event.Seller, &buyer, &createdAt); err != nil {
			return storage.EventPage{}, fmt.Errorf("list events: %w", err)
		}
		event.Kind = storage.EventKind(kind)
		event.Buyer = buyer.String
		event.CreatedAt = fromMillis(createdAt)
		page.Events = append(page.Events, event)
	}
	if err := rows.Err(); err != nil {
		return storage.EventPage{}, fmt.Errorf("list events: %w", err)
	}
	if len(page.Events) > pageSize {
		page.NextPageToken = pagination.FormatIntToken(page.Events[pageSize-1].Seq)
		page.Events = page.Events[:pageSize]
	}
	return page, nil
}

var _ storage.Store = (*Store)(nil)
