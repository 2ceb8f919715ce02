// Package marketv1 defines the market.v1 wire contract: the request and
// response messages exchanged over gRPC with the JSON codec, the service
// descriptor, and a typed client.
package marketv1

// Collection describes one token registry instance.
type Collection struct {
	Contract string `json:"contract"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
}

// Token describes one registered asset.
type Token struct {
	Contract string `json:"contract"`
	TokenId  int64  `json:"token_id"`
	Owner    string `json:"owner"`
	Uri      string `json:"uri"`
}

// Listing describes one marketplace listing. Sold listings keep their record
// forever; Buyer and SoldAtMillis are set once the listing is sold.
type Listing struct {
	Id              int64  `json:"id"`
	AssetContract   string `json:"asset_contract"`
	AssetId         int64  `json:"asset_id"`
	Price           int64  `json:"price"`
	Seller          string `json:"seller"`
	Sold            bool   `json:"sold"`
	Buyer           string `json:"buyer,omitempty"`
	CreatedAtMillis int64  `json:"created_at_millis"`
	SoldAtMillis    int64  `json:"sold_at_millis,omitempty"`
}

// OfferedEvent is the notification payload emitted when a listing is created.
type OfferedEvent struct {
	ListingId     int64  `json:"listing_id"`
	AssetContract string `json:"asset_contract"`
	AssetId       int64  `json:"asset_id"`
	Price         int64  `json:"price"`
	Seller        string `json:"seller"`
}

// BoughtEvent is the notification payload emitted when a listing is sold.
type BoughtEvent struct {
	ListingId     int64  `json:"listing_id"`
	AssetContract string `json:"asset_contract"`
	AssetId       int64  `json:"asset_id"`
	Price         int64  `json:"price"`
	Seller        string `json:"seller"`
	Buyer         string `json:"buyer"`
}

// Event is one entry of the append-only notification log.
type Event struct {
	Seq             int64  `json:"seq"`
	Kind            string `json:"kind"`
	ListingId       int64  `json:"listing_id"`
	AssetContract   string `json:"asset_contract"`
	AssetId         int64  `json:"asset_id"`
	Price           int64  `json:"price"`
	Seller          string `json:"seller"`
	Buyer           string `json:"buyer,omitempty"`
	CreatedAtMillis int64  `json:"created_at_millis"`
}

// Event kinds recorded in the notification log.
const (
	EventKindOffered = "offered"
	EventKindBought  = "bought"
)

type GetMarketInfoRequest struct{}

// GetMarketInfoResponse carries the marketplace configuration clients need up
// front: the operator address sellers approve before listing and the fee
// terms applied to every sale.
type GetMarketInfoResponse struct {
	OperatorAddress string `json:"operator_address"`
	FeeRecipient    string `json:"fee_recipient"`
	FeePercent      int32  `json:"fee_percent"`
}

type CreateCollectionRequest struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type CreateCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type MintTokenRequest struct {
	Contract string `json:"contract"`
	To       string `json:"to"`
	Uri      string `json:"uri"`
}

type MintTokenResponse struct {
	Token *Token `json:"token"`
}

type GetTokenRequest struct {
	Contract string `json:"contract"`
	TokenId  int64  `json:"token_id"`
}

type GetTokenResponse struct {
	Token *Token `json:"token"`
}

type SetApprovalRequest struct {
	Contract string `json:"contract"`
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

type SetApprovalResponse struct{}

type TransferTokenRequest struct {
	Contract string `json:"contract"`
	TokenId  int64  `json:"token_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Caller   string `json:"caller"`
}

type TransferTokenResponse struct {
	Token *Token `json:"token"`
}

type DepositRequest struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

type DepositResponse struct {
	Balance int64 `json:"balance"`
}

type GetBalanceRequest struct {
	Account string `json:"account"`
}

type GetBalanceResponse struct {
	Balance int64 `json:"balance"`
}

type CreateListingRequest struct {
	AssetContract string `json:"asset_contract"`
	AssetId       int64  `json:"asset_id"`
	Price         int64  `json:"price"`
	Seller        string `json:"seller"`
}

type CreateListingResponse struct {
	Listing *Listing      `json:"listing"`
	Offered *OfferedEvent `json:"offered"`
}

type GetListingRequest struct {
	Id int64 `json:"id"`
}

type GetListingResponse struct {
	Listing *Listing `json:"listing"`
}

type ListListingsRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListListingsResponse struct {
	Listings      []*Listing `json:"listings"`
	NextPageToken string     `json:"next_page_token,omitempty"`
}

type TotalPriceRequest struct {
	Id int64 `json:"id"`
}

type TotalPriceResponse struct {
	// Total is the listing price plus the truncated percentage fee.
	Total int64 `json:"total"`
}

type PurchaseRequest struct {
	Id      int64  `json:"id"`
	Payment int64  `json:"payment"`
	Buyer   string `json:"buyer"`
}

type PurchaseResponse struct {
	Listing *Listing     `json:"listing"`
	Bought  *BoughtEvent `json:"bought"`
}

type ListEventsRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListEventsResponse struct {
	Events        []*Event `json:"events"`
	NextPageToken string   `json:"next_page_token,omitempty"`
}
