package executor

import (
	"context"
	"math/big"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/types"
	"github.com/conquerblocks/nft-marketplace/internal/auth"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/deployment"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/metadata"
	"github.com/conquerblocks/nft-marketplace/internal/providers/ipfs"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetHealth reports the ledger head and whether the contracts are deployed
	GetHealth(ctx context.Context) (*dto.HealthResponse, error)

	// CreateNonce creates a login challenge for an address
	CreateNonce(ctx context.Context, address common.Address) (*dto.NonceResponse, error)
	// Login exchanges a signed challenge for a session
	Login(ctx context.Context, address common.Address, signature string) (*dto.SessionResponse, error)

	// GetContracts returns the deployment artifacts and the marketplace fee settings
	GetContracts(ctx context.Context) (*dto.ContractsResponse, error)

	// ListItems returns every unsold item
	ListItems(ctx context.Context) (*dto.ItemListResponse, error)
	// GetItem returns a single item, nil if the id was never assigned
	GetItem(ctx context.Context, itemID uint64) (*dto.ItemResponse, error)
	// GetTotalPrice returns the price of an item including the marketplace fee
	GetTotalPrice(ctx context.Context, itemID uint64) (*dto.TotalPriceResponse, error)
	// CreateItem lists a token owned by from
	CreateItem(ctx context.Context, from common.Address, nft common.Address, tokenID uint64, price *big.Int) (*dto.CreateItemResponse, error)
	// PurchaseItem buys an item, value defaults to the total price when nil
	PurchaseItem(ctx context.Context, from common.Address, itemID uint64, value *big.Int) (*dto.PurchaseResponse, error)

	// Upload adds a file to IPFS
	Upload(ctx context.Context, data []byte) (*dto.UploadResponse, error)
	// MintToken mints a token to from
	MintToken(ctx context.Context, from common.Address, tokenURI string) (*dto.MintResponse, error)
	// MintAndList mints a token, approves the marketplace and lists the token
	MintAndList(ctx context.Context, from common.Address, req dto.MintAndListRequest) (*dto.MintAndListResponse, error)
	// GetToken returns a token of the token contract, nil if it was never minted
	GetToken(ctx context.Context, tokenID uint64) (*dto.TokenResponse, error)
	// SetApprovalForAll approves or revokes an operator, the marketplace when operator is nil
	SetApprovalForAll(ctx context.Context, from common.Address, operator *common.Address, approved bool) (*dto.ApprovalForAllResponse, error)

	// GetAccount returns the ledger state of an account
	GetAccount(ctx context.Context, address common.Address) (*dto.AccountResponse, error)
	// ListListedItems returns the items an account listed, split into listed and sold
	ListListedItems(ctx context.Context, seller common.Address) (*dto.ListedItemsResponse, error)
	// ListPurchases returns the items an account bought
	ListPurchases(ctx context.Context, buyer common.Address) (*dto.PurchaseListResponse, error)

	// ListEvents returns the stored contract event logs matching a filter
	ListEvents(ctx context.Context, filter EventFilter) (*dto.EventListResponse, error)

	// Close stops the metadata worker pool
	Close()
}

// Ledger is the ledger surface used by the executor
type Ledger interface {
	chain.Backend

	ChainID() uint64
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
	NonceAt(ctx context.Context, address common.Address) (uint64, error)
}

// EventFilter narrows ListEvents
type EventFilter struct {
	Contract  *domain.ContractKind
	Event     *string
	FromBlock *uint64
	ToBlock   *uint64
	Limit     int
	Order     types.Order
}

// Config holds the executor configuration
type Config struct {
	// MetadataConcurrency bounds the token metadata lookups running at once
	MetadataConcurrency int
}

type executor struct {
	ledger   Ledger
	loader   deployment.Loader
	store    store.Store
	resolver metadata.Resolver
	uploader ipfs.Uploader
	auth     auth.Service
	json     adapter.JSON
	pool     pond.ResultPool[tokenDetails]
}

func NewExecutor(
	cfg Config,
	ledger Ledger,
	loader deployment.Loader,
	st store.Store,
	resolver metadata.Resolver,
	uploader ipfs.Uploader,
	authService auth.Service,
	json adapter.JSON,
) Executor {
	if cfg.MetadataConcurrency <= 0 {
		cfg.MetadataConcurrency = 8
	}

	return &executor{
		ledger:   ledger,
		loader:   loader,
		store:    st,
		resolver: resolver,
		uploader: uploader,
		auth:     authService,
		json:     json,
		pool:     pond.NewResultPool[tokenDetails](cfg.MetadataConcurrency),
	}
}

func (e *executor) Close() {
	e.pool.StopAndWait()
}
