package executor_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	apierrors "github.com/conquerblocks/nft-marketplace/internal/api/shared/errors"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/executor"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/types"
	"github.com/conquerblocks/nft-marketplace/internal/auth"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/marketplace"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/nft"
	"github.com/conquerblocks/nft-marketplace/internal/deployment"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
	"github.com/conquerblocks/nft-marketplace/internal/providers/ipfs"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var (
	deployer = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	seller   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	buyer    = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

var oneEther = big.NewInt(params.Ether)

// testExecutor wires the executor to an in-memory ledger and mocks its external services
type testExecutor struct {
	ctx        context.Context
	ctrl       *gomock.Controller
	ledger     *chain.Ledger
	store      store.Store
	deployment *deployment.Deployment
	resolver   *mocks.MockMetadataResolver
	uploader   *mocks.MockIPFSUploader
	auth       *mocks.MockAuthService
	exec       executor.Executor
}

func newLedger(st store.Store) *chain.Ledger {
	return chain.NewLedger(
		chain.Config{ChainID: domain.DEFAULT_CHAIN_ID, GasPrice: big.NewInt(params.GWei)},
		st,
		adapter.NewClock(),
		adapter.NewJSON(),
		adapter.NewJCS(),
		nft.New(),
		marketplace.New(),
	)
}

func setupTestExecutor(t *testing.T) *testExecutor {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	st := store.NewMemoryStore()
	l := newLedger(st)

	for _, account := range []common.Address{deployer, seller, buyer} {
		require.NoError(t, l.Fund(ctx, account, new(big.Int).Mul(big.NewInt(100), oneEther)))
	}

	d, err := deployment.Deploy(ctx, l, deployer, big.NewInt(1))
	require.NoError(t, err)

	te := &testExecutor{
		ctx:        ctx,
		ctrl:       ctrl,
		ledger:     l,
		store:      st,
		deployment: d,
		resolver:   mocks.NewMockMetadataResolver(ctrl),
		uploader:   mocks.NewMockIPFSUploader(ctrl),
		auth:       mocks.NewMockAuthService(ctrl),
	}
	te.exec = executor.NewExecutor(
		executor.Config{MetadataConcurrency: 2},
		l,
		deployment.NewLoader(st),
		st,
		te.resolver,
		te.uploader,
		te.auth,
		adapter.NewJSON(),
	)
	t.Cleanup(te.exec.Close)

	return te
}

func (te *testExecutor) resolvesAny() {
	te.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tokenURI string) (*domain.TokenMetadata, error) {
			return &domain.TokenMetadata{Name: tokenURI, Image: "ipfs://QmImage"}, nil
		}).AnyTimes()
}

func (te *testExecutor) mintAndList(t *testing.T, from common.Address, tokenURI string, price string) *dto.MintAndListResponse {
	resp, err := te.exec.MintAndList(te.ctx, from, dto.MintAndListRequest{TokenURI: tokenURI, Price: price})
	require.NoError(t, err)
	return resp
}

func TestExecutor_NotDeployed(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := store.NewMemoryStore()
	exec := executor.NewExecutor(executor.Config{}, newLedger(st), deployment.NewLoader(st), st,
		mocks.NewMockMetadataResolver(ctrl), mocks.NewMockIPFSUploader(ctrl), mocks.NewMockAuthService(ctrl), adapter.NewJSON())
	defer exec.Close()

	_, err := exec.ListItems(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotDeployed)

	health, err := exec.GetHealth(context.Background())
	require.NoError(t, err)
	assert.False(t, health.Deployed)
	assert.Equal(t, uint64(domain.DEFAULT_CHAIN_ID), health.ChainID)

	account, err := exec.GetAccount(context.Background(), seller)
	require.NoError(t, err)
	assert.Equal(t, "0", account.Balance)
	assert.Zero(t, account.TokenBalance)
}

func TestExecutor_GetHealth(t *testing.T) {
	te := setupTestExecutor(t)

	health, err := te.exec.GetHealth(te.ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.True(t, health.Deployed)
	assert.Equal(t, te.deployment.BlockNumber, health.BlockNumber)
}

func TestExecutor_GetContracts(t *testing.T) {
	te := setupTestExecutor(t)

	contracts, err := te.exec.GetContracts(te.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(domain.DEFAULT_CHAIN_ID), contracts.ChainID)
	assert.Equal(t, deployer.Hex(), contracts.FeeAccount)
	assert.Equal(t, "1", contracts.FeePercent)
	require.Len(t, contracts.Contracts, 2)
	assert.Equal(t, "BlocksNFT", contracts.Contracts[0].Name)
	assert.Equal(t, te.deployment.NFT.Hex(), contracts.Contracts[0].Address)
	assert.Equal(t, "Marketplace", contracts.Contracts[1].Name)
	assert.Equal(t, te.deployment.Marketplace.Hex(), contracts.Contracts[1].Address)
	assert.NotEmpty(t, contracts.Contracts[1].ABI)
}

func TestExecutor_MintAndList(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolver.EXPECT().Resolve(gomock.Any(), "ipfs://QmFirst").
		Return(&domain.TokenMetadata{Name: "First", Description: "first block", Image: "ipfs://QmImage"}, nil)

	resp := te.mintAndList(t, seller, "ipfs://QmFirst", "1")

	assert.Equal(t, uint64(1), resp.TokenID)
	assert.Equal(t, "ipfs://QmFirst", resp.TokenURI)
	// mint, setApprovalForAll, createItem
	require.Len(t, resp.Transactions, 3)
	assert.Equal(t, "mint", resp.Transactions[0].Method)
	assert.Equal(t, "setApprovalForAll", resp.Transactions[1].Method)
	assert.Equal(t, "createItem", resp.Transactions[2].Method)

	item := resp.Item
	assert.Equal(t, uint64(1), item.ItemID)
	assert.Equal(t, te.deployment.NFT.Hex(), item.NFT)
	assert.Equal(t, seller.Hex(), item.Seller)
	assert.Equal(t, "1000000000000000000", item.Price)
	assert.Equal(t, "1010000000000000000", item.TotalPrice)
	assert.Equal(t, "1.01", item.TotalPriceEther)
	assert.False(t, item.Sold)
	require.NotNil(t, item.Metadata)
	assert.Equal(t, "First", item.Metadata.Name)
	assert.Equal(t, "https://ipfs.io/ipfs/QmImage", item.Metadata.ImageURL)

	owner, err := nft.NewBinding(te.deployment.NFT, te.ledger).OwnerOf(te.ctx, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, te.deployment.Marketplace, owner)
}

func TestExecutor_MintAndList_SkipsExistingApproval(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")
	resp := te.mintAndList(t, seller, "ipfs://QmSecond", "0.5")

	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "mint", resp.Transactions[0].Method)
	assert.Equal(t, "createItem", resp.Transactions[1].Method)
	assert.Equal(t, uint64(2), resp.Item.ItemID)
	assert.Equal(t, "0.5", resp.Item.PriceEther)
}

func TestExecutor_MintAndList_UploadsMetadata(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.uploader.EXPECT().
		UploadMetadata(gomock.Any(), domain.TokenMetadata{Name: "Block", Description: "a block", Image: "ipfs://QmImage"}).
		Return(&ipfs.UploadResult{CID: "bafymeta", URI: "ipfs://bafymeta"}, nil)

	resp, err := te.exec.MintAndList(te.ctx, seller, dto.MintAndListRequest{
		Name:        "Block",
		Description: "a block",
		Image:       "ipfs://QmImage",
		Price:       "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bafymeta", resp.TokenURI)
	assert.Equal(t, "ipfs://bafymeta", resp.Item.TokenURI)
}

func TestExecutor_MintAndList_UploadError(t *testing.T) {
	te := setupTestExecutor(t)

	te.uploader.EXPECT().UploadMetadata(gomock.Any(), gomock.Any()).Return(nil, errors.New("ipfs down"))

	resp, err := te.exec.MintAndList(te.ctx, seller, dto.MintAndListRequest{Name: "n", Description: "d", Image: "i", Price: "1"})
	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "ipfs down")

	// Nothing was minted
	count, err := nft.NewBinding(te.deployment.NFT, te.ledger).TokenCount(te.ctx)
	require.NoError(t, err)
	assert.Zero(t, count.Int64())
}

func TestExecutor_ListItems(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")
	te.mintAndList(t, seller, "ipfs://QmSecond", "2")
	_, err := te.exec.PurchaseItem(te.ctx, buyer, 1, nil)
	require.NoError(t, err)

	items, err := te.exec.ListItems(te.ctx)
	require.NoError(t, err)
	require.Len(t, items.Items, 1)
	assert.Equal(t, uint64(2), items.Items[0].ItemID)
	assert.Equal(t, "ipfs://QmSecond", items.Items[0].TokenURI)
	assert.Equal(t, "2.02", items.Items[0].TotalPriceEther)
}

func TestExecutor_ListItems_KeepsOrder(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	uris := []string{"ipfs://QmA", "ipfs://QmB", "ipfs://QmC", "ipfs://QmD", "ipfs://QmE"}
	for _, tokenURI := range uris {
		te.mintAndList(t, seller, tokenURI, "1")
	}

	items, err := te.exec.ListItems(te.ctx)
	require.NoError(t, err)
	require.Len(t, items.Items, len(uris))
	for i, item := range items.Items {
		assert.Equal(t, uint64(i+1), item.ItemID)
		assert.Equal(t, uris[i], item.TokenURI)
		require.NotNil(t, item.Metadata)
		assert.Equal(t, uris[i], item.Metadata.Name)
	}
}

func TestExecutor_ListItems_MetadataFailureIsNotFatal(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout")).AnyTimes()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")

	items, err := te.exec.ListItems(te.ctx)
	require.NoError(t, err)
	require.Len(t, items.Items, 1)
	assert.Equal(t, "ipfs://QmFirst", items.Items[0].TokenURI)
	assert.Nil(t, items.Items[0].Metadata)
}

func TestExecutor_GetItem(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")

	item, err := te.exec.GetItem(te.ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, uint64(1), item.TokenID)

	item, err = te.exec.GetItem(te.ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestExecutor_GetTotalPrice(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "3")

	total, err := te.exec.GetTotalPrice(te.ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "3030000000000000000", total.TotalPrice)
	assert.Equal(t, "3.03", total.TotalPriceEther)

	// Unknown ids price at zero
	total, err = te.exec.GetTotalPrice(te.ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "0", total.TotalPrice)
}

func TestExecutor_CreateItem(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	minted, err := te.exec.MintToken(te.ctx, seller, "ipfs://QmFirst")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), minted.TokenID)
	assert.Equal(t, "mint", minted.Transaction.Method)

	// Listing before approving the marketplace reverts
	_, err = te.exec.CreateItem(te.ctx, seller, te.deployment.NFT, minted.TokenID, oneEther)
	var revertErr *chain.RevertError
	require.ErrorAs(t, err, &revertErr)

	approval, err := te.exec.SetApprovalForAll(te.ctx, seller, nil, true)
	require.NoError(t, err)
	assert.Equal(t, te.deployment.Marketplace.Hex(), approval.Operator)
	assert.True(t, approval.Approved)

	created, err := te.exec.CreateItem(te.ctx, seller, te.deployment.NFT, minted.TokenID, oneEther)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.Item.ItemID)
	assert.Equal(t, "createItem", created.Transaction.Method)
	require.NotNil(t, created.Transaction.To)
	assert.Equal(t, te.deployment.Marketplace.Hex(), *created.Transaction.To)
}

func TestExecutor_CreateItem_ZeroPrice(t *testing.T) {
	te := setupTestExecutor(t)

	_, err := te.exec.MintToken(te.ctx, seller, "ipfs://QmFirst")
	require.NoError(t, err)
	_, err = te.exec.SetApprovalForAll(te.ctx, seller, nil, true)
	require.NoError(t, err)

	_, err = te.exec.CreateItem(te.ctx, seller, te.deployment.NFT, 1, big.NewInt(0))
	assert.ErrorIs(t, err, domain.ErrPriceNotPositive)

	apiErr := apierrors.FromError(err)
	assert.Equal(t, apierrors.ErrCodeExecutionReverted, apiErr.Code)
	assert.Equal(t, "Price must be bigger than 0", apiErr.Details)
}

func TestExecutor_PurchaseItem(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")

	sellerBefore, err := te.ledger.BalanceAt(te.ctx, seller)
	require.NoError(t, err)
	feeBefore, err := te.ledger.BalanceAt(te.ctx, deployer)
	require.NoError(t, err)

	resp, err := te.exec.PurchaseItem(te.ctx, buyer, 1, nil)
	require.NoError(t, err)
	assert.True(t, resp.Item.Sold)
	assert.Equal(t, "purchaseItem", resp.Transaction.Method)
	assert.Equal(t, "1010000000000000000", resp.Transaction.Value)

	sellerAfter, err := te.ledger.BalanceAt(te.ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, oneEther, new(big.Int).Sub(sellerAfter, sellerBefore))

	feeAfter, err := te.ledger.BalanceAt(te.ctx, deployer)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(params.Ether/100), new(big.Int).Sub(feeAfter, feeBefore))

	owner, err := nft.NewBinding(te.deployment.NFT, te.ledger).OwnerOf(te.ctx, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, buyer, owner)
}

func TestExecutor_PurchaseItem_Reverts(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")

	tests := []struct {
		name     string
		itemID   uint64
		value    *big.Int
		expected error
	}{
		{
			name:     "unknown item",
			itemID:   2,
			value:    oneEther,
			expected: domain.ErrItemNotFound,
		},
		{
			name:     "price without fee",
			itemID:   1,
			value:    oneEther,
			expected: domain.ErrInsufficientPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := te.exec.PurchaseItem(te.ctx, buyer, tt.itemID, tt.value)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	_, err := te.exec.PurchaseItem(te.ctx, buyer, 1, nil)
	require.NoError(t, err)
	_, err = te.exec.PurchaseItem(te.ctx, buyer, 1, nil)
	assert.ErrorIs(t, err, domain.ErrItemSold)
}

func TestExecutor_ListListedItems(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")
	te.mintAndList(t, seller, "ipfs://QmSecond", "1")
	te.mintAndList(t, buyer, "ipfs://QmThird", "1")
	_, err := te.exec.PurchaseItem(te.ctx, buyer, 2, nil)
	require.NoError(t, err)

	listed, err := te.exec.ListListedItems(te.ctx, seller)
	require.NoError(t, err)
	require.Len(t, listed.Listed, 1)
	assert.Equal(t, uint64(1), listed.Listed[0].ItemID)
	require.Len(t, listed.Sold, 1)
	assert.Equal(t, uint64(2), listed.Sold[0].ItemID)

	listed, err = te.exec.ListListedItems(te.ctx, deployer)
	require.NoError(t, err)
	assert.Empty(t, listed.Listed)
	assert.Empty(t, listed.Sold)
}

func TestExecutor_ListPurchases(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")
	te.mintAndList(t, seller, "ipfs://QmSecond", "1")
	purchase, err := te.exec.PurchaseItem(te.ctx, buyer, 2, nil)
	require.NoError(t, err)

	purchases, err := te.exec.ListPurchases(te.ctx, buyer)
	require.NoError(t, err)
	require.Len(t, purchases.Purchases, 1)

	bought := purchases.Purchases[0]
	assert.Equal(t, uint64(2), bought.ItemID)
	assert.Equal(t, buyer.Hex(), bought.Buyer)
	assert.Equal(t, seller.Hex(), bought.Seller)
	assert.True(t, bought.Sold)
	assert.Equal(t, "ipfs://QmSecond", bought.TokenURI)
	assert.Equal(t, purchase.Transaction.TxHash, bought.TxHash)
	assert.Equal(t, purchase.Transaction.BlockNumber, bought.BlockNumber)

	purchases, err = te.exec.ListPurchases(te.ctx, seller)
	require.NoError(t, err)
	assert.Empty(t, purchases.Purchases)
}

func TestExecutor_GetToken(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	_, err := te.exec.MintToken(te.ctx, seller, "ipfs://QmFirst")
	require.NoError(t, err)

	token, err := te.exec.GetToken(te.ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, seller.Hex(), token.Owner)
	assert.Equal(t, "ipfs://QmFirst", token.TokenURI)
	assert.Nil(t, token.Approved)
	require.NotNil(t, token.Metadata)

	token, err = te.exec.GetToken(te.ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestExecutor_GetAccount(t *testing.T) {
	te := setupTestExecutor(t)

	_, err := te.exec.MintToken(te.ctx, seller, "ipfs://QmFirst")
	require.NoError(t, err)
	_, err = te.exec.MintToken(te.ctx, seller, "ipfs://QmSecond")
	require.NoError(t, err)

	account, err := te.exec.GetAccount(te.ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, seller.Hex(), account.Address)
	assert.Equal(t, uint64(2), account.Nonce)
	assert.Equal(t, uint64(2), account.TokenBalance)

	// Gas was paid for both mints
	balance, ok := new(big.Int).SetString(account.Balance, 10)
	require.True(t, ok)
	assert.Equal(t, -1, balance.Cmp(new(big.Int).Mul(big.NewInt(100), oneEther)))
}

func TestExecutor_Upload(t *testing.T) {
	te := setupTestExecutor(t)

	data := []byte("\x89PNG\r\n\x1a\n")
	te.uploader.EXPECT().Upload(gomock.Any(), data).
		Return(&ipfs.UploadResult{CID: "bafyimage", URI: "ipfs://bafyimage", MimeType: "image/png", Size: len(data)}, nil)

	resp, err := te.exec.Upload(te.ctx, data)
	require.NoError(t, err)
	assert.Equal(t, "bafyimage", resp.CID)
	assert.Equal(t, "ipfs://bafyimage", resp.URI)
	assert.Equal(t, "https://ipfs.io/ipfs/bafyimage", resp.GatewayURL)
	assert.Equal(t, "image/png", resp.MimeType)

	te.uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, ipfs.ErrEmptyUpload)
	_, err = te.exec.Upload(te.ctx, nil)
	assert.ErrorIs(t, err, ipfs.ErrEmptyUpload)
}

func TestExecutor_ListEvents(t *testing.T) {
	te := setupTestExecutor(t)
	te.resolvesAny()

	te.mintAndList(t, seller, "ipfs://QmFirst", "1")

	offered := "Offered"
	events, err := te.exec.ListEvents(te.ctx, executor.EventFilter{Event: &offered, Order: types.OrderAsc})
	require.NoError(t, err)
	require.Len(t, events.Events, 1)
	assert.Equal(t, "Marketplace", events.Events[0].Contract)
	assert.Equal(t, "Offered", events.Events[0].Event)
	assert.Equal(t, "1", events.Events[0].Args["itemId"])
	assert.Equal(t, seller.Hex(), events.Events[0].Args["seller"])

	kind := domain.ContractKindNFT
	events, err = te.exec.ListEvents(te.ctx, executor.EventFilter{Contract: &kind, Order: types.OrderAsc})
	require.NoError(t, err)
	require.Len(t, events.Events, 3)
	assert.Equal(t, "Transfer", events.Events[0].Event)
	assert.Equal(t, "ApprovalForAll", events.Events[1].Event)
	assert.Equal(t, "Transfer", events.Events[2].Event)

	events, err = te.exec.ListEvents(te.ctx, executor.EventFilter{Limit: 1, Order: types.OrderDesc})
	require.NoError(t, err)
	require.Len(t, events.Events, 1)
	assert.Equal(t, "Offered", events.Events[0].Event)

	events, err = te.exec.ListEvents(te.ctx, executor.EventFilter{Limit: 1, Order: types.OrderAsc})
	require.NoError(t, err)
	require.Len(t, events.Events, 1)
	assert.Equal(t, "Transfer", events.Events[0].Event)

	unknown := "Sweep"
	_, err = te.exec.ListEvents(te.ctx, executor.EventFilter{Event: &unknown})
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apierrors.FromError(err).Code)

	// Bought is not a token contract event
	bought := "Bought"
	_, err = te.exec.ListEvents(te.ctx, executor.EventFilter{Contract: &kind, Event: &bought})
	assert.Error(t, err)
}

func TestExecutor_Auth(t *testing.T) {
	te := setupTestExecutor(t)
	expiresAt := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)

	te.auth.EXPECT().Challenge(gomock.Any(), seller).Return(&auth.Challenge{
		Address:   seller,
		Nonce:     "nonce-1",
		Message:   auth.LoginMessage("nonce-1"),
		ExpiresAt: expiresAt,
	}, nil)

	nonce, err := te.exec.CreateNonce(te.ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, "nonce-1", nonce.Nonce)
	assert.Equal(t, auth.LoginMessage("nonce-1"), nonce.Message)
	assert.Equal(t, expiresAt, nonce.ExpiresAt)

	te.auth.EXPECT().Login(gomock.Any(), seller, "0xsig").Return(&auth.Session{Address: seller, Token: "jwt", ExpiresAt: expiresAt}, nil)
	session, err := te.exec.Login(te.ctx, seller, "0xsig")
	require.NoError(t, err)
	assert.Equal(t, "jwt", session.Token)
	assert.Equal(t, seller.Hex(), session.Address)

	te.auth.EXPECT().Login(gomock.Any(), seller, "0xbad").Return(nil, auth.ErrInvalidSignature)
	_, err = te.exec.Login(te.ctx, seller, "0xbad")
	assert.ErrorIs(t, err, auth.ErrInvalidSignature)
}
