package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

const (
	testDeployer    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testAlice       = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testBob         = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	testNFT         = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testMarketplace = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// seedContract stores a contract so rows referencing it can be inserted
func seedContract(t *testing.T, store Store, address, kind string, block uint64) {
	err := store.CreateContract(context.Background(), &schema.Contract{
		Address:     address,
		Kind:        kind,
		Deployer:    testDeployer,
		TxHash:      fmt.Sprintf("0xdeploy%d", block),
		BlockNumber: block,
		Config:      datatypes.JSON(`{"name":"Conquer Blocks NFTs"}`),
	})
	require.NoError(t, err)
}

// buildTestTransaction creates a transaction in the given block
func buildTestTransaction(hash string, block uint64, to string) *schema.Transaction {
	return &schema.Transaction{
		Hash:        hash,
		BlockNumber: block,
		BlockHash:   fmt.Sprintf("0xblock%d", block),
		FromAddress: testAlice,
		ToAddress:   &to,
		Method:      "mint",
		Value:       "0",
		Input:       "0xd85d3d27",
		Nonce:       block,
		GasUsed:     21000,
		GasPrice:    "1000000000",
		Timestamp:   time.Now().UTC().Truncate(time.Second),
	}
}

// buildTestLog creates an event log with the given topics
func buildTestLog(txHash string, block uint64, logIndex uint, address, event string, topics ...string) schema.EventLog {
	log := schema.EventLog{
		BlockNumber: block,
		BlockHash:   fmt.Sprintf("0xblock%d", block),
		TxHash:      txHash,
		LogIndex:    logIndex,
		Address:     address,
		Data:        "0x",
		Event:       event,
		Args:        datatypes.JSON(`{}`),
		Timestamp:   time.Now().UTC().Truncate(time.Second),
	}
	slots := []*string{&log.Topic0, &log.Topic1, &log.Topic2, &log.Topic3}
	for i, topic := range topics {
		*slots[i] = topic
	}
	return log
}

// =============================================================================
// Tests
// =============================================================================

func testAccounts(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent account returns nil", func(t *testing.T) {
		account, err := store.GetAccount(ctx, testBob)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("save and update account", func(t *testing.T) {
		err := store.SaveAccount(ctx, &schema.Account{Address: testAlice, Balance: "10000000000000000000000", Nonce: 0})
		require.NoError(t, err)

		err = store.SaveAccount(ctx, &schema.Account{Address: testAlice, Balance: "9999000000000000000000", Nonce: 1})
		require.NoError(t, err)

		account, err := store.GetAccount(ctx, testAlice)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "9999000000000000000000", account.Balance)
		assert.Equal(t, uint64(1), account.Nonce)
	})
}

func testContracts(t *testing.T, store Store) {
	ctx := context.Background()

	seedContract(t, store, testNFT, "BlocksNFT", 1)
	seedContract(t, store, testMarketplace, "Marketplace", 2)
	seedContract(t, store, "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0", "BlocksNFT", 3)

	t.Run("get contract", func(t *testing.T) {
		contract, err := store.GetContract(ctx, testNFT)
		require.NoError(t, err)
		require.NotNil(t, contract)
		assert.Equal(t, "BlocksNFT", contract.Kind)
		assert.Equal(t, testDeployer, contract.Deployer)
		assert.JSONEq(t, `{"name":"Conquer Blocks NFTs"}`, string(contract.Config))
	})

	t.Run("get missing contract returns nil", func(t *testing.T) {
		contract, err := store.GetContract(ctx, testBob)
		require.NoError(t, err)
		assert.Nil(t, contract)
	})

	t.Run("latest contract by kind", func(t *testing.T) {
		contract, err := store.GetLatestContractByKind(ctx, "BlocksNFT")
		require.NoError(t, err)
		require.NotNil(t, contract)
		assert.Equal(t, "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0", contract.Address)

		contract, err = store.GetLatestContractByKind(ctx, "Unknown")
		require.NoError(t, err)
		assert.Nil(t, contract)
	})
}

func testTokens(t *testing.T, store Store) {
	ctx := context.Background()
	seedContract(t, store, testNFT, "BlocksNFT", 1)

	for i := uint64(1); i <= 3; i++ {
		owner := testAlice
		if i == 2 {
			owner = testBob
		}
		err := store.SaveToken(ctx, &schema.Token{
			ContractAddress: testNFT,
			TokenNumber:     i,
			Owner:           owner,
			URI:             fmt.Sprintf("ipfs://token/%d", i),
			Minter:          owner,
		})
		require.NoError(t, err)
	}

	t.Run("get token", func(t *testing.T) {
		token, err := store.GetToken(ctx, testNFT, 2)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, testBob, token.Owner)
		assert.Equal(t, "ipfs://token/2", token.URI)
		assert.Nil(t, token.Approved)

		token, err = store.GetToken(ctx, testNFT, 99)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("update owner and approval", func(t *testing.T) {
		token, err := store.GetToken(ctx, testNFT, 1)
		require.NoError(t, err)

		approved := testMarketplace
		token.Approved = &approved
		require.NoError(t, store.SaveToken(ctx, token))

		token.Owner = testMarketplace
		token.Approved = nil
		require.NoError(t, store.SaveToken(ctx, token))

		updated, err := store.GetToken(ctx, testNFT, 1)
		require.NoError(t, err)
		assert.Equal(t, testMarketplace, updated.Owner)
		assert.Nil(t, updated.Approved)
		assert.Equal(t, "ipfs://token/1", updated.URI)
	})

	t.Run("keeps the caller's update time", func(t *testing.T) {
		token, err := store.GetToken(ctx, testNFT, 3)
		require.NoError(t, err)
		assert.False(t, token.UpdatedAt.IsZero())

		blockTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		token.UpdatedAt = blockTime
		require.NoError(t, store.SaveToken(ctx, token))

		updated, err := store.GetToken(ctx, testNFT, 3)
		require.NoError(t, err)
		assert.True(t, blockTime.Equal(updated.UpdatedAt), "got %s", updated.UpdatedAt)
	})

	t.Run("count and list by owner", func(t *testing.T) {
		count, err := store.CountTokensByOwner(ctx, testNFT, testAlice)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), count)

		owner := testBob
		tokens, err := store.ListTokens(ctx, TokenFilter{Contract: testNFT, Owner: &owner})
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, uint64(2), tokens[0].TokenNumber)

		all, err := store.ListTokens(ctx, TokenFilter{Contract: testNFT})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, uint64(1), all[0].TokenNumber)
		assert.Equal(t, uint64(3), all[2].TokenNumber)
	})
}

func testOperatorApprovals(t *testing.T, store Store) {
	ctx := context.Background()
	seedContract(t, store, testNFT, "BlocksNFT", 1)

	approved, err := store.GetOperatorApproval(ctx, testNFT, testAlice, testMarketplace)
	require.NoError(t, err)
	assert.False(t, approved)

	err = store.SetOperatorApproval(ctx, &schema.OperatorApproval{
		ContractAddress: testNFT, Owner: testAlice, Operator: testMarketplace, Approved: true,
	})
	require.NoError(t, err)

	approved, err = store.GetOperatorApproval(ctx, testNFT, testAlice, testMarketplace)
	require.NoError(t, err)
	assert.True(t, approved)

	err = store.SetOperatorApproval(ctx, &schema.OperatorApproval{
		ContractAddress: testNFT, Owner: testAlice, Operator: testMarketplace, Approved: false,
	})
	require.NoError(t, err)

	approved, err = store.GetOperatorApproval(ctx, testNFT, testAlice, testMarketplace)
	require.NoError(t, err)
	assert.False(t, approved)
}

func testMarketItems(t *testing.T, store Store) {
	ctx := context.Background()
	seedContract(t, store, testNFT, "BlocksNFT", 1)
	seedContract(t, store, testMarketplace, "Marketplace", 2)

	sellers := []string{testAlice, testAlice, testBob}
	for i, seller := range sellers {
		err := store.SaveMarketItem(ctx, &schema.MarketItem{
			MarketplaceAddress: testMarketplace,
			ItemID:             uint64(i + 1), //nolint:gosec,G115
			NFTContract:        testNFT,
			TokenNumber:        uint64(i + 1), //nolint:gosec,G115
			Price:              "1000000000000000000",
			Seller:             seller,
		})
		require.NoError(t, err)
	}

	t.Run("get market item", func(t *testing.T) {
		item, err := store.GetMarketItem(ctx, testMarketplace, 1)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, testAlice, item.Seller)
		assert.Equal(t, "1000000000000000000", item.Price)
		assert.False(t, item.Sold)
		assert.Nil(t, item.Buyer)

		item, err = store.GetMarketItem(ctx, testMarketplace, 42)
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("mark item sold", func(t *testing.T) {
		item, err := store.GetMarketItem(ctx, testMarketplace, 2)
		require.NoError(t, err)

		buyer := testBob
		item.Sold = true
		item.Buyer = &buyer
		require.NoError(t, store.SaveMarketItem(ctx, item))

		sold, err := store.GetMarketItem(ctx, testMarketplace, 2)
		require.NoError(t, err)
		assert.True(t, sold.Sold)
		require.NotNil(t, sold.Buyer)
		assert.Equal(t, testBob, *sold.Buyer)
	})

	t.Run("list with filters", func(t *testing.T) {
		unsold := false
		items, err := store.ListMarketItems(ctx, MarketItemFilter{Marketplace: testMarketplace, Sold: &unsold})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, uint64(1), items[0].ItemID)
		assert.Equal(t, uint64(3), items[1].ItemID)

		seller := testAlice
		items, err = store.ListMarketItems(ctx, MarketItemFilter{Marketplace: testMarketplace, Seller: &seller})
		require.NoError(t, err)
		assert.Len(t, items, 2)

		buyer := testBob
		items, err = store.ListMarketItems(ctx, MarketItemFilter{Marketplace: testMarketplace, Buyer: &buyer})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, uint64(2), items[0].ItemID)

		items, err = store.ListMarketItems(ctx, MarketItemFilter{Marketplace: testBob})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func testTransactionsAndLogs(t *testing.T, store Store) {
	ctx := context.Background()

	transferTopic := "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	offeredTopic := "0x3d3d5fe2d5e2c7a5e1a9f9e1c5d4e3b2a1f0e9d8c7b6a5f4e3d2c1b0a9f8e7d6"
	aliceTopic := "0x00000000000000000000000070997970c51812dc3a010c7d01b50e0d17dc79c8"
	bobTopic := "0x0000000000000000000000003c44cdddb6a900fa2b585dd299e03d12fa4293bc"
	zeroTopic := "0x0000000000000000000000000000000000000000000000000000000000000000"

	for block := uint64(1); block <= 3; block++ {
		txHash := fmt.Sprintf("0xtx%d", block)
		require.NoError(t, store.SaveTransaction(ctx, buildTestTransaction(txHash, block, testNFT)))
	}

	logs := []schema.EventLog{
		buildTestLog("0xtx1", 1, 0, testNFT, "Transfer", transferTopic, zeroTopic, aliceTopic, "0x01"),
		buildTestLog("0xtx2", 2, 0, testNFT, "Transfer", transferTopic, zeroTopic, bobTopic, "0x02"),
		buildTestLog("0xtx3", 3, 0, testNFT, "Transfer", transferTopic, aliceTopic, testMarketplace, "0x01"),
		buildTestLog("0xtx3", 3, 1, testMarketplace, "Offered", offeredTopic),
	}
	require.NoError(t, store.CreateEventLogs(ctx, logs))

	t.Run("get transaction", func(t *testing.T) {
		tx, err := store.GetTransaction(ctx, "0xtx2")
		require.NoError(t, err)
		require.NotNil(t, tx)
		assert.Equal(t, uint64(2), tx.BlockNumber)
		assert.Equal(t, "mint", tx.Method)
		require.NotNil(t, tx.ToAddress)
		assert.Equal(t, testNFT, *tx.ToAddress)

		tx, err = store.GetTransaction(ctx, "0xmissing")
		require.NoError(t, err)
		assert.Nil(t, tx)
	})

	t.Run("filter by address", func(t *testing.T) {
		result, err := store.FilterEventLogs(ctx, EventLogFilter{Addresses: []string{testMarketplace}})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Offered", result[0].Event)
		assert.Equal(t, []string{offeredTopic}, result[0].Topics())
	})

	t.Run("filter by topic position", func(t *testing.T) {
		result, err := store.FilterEventLogs(ctx, EventLogFilter{
			Topics: [][]string{{transferTopic}, {zeroTopic}},
		})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, uint64(1), result[0].BlockNumber)
		assert.Equal(t, uint64(2), result[1].BlockNumber)

		result, err = store.FilterEventLogs(ctx, EventLogFilter{
			Topics: [][]string{{transferTopic}, nil, {aliceTopic, bobTopic}},
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("filter by block range and limit", func(t *testing.T) {
		from := uint64(2)
		result, err := store.FilterEventLogs(ctx, EventLogFilter{FromBlock: &from})
		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, uint(0), result[1].LogIndex)
		assert.Equal(t, uint(1), result[2].LogIndex)

		to := uint64(2)
		result, err = store.FilterEventLogs(ctx, EventLogFilter{FromBlock: &from, ToBlock: &to})
		require.NoError(t, err)
		assert.Len(t, result, 1)

		result, err = store.FilterEventLogs(ctx, EventLogFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("too many topic positions", func(t *testing.T) {
		_, err := store.FilterEventLogs(ctx, EventLogFilter{Topics: [][]string{nil, nil, nil, nil, {"0x"}}})
		assert.Error(t, err)
	})
}

func testWithTx(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			return tx.SaveAccount(ctx, &schema.Account{Address: testAlice, Balance: "5"})
		})
		require.NoError(t, err)

		account, err := store.GetAccount(ctx, testAlice)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "5", account.Balance)
	})

	t.Run("rollback on error", func(t *testing.T) {
		failure := errors.New("revert")
		err := store.WithTx(ctx, func(tx Store) error {
			if err := tx.SaveAccount(ctx, &schema.Account{Address: testBob, Balance: "7"}); err != nil {
				return err
			}
			if err := tx.SetKeyValue(ctx, "chain:head", "9"); err != nil {
				return err
			}
			return failure
		})
		require.ErrorIs(t, err, failure)

		account, err := store.GetAccount(ctx, testBob)
		require.NoError(t, err)
		assert.Nil(t, account)

		head, err := store.GetKeyValue(ctx, "chain:head")
		require.NoError(t, err)
		assert.Equal(t, "", head)
	})

	t.Run("nested rollback keeps outer writes", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			if err := tx.SetKeyValue(ctx, "outer", "kept"); err != nil {
				return err
			}
			nestedErr := tx.WithTx(ctx, func(inner Store) error {
				if err := inner.SetKeyValue(ctx, "inner", "dropped"); err != nil {
					return err
				}
				return errors.New("inner revert")
			})
			assert.Error(t, nestedErr)
			return nil
		})
		require.NoError(t, err)

		outer, err := store.GetKeyValue(ctx, "outer")
		require.NoError(t, err)
		assert.Equal(t, "kept", outer)

		inner, err := store.GetKeyValue(ctx, "inner")
		require.NoError(t, err)
		assert.Equal(t, "", inner)
	})
}

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns 0", func(t *testing.T) {
		cursor, err := store.GetBlockCursor(ctx, "emitter_nonexistent")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and get cursor", func(t *testing.T) {
		err := store.SetBlockCursor(ctx, "emitter", 12345)
		require.NoError(t, err)

		cursor, err := store.GetBlockCursor(ctx, "emitter")
		require.NoError(t, err)
		assert.Equal(t, uint64(12345), cursor)
	})

	t.Run("update existing cursor", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "emitter_update", 100))
		require.NoError(t, store.SetBlockCursor(ctx, "emitter_update", 200))

		cursor, err := store.GetBlockCursor(ctx, "emitter_update")
		require.NoError(t, err)
		assert.Equal(t, uint64(200), cursor)
	})

	t.Run("cursor store over key-value", func(t *testing.T) {
		cursors := NewCursorStore(store)
		require.NoError(t, cursors.SetBlockCursor(ctx, "standalone", 7))

		value, err := store.GetKeyValue(ctx, "block_cursor:standalone")
		require.NoError(t, err)
		assert.Equal(t, "7", value)
	})

	t.Run("corrupted cursor", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "block_cursor:broken", "abc"))
		_, err := store.GetBlockCursor(ctx, "broken")
		assert.Error(t, err)
	})
}

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get key-value", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key1", "value1"))

		value, err := store.GetKeyValue(ctx, "test:key1")
		require.NoError(t, err)
		assert.Equal(t, "value1", value)
	})

	t.Run("get non-existent key returns empty string", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "nonexistent:key")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("update existing key", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value1"))
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value2"))

		value, err := store.GetKeyValue(ctx, "test:key2")
		require.NoError(t, err)
		assert.Equal(t, "value2", value)
	})
}

// RunStoreTests runs the shared suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Accounts", testAccounts},
		{"Contracts", testContracts},
		{"Tokens", testTokens},
		{"OperatorApprovals", testOperatorApprovals},
		{"MarketItems", testMarketItems},
		{"TransactionsAndLogs", testTransactionsAndLogs},
		{"WithTx", testWithTx},
		{"BlockCursor", testBlockCursor},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 10, time.Minute, time.Minute)
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, idle)
}

func TestCalculateSafeBatchSize(t *testing.T) {
	assert.Equal(t, 10, calculateSafeBatchSize(10, 15))
	assert.Equal(t, 4302, calculateSafeBatchSize(100000, 15))
	assert.Equal(t, 1, calculateSafeBatchSize(5, 100000))
}
