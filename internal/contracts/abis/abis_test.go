package abis_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conquerblocks/nft-marketplace/internal/contracts/abis"
)

var (
	nftAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	seller     = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	buyer      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func TestParsedABIs(t *testing.T) {
	for _, method := range []string{"mint", "tokenCount", "name", "symbol", "balanceOf", "ownerOf", "tokenURI", "approve", "getApproved", "setApprovalForAll", "isApprovedForAll", "transferFrom"} {
		_, ok := abis.BlocksNFT.Methods[method]
		assert.True(t, ok, method)
	}
	for _, method := range []string{"createItem", "purchaseItem", "getTotalPrice", "items", "itemCount", "feeAccount", "feePercent"} {
		_, ok := abis.Marketplace.Methods[method]
		assert.True(t, ok, method)
	}

	assert.True(t, abis.Marketplace.Methods["purchaseItem"].IsPayable())
	assert.False(t, abis.Marketplace.Methods["createItem"].IsPayable())
	assert.Len(t, abis.Marketplace.Constructor.Inputs, 1)
}

func TestEventSignatures(t *testing.T) {
	assert.Equal(t,
		crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
		abis.BlocksNFT.Events["Transfer"].ID)
	assert.Equal(t,
		crypto.Keccak256Hash([]byte("Offered(uint256,address,uint256,uint256,address)")),
		abis.Marketplace.Events["Offered"].ID)
	assert.Equal(t,
		crypto.Keccak256Hash([]byte("Bought(uint256,address,uint256,uint256,address,address)")),
		abis.Marketplace.Events["Bought"].ID)
}

func TestEncodeDecodeBought(t *testing.T) {
	price := big.NewInt(1_000_000_000_000_000_000)
	topics, data, err := abis.EncodeEvent(abis.Marketplace, "Bought",
		big.NewInt(1), nftAddress, big.NewInt(1), price, seller, buyer)
	require.NoError(t, err)

	require.Len(t, topics, 4)
	assert.Equal(t, abis.Marketplace.Events["Bought"].ID, topics[0])
	assert.Equal(t, abis.AddressTopic(nftAddress), topics[1])
	assert.Equal(t, abis.AddressTopic(seller), topics[2])
	assert.Equal(t, abis.AddressTopic(buyer), topics[3])
	assert.Len(t, data, 96)

	event, args, err := abis.DecodeLog(abis.Marketplace, &types.Log{Topics: topics, Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Bought", event.Name)

	formatted := abis.FormatArgs(args)
	assert.Equal(t, map[string]string{
		"itemId":  "1",
		"nft":     nftAddress.Hex(),
		"tokenId": "1",
		"price":   "1000000000000000000",
		"seller":  seller.Hex(),
		"buyer":   buyer.Hex(),
	}, formatted)
}

func TestEncodeDecodeTransfer(t *testing.T) {
	topics, data, err := abis.EncodeEvent(abis.BlocksNFT, "Transfer", common.Address{}, seller, big.NewInt(7))
	require.NoError(t, err)
	assert.Len(t, topics, 4)
	assert.Empty(t, data)

	_, args, err := abis.DecodeLog(abis.BlocksNFT, &types.Log{Topics: topics, Data: data})
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, args["from"])
	assert.Equal(t, seller, args["to"])
	assert.Equal(t, 0, big.NewInt(7).Cmp(args["tokenId"].(*big.Int)))
}

func TestEncodeEvent_Errors(t *testing.T) {
	_, _, err := abis.EncodeEvent(abis.Marketplace, "Listed")
	assert.Error(t, err)

	_, _, err = abis.EncodeEvent(abis.Marketplace, "Offered", big.NewInt(1))
	assert.Error(t, err)
}

func TestDecodeLog_Errors(t *testing.T) {
	_, _, err := abis.DecodeLog(abis.Marketplace, &types.Log{})
	assert.Error(t, err)

	_, _, err = abis.DecodeLog(abis.Marketplace, &types.Log{Topics: []common.Hash{common.HexToHash("0x01")}})
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "true", abis.FormatValue(true))
	assert.Equal(t, "uri", abis.FormatValue("uri"))
	assert.Equal(t, "42", abis.FormatValue(big.NewInt(42)))
	assert.Equal(t, seller.Hex(), abis.FormatValue(seller))
	assert.Equal(t, "7", abis.FormatValue(uint8(7)))
}
