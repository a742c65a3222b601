package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name       string
		price      *big.Int
		feePercent int64
		expected   string
	}{
		{
			name:       "one ether at five percent",
			price:      big.NewInt(1e18),
			feePercent: 5,
			expected:   "1050000000000000000",
		},
		{
			name:       "fee rounds down",
			price:      big.NewInt(99),
			feePercent: 1,
			expected:   "99",
		},
		{
			name:       "zero fee",
			price:      big.NewInt(1234),
			feePercent: 0,
			expected:   "1234",
		},
		{
			name:       "fee on small price",
			price:      big.NewInt(250),
			feePercent: 10,
			expected:   "275",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TotalPrice(tt.price, big.NewInt(tt.feePercent))
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestTotalPrice_DoesNotMutateInput(t *testing.T) {
	price := big.NewInt(1000)
	_ = TotalPrice(price, big.NewInt(5))
	assert.Equal(t, int64(1000), price.Int64())
}

func TestContractKind_Valid(t *testing.T) {
	assert.True(t, ContractKindNFT.Valid())
	assert.True(t, ContractKindMarketplace.Valid())
	assert.False(t, ContractKind("ERC20").Valid())
	assert.False(t, ContractKind("").Valid())
}

func TestLedgerEvent_Subject(t *testing.T) {
	event := &LedgerEvent{ContractKind: ContractKindMarketplace, Event: EventBought}
	assert.Equal(t, "marketplace.bought", event.Subject())

	event = &LedgerEvent{ContractKind: ContractKindNFT, Event: EventApprovalForAll}
	assert.Equal(t, "blocksnft.approvalforall", event.Subject())
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), addr)

	_, err = ParseAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ParseAddress("not-an-address")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", NormalizeAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8"))
	assert.Equal(t, "tz1abc", NormalizeAddress("tz1abc"))
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress(common.Address{}))
	assert.True(t, IsZeroAddress(common.HexToAddress(ETHEREUM_ZERO_ADDRESS)))
	assert.False(t, IsZeroAddress(common.HexToAddress("0x01")))
}
