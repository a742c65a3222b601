package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Token collection constants
	NFT_NAME   = "Conquer Blocks NFTs"
	NFT_SYMBOL = "CBN"

	// FEE_DENOMINATOR is the divisor applied to the marketplace fee percent
	FEE_DENOMINATOR = 100

	// DEFAULT_FEE_PERCENT is the fee percent used by the deploy command when none is configured
	DEFAULT_FEE_PERCENT = 1

	// DEFAULT_CHAIN_ID is the chain id of a local development ledger
	DEFAULT_CHAIN_ID = 31337
)
