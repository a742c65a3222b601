package abis

// MarketplaceABI is the ABI of the Marketplace contract
const MarketplaceABI = `[
  {
    "inputs": [{"internalType": "uint256", "name": "_feePercent", "type": "uint256"}],
    "stateMutability": "nonpayable",
    "type": "constructor"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": false, "internalType": "uint256", "name": "itemId", "type": "uint256"},
      {"indexed": true, "internalType": "address", "name": "nft", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "tokenId", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "price", "type": "uint256"},
      {"indexed": true, "internalType": "address", "name": "seller", "type": "address"},
      {"indexed": true, "internalType": "address", "name": "buyer", "type": "address"}
    ],
    "name": "Bought",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": false, "internalType": "uint256", "name": "itemId", "type": "uint256"},
      {"indexed": true, "internalType": "address", "name": "nft", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "tokenId", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "price", "type": "uint256"},
      {"indexed": true, "internalType": "address", "name": "seller", "type": "address"}
    ],
    "name": "Offered",
    "type": "event"
  },
  {
    "inputs": [
      {"internalType": "contract IERC721", "name": "_nft", "type": "address"},
      {"internalType": "uint256", "name": "_tokenId", "type": "uint256"},
      {"internalType": "uint256", "name": "_price", "type": "uint256"}
    ],
    "name": "createItem",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "feeAccount",
    "outputs": [{"internalType": "address payable", "name": "", "type": "address"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "feePercent",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "_itemId", "type": "uint256"}],
    "name": "getTotalPrice",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "itemCount",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "name": "items",
    "outputs": [
      {"internalType": "uint256", "name": "itemId", "type": "uint256"},
      {"internalType": "contract IERC721", "name": "nft", "type": "address"},
      {"internalType": "uint256", "name": "tokenId", "type": "uint256"},
      {"internalType": "uint256", "name": "price", "type": "uint256"},
      {"internalType": "address payable", "name": "seller", "type": "address"},
      {"internalType": "bool", "name": "sold", "type": "bool"}
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "_itemId", "type": "uint256"}],
    "name": "purchaseItem",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]`
