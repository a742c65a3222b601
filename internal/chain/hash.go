package chain

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// txEnvelope is the canonical form of a transaction that is hashed
type txEnvelope struct {
	ChainID uint64 `json:"chainId"`
	From    string `json:"from"`
	To      string `json:"to,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Value   string `json:"value"`
	Data    string `json:"data"`
	Nonce   uint64 `json:"nonce"`
}

// chainHead is the latest block, kept in the key-value store
type chainHead struct {
	Number uint64      `json:"number"`
	Hash   common.Hash `json:"hash"`
}

const chainHeadKey = "chain:head"

// hashTransaction hashes the JCS canonical JSON of the envelope
func (l *Ledger) hashTransaction(env txEnvelope) (common.Hash, error) {
	canonical, err := l.jcs.Canonicalize(env)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to canonicalize transaction: %w", err)
	}
	return crypto.Keccak256Hash(canonical), nil
}

// hashBlock chains a block to its parent; every block holds exactly one transaction
func hashBlock(parent common.Hash, number uint64, txHash common.Hash) common.Hash {
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], number)
	return crypto.Keccak256Hash(parent.Bytes(), num[:], txHash.Bytes())
}

func encodeData(data []byte) string {
	return hexutil.Encode(data)
}
