package chain

import "github.com/ethereum/go-ethereum/params"

// intrinsicGas is the cost of a transaction before any code runs
func intrinsicGas(data []byte, creation bool) uint64 {
	gas := params.TxGas
	if creation {
		gas = params.TxGasContractCreation
	}
	for _, b := range data {
		if b == 0 {
			gas += params.TxDataZeroGas
		} else {
			gas += params.TxDataNonZeroGasEIP2028
		}
	}
	return gas
}
