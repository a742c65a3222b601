// Package abis holds the contract ABIs and encodes and decodes their event logs.
package abis

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// BlocksNFT is the parsed BlocksNFT ABI
	BlocksNFT = mustParse(BlocksNFTABI)
	// Marketplace is the parsed Marketplace ABI
	Marketplace = mustParse(MarketplaceABI)
)

func mustParse(raw string) *abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return &parsed
}

// EncodeEvent builds the topics and data of a log for the named event.
// args are given in declaration order, indexed and non-indexed mixed.
func EncodeEvent(contractABI *abi.ABI, name string, args ...interface{}) ([]common.Hash, []byte, error) {
	event, ok := contractABI.Events[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown event: %s", name)
	}
	if len(args) != len(event.Inputs) {
		return nil, nil, fmt.Errorf("event %s expects %d arguments, got %d", name, len(event.Inputs), len(args))
	}

	topics := []common.Hash{event.ID}
	var nonIndexed []interface{}
	for i, input := range event.Inputs {
		if !input.Indexed {
			nonIndexed = append(nonIndexed, args[i])
			continue
		}
		hashes, err := abi.MakeTopics([]interface{}{args[i]})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode topic %s: %w", input.Name, err)
		}
		topics = append(topics, hashes[0][0])
	}

	data, err := event.Inputs.NonIndexed().Pack(nonIndexed...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to pack event data: %w", err)
	}

	return topics, data, nil
}

// DecodeLog resolves the event of a log and decodes its indexed and non-indexed arguments
func DecodeLog(contractABI *abi.ABI, log *types.Log) (*abi.Event, map[string]interface{}, error) {
	if len(log.Topics) == 0 {
		return nil, nil, fmt.Errorf("log has no topics")
	}

	event, err := contractABI.EventByID(log.Topics[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve event: %w", err)
	}

	args := make(map[string]interface{})
	if err := contractABI.UnpackIntoMap(args, event.Name, log.Data); err != nil {
		return nil, nil, fmt.Errorf("failed to unpack event data: %w", err)
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if err := abi.ParseTopicsIntoMap(args, indexed, log.Topics[1:]); err != nil {
		return nil, nil, fmt.Errorf("failed to parse event topics: %w", err)
	}

	return event, args, nil
}

// FormatArgs renders decoded arguments as strings: decimal integers and checksummed addresses
func FormatArgs(args map[string]interface{}) map[string]string {
	out := make(map[string]string, len(args))
	for name, value := range args {
		out[name] = FormatValue(value)
	}
	return out
}

// FormatValue renders a single decoded ABI value
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case *big.Int:
		return v.String()
	case common.Address:
		return v.Hex()
	case common.Hash:
		return v.Hex()
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case []byte:
		return common.Bytes2Hex(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// AddressTopic returns the topic an indexed address argument is encoded to
func AddressTopic(address common.Address) common.Hash {
	return common.BytesToHash(address.Bytes())
}
