package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"gorm.io/datatypes"

	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/store"
	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

func (l *Ledger) toEventLogRow(emitted emittedLog, timestamp time.Time) (schema.EventLog, error) {
	args, err := l.json.Marshal(emitted.args)
	if err != nil {
		return schema.EventLog{}, fmt.Errorf("failed to marshal event arguments: %w", err)
	}

	log := emitted.log
	row := schema.EventLog{
		BlockNumber: log.BlockNumber,
		BlockHash:   log.BlockHash.Hex(),
		TxHash:      log.TxHash.Hex(),
		TxIndex:     log.TxIndex,
		LogIndex:    log.Index,
		Address:     log.Address.Hex(),
		Data:        hexutil.Encode(log.Data),
		Event:       emitted.event,
		Args:        datatypes.JSON(args),
		Timestamp:   timestamp,
	}
	slots := []*string{&row.Topic0, &row.Topic1, &row.Topic2, &row.Topic3}
	for i, topic := range log.Topics {
		if i >= len(slots) {
			return schema.EventLog{}, fmt.Errorf("too many topics: %d", len(log.Topics))
		}
		*slots[i] = topic.Hex()
	}
	return row, nil
}

// ToLog converts a stored event log back into its EVM form
func ToLog(row *schema.EventLog) (types.Log, error) {
	data, err := hexutil.Decode(row.Data)
	if err != nil {
		return types.Log{}, fmt.Errorf("failed to decode log data: %w", err)
	}

	topics := make([]common.Hash, 0, 4)
	for _, topic := range row.Topics() {
		topics = append(topics, common.HexToHash(topic))
	}

	return types.Log{
		Address:     common.HexToAddress(row.Address),
		Topics:      topics,
		Data:        data,
		BlockNumber: row.BlockNumber,
		TxHash:      common.HexToHash(row.TxHash),
		TxIndex:     row.TxIndex,
		BlockHash:   common.HexToHash(row.BlockHash),
		Index:       row.LogIndex,
	}, nil
}

// toEventLogFilter translates an eth_getLogs style query into a store filter
func toEventLogFilter(query ethereum.FilterQuery) (store.EventLogFilter, error) {
	var filter store.EventLogFilter
	if query.BlockHash != nil {
		return filter, fmt.Errorf("filtering by block hash is not supported")
	}
	if len(query.Topics) > 4 {
		return filter, fmt.Errorf("too many topic positions: %d", len(query.Topics))
	}

	for _, address := range query.Addresses {
		filter.Addresses = append(filter.Addresses, address.Hex())
	}
	for _, position := range query.Topics {
		var topics []string
		for _, topic := range position {
			topics = append(topics, topic.Hex())
		}
		filter.Topics = append(filter.Topics, topics)
	}
	if query.FromBlock != nil {
		from := query.FromBlock.Uint64()
		filter.FromBlock = &from
	}
	if query.ToBlock != nil {
		to := query.ToBlock.Uint64()
		filter.ToBlock = &to
	}
	return filter, nil
}

// FilterLogs returns the logs matching an eth_getLogs style query, ordered by block and index
func (l *Ledger) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	filter, err := toEventLogFilter(query)
	if err != nil {
		return nil, err
	}

	rows, err := l.store.FilterEventLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter logs: %w", err)
	}

	logs := make([]types.Log, 0, len(rows))
	for i := range rows {
		log, err := ToLog(&rows[i])
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}

// TransactionReceipt rebuilds the receipt of a stored transaction, nil if unknown.
// The method return data is not persisted.
func (l *Ledger) TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	tx, err := l.store.GetTransaction(ctx, hash.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return nil, nil
	}

	value, err := domain.ParseWei(tx.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}
	gasPrice, err := domain.ParseWei(tx.GasPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to decode gas price: %w", err)
	}

	receipt := &Receipt{
		TxHash:      common.HexToHash(tx.Hash),
		BlockNumber: tx.BlockNumber,
		BlockHash:   common.HexToHash(tx.BlockHash),
		From:        common.HexToAddress(tx.FromAddress),
		Method:      tx.Method,
		Value:       value,
		GasUsed:     tx.GasUsed,
		GasPrice:    gasPrice,
		Timestamp:   tx.Timestamp,
	}
	if tx.ToAddress != nil {
		to := common.HexToAddress(*tx.ToAddress)
		receipt.To = &to
	}
	if tx.ContractAddress != nil {
		created := common.HexToAddress(*tx.ContractAddress)
		receipt.ContractAddress = &created
	}

	block := tx.BlockNumber
	rows, err := l.store.FilterEventLogs(ctx, store.EventLogFilter{FromBlock: &block, ToBlock: &block})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction logs: %w", err)
	}
	for i := range rows {
		log, err := ToLog(&rows[i])
		if err != nil {
			return nil, err
		}
		receipt.Logs = append(receipt.Logs, &log)
	}

	return receipt, nil
}
