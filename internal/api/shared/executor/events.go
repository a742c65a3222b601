package executor

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	apierrors "github.com/conquerblocks/nft-marketplace/internal/api/shared/errors"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/types"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/abis"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

var contractABIs = map[domain.ContractKind]*abi.ABI{
	domain.ContractKindNFT:         abis.BlocksNFT,
	domain.ContractKindMarketplace: abis.Marketplace,
}

func (e *executor) ListEvents(ctx context.Context, filter EventFilter) (*dto.EventListResponse, error) {
	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	kinds := []domain.ContractKind{domain.ContractKindNFT, domain.ContractKindMarketplace}
	if filter.Contract != nil {
		kinds = []domain.ContractKind{*filter.Contract}
	}

	byAddress := make(map[string]domain.ContractKind, len(kinds))
	query := store.EventLogFilter{
		FromBlock: filter.FromBlock,
		ToBlock:   filter.ToBlock,
	}
	for _, kind := range kinds {
		address, err := d.Address(kind)
		if err != nil {
			return nil, apierrors.NewValidationError(err.Error())
		}
		query.Addresses = append(query.Addresses, address.Hex())
		byAddress[address.Hex()] = kind
	}

	if filter.Event != nil {
		var topics []string
		for _, kind := range kinds {
			if event, ok := contractABIs[kind].Events[*filter.Event]; ok {
				topics = append(topics, event.ID.Hex())
			}
		}
		if len(topics) == 0 {
			return nil, apierrors.NewValidationError(fmt.Sprintf("unknown event: %s", *filter.Event))
		}
		query.Topics = [][]string{topics}
	}

	query.Limit = filter.Order.StoreLimit(filter.Limit)

	rows, err := e.store.FilterEventLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter event logs: %w", err)
	}

	rows = types.Page(filter.Order, rows, filter.Limit)

	events := make([]dto.EventResponse, 0, len(rows))
	for i := range rows {
		var args map[string]string
		if len(rows[i].Args) > 0 {
			if err := e.json.Unmarshal(rows[i].Args, &args); err != nil {
				return nil, fmt.Errorf("failed to decode event arguments: %w", err)
			}
		}
		events = append(events, dto.MapEventLogToDTO(&rows[i], byAddress[rows[i].Address], args))
	}

	return &dto.EventListResponse{Events: events}, nil
}
