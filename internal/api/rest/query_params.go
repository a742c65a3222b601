package rest

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/constants"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/types"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	Contract  string      `form:"contract"`
	Event     string      `form:"event"`
	FromBlock *uint64     `form:"from_block"`
	ToBlock   *uint64     `form:"to_block"`
	Limit     int         `form:"limit"`
	Order     types.Order `form:"order"`
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_EVENTS_LIMIT
	}
	if params.Limit > constants.MAX_EVENTS_LIMIT {
		params.Limit = constants.MAX_EVENTS_LIMIT
	}
	if params.Order == "" {
		params.Order = constants.DEFAULT_EVENTS_ORDER
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListEventsQueryParams) Validate() error {
	if p.Contract != "" && !domain.ContractKind(p.Contract).Valid() {
		return fmt.Errorf("invalid contract: %s, expected %s or %s", p.Contract, domain.ContractKindNFT, domain.ContractKindMarketplace)
	}
	if !p.Order.Valid() {
		return fmt.Errorf("invalid order: %s", p.Order)
	}
	if p.FromBlock != nil && p.ToBlock != nil && *p.FromBlock > *p.ToBlock {
		return fmt.Errorf("from_block %d is after to_block %d", *p.FromBlock, *p.ToBlock)
	}
	return nil
}

// parseUintParam parses a positive path parameter such as an item or token id
func parseUintParam(c *gin.Context, name string) (uint64, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, c.Param(name))
	}
	return value, nil
}

// parseAddressParam parses an address path parameter
func parseAddressParam(c *gin.Context, name string) (common.Address, error) {
	return domain.ParseAddress(c.Param(name))
}
