package constants

import "github.com/conquerblocks/nft-marketplace/internal/api/shared/types"

const (
	MAX_UPLOAD_SIZE      = int64(32 << 20)
	MAX_EVENTS_LIMIT     = 1000
	DEFAULT_EVENTS_LIMIT = 100
	DEFAULT_EVENTS_ORDER = types.OrderAsc

	// HEADER_REQUEST_ID carries the request id in requests and responses
	HEADER_REQUEST_ID = "X-Request-ID"
)
