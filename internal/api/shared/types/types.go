package types

import "slices"

// Order is the sort direction of a listing, by block then log index
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Desc() bool {
	return o == OrderDesc
}

// Valid checks if an order is valid
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// StoreLimit is the limit to push down to an ascending store query
// A descending page needs every match, so it pushes down no limit
func (o Order) StoreLimit(limit int) int {
	if o.Desc() {
		return 0
	}
	return limit
}

// Page arranges ascending rows in this order and keeps at most limit of them
func Page[T any](o Order, rows []T, limit int) []T {
	if o.Desc() {
		slices.Reverse(rows)
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
