package model

import "github.com/shopspring/decimal"

// OrderAction selects which wire message an order command becomes.
type OrderAction string

const (
	OrderActionNew     OrderAction = "New"
	OrderActionReplace OrderAction = "Replace"
	OrderActionCancel  OrderAction = "Cancel"
)

// OrderKind is the order type.
type OrderKind string

const (
	OrderKindMarket OrderKind = "Market"
	OrderKindLimit  OrderKind = "Limit"
)

// OrderCommand asks the marketplace to create, replace or cancel an order.
// It is consumed once by the dispatcher; this layer keeps no order state.
// The dispatcher does not validate commands — supplying well-formed ones is
// the caller's job.
type OrderCommand struct {
	Action OrderAction

	// Our order code, unique per order lifecycle.
	OrderCode string

	// The order being replaced or canceled. Unused for Action == New.
	OriginalOrderCode string

	Kind OrderKind

	// Who is placing the order.
	CounterpartyCode string

	Side Side

	Security Security

	Quantity decimal.Decimal

	// Ignored for cancels.
	Price decimal.Decimal
}
