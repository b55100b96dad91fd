package model

import "github.com/shopspring/decimal"

// ExecutionEvent is the normalized form of one FIX execution report. The
// marketplace uses execution reports for four different kinds of messaging,
// so the payload is a tagged union: exactly one of Acknowledge, Reject,
// Fill or PostTrade.
type ExecutionEvent struct {
	// Against which order.
	OrderCode string

	Payload ExecutionPayload
}

// ExecutionPayload is implemented by the four event payload types and by
// nothing else.
type ExecutionPayload interface {
	isExecutionPayload()
}

// AckStatus says what the marketplace acknowledged.
type AckStatus string

const (
	AckNewOrderAccepted AckStatus = "NewOrderAccepted"
	AckOrderCanceled    AckStatus = "OrderCanceled"
	AckOrderReplaced    AckStatus = "OrderReplaced"
)

// Acknowledge reports that an order create, cancel or replacement was
// accepted by the marketplace.
type Acknowledge struct {
	Status AckStatus

	// Why it happened. Only cancels carry a reason, and only when the
	// marketplace provides one.
	Reason string
}

// Reject reports why an order create, cancel or replacement was refused.
type Reject struct {
	// FIX OrdRejReason code, e.g. 1 unknown symbol, 2 exchange closed,
	// 6 duplicate order, 13 incorrect quantity, 99 other.
	ReasonCode int

	// Details.
	Message string
}

// FillStatus distinguishes a partial match from a completing one.
type FillStatus string

const (
	FillPartial  FillStatus = "PartialFill"
	FillComplete FillStatus = "CompleteFill"
)

// Side of an order or execution.
type Side string

const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

// Fill reports an order match, partial or complete. All quantities, prices
// and money amounts are decimals; binary floats drift on bond prices.
type Fill struct {
	Status FillStatus

	// ISIN or CUSIP, as the session is configured.
	SecurityCode string

	// Marketplace execution code.
	ExecutionCode string

	// Who we face, who clears for them, and where it executed.
	ContraFirmCode     string
	ContraClearingCode string
	ExecutedByCode     string

	Side Side

	FillQuantity      decimal.Decimal
	FillPrice         decimal.Decimal
	FillYield         decimal.Decimal
	RemainingQuantity decimal.Decimal

	// Cash block.
	Principal        decimal.Decimal
	Accrued          decimal.Decimal
	SettlementAmount decimal.Decimal

	// ISO date, e.g. "2026-09-02".
	SettlementDate string

	// Totals across all fills on this order.
	CumulativeQuantity decimal.Decimal
	AveragePrice       decimal.Decimal

	// When the marketplace executed, UTC timestamp text.
	ExecutedAt string
}

// PostTradeStatus says whether a completed fill is being canceled or
// corrected.
type PostTradeStatus string

const (
	PostTradeCancel  PostTradeStatus = "Cancel"
	PostTradeCorrect PostTradeStatus = "Correct"
)

// PostTrade reports a cancel or correction of a fill after the fact. These
// occur only under rare and exceptional circumstances.
type PostTrade struct {
	Status PostTradeStatus

	// Marketplace execution code of the fill being adjusted.
	ExecutionCode string

	// Correction is nil for cancels and fully populated for corrections,
	// so a zero amount is never ambiguous.
	Correction *Correction
}

// Correction carries the corrected economics of a fill.
type Correction struct {
	Quantity   decimal.Decimal
	Price      decimal.Decimal
	Yield      decimal.Decimal
	Principal  decimal.Decimal
	Accrued    decimal.Decimal
	Settlement decimal.Decimal
}

func (Acknowledge) isExecutionPayload() {}
func (Reject) isExecutionPayload()      {}
func (Fill) isExecutionPayload()        {}
func (PostTrade) isExecutionPayload()   {}
