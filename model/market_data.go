package model

import "github.com/shopspring/decimal"

// MarketDataAction carries the FIX MDUpdateAction code.
type MarketDataAction string

const (
	MarketDataActionNew    MarketDataAction = "0"
	MarketDataActionChange MarketDataAction = "1"
	MarketDataActionDelete MarketDataAction = "2"
)

// MarketDataEntryType carries the FIX MDEntryType code. The feed sends best
// bid and offer, the open (yesterday's close), daily high and low, an index
// value, and trade prints.
type MarketDataEntryType string

const (
	MarketDataEntryBid        MarketDataEntryType = "0"
	MarketDataEntryOffer      MarketDataEntryType = "1"
	MarketDataEntryTrade      MarketDataEntryType = "2"
	MarketDataEntryIndexValue MarketDataEntryType = "3"
	MarketDataEntryOpenPrice  MarketDataEntryType = "4"
	MarketDataEntryHighPrice  MarketDataEntryType = "7"
	MarketDataEntryLowPrice   MarketDataEntryType = "8"
)

// MarketData is one entry of a market data snapshot or incremental refresh,
// keyed by security code.
type MarketData struct {
	Action    MarketDataAction
	EntryType MarketDataEntryType

	// ISIN or CUSIP, as the session is configured.
	SecurityCode string

	Quantity decimal.Decimal
	Price    decimal.Decimal

	// Standard FIX has no yield field in market data messages; the
	// marketplace carries it in PriceDelta.
	Yield decimal.Decimal
}
