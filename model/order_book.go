package model

import "github.com/shopspring/decimal"

// IOIAction says what to do with the order-book row.
type IOIAction string

const (
	IOIActionCreate IOIAction = "Create"
	IOIActionUpdate IOIAction = "Update"
	IOIActionDelete IOIAction = "Delete"
)

// BookSide is the side of the book a resting order sits on.
type BookSide string

const (
	BookSideBid   BookSide = "Bid"
	BookSideOffer BookSide = "Offer"
)

// Ownership marks whether a book row is one of our own orders. MaybeMine
// occurs on shared FIX connections only.
type Ownership string

const (
	OwnershipNotMine   Ownership = "NotMine"
	OwnershipIsMine    Ownership = "IsMine"
	OwnershipMaybeMine Ownership = "MaybeMine"
)

// IOIOrder is one resting order in the visible book, delivered by the
// marketplace as a FIX IOI. The IOI code is stable across updates so a
// consumer can maintain depth.
type IOIOrder struct {
	IOICode string

	Action IOIAction

	// ISIN or CUSIP, as the session is configured.
	SecurityCode string

	BidOrOffer BookSide

	// Zero for cancels.
	Quantity decimal.Decimal
	Price    decimal.Decimal

	Yield decimal.Decimal

	Mine Ownership
}
