package codec

import (
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/fix44/ioi"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// OrderBookCodec translates the order book feed. The marketplace publishes
// its visible book as FIX IOI messages, one resting order per message, each
// with a stable IOI code so consumers can maintain depth.
type OrderBookCodec struct {
	log *zap.Logger
}

func NewOrderBookCodec(logger *zap.Logger) OrderBookCodec {
	return OrderBookCodec{log: logger}
}

func (c OrderBookCodec) OnIOI(msg ioi.IOI) (model.IOIOrder, error) {
	var order model.IOIOrder
	var err error

	if order.IOICode, err = msg.GetIOIID(); err != nil {
		return order, fieldError("IOIID", err)
	}

	transType, err := msg.GetIOITransType()
	if err != nil {
		return order, fieldError("IOITransType", err)
	}
	order.Action = model.IOIActionUpdate
	switch transType {
	case enum.IOITransType_NEW:
		order.Action = model.IOIActionCreate
	case enum.IOITransType_CANCEL:
		order.Action = model.IOIActionDelete
	}

	if order.SecurityCode, err = msg.GetSecurityID(); err != nil {
		return order, fieldError("SecurityID", err)
	}

	side, err := msg.GetSide()
	if err != nil {
		return order, fieldError("Side", err)
	}
	order.BidOrOffer = model.BookSideOffer
	if side == enum.Side_BUY {
		order.BidOrOffer = model.BookSideBid
	}

	// IOIQty is numeric text on the wire. Bad text becomes a zero quantity
	// rather than a dropped book row, but loudly enough to notice.
	quantity, err := msg.GetIOIQty()
	if err != nil {
		return order, fieldError("IOIQty", err)
	}
	order.Quantity, err = decimal.NewFromString(string(quantity))
	if err != nil {
		c.log.Warn("unparseable IOI quantity, substituting zero",
			zap.String("ioi_code", order.IOICode),
			zap.String("quantity", string(quantity)),
		)
		order.Quantity = decimal.Zero
	}

	if order.Price, err = msg.GetPrice(); err != nil {
		return order, fieldError("Price", err)
	}
	if order.Yield, err = msg.GetYield(); err != nil {
		return order, fieldError("Yield", err)
	}

	// The marketplace overloads the quality indicator to flag ownership.
	quality, err := msg.GetIOIQltyInd()
	if err != nil {
		return order, fieldError("IOIQltyInd", err)
	}
	order.Mine = model.OwnershipNotMine
	switch quality {
	case enum.IOIQltyInd_LOW:
		order.Mine = model.OwnershipIsMine
	case enum.IOIQltyInd_MEDIUM:
		order.Mine = model.OwnershipMaybeMine
	}

	return order, nil
}
