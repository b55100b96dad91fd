package dispatch

import (
	"fmt"
	"time"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/newordersingle"
	"github.com/quickfixgo/fix44/ordercancelreplacerequest"
	"github.com/quickfixgo/quickfix"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// Sender submits a finished message to a FIX session. The default sender is
// quickfix.SendToTarget; tests substitute a capturing function so no live
// session is needed.
type Sender func(m quickfix.Messagable, sessionID quickfix.SessionID) error

const (
	// The marketplace trading session. Order flow always targets it.
	targetCompID = "OPENYIELD-TR"

	// Suffix the marketplace appends to the base comp ID for the trading
	// session.
	tradingSuffix = "-TR"
)

// OrderDispatch encodes order commands into FIX 4.4 messages and hands them
// to the trading session. Sends are fire-and-forget: the outcome arrives
// later as an independent execution event. No validation happens here — a
// malformed command produces a malformed-but-well-typed message.
type OrderDispatch struct {
	sessionID quickfix.SessionID
	send      Sender
	now       func() time.Time
	log       *zap.Logger
}

// NewOrderDispatch builds a dispatcher for the given base comp ID. Pass the
// ID without the "-TR" suffix; the library knows.
func NewOrderDispatch(baseCompID string, logger *zap.Logger) *OrderDispatch {
	return &OrderDispatch{
		sessionID: quickfix.SessionID{
			BeginString:  quickfix.BeginStringFIX44,
			SenderCompID: baseCompID + tradingSuffix,
			TargetCompID: targetCompID,
		},
		send: quickfix.SendToTarget,
		now:  time.Now,
		log:  logger,
	}
}

// SenderCompID returns the trading-session sender comp ID, suffix included.
func (d *OrderDispatch) SenderCompID() string {
	return d.sessionID.SenderCompID
}

// SessionID returns the trading session addressing used for every send.
func (d *OrderDispatch) SessionID() quickfix.SessionID {
	return d.sessionID
}

// SendOrder encodes and sends one order command, keyed on its action.
func (d *OrderDispatch) SendOrder(cmd model.OrderCommand) error {
	switch cmd.Action {
	case model.OrderActionNew:
		return d.sendNew(cmd)
	case model.OrderActionReplace:
		return d.sendReplace(cmd)
	case model.OrderActionCancel:
		return d.sendCancel(cmd)
	}
	return fmt.Errorf("order dispatch: unknown action %q", cmd.Action)
}

func (d *OrderDispatch) sendNew(cmd model.OrderCommand) error {
	order := newordersingle.New(
		field.NewClOrdID(cmd.OrderCode),
		field.NewSide(sideCode(cmd.Side)),
		field.NewTransactTime(d.now().UTC()),
		field.NewOrdType(kindCode(cmd.Kind)),
	)

	parties := newordersingle.NewNoPartyIDsRepeatingGroup()
	party := parties.Add()
	party.SetPartyID(cmd.CounterpartyCode)
	party.SetPartyRole(enum.PartyRole_CLIENT_ID)
	order.SetNoPartyIDs(parties)

	order.SetSymbol(cmd.Security.Code)
	order.SetSecurityID(cmd.Security.Code)
	order.SetSecurityIDSource(securitySource(cmd.Security.Kind))

	order.SetOrderQty(cmd.Quantity, scaleOf(cmd.Quantity))
	order.SetPriceType(enum.PriceType_PERCENTAGE)
	order.SetPrice(cmd.Price, scaleOf(cmd.Price))

	if err := d.send(order, d.sessionID); err != nil {
		return fmt.Errorf("send new order %s: %w", cmd.OrderCode, err)
	}
	d.log.Debug("sent new order",
		zap.String("sender_comp_id", d.sessionID.SenderCompID),
		zap.String("order_code", cmd.OrderCode),
	)
	return nil
}

func (d *OrderDispatch) sendReplace(cmd model.OrderCommand) error {
	order := ordercancelreplacerequest.New(
		field.NewOrigClOrdID(cmd.OriginalOrderCode),
		field.NewClOrdID(cmd.OrderCode),
		field.NewSide(sideCode(cmd.Side)),
		field.NewTransactTime(d.now().UTC()),
		field.NewOrdType(kindCode(cmd.Kind)),
	)

	parties := ordercancelreplacerequest.NewNoPartyIDsRepeatingGroup()
	party := parties.Add()
	party.SetPartyID(cmd.CounterpartyCode)
	party.SetPartyRole(enum.PartyRole_CLIENT_ID)
	order.SetNoPartyIDs(parties)

	order.SetSymbol(cmd.Security.Code)
	order.SetSecurityID(cmd.Security.Code)
	order.SetSecurityIDSource(securitySource(cmd.Security.Kind))

	order.SetOrderQty(cmd.Quantity, scaleOf(cmd.Quantity))
	order.SetPriceType(enum.PriceType_PERCENTAGE)
	order.SetPrice(cmd.Price, scaleOf(cmd.Price))

	if err := d.send(order, d.sessionID); err != nil {
		return fmt.Errorf("send replace order %s: %w", cmd.OrderCode, err)
	}
	d.log.Debug("sent replace order",
		zap.String("sender_comp_id", d.sessionID.SenderCompID),
		zap.String("order_code", cmd.OrderCode),
		zap.String("original_order_code", cmd.OriginalOrderCode),
	)
	return nil
}

// sendCancel reuses the cancel/replace shape with the quantity forced to
// zero and no price. That is how the marketplace expects cancels, not a
// dedicated OrderCancelRequest.
func (d *OrderDispatch) sendCancel(cmd model.OrderCommand) error {
	order := ordercancelreplacerequest.New(
		field.NewOrigClOrdID(cmd.OriginalOrderCode),
		field.NewClOrdID(cmd.OrderCode),
		field.NewSide(sideCode(cmd.Side)),
		field.NewTransactTime(d.now().UTC()),
		field.NewOrdType(kindCode(cmd.Kind)),
	)

	parties := ordercancelreplacerequest.NewNoPartyIDsRepeatingGroup()
	party := parties.Add()
	party.SetPartyID(cmd.CounterpartyCode)
	party.SetPartyRole(enum.PartyRole_CLIENT_ID)
	order.SetNoPartyIDs(parties)

	order.SetSymbol(cmd.Security.Code)
	order.SetSecurityID(cmd.Security.Code)
	order.SetSecurityIDSource(securitySource(cmd.Security.Kind))

	order.SetOrderQty(decimal.Zero, 0)

	if err := d.send(order, d.sessionID); err != nil {
		return fmt.Errorf("send cancel order %s: %w", cmd.OrderCode, err)
	}
	d.log.Debug("sent cancel order",
		zap.String("sender_comp_id", d.sessionID.SenderCompID),
		zap.String("order_code", cmd.OrderCode),
		zap.String("original_order_code", cmd.OriginalOrderCode),
	)
	return nil
}

// Sell maps to the FIX sell code; anything else is a buy. Buy is the
// default, not validated.
func sideCode(side model.Side) enum.Side {
	if side == model.SideSell {
		return enum.Side_SELL
	}
	return enum.Side_BUY
}

// Market maps to the FIX market code; anything else is a limit. Limit is
// the default, not validated.
func kindCode(kind model.OrderKind) enum.OrdType {
	if kind == model.OrderKindMarket {
		return enum.OrdType_MARKET
	}
	return enum.OrdType_LIMIT
}

func securitySource(kind model.SecurityCodeKind) enum.SecurityIDSource {
	if kind == model.SecurityCodeISIN {
		return enum.SecurityIDSource_ISIN_NUMBER
	}
	return enum.SecurityIDSource_CUSIP
}

// scaleOf keeps every digit the caller supplied on the wire.
func scaleOf(v decimal.Decimal) int32 {
	if v.Exponent() < 0 {
		return -v.Exponent()
	}
	return 0
}
