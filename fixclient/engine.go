package fixclient

import (
	"errors"
	"strings"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/fix44/executionreport"
	"github.com/quickfixgo/fix44/ioi"
	"github.com/quickfixgo/fix44/marketdataincrementalrefresh"
	"github.com/quickfixgo/fix44/marketdatasnapshotfullrefresh"
	"github.com/quickfixgo/fix44/securitylist"
	"github.com/quickfixgo/fix44/tradingsessionstatus"
	"github.com/quickfixgo/quickfix"
	"github.com/quickfixgo/tag"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/codec"
	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// FIX BusinessRejectReason for a message type the router has no handler for.
const rejectReasonUnsupportedMessageType = 3

// Engine is the quickfix.Application that ties the codecs to a consumer
// Workflow. Inbound application messages are cracked by message type,
// decoded, and delivered as one callback each. Messages the marketplace is
// not expected to send are logged and dropped; the session continues.
type Engine struct {
	*quickfix.MessageRouter

	workflow Workflow
	log      *zap.Logger

	executionEvents codec.ExecutionEventCodec
	marketData      codec.MarketDataCodec
	orderBook       codec.OrderBookCodec
	securityLists   codec.SecurityListCodec
	sessionStates   codec.SessionStateCodec
}

func NewEngine(workflow Workflow, logger *zap.Logger) *Engine {
	e := &Engine{
		MessageRouter: quickfix.NewMessageRouter(),
		workflow:      workflow,
		log:           logger,
		orderBook:     codec.NewOrderBookCodec(logger),
		sessionStates: codec.NewSessionStateCodec(logger),
	}

	e.AddRoute(executionreport.Route(e.onExecutionReport))
	e.AddRoute(marketdatasnapshotfullrefresh.Route(e.onMarketDataSnapshot))
	e.AddRoute(marketdataincrementalrefresh.Route(e.onMarketDataIncremental))
	e.AddRoute(ioi.Route(e.onIOI))
	e.AddRoute(securitylist.Route(e.onSecurityList))
	e.AddRoute(tradingsessionstatus.Route(e.onTradingSessionStatus))

	return e
}

// OnCreate implements quickfix.Application.
func (e *Engine) OnCreate(sessionID quickfix.SessionID) {
	e.log.Debug("session created", zap.String("session", sessionID.String()))
}

// OnLogon implements quickfix.Application.
func (e *Engine) OnLogon(sessionID quickfix.SessionID) {
	e.log.Debug("session logon", zap.String("session", sessionID.String()))
	e.workflow.OnLogon(sessionID.SenderCompID)
}

// OnLogout implements quickfix.Application.
func (e *Engine) OnLogout(sessionID quickfix.SessionID) {
	e.log.Debug("session logout", zap.String("session", sessionID.String()))
	e.workflow.OnLogout(sessionID.SenderCompID)
}

// ToAdmin implements quickfix.Application.
func (e *Engine) ToAdmin(msg *quickfix.Message, sessionID quickfix.SessionID) {
	e.logAdmin("to_admin", msg, sessionID)
}

// FromAdmin implements quickfix.Application.
func (e *Engine) FromAdmin(msg *quickfix.Message, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	e.logAdmin("from_admin", msg, sessionID)
	return nil
}

// ToApp implements quickfix.Application.
func (e *Engine) ToApp(msg *quickfix.Message, sessionID quickfix.SessionID) error {
	return nil
}

// FromApp implements quickfix.Application. Unsupported message types are a
// warning, not a session problem; decode failures on supported types reject
// back to the marketplace so bad data is visible on both sides.
func (e *Engine) FromApp(msg *quickfix.Message, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	if err := e.Route(msg, sessionID); err != nil {
		if err.RejectReason() == rejectReasonUnsupportedMessageType {
			e.log.Warn("unsupported message",
				zap.String("session", sessionID.String()),
				zap.String("message", printable(msg)),
			)
			return nil
		}
		return err
	}
	return nil
}

func (e *Engine) onExecutionReport(msg executionreport.ExecutionReport, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	event, err := e.executionEvents.OnExecutionReport(msg)
	if err != nil {
		return e.decodeFailed("execution report", err, sessionID)
	}
	if event == nil {
		e.log.Error("execution report not handled",
			zap.String("session", sessionID.String()),
			zap.String("message", printable(msg.ToMessage())),
		)
		return nil
	}

	switch payload := event.Payload.(type) {
	case model.Acknowledge:
		e.workflow.OnAcknowledge(event.OrderCode, payload)
	case model.Reject:
		e.workflow.OnReject(event.OrderCode, payload)
	case model.Fill:
		e.workflow.OnFill(event.OrderCode, payload)
	case model.PostTrade:
		e.workflow.OnPostTrade(event.OrderCode, payload)
	}
	return nil
}

func (e *Engine) onMarketDataSnapshot(msg marketdatasnapshotfullrefresh.MarketDataSnapshotFullRefresh, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	data, err := e.marketData.OnSnapshot(msg)
	if err != nil {
		return e.decodeFailed("market data snapshot", err, sessionID)
	}
	e.workflow.OnMarketData(data)
	return nil
}

func (e *Engine) onMarketDataIncremental(msg marketdataincrementalrefresh.MarketDataIncrementalRefresh, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	data, err := e.marketData.OnIncremental(msg)
	if err != nil {
		return e.decodeFailed("market data refresh", err, sessionID)
	}
	e.workflow.OnMarketData(data)
	return nil
}

func (e *Engine) onIOI(msg ioi.IOI, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	order, err := e.orderBook.OnIOI(msg)
	if err != nil {
		return e.decodeFailed("IOI", err, sessionID)
	}
	e.workflow.OnOrderBook(order)
	return nil
}

func (e *Engine) onSecurityList(msg securitylist.SecurityList, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	securities, err := e.securityLists.OnSecurityList(msg)
	if err != nil {
		return e.decodeFailed("security list", err, sessionID)
	}
	e.workflow.OnSecurityList(securities)
	return nil
}

func (e *Engine) onTradingSessionStatus(msg tradingsessionstatus.TradingSessionStatus, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	state, err := e.sessionStates.OnTradingSessionStatus(msg)
	if err != nil {
		return e.decodeFailed("trading session status", err, sessionID)
	}
	e.workflow.OnSessionState(state)
	return nil
}

// decodeFailed logs a decode error distinctly from the unrecognized case
// and converts it to a protocol-level reject. The Workflow never sees it.
func (e *Engine) decodeFailed(what string, err error, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	e.log.Error("decode failed",
		zap.String("kind", what),
		zap.String("session", sessionID.String()),
		zap.Error(err),
	)

	var reject quickfix.MessageRejectError
	if errors.As(err, &reject) {
		return reject
	}
	return quickfix.NewBusinessMessageRejectError(err.Error(), 0, nil)
}

// logAdmin logs admin traffic worth seeing (test requests, resend requests,
// rejects, sequence resets) and stays quiet about heartbeats and session
// open/close.
func (e *Engine) logAdmin(direction string, msg *quickfix.Message, sessionID quickfix.SessionID) {
	msgType, err := msg.Header.GetString(tag.MsgType)
	if err != nil {
		return
	}
	switch enum.MsgType(msgType) {
	case enum.MsgType_HEARTBEAT, enum.MsgType_LOGON, enum.MsgType_LOGOUT:
		return
	}
	e.log.Debug("admin message",
		zap.String("direction", direction),
		zap.String("session", sessionID.String()),
		zap.String("message", printable(msg)),
	)
}

// printable renders a message with the SOH separators replaced by spaces.
func printable(msg *quickfix.Message) string {
	return strings.ReplaceAll(msg.String(), "\x01", " ")
}
