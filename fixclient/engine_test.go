package fixclient

import (
	"testing"
	"time"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/executionreport"
	"github.com/quickfixgo/fix44/ioi"
	"github.com/quickfixgo/fix44/tradingsessionstatus"
	"github.com/quickfixgo/quickfix"
	"github.com/quickfixgo/tag"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// recordingWorkflow keeps every callback it receives.
type recordingWorkflow struct {
	NopWorkflow

	logons  []string
	logouts []string

	ackCodes []string
	acks     []model.Acknowledge
	rejects  []model.Reject
	fills    []model.Fill
	books    []model.IOIOrder
	states   []model.SessionState
}

func (w *recordingWorkflow) OnLogon(senderCompID string) {
	w.logons = append(w.logons, senderCompID)
}

func (w *recordingWorkflow) OnLogout(senderCompID string) {
	w.logouts = append(w.logouts, senderCompID)
}

func (w *recordingWorkflow) OnAcknowledge(orderCode string, event model.Acknowledge) {
	w.ackCodes = append(w.ackCodes, orderCode)
	w.acks = append(w.acks, event)
}

func (w *recordingWorkflow) OnReject(orderCode string, event model.Reject) {
	w.rejects = append(w.rejects, event)
}

func (w *recordingWorkflow) OnFill(orderCode string, event model.Fill) {
	w.fills = append(w.fills, event)
}

func (w *recordingWorkflow) OnOrderBook(order model.IOIOrder) {
	w.books = append(w.books, order)
}

func (w *recordingWorkflow) OnSessionState(state model.SessionState) {
	w.states = append(w.states, state)
}

func newTestEngine() (*Engine, *recordingWorkflow) {
	workflow := &recordingWorkflow{}
	return NewEngine(workflow, zap.NewNop()), workflow
}

func testSessionID() quickfix.SessionID {
	return quickfix.SessionID{
		BeginString:  quickfix.BeginStringFIX44,
		SenderCompID: "ACME-TR",
		TargetCompID: "OPENYIELD-TR",
	}
}

func newReport(execType enum.ExecType, ordStatus enum.OrdStatus) executionreport.ExecutionReport {
	report := executionreport.New(
		field.NewOrderID("MKT-77"),
		field.NewExecID("E-1"),
		field.NewExecType(execType),
		field.NewOrdStatus(ordStatus),
		field.NewSide(enum.Side_BUY),
		field.NewLeavesQty(decimal.Zero, 0),
		field.NewCumQty(decimal.Zero, 0),
		field.NewAvgPx(decimal.Zero, 0),
	)
	report.SetClOrdID("ORD-1")
	return report
}

func newFillReport() executionreport.ExecutionReport {
	report := newReport(enum.ExecType_TRADE, enum.OrdStatus_FILLED)
	report.SetSecurityID("US1234567890")
	report.SetLastQty(decimal.RequireFromString("1000"), 0)
	report.SetLastPx(decimal.RequireFromString("99.5"), 1)
	report.SetYield(decimal.RequireFromString("4.32"), 2)
	report.SetLeavesQty(decimal.Zero, 0)
	report.SetGrossTradeAmt(decimal.RequireFromString("995000"), 0)
	report.SetAccruedInterestAmt(decimal.RequireFromString("120.5"), 1)
	report.SetNetMoney(decimal.RequireFromString("995120.5"), 1)
	report.SetCumQty(decimal.RequireFromString("1000"), 0)
	report.SetAvgPx(decimal.RequireFromString("99.5"), 1)
	report.SetSettlDate("20260902")
	report.SetTransactTime(time.Date(2026, time.August, 31, 14, 30, 0, 0, time.UTC))

	parties := executionreport.NewNoPartyIDsRepeatingGroup()
	contra := parties.Add()
	contra.SetPartyID("X")
	contra.SetPartyRole(enum.PartyRole_CONTRA_FIRM)
	report.SetNoPartyIDs(parties)

	return report
}

func TestEngineRoutesAcknowledge(t *testing.T) {
	engine, workflow := newTestEngine()

	report := newReport(enum.ExecType_NEW, enum.OrdStatus_NEW)
	require.Nil(t, engine.FromApp(report.ToMessage(), testSessionID()))

	require.Len(t, workflow.acks, 1)
	assert.Equal(t, []string{"ORD-1"}, workflow.ackCodes)
	assert.Equal(t, model.AckNewOrderAccepted, workflow.acks[0].Status)
}

func TestEngineRoutesFill(t *testing.T) {
	engine, workflow := newTestEngine()

	require.Nil(t, engine.FromApp(newFillReport().ToMessage(), testSessionID()))

	require.Len(t, workflow.fills, 1)
	fill := workflow.fills[0]
	assert.Equal(t, model.FillComplete, fill.Status)
	assert.Equal(t, "E-1", fill.ExecutionCode)
	assert.Equal(t, "US1234567890", fill.SecurityCode)
	assert.Equal(t, "X", fill.ContraFirmCode)
	assert.Equal(t, "2026-09-02", fill.SettlementDate)
}

func TestEngineRejectsBadReport(t *testing.T) {
	engine, workflow := newTestEngine()

	// A rejection without its mandatory reason code bounces back as a
	// message-level reject and never reaches the workflow.
	report := newReport(enum.ExecType_REJECTED, enum.OrdStatus_REJECTED)
	err := engine.FromApp(report.ToMessage(), testSessionID())

	require.NotNil(t, err)
	assert.Empty(t, workflow.rejects)
}

func TestEngineDropsUnrecognizedReport(t *testing.T) {
	engine, workflow := newTestEngine()

	report := newReport(enum.ExecType_PENDING_NEW, enum.OrdStatus_PENDING_NEW)
	require.Nil(t, engine.FromApp(report.ToMessage(), testSessionID()))

	assert.Empty(t, workflow.acks)
	assert.Empty(t, workflow.rejects)
	assert.Empty(t, workflow.fills)
}

func TestEngineDropsUnsupportedMessageType(t *testing.T) {
	engine, workflow := newTestEngine()

	msg := quickfix.NewMessage()
	msg.Header.SetString(tag.BeginString, string(quickfix.BeginStringFIX44))
	msg.Header.SetString(tag.MsgType, "V")

	require.Nil(t, engine.FromApp(msg, testSessionID()))
	assert.Empty(t, workflow.fills)
}

func TestEngineRoutesOrderBook(t *testing.T) {
	engine, workflow := newTestEngine()

	msg := ioi.New(
		field.NewIOIID("IOI-42"),
		field.NewIOITransType(enum.IOITransType_NEW),
		field.NewSide(enum.Side_BUY),
		field.NewIOIQty(enum.IOIQty("1000")),
	)
	msg.SetSecurityID("US1234567890")
	msg.SetPrice(decimal.RequireFromString("99.5"), 1)
	msg.SetYield(decimal.RequireFromString("4.32"), 2)
	msg.SetIOIQltyInd(enum.IOIQltyInd_LOW)

	require.Nil(t, engine.FromApp(msg.ToMessage(), testSessionID()))

	require.Len(t, workflow.books, 1)
	assert.Equal(t, "IOI-42", workflow.books[0].IOICode)
	assert.Equal(t, model.OwnershipIsMine, workflow.books[0].Mine)
}

func TestEngineRoutesSessionState(t *testing.T) {
	engine, workflow := newTestEngine()

	msg := tradingsessionstatus.New(
		field.NewTradingSessionID(enum.TradingSessionID_DAY),
		field.NewTradSesStatus(enum.TradSesStatus_OPEN),
	)

	require.Nil(t, engine.FromApp(msg.ToMessage(), testSessionID()))

	require.Len(t, workflow.states, 1)
	assert.Equal(t, model.TradingPhaseOpen, workflow.states[0].State)
}

func TestEngineSessionCallbacks(t *testing.T) {
	engine, workflow := newTestEngine()

	sessionID := testSessionID()
	engine.OnLogon(sessionID)
	engine.OnLogout(sessionID)

	assert.Equal(t, []string{"ACME-TR"}, workflow.logons)
	assert.Equal(t, []string{"ACME-TR"}, workflow.logouts)
}
