package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/fix44/executionreport"
	"github.com/quickfixgo/quickfix"
	"github.com/shopspring/decimal"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// Wire formats for the timestamp and date fields carried through to the
// domain models.
const (
	executedAtLayout = "20060102-15:04:05.000"
	settlDateLayout  = "20060102"
	isoDateLayout    = "2006-01-02"
)

// ExecutionEventCodec translates a FIX 4.4 execution report into at most one
// execution event. The marketplace uses execution reports for four kinds of
// messaging (acknowledgements, rejections, fills, post-trade adjustments);
// the ExecType/OrdStatus pair selects the kind, first match wins.
//
// A (nil, nil) return means the combination is not one the marketplace
// sends; the caller logs it and carries on. A *FieldError means a branch
// matched but a mandatory field was missing or unusable.
type ExecutionEventCodec struct{}

func (c ExecutionEventCodec) OnExecutionReport(msg executionreport.ExecutionReport) (*model.ExecutionEvent, error) {
	orderCode, err := msg.GetClOrdID()
	if err != nil {
		return nil, fieldError("ClOrdID", err)
	}

	execType, err := msg.GetExecType()
	if err != nil {
		return nil, fieldError("ExecType", err)
	}

	ordStatus, err := msg.GetOrdStatus()
	if err != nil {
		return nil, fieldError("OrdStatus", err)
	}

	switch {
	case execType == enum.ExecType_NEW && ordStatus == enum.OrdStatus_NEW:
		return event(orderCode, model.Acknowledge{Status: model.AckNewOrderAccepted}), nil

	case execType == enum.ExecType_CANCELED && ordStatus == enum.OrdStatus_CANCELED:
		var reason string
		if msg.HasText() {
			if reason, err = msg.GetText(); err != nil {
				return nil, fieldError("Text", err)
			}
		}
		return event(orderCode, model.Acknowledge{Status: model.AckOrderCanceled, Reason: reason}), nil

	case execType == enum.ExecType_REPLACED && ordStatus == enum.OrdStatus_REPLACED:
		return event(orderCode, model.Acknowledge{Status: model.AckOrderReplaced}), nil

	case execType == enum.ExecType_REJECTED:
		return c.reject(msg, orderCode)

	case execType == enum.ExecType_TRADE &&
		(ordStatus == enum.OrdStatus_PARTIALLY_FILLED || ordStatus == enum.OrdStatus_FILLED):
		return c.fill(msg, orderCode, ordStatus)

	case execType == enum.ExecType_TRADE_CANCEL:
		execRefID, err := msg.GetExecRefID()
		if err != nil {
			return nil, fieldError("ExecRefID", err)
		}
		return event(orderCode, model.PostTrade{
			Status:        model.PostTradeCancel,
			ExecutionCode: execRefID,
		}), nil

	case execType == enum.ExecType_TRADE_CORRECT:
		return c.correct(msg, orderCode)
	}

	return nil, nil
}

// reject decodes the rejection branch. Both the reason code and the text are
// mandatory on this message type.
func (c ExecutionEventCodec) reject(msg executionreport.ExecutionReport, orderCode string) (*model.ExecutionEvent, error) {
	rejReason, err := msg.GetOrdRejReason()
	if err != nil {
		return nil, fieldError("OrdRejReason", err)
	}
	code, convErr := strconv.Atoi(string(rejReason))
	if convErr != nil {
		return nil, fieldError("OrdRejReason", fmt.Errorf("non-numeric value %q", rejReason))
	}

	text, err := msg.GetText()
	if err != nil {
		return nil, fieldError("Text", err)
	}

	return event(orderCode, model.Reject{ReasonCode: code, Message: text}), nil
}

// fill decodes a partial or complete match. Everything here is mandatory on
// the wire; a missing field is bad data, not a soft skip.
func (c ExecutionEventCodec) fill(msg executionreport.ExecutionReport, orderCode string, ordStatus enum.OrdStatus) (*model.ExecutionEvent, error) {
	payload := model.Fill{Status: model.FillComplete}
	if ordStatus == enum.OrdStatus_PARTIALLY_FILLED {
		payload.Status = model.FillPartial
	}

	var err error
	if payload.ExecutionCode, err = msg.GetExecID(); err != nil {
		return nil, fieldError("ExecID", err)
	}
	if payload.SecurityCode, err = msg.GetSecurityID(); err != nil {
		return nil, fieldError("SecurityID", err)
	}

	side, err := msg.GetSide()
	if err != nil {
		return nil, fieldError("Side", err)
	}
	switch side {
	case enum.Side_BUY:
		payload.Side = model.SideBuy
	case enum.Side_SELL:
		payload.Side = model.SideSell
	default:
		return nil, fieldError("Side", fmt.Errorf("unsupported side code %q", side))
	}

	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
		get  func() (decimal.Decimal, quickfix.MessageRejectError)
	}{
		{"LastQty", &payload.FillQuantity, msg.GetLastQty},
		{"LastPx", &payload.FillPrice, msg.GetLastPx},
		{"Yield", &payload.FillYield, msg.GetYield},
		{"LeavesQty", &payload.RemainingQuantity, msg.GetLeavesQty},
		{"GrossTradeAmt", &payload.Principal, msg.GetGrossTradeAmt},
		{"AccruedInterestAmt", &payload.Accrued, msg.GetAccruedInterestAmt},
		{"NetMoney", &payload.SettlementAmount, msg.GetNetMoney},
		{"CumQty", &payload.CumulativeQuantity, msg.GetCumQty},
		{"AvgPx", &payload.AveragePrice, msg.GetAvgPx},
	} {
		if *f.dst, err = f.get(); err != nil {
			return nil, fieldError(f.name, err)
		}
	}

	settlDate, err := msg.GetSettlDate()
	if err != nil {
		return nil, fieldError("SettlDate", err)
	}
	payload.SettlementDate = isoDate(settlDate)

	executedAt, err := msg.GetTransactTime()
	if err != nil {
		return nil, fieldError("TransactTime", err)
	}
	payload.ExecutedAt = executedAt.UTC().Format(executedAtLayout)

	parties, err := msg.GetNoPartyIDs()
	if err != nil {
		return nil, fieldError("NoPartyIDs", err)
	}
	for i := 0; i < parties.Len(); i++ {
		party := parties.Get(i)
		role, err := party.GetPartyRole()
		if err != nil {
			return nil, fieldError("PartyRole", err)
		}

		// Unmatched roles are ignored; a repeated role is last-seen-wins.
		var dst *string
		switch role {
		case enum.PartyRole_CONTRA_FIRM:
			dst = &payload.ContraFirmCode
		case enum.PartyRole_CONTRA_CLEARING_FIRM:
			dst = &payload.ContraClearingCode
		case enum.PartyRole_EXECUTING_FIRM:
			dst = &payload.ExecutedByCode
		default:
			continue
		}
		if *dst, err = party.GetPartyID(); err != nil {
			return nil, fieldError("PartyID", err)
		}
	}

	return event(orderCode, payload), nil
}

// correct decodes a post-trade correction. Unlike a post-trade cancel, the
// corrected economics are mandatory here.
func (c ExecutionEventCodec) correct(msg executionreport.ExecutionReport, orderCode string) (*model.ExecutionEvent, error) {
	execRefID, err := msg.GetExecRefID()
	if err != nil {
		return nil, fieldError("ExecRefID", err)
	}

	var correction model.Correction
	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
		get  func() (decimal.Decimal, quickfix.MessageRejectError)
	}{
		{"LastQty", &correction.Quantity, msg.GetLastQty},
		{"LastPx", &correction.Price, msg.GetLastPx},
		{"Yield", &correction.Yield, msg.GetYield},
		{"GrossTradeAmt", &correction.Principal, msg.GetGrossTradeAmt},
		{"AccruedInterestAmt", &correction.Accrued, msg.GetAccruedInterestAmt},
		{"NetMoney", &correction.Settlement, msg.GetNetMoney},
	} {
		if *f.dst, err = f.get(); err != nil {
			return nil, fieldError(f.name, err)
		}
	}

	return event(orderCode, model.PostTrade{
		Status:        model.PostTradeCorrect,
		ExecutionCode: execRefID,
		Correction:    &correction,
	}), nil
}

func event(orderCode string, payload model.ExecutionPayload) *model.ExecutionEvent {
	return &model.ExecutionEvent{OrderCode: orderCode, Payload: payload}
}

// isoDate re-renders a FIX local market date (YYYYMMDD) as an ISO date.
// Anything unparseable passes through verbatim rather than failing the fill.
func isoDate(v string) string {
	t, err := time.Parse(settlDateLayout, v)
	if err != nil {
		return v
	}
	return t.Format(isoDateLayout)
}
