package dispatch

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/quotecancel"
	"github.com/quickfixgo/fix44/securitylistrequest"
	"github.com/quickfixgo/quickfix"
	"go.uber.org/zap"
)

// AdminDispatch sends the administrative requests the trading session
// supports: asking for the full security list and canceling everything
// outstanding.
type AdminDispatch struct {
	sessionID quickfix.SessionID
	send      Sender
	newReqID  func() string
	log       *zap.Logger
}

// NewAdminDispatch builds a dispatcher for the given base comp ID, without
// the "-TR" suffix.
func NewAdminDispatch(baseCompID string, logger *zap.Logger) *AdminDispatch {
	return &AdminDispatch{
		sessionID: quickfix.SessionID{
			BeginString:  quickfix.BeginStringFIX44,
			SenderCompID: baseCompID + tradingSuffix,
			TargetCompID: targetCompID,
		},
		send:     quickfix.SendToTarget,
		newReqID: uuid.NewString,
		log:      logger,
	}
}

// RequestSecurityList asks for all securities supported by the marketplace.
// The response arrives through the security list callback.
func (d *AdminDispatch) RequestSecurityList() error {
	reqID := d.newReqID()
	request := securitylistrequest.New(
		field.NewSecurityReqID(reqID),
		field.NewSecurityListRequestType(enum.SecurityListRequestType_ALL_SECURITIES),
	)

	if err := d.send(request, d.sessionID); err != nil {
		return fmt.Errorf("send security list request: %w", err)
	}
	d.log.Debug("requested security list",
		zap.String("sender_comp_id", d.sessionID.SenderCompID),
		zap.String("security_req_id", reqID),
	)
	return nil
}

// CancelAll pulls every outstanding order on the session. On shared FIX
// connections, set a client party group on the message to scope the cancel
// to one party; this library sends the connection-wide form.
func (d *AdminDispatch) CancelAll() error {
	cancel := quotecancel.New(
		field.NewQuoteID(d.newReqID()),
		field.NewQuoteCancelType(enum.QuoteCancelType_CANCEL_ALL_QUOTES),
	)

	if err := d.send(cancel, d.sessionID); err != nil {
		return fmt.Errorf("send cancel all: %w", err)
	}
	d.log.Debug("sent cancel all",
		zap.String("sender_comp_id", d.sessionID.SenderCompID),
	)
	return nil
}
