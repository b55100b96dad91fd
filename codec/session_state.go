package codec

import (
	"strconv"

	"github.com/quickfixgo/fix44/tradingsessionstatus"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// SessionStateCodec translates trading session status messages.
type SessionStateCodec struct {
	log *zap.Logger
}

func NewSessionStateCodec(logger *zap.Logger) SessionStateCodec {
	return SessionStateCodec{log: logger}
}

func (c SessionStateCodec) OnTradingSessionStatus(msg tradingsessionstatus.TradingSessionStatus) (model.SessionState, error) {
	status, err := msg.GetTradSesStatus()
	if err != nil {
		return model.SessionState{}, fieldError("TradSesStatus", err)
	}

	code, convErr := strconv.Atoi(string(status))
	if convErr != nil {
		c.log.Warn("non-numeric trading session status, substituting zero",
			zap.String("status", string(status)),
		)
		code = 0
	}

	return model.SessionState{State: model.TradingPhase(code)}, nil
}
