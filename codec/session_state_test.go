package codec

import (
	"testing"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/tradingsessionstatus"
	"github.com/quickfixgo/quickfix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

func TestOnTradingSessionStatus(t *testing.T) {
	codec := NewSessionStateCodec(zap.NewNop())

	cases := []struct {
		status enum.TradSesStatus
		phase  model.TradingPhase
	}{
		{enum.TradSesStatus_HALTED, model.TradingPhaseHalted},
		{enum.TradSesStatus_OPEN, model.TradingPhaseOpen},
		{enum.TradSesStatus_CLOSED, model.TradingPhaseClosed},
		{enum.TradSesStatus_PRE_OPEN, model.TradingPhasePreOpen},
	}

	for _, tc := range cases {
		msg := tradingsessionstatus.New(
			field.NewTradingSessionID(enum.TradingSessionID_DAY),
			field.NewTradSesStatus(tc.status),
		)

		state, err := codec.OnTradingSessionStatus(msg)
		require.NoError(t, err)
		assert.Equal(t, tc.phase, state.State)
	}
}

func TestOnTradingSessionStatus_NonNumeric(t *testing.T) {
	codec := NewSessionStateCodec(zap.NewNop())

	msg := tradingsessionstatus.New(
		field.NewTradingSessionID(enum.TradingSessionID_DAY),
		field.NewTradSesStatus(enum.TradSesStatus("soon")),
	)

	state, err := codec.OnTradingSessionStatus(msg)
	require.NoError(t, err)
	assert.Equal(t, model.TradingPhase(0), state.State)
}

func TestOnTradingSessionStatus_Missing(t *testing.T) {
	codec := NewSessionStateCodec(zap.NewNop())

	msg := tradingsessionstatus.FromMessage(quickfix.NewMessage())

	_, err := codec.OnTradingSessionStatus(msg)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "TradSesStatus", fieldErr.Field)
}
