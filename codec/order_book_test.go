package codec

import (
	"testing"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/ioi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

func newIOI(transType enum.IOITransType, side enum.Side, qty string) ioi.IOI {
	msg := ioi.New(
		field.NewIOIID("IOI-42"),
		field.NewIOITransType(transType),
		field.NewSide(side),
		field.NewIOIQty(enum.IOIQty(qty)),
	)
	msg.SetSecurityID("US1234567890")
	msg.SetPrice(decimal.RequireFromString("99.5"), 1)
	msg.SetYield(decimal.RequireFromString("4.32"), 2)
	msg.SetIOIQltyInd(enum.IOIQltyInd_HIGH)
	return msg
}

func TestOnIOI(t *testing.T) {
	codec := NewOrderBookCodec(zap.NewNop())

	order, err := codec.OnIOI(newIOI(enum.IOITransType_NEW, enum.Side_BUY, "1000"))
	require.NoError(t, err)

	assert.Equal(t, "IOI-42", order.IOICode)
	assert.Equal(t, model.IOIActionCreate, order.Action)
	assert.Equal(t, "US1234567890", order.SecurityCode)
	assert.Equal(t, model.BookSideBid, order.BidOrOffer)
	assertDecimal(t, "1000", order.Quantity)
	assertDecimal(t, "99.5", order.Price)
	assertDecimal(t, "4.32", order.Yield)
	assert.Equal(t, model.OwnershipNotMine, order.Mine)
}

func TestOnIOI_ActionAndSide(t *testing.T) {
	codec := NewOrderBookCodec(zap.NewNop())

	cases := []struct {
		name      string
		transType enum.IOITransType
		side      enum.Side
		action    model.IOIAction
		bookSide  model.BookSide
	}{
		{"replace is an update", enum.IOITransType_REPLACE, enum.Side_SELL, model.IOIActionUpdate, model.BookSideOffer},
		{"cancel is a delete", enum.IOITransType_CANCEL, enum.Side_BUY, model.IOIActionDelete, model.BookSideBid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := codec.OnIOI(newIOI(tc.transType, tc.side, "500"))
			require.NoError(t, err)
			assert.Equal(t, tc.action, order.Action)
			assert.Equal(t, tc.bookSide, order.BidOrOffer)
		})
	}
}

func TestOnIOI_Ownership(t *testing.T) {
	codec := NewOrderBookCodec(zap.NewNop())

	cases := []struct {
		quality enum.IOIQltyInd
		mine    model.Ownership
	}{
		{enum.IOIQltyInd_LOW, model.OwnershipIsMine},
		{enum.IOIQltyInd_MEDIUM, model.OwnershipMaybeMine},
		{enum.IOIQltyInd_HIGH, model.OwnershipNotMine},
	}

	for _, tc := range cases {
		msg := newIOI(enum.IOITransType_NEW, enum.Side_BUY, "100")
		msg.SetIOIQltyInd(tc.quality)

		order, err := codec.OnIOI(msg)
		require.NoError(t, err)
		assert.Equal(t, tc.mine, order.Mine)
	}
}

func TestOnIOI_UnparseableQuantity(t *testing.T) {
	codec := NewOrderBookCodec(zap.NewNop())

	// A junk quantity keeps the book row alive with a zero size.
	order, err := codec.OnIOI(newIOI(enum.IOITransType_NEW, enum.Side_BUY, "LARGE"))
	require.NoError(t, err)
	assert.True(t, order.Quantity.IsZero())
}

func TestOnIOI_MissingPrice(t *testing.T) {
	codec := NewOrderBookCodec(zap.NewNop())

	msg := ioi.New(
		field.NewIOIID("IOI-42"),
		field.NewIOITransType(enum.IOITransType_NEW),
		field.NewSide(enum.Side_BUY),
		field.NewIOIQty(enum.IOIQty("1000")),
	)
	msg.SetSecurityID("US1234567890")

	_, err := codec.OnIOI(msg)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Price", fieldErr.Field)
}
