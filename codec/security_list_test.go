package codec

import (
	"testing"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/securitylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

func newSecurityList() securitylist.SecurityList {
	return securitylist.New(
		field.NewSecurityReqID("req-7"),
		field.NewSecurityResponseID("resp-7"),
		field.NewSecurityRequestResult(enum.SecurityRequestResult_VALID_REQUEST),
	)
}

func TestOnSecurityList(t *testing.T) {
	var codec SecurityListCodec

	msg := newSecurityList()
	related := securitylist.NewNoRelatedSymRepeatingGroup()
	first := related.Add()
	first.SetSecurityID("US1234567890")
	first.SetSecurityIDSource(enum.SecurityIDSource_ISIN_NUMBER)
	second := related.Add()
	second.SetSecurityID("912828YK0")
	second.SetSecurityIDSource(enum.SecurityIDSource_CUSIP)
	msg.SetNoRelatedSym(related)

	securities, err := codec.OnSecurityList(msg)
	require.NoError(t, err)

	assert.Equal(t, []model.Security{
		{Code: "US1234567890", Kind: model.SecurityCodeISIN},
		{Code: "912828YK0", Kind: model.SecurityCodeCUSIP},
	}, securities)
}

func TestOnSecurityList_Empty(t *testing.T) {
	var codec SecurityListCodec

	securities, err := codec.OnSecurityList(newSecurityList())
	require.NoError(t, err)

	// No instruments is a valid answer, distinct from a decode failure.
	assert.NotNil(t, securities)
	assert.Empty(t, securities)
}

func TestOnSecurityList_MissingEntrySource(t *testing.T) {
	var codec SecurityListCodec

	msg := newSecurityList()
	related := securitylist.NewNoRelatedSymRepeatingGroup()
	related.Add().SetSecurityID("US1234567890")
	msg.SetNoRelatedSym(related)

	_, err := codec.OnSecurityList(msg)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "SecurityIDSource", fieldErr.Field)
}
