package codec

import (
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/fix44/securitylist"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// SecurityListCodec translates security list responses into the shared
// Security value type.
type SecurityListCodec struct{}

func (SecurityListCodec) OnSecurityList(msg securitylist.SecurityList) ([]model.Security, error) {
	if _, err := msg.GetSecurityReqID(); err != nil {
		return nil, fieldError("SecurityReqID", err)
	}
	if _, err := msg.GetSecurityResponseID(); err != nil {
		return nil, fieldError("SecurityResponseID", err)
	}

	// An empty list is a valid response.
	if !msg.HasNoRelatedSym() {
		return []model.Security{}, nil
	}

	related, err := msg.GetNoRelatedSym()
	if err != nil {
		return nil, fieldError("NoRelatedSym", err)
	}

	securities := make([]model.Security, 0, related.Len())
	for i := 0; i < related.Len(); i++ {
		entry := related.Get(i)

		code, err := entry.GetSecurityID()
		if err != nil {
			return nil, fieldError("SecurityID", err)
		}
		source, err := entry.GetSecurityIDSource()
		if err != nil {
			return nil, fieldError("SecurityIDSource", err)
		}

		kind := model.SecurityCodeCUSIP
		if source == enum.SecurityIDSource_ISIN_NUMBER {
			kind = model.SecurityCodeISIN
		}

		securities = append(securities, model.Security{Code: code, Kind: kind})
	}

	return securities, nil
}
