package codec

import (
	"github.com/quickfixgo/fix44/marketdataincrementalrefresh"
	"github.com/quickfixgo/fix44/marketdatasnapshotfullrefresh"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

// MarketDataCodec translates the market data feed. A full snapshot arrives
// after connecting; everything after that is incremental.
type MarketDataCodec struct{}

// OnSnapshot flattens a full refresh into one row per entry. Snapshot
// entries are always creations; the security code sits at message level.
func (MarketDataCodec) OnSnapshot(msg marketdatasnapshotfullrefresh.MarketDataSnapshotFullRefresh) ([]model.MarketData, error) {
	securityCode, err := msg.GetSecurityID()
	if err != nil {
		return nil, fieldError("SecurityID", err)
	}

	entries, err := msg.GetNoMDEntries()
	if err != nil {
		return nil, fieldError("NoMDEntries", err)
	}

	data := make([]model.MarketData, 0, entries.Len())
	for i := 0; i < entries.Len(); i++ {
		entry := entries.Get(i)

		entryType, err := entry.GetMDEntryType()
		if err != nil {
			return nil, fieldError("MDEntryType", err)
		}
		price, err := entry.GetMDEntryPx()
		if err != nil {
			return nil, fieldError("MDEntryPx", err)
		}
		quantity, err := entry.GetMDEntrySize()
		if err != nil {
			return nil, fieldError("MDEntrySize", err)
		}
		yield, err := entry.GetPriceDelta()
		if err != nil {
			return nil, fieldError("PriceDelta", err)
		}

		data = append(data, model.MarketData{
			Action:       model.MarketDataActionNew,
			EntryType:    model.MarketDataEntryType(entryType),
			SecurityCode: securityCode,
			Quantity:     quantity,
			Price:        price,
			Yield:        yield,
		})
	}

	return data, nil
}

// OnIncremental flattens an incremental refresh. Here each entry carries its
// own update action and security code.
func (MarketDataCodec) OnIncremental(msg marketdataincrementalrefresh.MarketDataIncrementalRefresh) ([]model.MarketData, error) {
	entries, err := msg.GetNoMDEntries()
	if err != nil {
		return nil, fieldError("NoMDEntries", err)
	}

	data := make([]model.MarketData, 0, entries.Len())
	for i := 0; i < entries.Len(); i++ {
		entry := entries.Get(i)

		action, err := entry.GetMDUpdateAction()
		if err != nil {
			return nil, fieldError("MDUpdateAction", err)
		}
		securityCode, err := entry.GetSecurityID()
		if err != nil {
			return nil, fieldError("SecurityID", err)
		}
		entryType, err := entry.GetMDEntryType()
		if err != nil {
			return nil, fieldError("MDEntryType", err)
		}
		price, err := entry.GetMDEntryPx()
		if err != nil {
			return nil, fieldError("MDEntryPx", err)
		}
		quantity, err := entry.GetMDEntrySize()
		if err != nil {
			return nil, fieldError("MDEntrySize", err)
		}
		yield, err := entry.GetPriceDelta()
		if err != nil {
			return nil, fieldError("PriceDelta", err)
		}

		data = append(data, model.MarketData{
			Action:       model.MarketDataAction(action),
			EntryType:    model.MarketDataEntryType(entryType),
			SecurityCode: securityCode,
			Quantity:     quantity,
			Price:        price,
			Yield:        yield,
		})
	}

	return data, nil
}
