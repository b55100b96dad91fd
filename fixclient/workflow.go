package fixclient

import "github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"

// Workflow is the consumer side of the library. The engine calls exactly
// one method per decoded inbound message, synchronously, on the session's
// goroutine: if a callback blocks, inbound processing blocks with it.
//
// Embed NopWorkflow and override the callbacks you care about.
type Workflow interface {
	// Session lifecycle, per comp ID.
	OnLogon(senderCompID string)
	OnLogout(senderCompID string)

	// One callback per feed.
	OnMarketData(data []model.MarketData)
	OnOrderBook(order model.IOIOrder)
	OnSecurityList(securities []model.Security)
	OnSessionState(state model.SessionState)

	// The four execution report workflows.
	OnAcknowledge(orderCode string, event model.Acknowledge)
	OnReject(orderCode string, event model.Reject)
	OnFill(orderCode string, event model.Fill)
	OnPostTrade(orderCode string, event model.PostTrade)
}

// NopWorkflow implements Workflow with no-ops, for embedding.
type NopWorkflow struct{}

var _ Workflow = NopWorkflow{}

func (NopWorkflow) OnLogon(string) {}
func (NopWorkflow) OnLogout(string) {}
func (NopWorkflow) OnMarketData([]model.MarketData) {}
func (NopWorkflow) OnOrderBook(model.IOIOrder) {}
func (NopWorkflow) OnSecurityList([]model.Security) {}
func (NopWorkflow) OnSessionState(model.SessionState) {}
func (NopWorkflow) OnAcknowledge(string, model.Acknowledge) {}
func (NopWorkflow) OnReject(string, model.Reject) {}
func (NopWorkflow) OnFill(string, model.Fill) {}
func (NopWorkflow) OnPostTrade(string, model.PostTrade) {}
