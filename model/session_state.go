package model

// TradingPhase is the FIX TradSesStatus code of the marketplace session.
type TradingPhase int

const (
	TradingPhaseHalted  TradingPhase = 1
	TradingPhaseOpen    TradingPhase = 2
	TradingPhaseClosed  TradingPhase = 3
	TradingPhasePreOpen TradingPhase = 4
)

// SessionState is sent on connection and again whenever the marketplace
// changes phase.
type SessionState struct {
	State TradingPhase
}
