package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/quickfixgo/quickfix"
	"go.uber.org/zap"

	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/dispatch"
	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/fixclient"
	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/internal/config"
	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/internal/logging"
	"github.com/OpenYld/OpenYield-FIX-ClientLibrary/model"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig("tradeclient")

	// Initialize logger
	logger, err := logging.NewLogger(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting trade client",
		zap.String("settings", cfg.SettingsPath),
		zap.String("comp_id", cfg.CompID),
	)

	// Parse quickfix session settings
	settingsFile, err := os.Open(cfg.SettingsPath)
	if err != nil {
		logger.Fatal("failed to open settings file", zap.Error(err))
	}
	settings, err := quickfix.ParseSettings(settingsFile)
	settingsFile.Close()
	if err != nil {
		logger.Fatal("failed to parse settings file", zap.Error(err))
	}

	// Outbound dispatcher for the trading session
	admin := dispatch.NewAdminDispatch(cfg.CompID, logger)

	// The demo workflow logs everything it receives and pulls the security
	// list once the trading session is up
	workflow := &loggingWorkflow{log: logger, admin: admin}
	app := fixclient.NewEngine(workflow, logger)

	initiator, err := quickfix.NewInitiator(
		app,
		quickfix.NewMemoryStoreFactory(),
		settings,
		quickfix.NewNullLogFactory(),
	)
	if err != nil {
		logger.Fatal("failed to create initiator", zap.Error(err))
	}

	if err := initiator.Start(); err != nil {
		logger.Fatal("failed to start initiator", zap.Error(err))
	}
	defer initiator.Stop()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("shutting down", zap.String("signal", sig.String()))
}

// loggingWorkflow prints every decoded event. It stands in for a real
// business layer.
type loggingWorkflow struct {
	fixclient.NopWorkflow

	log   *zap.Logger
	admin *dispatch.AdminDispatch
}

func (w *loggingWorkflow) OnLogon(senderCompID string) {
	w.log.Info("logged on", zap.String("sender_comp_id", senderCompID))
	if strings.HasSuffix(senderCompID, "-TR") {
		if err := w.admin.RequestSecurityList(); err != nil {
			w.log.Error("security list request failed", zap.Error(err))
		}
	}
}

func (w *loggingWorkflow) OnLogout(senderCompID string) {
	w.log.Info("logged out", zap.String("sender_comp_id", senderCompID))
}

func (w *loggingWorkflow) OnMarketData(data []model.MarketData) {
	for _, entry := range data {
		w.log.Info("market data",
			zap.String("security_code", entry.SecurityCode),
			zap.String("entry_type", string(entry.EntryType)),
			zap.String("price", entry.Price.String()),
			zap.String("quantity", entry.Quantity.String()),
		)
	}
}

func (w *loggingWorkflow) OnOrderBook(order model.IOIOrder) {
	w.log.Info("order book",
		zap.String("ioi_code", order.IOICode),
		zap.String("action", string(order.Action)),
		zap.String("security_code", order.SecurityCode),
		zap.String("side", string(order.BidOrOffer)),
		zap.String("price", order.Price.String()),
	)
}

func (w *loggingWorkflow) OnSecurityList(securities []model.Security) {
	w.log.Info("security list", zap.Int("count", len(securities)))
}

func (w *loggingWorkflow) OnSessionState(state model.SessionState) {
	w.log.Info("session state", zap.Int("state", int(state.State)))
}

func (w *loggingWorkflow) OnAcknowledge(orderCode string, event model.Acknowledge) {
	w.log.Info("order acknowledged",
		zap.String("order_code", orderCode),
		zap.String("status", string(event.Status)),
		zap.String("reason", event.Reason),
	)
}

func (w *loggingWorkflow) OnReject(orderCode string, event model.Reject) {
	w.log.Warn("order rejected",
		zap.String("order_code", orderCode),
		zap.Int("reason_code", event.ReasonCode),
		zap.String("message", event.Message),
	)
}

func (w *loggingWorkflow) OnFill(orderCode string, event model.Fill) {
	w.log.Info("order filled",
		zap.String("order_code", orderCode),
		zap.String("status", string(event.Status)),
		zap.String("security_code", event.SecurityCode),
		zap.String("quantity", event.FillQuantity.String()),
		zap.String("price", event.FillPrice.String()),
	)
}

func (w *loggingWorkflow) OnPostTrade(orderCode string, event model.PostTrade) {
	w.log.Warn("post trade adjustment",
		zap.String("order_code", orderCode),
		zap.String("status", string(event.Status)),
		zap.String("execution_code", event.ExecutionCode),
	)
}
