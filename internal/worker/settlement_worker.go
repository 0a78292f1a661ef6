package worker

import (
	"context"

	"github.com/osse101/GambaBot_Go/internal/logger"
	"github.com/osse101/GambaBot_Go/internal/settlement"
)

// SettlementWorker periodically sweeps open bets against the latest market
// resolutions, so standings stay fresh even when nobody is asking for them.
type SettlementWorker struct {
	settlementSvc settlement.Service
}

// NewSettlementWorker creates a settlement sweep job
func NewSettlementWorker(settlementSvc settlement.Service) *SettlementWorker {
	return &SettlementWorker{settlementSvc: settlementSvc}
}

// Process runs one system-wide settlement pass
func (w *SettlementWorker) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSettlementSweepStarting)

	settled, err := w.settlementSvc.SettleAll(ctx)
	if err != nil {
		return err
	}

	if settled > 0 {
		log.Info(LogMsgSettlementSweepCompleted, "settled", settled)
	}
	return nil
}
