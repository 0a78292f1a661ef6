package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the settlement sweep worker
const (
	LogMsgSettlementSweepStarting  = "Settlement sweep starting"
	LogMsgSettlementSweepCompleted = "Settlement sweep completed"
)
