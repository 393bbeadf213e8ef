package domain

import "time"

type CompileResult struct {
	Connections int
	Outbounds   int
	Duration    time.Duration
	Err         error
}

type MetricsCollector interface {
	RecordLinkParsed(protocol Protocol)
	RecordLinkRejected(reason string)
	RecordCompile(CompileResult)
	RecordWorkerStart(workerID string)
	RecordWorkerStop(workerID string)
}
