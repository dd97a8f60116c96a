package demo

import "log/slog"

// LoggingObserver logs every event using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer on the default logger
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("step_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"step", event.Step,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
