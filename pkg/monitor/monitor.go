package monitor

import (
	"go.uber.org/zap"

	"github.com/okoth/wabus/metrics"
)

// Sink receives failures together with free-form context for out-of-band
// inspection. Reporting is fire-and-forget: implementations must never block
// or fail the calling path.
type Sink interface {
	Report(err error, context map[string]string)
}

type logSink struct {
	logger  *zap.Logger
	service string
}

// NewLogSink returns a Sink that records failures through the process logger
// and a prometheus counter.
func NewLogSink(logger *zap.Logger, service string) Sink {
	return &logSink{logger: logger, service: service}
}

func (s *logSink) Report(err error, context map[string]string) {
	fields := make([]zap.Field, 0, len(context)+2)
	fields = append(fields, zap.String("service", s.service), zap.Error(err))
	for k, v := range context {
		fields = append(fields, zap.String(k, v))
	}
	s.logger.Error("failure reported", fields...)
	metrics.ReportedFailuresTotal.WithLabelValues(s.service).Inc()
}

// NopSink discards all reports.
type NopSink struct{}

func (NopSink) Report(error, map[string]string) {}
