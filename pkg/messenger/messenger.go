package messenger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/okoth/wabus/metrics"
	"github.com/okoth/wabus/pkg/config"
	"github.com/okoth/wabus/pkg/monitor"
	"github.com/okoth/wabus/pkg/whatsapp"
)

// Failure kinds surfaced by Send. Callers distinguish them with errors.Is;
// none of them ever escapes as a panic.
var (
	ErrClientDisabled  = errors.New("whatsapp client not initialized")
	ErrMissingField    = errors.New("message body, recipient (to) and sender (from) are required")
	ErrProviderFailure = errors.New("provider send failed")
)

const providerName = "twilio"

// Messenger wraps the provider sender with validation, logging and failure
// reporting. A nil sender puts it in disabled mode: sends short-circuit to a
// logged no-op.
type Messenger struct {
	cfg    *config.Config
	sender whatsapp.Sender
	logger *zap.Logger
	sink   monitor.Sink
	tracer trace.Tracer
}

func New(cfg *config.Config, sender whatsapp.Sender, logger *zap.Logger, sink monitor.Sink) *Messenger {
	if sink == nil {
		sink = monitor.NopSink{}
	}
	return &Messenger{
		cfg:    cfg,
		sender: sender,
		logger: logger,
		sink:   sink,
		tracer: otel.Tracer("messenger"),
	}
}

// Send delivers one WhatsApp message and returns the provider message SID.
// body, to and from are required; to and from are unprefixed E.164 numbers.
// Exactly one provider call is made per valid invocation; every failure is
// logged and returned as a tagged error with an empty SID.
func (m *Messenger) Send(ctx context.Context, body, to, from string) (string, error) {
	ref := uuid.NewString()

	if m.sender == nil {
		metrics.MessagesAttemptedTotal.WithLabelValues("disabled", providerName).Inc()
		m.logger.Warn("whatsapp client not initialized, cannot send",
			zap.String("ref", ref))
		m.logger.Info("intended message",
			zap.String("ref", ref),
			zap.String("to", to),
			zap.String("from", from),
			zap.String("body", body),
		)
		return "", ErrClientDisabled
	}

	if body == "" || to == "" || from == "" {
		metrics.MessagesAttemptedTotal.WithLabelValues("invalid", providerName).Inc()
		m.logger.Error("message body, recipient (to) and sender (from) are required",
			zap.String("ref", ref),
			zap.Bool("hasBody", body != ""),
			zap.Bool("hasTo", to != ""),
			zap.Bool("hasFrom", from != ""),
		)
		return "", ErrMissingField
	}

	toNorm, err := whatsapp.Normalize(to)
	if err != nil {
		metrics.MessagesAttemptedTotal.WithLabelValues("invalid", providerName).Inc()
		m.logger.Error("invalid recipient number",
			zap.String("ref", ref), zap.String("to", to), zap.Error(err))
		return "", err
	}
	fromNorm, err := whatsapp.Normalize(from)
	if err != nil {
		metrics.MessagesAttemptedTotal.WithLabelValues("invalid", providerName).Inc()
		m.logger.Error("invalid sender number",
			zap.String("ref", ref), zap.String("from", from), zap.Error(err))
		return "", err
	}

	msg := whatsapp.NewMessage(body, whatsapp.Address(fromNorm), whatsapp.Address(toNorm), whatsapp.WithRef(ref))

	sendCtx, span := m.tracer.Start(ctx, "send-whatsapp")
	defer span.End()

	timer := prometheus.NewTimer(metrics.MessageSendDuration.WithLabelValues(providerName))
	sid, err := m.sender.CreateMessage(sendCtx, msg)
	timer.ObserveDuration()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider send failed")
		metrics.MessagesAttemptedTotal.WithLabelValues("failed", providerName).Inc()
		metrics.ExternalAPIFailureTotal.WithLabelValues(providerName, "messenger").Inc()
		m.logger.Error("error sending message",
			zap.String("ref", ref),
			zap.String("errorType", fmt.Sprintf("%T", err)),
			zap.Error(err),
		)
		m.sink.Report(err, map[string]string{
			"ref":      ref,
			"to":       msg.To,
			"from":     msg.From,
			"provider": providerName,
		})
		return "", fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	metrics.MessagesAttemptedTotal.WithLabelValues("sent", providerName).Inc()
	metrics.ExternalAPISuccessTotal.WithLabelValues(providerName, "messenger").Inc()
	m.logger.Info("message sent successfully",
		zap.String("ref", ref), zap.String("sid", sid))
	return sid, nil
}

// SendDefault sends from the configured sender number.
func (m *Messenger) SendDefault(ctx context.Context, body, to string) (string, error) {
	return m.Send(ctx, body, to, m.cfg.PhoneNumber)
}

// HandleIncoming records a provider message notification. The payload is
// logged in full and not acted upon; no parsing, no reply. It never fails
// regardless of payload shape.
func (m *Messenger) HandleIncoming(payload map[string]string) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("incoming message handling panicked: %v", r)
			m.logger.Error("error processing incoming message", zap.Error(err))
			m.sink.Report(err, map[string]string{"stage": "incoming"})
		}
	}()

	metrics.IncomingMessagesTotal.Inc()
	m.logger.Info("received incoming message", zap.Any("payload", payload))
}
