package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/okoth/wabus/pkg/config"
	"github.com/okoth/wabus/pkg/messenger"
	"github.com/okoth/wabus/pkg/whatsapp"
)

// Run performs the example flow: one outbound send when real numbers are
// configured, then one simulated incoming notification.
func Run(ctx context.Context, cfg *config.Config, m *messenger.Messenger, logr *zap.Logger) {
	if cfg.HasExampleNumbers() {
		logr.Info("attempting to send a test message",
			zap.String("to", cfg.Recipient),
			zap.String("from", cfg.PhoneNumber),
		)
		sid, err := m.SendDefault(ctx, "Hello from the wabus WhatsApp example!", cfg.Recipient)
		if err != nil {
			logr.Warn("test message sending failed or was simulated", zap.Error(err))
		} else {
			logr.Info("test message sent", zap.String("sid", sid))
		}
	} else {
		logr.Warn("recipient or sender phone not set, skipping test message")
		logr.Info("set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_PHONE_NUMBER and RECIPIENT_PHONE_NUMBER to send a test message")
	}

	logr.Info("simulating an incoming message")
	m.HandleIncoming(SamplePayload(cfg))
}

// SamplePayload mirrors the shape of a Twilio WhatsApp webhook form post.
func SamplePayload(cfg *config.Config) map[string]string {
	return map[string]string{
		"SmsMessageSid": "SMxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		"NumMedia":      "0",
		"SmsSid":        "SMxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		"SmsStatus":     "received",
		"Body":          "Hello there!",
		"To":            whatsapp.Address(cfg.PhoneNumber),
		"NumSegments":   "1",
		"MessageSid":    "SMxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		"AccountSid":    cfg.AccountSID,
		"From":          whatsapp.Address(cfg.Recipient),
		"ApiVersion":    "2010-04-01",
	}
}
