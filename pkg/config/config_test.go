package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN",
		"TWILIO_PHONE_NUMBER", "RECIPIENT_PHONE_NUMBER",
		"METRICS_ADDR", "OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaultsToSentinels(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	if cfg.AccountSID != SentinelAccountSID {
		t.Errorf("Expected sentinel account sid, got '%s'", cfg.AccountSID)
	}
	if cfg.AuthToken != SentinelAuthToken {
		t.Errorf("Expected sentinel auth token, got '%s'", cfg.AuthToken)
	}
	if cfg.PhoneNumber != SentinelPhone {
		t.Errorf("Expected sentinel phone number, got '%s'", cfg.PhoneNumber)
	}
	if cfg.Recipient != SentinelRecipient {
		t.Errorf("Expected sentinel recipient, got '%s'", cfg.Recipient)
	}
	if cfg.SendTimeout != 10*time.Second {
		t.Errorf("Expected 10s default timeout, got %v", cfg.SendTimeout)
	}
}

func TestFromEnvReadsValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TWILIO_ACCOUNT_SID", "ACxxx")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15551234567")
	t.Setenv("RECIPIENT_PHONE_NUMBER", "+15557654321")

	cfg := FromEnv()
	if cfg.AccountSID != "ACxxx" || cfg.AuthToken != "secret" {
		t.Errorf("unexpected credentials: %s / %s", cfg.AccountSID, cfg.AuthToken)
	}
	if cfg.PhoneNumber != "+15551234567" || cfg.Recipient != "+15557654321" {
		t.Errorf("unexpected numbers: %s / %s", cfg.PhoneNumber, cfg.Recipient)
	}
}

func TestHasCredentials(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	if cfg.HasCredentials() {
		t.Error("Expected HasCredentials to be false with sentinels")
	}

	t.Setenv("TWILIO_ACCOUNT_SID", "ACxxx")
	cfg = FromEnv()
	if cfg.HasCredentials() {
		t.Error("Expected HasCredentials to be false with only the sid set")
	}

	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	cfg = FromEnv()
	if !cfg.HasCredentials() {
		t.Error("Expected HasCredentials to be true with both values set")
	}
}

func TestHasExampleNumbers(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	if cfg.HasExampleNumbers() {
		t.Error("Expected HasExampleNumbers to be false with sentinels")
	}

	t.Setenv("TWILIO_PHONE_NUMBER", "+15551234567")
	t.Setenv("RECIPIENT_PHONE_NUMBER", "+15557654321")
	cfg = FromEnv()
	if !cfg.HasExampleNumbers() {
		t.Error("Expected HasExampleNumbers to be true with both numbers set")
	}
}

func TestLoadFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("TWILIO_ACCOUNT_SID", "AC_from_env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("accountSid: AC_from_file\nauthToken: token_from_file\nmetricsAddr: \":3003\"\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AccountSID != "AC_from_env" {
		t.Errorf("Expected env value to win, got '%s'", cfg.AccountSID)
	}
	if cfg.AuthToken != "token_from_file" {
		t.Errorf("Expected file value to survive, got '%s'", cfg.AuthToken)
	}
	if cfg.MetricsAddr != ":3003" {
		t.Errorf("Expected metrics addr from file, got '%s'", cfg.MetricsAddr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestBuildSenderDisabledWithoutCredentials(t *testing.T) {
	clearEnv(t)

	sender := BuildSender(FromEnv(), zap.NewNop())
	if sender != nil {
		t.Error("Expected nil sender without credentials")
	}
}

func TestBuildSenderWithCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("TWILIO_ACCOUNT_SID", "ACxxx")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")

	sender := BuildSender(FromEnv(), zap.NewNop())
	if sender == nil {
		t.Error("Expected sender with credentials present")
	}
}
