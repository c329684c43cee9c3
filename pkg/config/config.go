package config

import (
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/okoth/wabus/pkg/utils"
	"github.com/okoth/wabus/pkg/whatsapp"
)

// Sentinel placeholder values substituted for unset environment variables.
// They mark "not configured" without failing startup.
const (
	SentinelAccountSID = "YOUR_ACCOUNT_SID_PLACEHOLDER"
	SentinelAuthToken  = "YOUR_AUTH_TOKEN_PLACEHOLDER"
	SentinelPhone      = "YOUR_TWILIO_PHONE_PLACEHOLDER"
	SentinelRecipient  = "RECIPIENT_PHONE_PLACEHOLDER"
)

type Config struct {
	AccountSID  string        `yaml:"accountSid"`
	AuthToken   string        `yaml:"authToken"`
	PhoneNumber string        `yaml:"phoneNumber"`
	Recipient   string        `yaml:"recipient"`
	SendTimeout time.Duration `yaml:"sendTimeout"`
	MetricsAddr string        `yaml:"metricsAddr"`
	OTLPAddr    string        `yaml:"otlpAddr"`
}

// Load reads an optional YAML config file and applies environment overrides
// on top. Environment variables always win over file values; missing
// credential values fall back to their sentinel placeholders.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables alone. Load can only
// fail reading or parsing a config file, so the empty path makes this
// infallible; any future failure mode of Load("") must keep that invariant.
func FromEnv() *Config {
	cfg, err := Load("")
	if err != nil {
		panic("config.Load with no file cannot fail: " + err.Error())
	}
	return cfg
}

func (c *Config) applyEnv() {
	c.AccountSID = overlay(c.AccountSID, "TWILIO_ACCOUNT_SID", SentinelAccountSID)
	c.AuthToken = overlay(c.AuthToken, "TWILIO_AUTH_TOKEN", SentinelAuthToken)
	c.PhoneNumber = overlay(c.PhoneNumber, "TWILIO_PHONE_NUMBER", SentinelPhone)
	c.Recipient = overlay(c.Recipient, "RECIPIENT_PHONE_NUMBER", SentinelRecipient)

	if v := utils.GetEnv("METRICS_ADDR"); v != "" {
		c.MetricsAddr = v
	}
	if v := utils.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.OTLPAddr = v
	}
}

func overlay(current, key, sentinel string) string {
	if v := utils.GetEnv(key); v != "" {
		return v
	}
	if current != "" {
		return current
	}
	return sentinel
}

// HasCredentials reports whether both the account identifier and the auth
// token carry real values. Only then may a provider client be constructed.
func (c *Config) HasCredentials() bool {
	return c.AccountSID != "" && c.AccountSID != SentinelAccountSID &&
		c.AuthToken != "" && c.AuthToken != SentinelAuthToken
}

// HasExampleNumbers reports whether the sender and the default recipient are
// both configured, which gates the startup example send.
func (c *Config) HasExampleNumbers() bool {
	return c.PhoneNumber != "" && c.PhoneNumber != SentinelPhone &&
		c.Recipient != "" && c.Recipient != SentinelRecipient
}

// BuildSender constructs the provider sender, or returns nil (disabled mode)
// when credentials are missing. Construction never fails the caller: a run
// without credentials degrades to a side-effect-free mode where sends
// short-circuit.
func BuildSender(cfg *Config, logr *zap.Logger) whatsapp.Sender {
	if !cfg.HasCredentials() {
		logr.Warn("twilio credentials not set, using placeholders; sender disabled")
		return nil
	}
	return whatsapp.NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.SendTimeout)
}
