package whatsapp

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioSender struct {
	Timeout time.Duration `yaml:"timeout"`
	Client  *twilio.RestClient
}

// NewTwilioSender builds a sender backed by the Twilio REST client. A zero
// timeout falls back to 10 seconds.
func NewTwilioSender(accountSid, authToken string, timeout time.Duration) *TwilioSender {
	client := twilio.NewRestClientWithParams(
		twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client.Client.SetTimeout(timeout)

	return &TwilioSender{
		Client:  client,
		Timeout: timeout,
	}
}

func (t *TwilioSender) CreateMessage(ctx context.Context, m Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &api.CreateMessageParams{}
	params.SetBody(m.Body)
	params.SetFrom(m.From)
	params.SetTo(m.To)

	resp, err := t.Client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid == nil {
		return "", fmt.Errorf("twilio response carried no message sid")
	}
	return *resp.Sid, nil
}
