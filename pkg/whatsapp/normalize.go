package whatsapp

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidNumber = errors.New("invalid phone number")

// Normalize checks that num is a plausible E.164 number and returns it in
// canonical form. Numbers already in canonical E.164 form pass through
// unchanged.
func Normalize(num string) (string, error) {
	if num == "" {
		return "", fmt.Errorf("%w: missing number", ErrInvalidNumber)
	}
	if num[0] != '+' {
		return "", fmt.Errorf("%w: must be in E.164 format with +", ErrInvalidNumber)
	}

	parsed, err := phonenumbers.Parse(num, "")
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return "", fmt.Errorf("%w: %s", ErrInvalidNumber, num)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
