package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"unicode"
)

// Channel delivers a formatted order summary outside the system and
// returns where the customer continues (a URL).
type Channel interface {
	Deliver(ctx context.Context, message string) (string, error)
}

// WhatsAppChannel builds a click-to-chat link to the restaurant number.
type WhatsAppChannel struct {
	phone string
}

func NewWhatsAppChannel(phone string) (*WhatsAppChannel, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return nil, errors.New("whatsapp phone number has no digits")
	}
	return &WhatsAppChannel{phone: digits}, nil
}

func (w *WhatsAppChannel) Deliver(ctx context.Context, message string) (string, error) {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + w.phone + "?text=" + text, nil
}
