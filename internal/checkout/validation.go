package checkout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"storefront/internal/order"
)

const (
	maxNameLength         = 100
	maxPhoneLength        = 15
	maxInstructionsLength = 500
)

var ErrInvalidCustomer = errors.New("invalid customer details")

// Customer is the checkout form.
type Customer struct {
	Name                string `json:"customer_name"`
	Phone               string `json:"customer_phone"`
	OrderType           string `json:"order_type"`
	SpecialInstructions string `json:"special_instructions"`
}

// Normalize trims the form fields and fills the default order type.
func (c Customer) Normalize() Customer {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.OrderType = strings.ToLower(strings.TrimSpace(c.OrderType))
	c.SpecialInstructions = strings.TrimSpace(c.SpecialInstructions)
	if c.OrderType == "" {
		c.OrderType = order.TypeTakeaway
	}
	return c
}

// Validate expects a normalized Customer. The error names the first
// failing field.
func Validate(c Customer) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	case utf8.RuneCountInString(c.Name) > maxNameLength:
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidCustomer, maxNameLength)
	case c.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidCustomer)
	case utf8.RuneCountInString(c.Phone) > maxPhoneLength:
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidCustomer, maxPhoneLength)
	case c.OrderType != order.TypeTakeaway && c.OrderType != order.TypeDelivery:
		return fmt.Errorf("%w: order type must be takeaway or delivery", ErrInvalidCustomer)
	case utf8.RuneCountInString(c.SpecialInstructions) > maxInstructionsLength:
		return fmt.Errorf("%w: special instructions must be at most %d characters", ErrInvalidCustomer, maxInstructionsLength)
	}
	return nil
}
