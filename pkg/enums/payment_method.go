package enums

import "fmt"

// PaymentMethod represents the checkout payment options the store can toggle.
type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
	PaymentMethodCOD   PaymentMethod = "cod"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodBkash,
	PaymentMethodNagad,
	PaymentMethodCOD,
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	return string(m)
}

// Label returns the customer-facing name used in order messages.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodBkash:
		return "bKash"
	case PaymentMethodNagad:
		return "Nagad"
	case PaymentMethodCOD:
		return "Cash on Delivery"
	}
	return string(m)
}

// IsValid reports whether the value is a known PaymentMethod.
func (m PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParsePaymentMethod converts raw input into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
