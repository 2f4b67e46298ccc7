package enums

import "fmt"

// PaymentMethod describes how a buyer settles a sale at the counter.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard,
	PaymentMethodMobileMoney,
	PaymentMethodCash,
	PaymentMethodBankTransfer,
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCreditCard:   "Credit Card",
	PaymentMethodMobileMoney:  "Mobile Money",
	PaymentMethodCash:         "Physical Cash",
	PaymentMethodBankTransfer: "Bank Transfer",
}

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// Label returns the display name shown on the dashboard.
func (p PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[p]; ok {
		return label
	}
	return string(p)
}

// IsValid reports whether the value is a known PaymentMethod.
func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

// PaymentMethods lists every accepted method in display order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(validPaymentMethods))
	copy(out, validPaymentMethods)
	return out
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
