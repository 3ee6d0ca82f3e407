package domain

import (
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	MethodMastercard PaymentMethod = "mastercard"
	MethodVisa       PaymentMethod = "visa"
	MethodPIX        PaymentMethod = "pix"
	MethodBoleto     PaymentMethod = "boleto"
)

// PaymentMethods lists every method in display order.
var PaymentMethods = []PaymentMethod{MethodMastercard, MethodVisa, MethodPIX, MethodBoleto}

var methodLabels = map[PaymentMethod]string{
	MethodMastercard: "Mastercard",
	MethodVisa:       "Visa",
	MethodPIX:        "PIX",
	MethodBoleto:     "Boleto",
}

func (m PaymentMethod) Label() string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return string(m)
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := methodLabels[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return m, nil
}

// ParseMethodSelector parses a method selector where "all" (or empty) selects
// every method and is returned as the zero value.
func ParseMethodSelector(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	return ParsePaymentMethod(s)
}

// MethodBreakdown holds the amount received per payment method.
type MethodBreakdown map[PaymentMethod]float64

func (b MethodBreakdown) Total() float64 {
	var total float64
	for _, m := range PaymentMethods {
		total += b[m]
	}
	return total
}

func (b MethodBreakdown) Clone() MethodBreakdown {
	out := make(MethodBreakdown, len(PaymentMethods))
	for _, m := range PaymentMethods {
		out[m] = b[m]
	}
	return out
}

// MethodAmount is one entry of an ordered per-method breakdown.
type MethodAmount struct {
	Method     PaymentMethod
	Amount     float64
	Percentage float64
}
