package checkout

import "strings"

var instructionMap = map[PaymentMethod][]string{
	PaymentCashOnDelivery: {
		"Your order {{order_number}} will be delivered to the address above",
		"Keep {{amount}} ready in cash when the courier arrives",
		"Pay the courier directly and check the amount matches your order total",
		"Keep the receipt the courier gives you",
	},
}

// PaymentInstructions returns the steps to pay for o with its payment method.
func PaymentInstructions(o Order) []string {
	steps, ok := instructionMap[o.PaymentMethod]
	if !ok {
		steps = []string{"Follow the payment instructions sent to {{email}}"}
	}
	return injectVariables(steps, map[string]string{
		"amount":       o.Total.StringFixed(2),
		"order_number": o.OrderNumber,
		"email":        o.ContactInfo.Email,
	})
}

func injectVariables(steps []string, vars map[string]string) []string {
	result := make([]string, 0, len(steps))
	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(updated, "{{"+key+"}}", value)
		}
		result = append(result, updated)
	}
	return result
}
