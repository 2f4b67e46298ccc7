package controllers

import (
	"net/http"

	"github.com/kwabenaosei/shopdesk-backend/api/responses"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
)

type paymentMethodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PaymentMethodList serves the accepted payment methods for the commit
// form's dropdown.
func PaymentMethodList() http.HandlerFunc {
	options := make([]paymentMethodOption, 0, len(enums.PaymentMethods()))
	for _, method := range enums.PaymentMethods() {
		options = append(options, paymentMethodOption{
			Value: method.String(),
			Label: method.Label(),
		})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"payment_methods": options})
	}
}
