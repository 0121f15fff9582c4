package payments

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// Intent is the subset of the provider's payment intent the handlers need
type Intent struct {
	ID           string
	ClientSecret string
}

// Client creates payment intents with the external payment provider
type Client interface {
	CreateIntent(amountCents int64, currency string) (*Intent, error)
}

type stripeClient struct{}

// NewStripeClient configures the Stripe SDK with the account secret key
func NewStripeClient(secretKey string) Client {
	stripe.Key = secretKey
	return &stripeClient{}
}

func (s *stripeClient) CreateIntent(amountCents int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
