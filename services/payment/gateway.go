package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount  = errors.New("invalid payment amount")
	ErrGateway        = errors.New("payment gateway error")
	ErrIntentNotFound = errors.New("payment intent not found")
)

// IntentSucceeded is the status of a fully collected intent.
const IntentSucceeded = string(stripe.PaymentIntentStatusSucceeded)

// Intent is the gateway's view of a payment, amounts in minor units.
type Intent struct {
	ID       string
	Status   string
	Amount   int64
	Currency string
}

// Gateway creates client-side payment confirmation tokens and reports on
// the payments they produced.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (string, error)
	GetIntent(ctx context.Context, intentID string) (*Intent, error)
}

// StripeGateway implements Gateway with Stripe PaymentIntents.
type StripeGateway struct {
	logger    *zap.Logger
	newIntent func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	getIntent func(string, *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// NewStripeGateway builds a gateway bound to its own API client.
func NewStripeGateway(secretKey string, logger *zap.Logger) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{
		logger:    logger,
		newIntent: sc.PaymentIntents.New,
		getIntent: sc.PaymentIntents.Get,
	}
}

// ToMinorUnits converts a major-unit price (e.g. dollars) to the smallest unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent creates a card PaymentIntent and returns its client secret.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	minor := ToMinorUnits(amount)
	if minor <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrInvalidAmount
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minor),
		Currency:           stripe.String(strings.ToLower(currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.newIntent(params)
	if err != nil {
		g.logger.Error("stripe payment intent failed", zap.Int64("amount", minor), zap.String("currency", currency), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	g.logger.Info("payment intent created", zap.String("intent", pi.ID), zap.Int64("amount", minor))
	return pi.ClientSecret, nil
}

// GetIntent fetches an intent by id. Unknown ids yield ErrIntentNotFound.
func (g *StripeGateway) GetIntent(ctx context.Context, intentID string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.getIntent(intentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, ErrIntentNotFound
		}
		g.logger.Error("stripe payment intent lookup failed", zap.String("intent", intentID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return &Intent{
		ID:       pi.ID,
		Status:   string(pi.Status),
		Amount:   pi.AmountReceived,
		Currency: string(pi.Currency),
	}, nil
}
