package interfaces

//go:generate mockgen -source=$GOFILE -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"

	"clientportal/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// Proposal creation uses it to obtain a checkout link; the webhook uses it to
// confirm the state of the payment or subscription the provider notified.
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	GetPayment(ctx context.Context, id string) (entities.ProviderPayment, error)
	GetSubscription(ctx context.Context, id string) (entities.ProviderPayment, error)
}
