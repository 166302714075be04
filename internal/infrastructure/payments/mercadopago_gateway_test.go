package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	appconfig "clientportal/internal/config"
	"clientportal/internal/domain/entities"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{}, zap.NewNop())
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true}, nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !g.mockMode || g.currency != "BRL" {
			t.Fatalf("unexpected gateway: %+v", g)
		}
	})
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	ctx := context.Background()
	g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true, Currency: "usd"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	t.Run("invalid request", func(t *testing.T) {
		_, err := g.CreateCheckout(ctx, entities.CheckoutRequest{ProposalID: "p-1", Amount: 0})
		if !errors.Is(err, ErrInvalidCheckoutRequest) {
			t.Fatalf("expected ErrInvalidCheckoutRequest, got %v", err)
		}
		_, err = g.CreateCheckout(ctx, entities.CheckoutRequest{ProposalID: " ", Amount: 10})
		if !errors.Is(err, ErrInvalidCheckoutRequest) {
			t.Fatalf("expected ErrInvalidCheckoutRequest, got %v", err)
		}
	})

	t.Run("one-off checkout resolves back to proposal", func(t *testing.T) {
		session, err := g.CreateCheckout(ctx, entities.CheckoutRequest{ProposalID: "acme-1", Amount: 100})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !strings.Contains(session.URL, "/preference/") || session.ID == "" {
			t.Fatalf("unexpected session %+v", session)
		}

		p, err := g.GetPayment(ctx, session.ID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !p.IsSettled() || p.ExternalReference != "acme-1" {
			t.Fatalf("unexpected payment %+v", p)
		}
	})

	t.Run("recurring checkout uses preapproval", func(t *testing.T) {
		session, err := g.CreateCheckout(ctx, entities.CheckoutRequest{ProposalID: "acme-2", Amount: 100, Recurring: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !strings.Contains(session.URL, "/preapproval/") {
			t.Fatalf("unexpected session %+v", session)
		}
		sub, err := g.GetSubscription(ctx, session.ID)
		if err != nil || sub.ExternalReference != "acme-2" {
			t.Fatalf("unexpected subscription %+v err=%v", sub, err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		if _, err := g.GetPayment(ctx, ""); !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	g := &MercadoPagoGateway{logger: zap.NewNop()}
	_, err := g.CreateCheckout(context.Background(), entities.CheckoutRequest{ProposalID: "p", Amount: 1})
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, err := g.GetPayment(context.Background(), "123"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
