package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"clientportal/internal/domain/entities"
	mock_interfaces "clientportal/internal/usecase/interfaces/mocks"
)

const testWebhookSecret = "whsec"

func newWebhookUseCase(ctrl *gomock.Controller, secret string) (*PaymentWebhookUseCase, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIProposalRepository) {
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	repo := mock_interfaces.NewMockIProposalRepository(ctrl)
	proposals := NewProposalUseCase(repo, nil, nil, ProposalSettings{}, nil)
	return NewPaymentWebhookUseCase(gateway, proposals, secret, nil), gateway, repo
}

func signedPayment(dataID string) PaymentNotification {
	return PaymentNotification{
		Type:      "payment",
		Action:    "payment.updated",
		DataID:    dataID,
		RequestID: "req-1",
		Signature: "ts=1700000000,v1=" + SignNotification(testWebhookSecret, dataID, "req-1", "1700000000"),
	}
}

func TestPaymentWebhookUseCase_Signature(t *testing.T) {
	t.Run("tampered signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newWebhookUseCase(ctrl, testWebhookSecret)

		n := signedPayment("123")
		n.DataID = "124"
		if _, err := uc.HandleMercadoPago(context.Background(), n); !errors.Is(err, ErrInvalidWebhookSignature) || !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newWebhookUseCase(ctrl, testWebhookSecret)

		n := signedPayment("123")
		n.Signature = ""
		if _, err := uc.HandleMercadoPago(context.Background(), n); !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("manifest lower-cases the data id", func(t *testing.T) {
		if got := SignaturePayload("ABC", "r", "1"); got != "id:abc;request-id:r;ts:1;" {
			t.Fatalf("unexpected manifest %q", got)
		}
	})
}

func TestPaymentWebhookUseCase_HandleMercadoPago(t *testing.T) {
	t.Run("approved payment accepts the proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, repo := newWebhookUseCase(ctrl, testWebhookSecret)

		gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.ProviderPayment{ID: "123", Status: "approved", ExternalReference: "p1"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Status: entities.ProposalStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.ProposalStatusAccepted).Return(true, nil)

		res, err := uc.HandleMercadoPago(context.Background(), signedPayment("123"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Handled || res.ProposalID != "p1" || res.Status != "approved" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("pending payment is acknowledged only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, _ := newWebhookUseCase(ctrl, testWebhookSecret)

		gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.ProviderPayment{Status: "in_process", ExternalReference: "p1"}, nil)

		res, err := uc.HandleMercadoPago(context.Background(), signedPayment("123"))
		if err != nil || res.Handled {
			t.Fatalf("expected unhandled result, got %+v %v", res, err)
		}
	})

	t.Run("created preapproval accepts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, repo := newWebhookUseCase(ctrl, "")

		gateway.EXPECT().GetSubscription(gomock.Any(), "sub-1").Return(entities.ProviderPayment{Status: "pending", ExternalReference: "p2"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p2").Return(entities.Proposal{ID: "p2", Status: entities.ProposalStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p2", entities.ProposalStatusAccepted).Return(true, nil)

		res, err := uc.HandleMercadoPago(context.Background(), PaymentNotification{Type: "subscription_preapproval", Action: "created", DataID: "sub-1"})
		if err != nil || !res.Handled {
			t.Fatalf("expected handled result, got %+v %v", res, err)
		}
	})

	t.Run("rejected proposal is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, repo := newWebhookUseCase(ctrl, "")

		gateway.EXPECT().GetPayment(gomock.Any(), "9").Return(entities.ProviderPayment{Status: "approved", ExternalReference: "p3"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p3").Return(entities.Proposal{ID: "p3", Status: entities.ProposalStatusRejected}, nil)

		res, err := uc.HandleMercadoPago(context.Background(), PaymentNotification{Type: "payment", DataID: "9"})
		if err != nil || res.Handled {
			t.Fatalf("expected acknowledged but unhandled, got %+v %v", res, err)
		}
	})

	t.Run("provider lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, _ := newWebhookUseCase(ctrl, "")

		gateway.EXPECT().GetPayment(gomock.Any(), "9").Return(entities.ProviderPayment{}, errors.New("timeout"))

		_, err := uc.HandleMercadoPago(context.Background(), PaymentNotification{Type: "payment", DataID: "9"})
		if !errors.Is(err, ErrPaymentLookupFailed) || !errors.Is(err, ErrUpstreamFailure) {
			t.Fatalf("expected ErrPaymentLookupFailed, got %v", err)
		}
	})

	t.Run("other topics are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newWebhookUseCase(ctrl, "")

		res, err := uc.HandleMercadoPago(context.Background(), PaymentNotification{Type: "merchant_order", DataID: "1"})
		if err != nil || res.Handled {
			t.Fatalf("expected ignored event, got %+v %v", res, err)
		}
	})

	t.Run("missing data id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newWebhookUseCase(ctrl, "")

		if _, err := uc.HandleMercadoPago(context.Background(), PaymentNotification{Type: "payment"}); !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})
}
