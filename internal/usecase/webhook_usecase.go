package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/webhook_usecase_mock.go -package=mocks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase/interfaces"
)

const (
	webhookTypePayment     = "payment"
	webhookTypePreapproval = "subscription_preapproval"
	webhookActionCreated   = "created"
)

// PaymentNotification is a Mercado Pago webhook delivery.
type PaymentNotification struct {
	Type      string
	Action    string
	DataID    string
	RequestID string
	Signature string
}

type WebhookResult struct {
	Handled    bool   `json:"handled"`
	ProposalID string `json:"proposalId,omitempty"`
	Status     string `json:"status,omitempty"`
}

// IPaymentWebhookUseCase turns provider notifications into proposal acceptances.
type IPaymentWebhookUseCase interface {
	HandleMercadoPago(ctx context.Context, n PaymentNotification) (WebhookResult, error)
}

type PaymentWebhookUseCase struct {
	gateway   interfaces.IPaymentGateway
	proposals IProposalUseCase
	secret    string
	logger    *zap.Logger
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

// NewPaymentWebhookUseCase with an empty secret accepts unsigned deliveries.
func NewPaymentWebhookUseCase(gateway interfaces.IPaymentGateway, proposals IProposalUseCase, secret string, logger *zap.Logger) *PaymentWebhookUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if secret == "" {
		logger.Warn("[webhook][usecase] no webhook secret configured, signatures are not verified")
	}
	return &PaymentWebhookUseCase{gateway: gateway, proposals: proposals, secret: secret, logger: logger}
}

// parseSignature reads the "ts=<ts>,v1=<hex>" header.
func parseSignature(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}
	return ts, v1
}

// SignaturePayload is the manifest Mercado Pago signs for a delivery.
func SignaturePayload(dataID, requestID, ts string) string {
	return fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(dataID), requestID, ts)
}

// SignNotification computes the v1 signature of a delivery.
func SignNotification(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(SignaturePayload(dataID, requestID, ts)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (u *PaymentWebhookUseCase) verify(n PaymentNotification) error {
	if u.secret == "" {
		return nil
	}
	ts, v1 := parseSignature(n.Signature)
	if ts == "" || v1 == "" {
		return ErrInvalidWebhookSignature
	}
	want := SignNotification(u.secret, n.DataID, n.RequestID, ts)
	if !hmac.Equal([]byte(want), []byte(strings.ToLower(v1))) {
		return ErrInvalidWebhookSignature
	}
	return nil
}

func (u *PaymentWebhookUseCase) HandleMercadoPago(ctx context.Context, n PaymentNotification) (WebhookResult, error) {
	n.Type = strings.TrimSpace(n.Type)
	n.DataID = strings.TrimSpace(n.DataID)
	log := u.logger.With(zap.String("type", n.Type), zap.String("action", n.Action), zap.String("data_id", n.DataID))

	if err := u.verify(n); err != nil {
		log.Warn("[webhook][usecase] signature rejected")
		return WebhookResult{}, err
	}

	switch n.Type {
	case webhookTypePayment, webhookTypePreapproval:
	default:
		log.Info("[webhook][usecase] ignored event")
		return WebhookResult{Handled: false}, nil
	}
	if n.DataID == "" {
		return WebhookResult{}, invalid(ErrInvalidWebhookPayload, "data.id is required")
	}
	if u.gateway == nil {
		log.Error("[webhook][usecase] payment gateway not configured")
		return WebhookResult{}, ErrPaymentLookupFailed
	}

	var (
		provider entities.ProviderPayment
		err      error
		accept   bool
	)
	if n.Type == webhookTypePayment {
		provider, err = u.gateway.GetPayment(ctx, n.DataID)
		accept = err == nil && provider.IsSettled()
	} else {
		provider, err = u.gateway.GetSubscription(ctx, n.DataID)
		accept = err == nil && (n.Action == webhookActionCreated || provider.IsSettled())
	}
	if err != nil {
		log.Error("[webhook][usecase] provider lookup failed", zap.Error(err))
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrPaymentLookupFailed, err)
	}

	result := WebhookResult{ProposalID: provider.ExternalReference, Status: provider.Status}
	if !accept || provider.ExternalReference == "" {
		log.Info("[webhook][usecase] nothing to accept",
			zap.String("status", provider.Status), zap.String("external_reference", provider.ExternalReference))
		return result, nil
	}

	if _, err := u.proposals.Accept(ctx, provider.ExternalReference); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
			log.Warn("[webhook][usecase] proposal not accepted",
				zap.String("proposal_id", provider.ExternalReference), zap.Error(err))
			return result, nil
		}
		return WebhookResult{}, err
	}
	log.Info("[webhook][usecase] proposal accepted", zap.String("proposal_id", provider.ExternalReference))
	result.Handled = true
	return result, nil
}
