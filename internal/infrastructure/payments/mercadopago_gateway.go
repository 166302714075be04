package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"

	appconfig "clientportal/internal/config"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase/interfaces"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidCheckoutRequest          = errors.New("invalid checkout request")
	ErrInvalidProviderID               = errors.New("invalid provider id")
)

const mockCheckoutBaseURL = "https://www.mercadopago.com.br/mock-checkout/"

// MercadoPagoGateway creates checkout preferences for one-off charges and
// preapprovals for recurring ones, and looks both up when the webhook fires.
//
// In mock mode no HTTP call is made: checkouts get a fake URL and every lookup
// of a mock id reports it approved.
type MercadoPagoGateway struct {
	preferences   preference.Client
	subscriptions preapproval.Client
	payments      payment.Client
	currency      string
	logger        *zap.Logger

	mockMode bool
	mu       sync.Mutex
	mockRefs map[string]string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	currency := strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = "BRL"
	}

	if cfg.Mock {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currency: currency, logger: logger, mockRefs: map[string]string{}}, nil
	}

	if cfg.AccessToken == "" {
		logger.Warn("[payment][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized", zap.String("currency", currency))

	return &MercadoPagoGateway{
		preferences:   preference.NewClient(sdkCfg),
		subscriptions: preapproval.NewClient(sdkCfg),
		payments:      payment.NewClient(sdkCfg),
		currency:      currency,
		logger:        logger,
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if strings.TrimSpace(req.ProposalID) == "" || req.Amount <= 0 {
		return entities.CheckoutSession{}, ErrInvalidCheckoutRequest
	}
	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	if g.mockMode {
		return g.mockCheckout(req), nil
	}
	if g.preferences == nil || g.subscriptions == nil {
		g.logger.Error("[payment][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	if req.Recurring {
		return g.createSubscription(ctx, req, currency)
	}
	return g.createPreference(ctx, req, currency)
}

func (g *MercadoPagoGateway) createPreference(ctx context.Context, req entities.CheckoutRequest, currency string) (entities.CheckoutSession, error) {
	g.logger.Info("[payment][gateway] create preference start",
		zap.String("proposal_id", req.ProposalID), zap.Float64("amount", req.Amount))

	pref := preference.Request{
		Items: []preference.ItemRequest{{
			ID:          req.ProposalID,
			Title:       req.Title,
			Description: req.Description,
			CurrencyID:  currency,
			Quantity:    1,
			UnitPrice:   req.Amount,
		}},
		Payer: &preference.PayerRequest{
			Name:  req.PayerName,
			Email: req.PayerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Pending: req.PendingURL,
			Failure: req.FailureURL,
		},
		ExternalReference: req.ProposalID,
		NotificationURL:   req.NotificationURL,
	}
	if req.Installments > 1 {
		pref.PaymentMethods = &preference.PaymentMethodsRequest{Installments: req.Installments}
	}

	resp, err := g.preferences.Create(ctx, pref)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk preference create failed", zap.String("proposal_id", req.ProposalID), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	g.logger.Info("[payment][gateway] create preference success",
		zap.String("proposal_id", req.ProposalID), zap.String("preference_id", resp.ID))
	return entities.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) createSubscription(ctx context.Context, req entities.CheckoutRequest, currency string) (entities.CheckoutSession, error) {
	g.logger.Info("[payment][gateway] create subscription start",
		zap.String("proposal_id", req.ProposalID), zap.Float64("amount", req.Amount))

	resp, err := g.subscriptions.Create(ctx, preapproval.Request{
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: req.Amount,
			CurrencyID:        currency,
		},
		BackURL:           req.SuccessURL,
		ExternalReference: req.ProposalID,
		PayerEmail:        req.PayerEmail,
		Reason:            req.Title,
		Status:            "pending",
	})
	if err != nil {
		g.logger.Error("[payment][gateway] sdk preapproval create failed", zap.String("proposal_id", req.ProposalID), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	g.logger.Info("[payment][gateway] create subscription success",
		zap.String("proposal_id", req.ProposalID), zap.String("preapproval_id", resp.ID))
	return entities.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

// GetPayment fetches a payment by the numeric id carried in the webhook body.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, id string) (entities.ProviderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProviderPayment{}, ErrInvalidProviderID
	}
	if g.mockMode {
		return g.mockLookup(id), nil
	}
	if g.payments == nil {
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	numericID, err := strconv.Atoi(id)
	if err != nil {
		return entities.ProviderPayment{}, fmt.Errorf("%w: %q", ErrInvalidProviderID, id)
	}
	resp, err := g.payments.Get(ctx, numericID)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk payment get failed", zap.String("payment_id", id), zap.Error(err))
		return entities.ProviderPayment{}, err
	}
	g.logger.Info("[payment][gateway] payment fetched",
		zap.String("payment_id", id), zap.String("status", resp.Status), zap.String("external_reference", resp.ExternalReference))
	return entities.ProviderPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}

func (g *MercadoPagoGateway) GetSubscription(ctx context.Context, id string) (entities.ProviderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProviderPayment{}, ErrInvalidProviderID
	}
	if g.mockMode {
		return g.mockLookup(id), nil
	}
	if g.subscriptions == nil {
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.subscriptions.Get(ctx, id)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk preapproval get failed", zap.String("preapproval_id", id), zap.Error(err))
		return entities.ProviderPayment{}, err
	}
	g.logger.Info("[payment][gateway] subscription fetched",
		zap.String("preapproval_id", id), zap.String("status", resp.Status), zap.String("external_reference", resp.ExternalReference))
	return entities.ProviderPayment{
		ID:                resp.ID,
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}

func (g *MercadoPagoGateway) mockCheckout(req entities.CheckoutRequest) entities.CheckoutSession {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	g.mu.Lock()
	g.mockRefs[id] = req.ProposalID
	g.mu.Unlock()

	kind := "preference"
	if req.Recurring {
		kind = "preapproval"
	}
	g.logger.Info("[payment][gateway] mock checkout created",
		zap.String("proposal_id", req.ProposalID), zap.String("kind", kind), zap.String("checkout_id", id))
	return entities.CheckoutSession{ID: id, URL: mockCheckoutBaseURL + kind + "/" + id}
}

// mockLookup reports every id as approved. Ids issued by mockCheckout resolve
// to their proposal; any other id is treated as the proposal id itself.
func (g *MercadoPagoGateway) mockLookup(id string) entities.ProviderPayment {
	g.mu.Lock()
	ref, ok := g.mockRefs[id]
	g.mu.Unlock()
	if !ok {
		ref = id
	}
	return entities.ProviderPayment{ID: id, Status: entities.ProviderStatusApproved, ExternalReference: ref}
}
