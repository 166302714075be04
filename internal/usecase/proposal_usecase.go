package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/proposal_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/usecase/interfaces"
)

// IProposalUseCase covers the proposal lifecycle: staff create and list,
// clients view and reject, the payment webhook accepts.
type IProposalUseCase interface {
	Create(ctx context.Context, in CreateProposalInput) (entities.Proposal, error)
	Get(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	ListForClient(ctx context.Context, email string) ([]entities.Proposal, error)
	View(ctx context.Context, id string) (entities.Proposal, error)
	Accept(ctx context.Context, id string) (entities.Proposal, error)
	Reject(ctx context.Context, id string) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}

type CreateProposalInput struct {
	ID               string
	Client           entities.ClientInfo
	Services         []entities.Service
	Cost             float64
	Notes            string
	ExpiresAt        *time.Time
	IsRecurring      bool
	PaymentType      entities.PaymentType
	DownPayment      *float64
	InstallmentCount *int
}

// ProposalSettings holds the links built into checkouts.
type ProposalSettings struct {
	BaseURL  string
	Currency string
}

type ProposalUseCase struct {
	repo     interfaces.IProposalRepository
	gateway  interfaces.IPaymentGateway
	metrics  interfaces.IMetricsRecorder
	settings ProposalSettings
	logger   *zap.Logger
	now      func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

// NewProposalUseCase accepts a nil gateway; proposals then always get the
// payment-pending placeholder link.
func NewProposalUseCase(repo interfaces.IProposalRepository, gateway interfaces.IPaymentGateway, metrics interfaces.IMetricsRecorder, settings ProposalSettings, logger *zap.Logger) *ProposalUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")
	return &ProposalUseCase{repo: repo, gateway: gateway, metrics: metrics, settings: settings, logger: logger, now: time.Now}
}

func validateProposal(in *CreateProposalInput) error {
	in.Client.Name = strings.TrimSpace(in.Client.Name)
	in.Client.Email = strings.TrimSpace(in.Client.Email)
	if in.Client.Name == "" {
		return invalid(ErrInvalidProposal, "client name is required")
	}
	if in.Client.Email == "" {
		return invalid(ErrInvalidProposal, "client email is required")
	}
	if len(in.Services) == 0 {
		return invalid(ErrInvalidProposal, "at least one service is required")
	}
	for i, s := range in.Services {
		if strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Title) == "" {
			return invalid(ErrInvalidProposal, fmt.Sprintf("service %d needs an id and a title", i))
		}
		if s.Features == nil {
			in.Services[i].Features = []string{}
		}
	}
	if in.Cost < 0 {
		return invalid(ErrInvalidProposal, "cost must not be negative")
	}
	if in.PaymentType == "" {
		in.PaymentType = entities.PaymentTypeFull
	}
	if !in.PaymentType.IsValid() {
		return invalid(ErrInvalidProposal, "unknown payment type")
	}

	switch in.PaymentType {
	case entities.PaymentTypePartial:
		if in.DownPayment == nil || *in.DownPayment <= 0 {
			return invalid(ErrInvalidProposal, "down payment is required for partial payment")
		}
		if *in.DownPayment > in.Cost {
			return invalid(ErrInvalidProposal, "down payment exceeds cost")
		}
	case entities.PaymentTypeInstallments:
		if in.InstallmentCount == nil || *in.InstallmentCount < 2 {
			return invalid(ErrInvalidProposal, "installment count of at least 2 is required")
		}
	}
	if in.PaymentType != entities.PaymentTypePartial {
		in.DownPayment = nil
	}
	if in.PaymentType != entities.PaymentTypeInstallments {
		in.InstallmentCount = nil
	}
	return nil
}

// Create stores a pending proposal with a checkout link. A gateway failure
// does not fail the creation: the proposal gets a placeholder link instead.
func (u *ProposalUseCase) Create(ctx context.Context, in CreateProposalInput) (entities.Proposal, error) {
	if err := validateProposal(&in); err != nil {
		return entities.Proposal{}, err
	}
	now := u.now().UTC()
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = ids.NewProposalID(in.Client.Name, now)
	} else if !ids.Valid(id) {
		return entities.Proposal{}, invalid(ErrInvalidProposal, "id must be lowercase letters, digits and dashes")
	}

	p := entities.Proposal{
		ID:               id,
		Client:           in.Client,
		Services:         in.Services,
		Cost:             in.Cost,
		Notes:            strings.TrimSpace(in.Notes),
		ExpiresAt:        in.ExpiresAt,
		IsRecurring:      in.IsRecurring,
		PaymentType:      in.PaymentType,
		DownPayment:      in.DownPayment,
		InstallmentCount: in.InstallmentCount,
	}
	p.PaymentLink = u.checkoutLink(ctx, p)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	u.logger.Info("[proposal][usecase] created",
		zap.String("proposal_id", created.ID), zap.String("payment_type", string(created.PaymentType)))
	return created, nil
}

func (u *ProposalUseCase) placeholderLink(id string) string {
	return u.settings.BaseURL + "/proposals/" + id + "/payment-pending"
}

func (u *ProposalUseCase) checkoutLink(ctx context.Context, p entities.Proposal) string {
	if u.gateway == nil {
		u.logger.Warn("[proposal][usecase] no payment gateway, using placeholder link", zap.String("proposal_id", p.ID))
		u.recordFallback()
		return u.placeholderLink(p.ID)
	}

	proposalURL := u.settings.BaseURL + "/proposals/" + p.ID
	req := entities.CheckoutRequest{
		ProposalID:      p.ID,
		Title:           checkoutTitle(p),
		Description:     strings.TrimSpace(p.Notes),
		Amount:          p.ChargeAmount(),
		Currency:        u.settings.Currency,
		PayerName:       p.Client.Name,
		PayerEmail:      p.Client.Email,
		Recurring:       p.IsRecurring,
		SuccessURL:      proposalURL + "?payment=success",
		PendingURL:      proposalURL + "?payment=pending",
		FailureURL:      proposalURL + "?payment=failure",
		NotificationURL: u.settings.BaseURL + "/api/webhooks/mercadopago",
	}
	if p.InstallmentCount != nil {
		req.Installments = *p.InstallmentCount
	}

	session, err := u.gateway.CreateCheckout(ctx, req)
	if err != nil || session.URL == "" {
		u.logger.Warn("[proposal][usecase] checkout creation failed, using placeholder link",
			zap.String("proposal_id", p.ID), zap.Error(err))
		u.recordFallback()
		return u.placeholderLink(p.ID)
	}
	return session.URL
}

func (u *ProposalUseCase) recordFallback() {
	if u.metrics != nil {
		u.metrics.RecordPaymentFallback()
	}
}

func checkoutTitle(p entities.Proposal) string {
	titles := make([]string, 0, len(p.Services))
	for _, s := range p.Services {
		titles = append(titles, s.Title)
	}
	title := strings.Join(titles, ", ")
	if len(title) > 250 {
		title = title[:250]
	}
	if title == "" {
		title = "Proposal " + p.ID
	}
	return title
}

func (u *ProposalUseCase) Get(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	return u.repo.List(ctx)
}

func (u *ProposalUseCase) ListForClient(ctx context.Context, email string) ([]entities.Proposal, error) {
	if strings.TrimSpace(email) == "" {
		return nil, invalid(ErrInvalidClient, "email is required")
	}
	return u.repo.ListByEmail(ctx, email)
}

// View is the client-facing read. A pending proposal read after ExpiresAt is
// moved to expired and persisted.
func (u *ProposalUseCase) View(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.Get(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status == entities.ProposalStatusPending && p.IsPastExpiry(u.now()) {
		p.Status = entities.ProposalStatusExpired
		if err := u.repo.Save(ctx, p); err != nil {
			return entities.Proposal{}, err
		}
		u.logger.Info("[proposal][usecase] expired on read", zap.String("proposal_id", p.ID))
	}
	return p, nil
}

func (u *ProposalUseCase) Accept(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusAccepted)
}

func (u *ProposalUseCase) Reject(ctx context.Context, id string) (entities.Proposal, error) {
	return u.transition(ctx, id, entities.ProposalStatusRejected)
}

func (u *ProposalUseCase) transition(ctx context.Context, id string, next entities.ProposalStatus) (entities.Proposal, error) {
	p, err := u.Get(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status == next {
		return p, nil
	}
	if !p.Status.CanTransitionTo(next) {
		return entities.Proposal{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, p.Status, next)
	}
	ok, err := u.repo.UpdateStatus(ctx, p.ID, next)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !ok {
		return entities.Proposal{}, ErrProposalNotFound
	}
	u.logger.Info("[proposal][usecase] status changed",
		zap.String("proposal_id", p.ID), zap.String("from", string(p.Status)), zap.String("to", string(next)))
	p.Status = next
	return p, nil
}

func (u *ProposalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid(ErrInvalidProposal, "id is required")
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProposalNotFound
	}
	u.logger.Info("[proposal][usecase] deleted", zap.String("proposal_id", id))
	return nil
}
