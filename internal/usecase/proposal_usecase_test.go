package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"clientportal/internal/adapter/persistence/repository"
	"clientportal/internal/domain/entities"
	"clientportal/internal/infrastructure/kvstore"
	mock_interfaces "clientportal/internal/usecase/interfaces/mocks"
)

func validProposalInput() CreateProposalInput {
	return CreateProposalInput{
		Client: entities.ClientInfo{Name: "Acme Corp", Email: "Buyer@Acme.com"},
		Services: []entities.Service{
			{ID: "seo", Title: "SEO", Description: "Monthly SEO", Features: []string{"audit"}},
			{ID: "ads", Title: "Ads"},
		},
		Cost: 1500,
	}
}

func newProposalUseCaseWithStore(t *testing.T, ctrl *gomock.Controller) (*ProposalUseCase, *mock_interfaces.MockIPaymentGateway, *repository.ProposalKVRepository) {
	t.Helper()
	repo := repository.NewProposalKVRepository(kvstore.NewMemoryStore())
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewProposalUseCase(repo, gateway, nil, ProposalSettings{BaseURL: "https://agency.test/", Currency: "BRL"}, nil)
	return uc, gateway, repo
}

func TestProposalUseCase_Create_Validations(t *testing.T) {
	uc := NewProposalUseCase(nil, nil, nil, ProposalSettings{}, nil)
	down := 2000.0
	one := 1

	cases := map[string]func(in *CreateProposalInput){
		"missing name":            func(in *CreateProposalInput) { in.Client.Name = " " },
		"missing email":           func(in *CreateProposalInput) { in.Client.Email = "" },
		"no services":             func(in *CreateProposalInput) { in.Services = nil },
		"service without id":      func(in *CreateProposalInput) { in.Services[0].ID = "" },
		"negative cost":           func(in *CreateProposalInput) { in.Cost = -1 },
		"id with a key separator": func(in *CreateProposalInput) { in.ID = "email:victim@example.com" },
		"reserved id":             func(in *CreateProposalInput) { in.ID = "ids" },
		"unknown payment":         func(in *CreateProposalInput) { in.PaymentType = "barter" },
		"partial without down payment": func(in *CreateProposalInput) {
			in.PaymentType = entities.PaymentTypePartial
		},
		"down payment above cost": func(in *CreateProposalInput) {
			in.PaymentType = entities.PaymentTypePartial
			in.DownPayment = &down
		},
		"single installment": func(in *CreateProposalInput) {
			in.PaymentType = entities.PaymentTypeInstallments
			in.InstallmentCount = &one
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validProposalInput()
			mutate(&in)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, ErrInvalidProposal) || !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrInvalidProposal, got %v", err)
			}
		})
	}
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("stores pending proposal with checkout link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, repo := newProposalUseCaseWithStore(t, ctrl)

		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
				if req.Amount != 1500 || req.Currency != "BRL" || req.Recurring {
					t.Fatalf("unexpected checkout request: %+v", req)
				}
				if req.NotificationURL != "https://agency.test/api/webhooks/mercadopago" {
					t.Fatalf("unexpected notification url %q", req.NotificationURL)
				}
				if !strings.HasPrefix(req.SuccessURL, "https://agency.test/proposals/"+req.ProposalID) {
					t.Fatalf("unexpected success url %q", req.SuccessURL)
				}
				if req.Title != "SEO, Ads" {
					t.Fatalf("unexpected title %q", req.Title)
				}
				return entities.CheckoutSession{ID: "pref-1", URL: "https://mp.test/pref-1"}, nil
			})

		p, err := uc.Create(context.Background(), validProposalInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProposalStatusPending {
			t.Fatalf("expected pending, got %s", p.Status)
		}
		if p.PaymentType != entities.PaymentTypeFull {
			t.Fatalf("expected full payment type, got %s", p.PaymentType)
		}
		if p.PaymentLink != "https://mp.test/pref-1" {
			t.Fatalf("unexpected payment link %q", p.PaymentLink)
		}

		stored, err := repo.GetByID(context.Background(), p.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored.Services) != 2 || stored.Services[0].Features[0] != "audit" || stored.Services[1].Features == nil {
			t.Fatalf("services not round-tripped: %+v", stored.Services)
		}
	})

	t.Run("partial charges the down payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, _ := newProposalUseCaseWithStore(t, ctrl)
		down := 500.0
		in := validProposalInput()
		in.PaymentType = entities.PaymentTypePartial
		in.DownPayment = &down

		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
				if req.Amount != 500 {
					t.Fatalf("expected down payment amount, got %v", req.Amount)
				}
				return entities.CheckoutSession{URL: "https://mp.test/x"}, nil
			})

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure falls back to placeholder link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repository.NewProposalKVRepository(kvstore.NewMemoryStore())
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewProposalUseCase(repo, gateway, metrics, ProposalSettings{BaseURL: "https://agency.test"}, nil)

		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("mp down"))
		metrics.EXPECT().RecordPaymentFallback()

		in := validProposalInput()
		in.ID = "fixed-id"
		p, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaymentLink != "https://agency.test/proposals/fixed-id/payment-pending" {
			t.Fatalf("unexpected fallback link %q", p.PaymentLink)
		}
	})

	t.Run("id naming an index key is rejected before anything is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, gateway, repo := newProposalUseCaseWithStore(t, ctrl)
		ctx := context.Background()

		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{URL: "https://mp.test/v"}, nil)
		victim := validProposalInput()
		victim.Client = entities.ClientInfo{Name: "Victim", Email: "victim@example.com"}
		stored, err := uc.Create(ctx, victim)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, id := range []string{"email:victim@example.com", "ids", "email"} {
			in := validProposalInput()
			in.ID = id
			if _, err := uc.Create(ctx, in); !errors.Is(err, ErrInvalidProposal) {
				t.Fatalf("id %q: expected ErrInvalidProposal, got %v", id, err)
			}
		}

		mine, err := repo.ListByEmail(ctx, "victim@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mine) != 1 || mine[0].ID != stored.ID {
			t.Fatalf("victim proposals changed: %+v", mine)
		}
		all, err := repo.List(ctx)
		if err != nil || len(all) != 1 {
			t.Fatalf("expected one stored proposal, got %d (%v)", len(all), err)
		}
	})

	t.Run("repository error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, ProposalSettings{}, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validProposalInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProposalUseCase_Transitions(t *testing.T) {
	t.Run("accepted proposal cannot be rejected or reverted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, ProposalSettings{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Status: entities.ProposalStatusAccepted}, nil)

		_, err := uc.Reject(context.Background(), "p1")
		if !errors.Is(err, ErrInvalidStatusTransition) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("accept is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, ProposalSettings{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Status: entities.ProposalStatusAccepted}, nil)

		p, err := uc.Accept(context.Background(), "p1")
		if err != nil || p.Status != entities.ProposalStatusAccepted {
			t.Fatalf("expected accepted without error, got %v %v", p.Status, err)
		}
	})

	t.Run("pending is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, ProposalSettings{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Status: entities.ProposalStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.ProposalStatusAccepted).Return(true, nil)

		p, err := uc.Accept(context.Background(), "p1")
		if err != nil || p.Status != entities.ProposalStatusAccepted {
			t.Fatalf("expected accepted, got %v %v", p.Status, err)
		}
	})

	t.Run("missing proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil, ProposalSettings{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Proposal{}, nil)

		_, err := uc.Reject(context.Background(), "nope")
		if !errors.Is(err, ErrProposalNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_View_ExpiresLazily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, gateway, repo := newProposalUseCaseWithStore(t, ctrl)
	gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{URL: "https://mp.test/x"}, nil)

	in := validProposalInput()
	expires := time.Now().Add(time.Hour)
	in.ExpiresAt = &expires
	p, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc.now = func() time.Time { return expires.Add(time.Minute) }
	viewed, err := uc.View(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viewed.Status != entities.ProposalStatusExpired {
		t.Fatalf("expected expired, got %s", viewed.Status)
	}
	stored, _ := repo.GetByID(context.Background(), p.ID)
	if stored.Status != entities.ProposalStatusExpired {
		t.Fatalf("expiry not persisted, got %s", stored.Status)
	}

	accepted, err := uc.Accept(context.Background(), p.ID)
	if err != nil || accepted.Status != entities.ProposalStatusAccepted {
		t.Fatalf("late payment should still accept, got %v %v", accepted.Status, err)
	}
}

func TestProposalUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProposalRepository(ctrl)
	uc := NewProposalUseCase(repo, nil, nil, ProposalSettings{}, nil)

	repo.EXPECT().Delete(gomock.Any(), "p1").Return(false, nil)

	if err := uc.Delete(context.Background(), "p1"); !errors.Is(err, ErrProposalNotFound) {
		t.Fatalf("expected ErrProposalNotFound, got %v", err)
	}
	if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
