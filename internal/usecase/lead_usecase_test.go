package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"clientportal/internal/adapter/persistence/repository"
	"clientportal/internal/domain/entities"
	"clientportal/internal/infrastructure/kvstore"
	mock_interfaces "clientportal/internal/usecase/interfaces/mocks"
)

func TestLeadUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(ctrl *gomock.Controller) (*LeadUseCase, *mock_interfaces.MockICRMClient, *repository.ManualClientKVRepository, *repository.PortalKVRepository) {
		store := kvstore.NewMemoryStore()
		crm := mock_interfaces.NewMockICRMClient(ctrl)
		manual := repository.NewManualClientKVRepository(store)
		portals := repository.NewPortalKVRepository(store)
		return NewLeadUseCase(crm, manual, portals, nil), crm, manual, portals
	}

	t.Run("new lead becomes a website prospect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, crm, manual, _ := newUseCase(ctrl)

		crm.EXPECT().CreateContact(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, lead entities.Lead) (string, error) {
			assert.Equal(t, "lead@example.com", lead.Email)
			assert.Equal(t, "website", lead.Source)
			return "crm-42", nil
		})

		res, err := uc.Submit(ctx, entities.Lead{Name: "Lea", Email: " Lead@Example.com ", Message: "Need a site"})
		require.NoError(t, err)
		assert.Equal(t, "crm-42", res.ContactID)
		assert.False(t, res.AlreadyKnown)

		m, err := manual.GetByID(ctx, res.ClientID)
		require.NoError(t, err)
		assert.Equal(t, entities.ManualClientStatusProspect, m.Status)
		assert.Equal(t, "website", m.Source)
		assert.Contains(t, m.Notes, "Need a site")
	})

	t.Run("known portal email is not duplicated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, crm, manual, portals := newUseCase(ctrl)
		p, err := portals.Create(ctx, entities.ClientPortal{ClientName: "Jo", ClientEmail: "jo@example.com", IsActive: true})
		require.NoError(t, err)

		crm.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return("crm-1", nil)

		res, err := uc.Submit(ctx, entities.Lead{Name: "Jo", Email: "JO@example.com"})
		require.NoError(t, err)
		assert.True(t, res.AlreadyKnown)
		assert.Equal(t, p.ID, res.ClientID)

		all, err := manual.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("crm failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, crm, manual, _ := newUseCase(ctrl)

		crm.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return("", errors.New("502 from crm"))

		_, err := uc.Submit(ctx, entities.Lead{Name: "Lea", Email: "lea@example.com"})
		assert.ErrorIs(t, err, ErrCRMFailure)
		assert.ErrorIs(t, err, ErrUpstreamFailure)

		all, err := manual.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newUseCase(ctrl)

		_, err := uc.Submit(ctx, entities.Lead{Email: "a@b.com"})
		assert.ErrorIs(t, err, ErrInvalidLead)
		_, err = uc.Submit(ctx, entities.Lead{Name: "A", Email: "not-an-email"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("display-name addresses are rejected and nothing is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, manual, _ := newUseCase(ctrl)

		for _, email := range []string{"Bob <bob@example.com>", "bob@example.com, eve@example.com"} {
			_, err := uc.Submit(ctx, entities.Lead{Name: "Bob", Email: email})
			assert.ErrorIs(t, err, ErrInvalidLead, email)
		}

		all, err := manual.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("without crm the lead is kept locally", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		uc := NewLeadUseCase(nil, repository.NewManualClientKVRepository(store), repository.NewPortalKVRepository(store), nil)

		res, err := uc.Submit(ctx, entities.Lead{Name: "Lea", Email: "lea@example.com"})
		require.NoError(t, err)
		assert.Empty(t, res.ContactID)
		assert.NotEmpty(t, res.ClientID)
	})
}
