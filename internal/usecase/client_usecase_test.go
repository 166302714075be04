package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientportal/internal/adapter/persistence/repository"
	"clientportal/internal/domain/entities"
	"clientportal/internal/infrastructure/kvstore"
)

type clientFixture struct {
	uc             *ClientUseCase
	portals        *repository.PortalKVRepository
	manual         *repository.ManualClientKVRepository
	proposals      *repository.ProposalKVRepository
	questionnaires *repository.QuestionnaireKVRepository
	content        *repository.ContentKVRepository
}

func newClientFixture() *clientFixture {
	store := kvstore.NewMemoryStore()
	f := &clientFixture{
		portals:        repository.NewPortalKVRepository(store),
		manual:         repository.NewManualClientKVRepository(store),
		proposals:      repository.NewProposalKVRepository(store),
		questionnaires: repository.NewQuestionnaireKVRepository(store),
		content:        repository.NewContentKVRepository(store),
	}
	f.uc = NewClientUseCase(f.portals, f.manual, f.proposals, f.questionnaires, f.content, nil)
	return f
}

func TestClientUseCase_CreateClientPortal(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent on email", func(t *testing.T) {
		f := newClientFixture()
		first, created, err := f.uc.CreateClientPortal(ctx, CreatePortalInput{Email: "Jo@Example.com", Name: "Jo Silva"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, first.IsActive)
		assert.Equal(t, "jo@example.com", first.ClientEmail)

		second, created, err := f.uc.CreateClientPortal(ctx, CreatePortalInput{Email: "jo@example.com ", Name: "Someone Else"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Jo Silva", second.ClientName)

		all, err := f.uc.ListPortals(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("requires email and name", func(t *testing.T) {
		f := newClientFixture()
		_, _, err := f.uc.CreateClientPortal(ctx, CreatePortalInput{Name: "Jo"})
		assert.ErrorIs(t, err, ErrClientEmailRequired)
		_, _, err = f.uc.CreateClientPortal(ctx, CreatePortalInput{Email: "jo@example.com"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestClientUseCase_GetPortalView(t *testing.T) {
	ctx := context.Background()
	f := newClientFixture()

	portal, _, err := f.uc.CreateClientPortal(ctx, CreatePortalInput{Email: "jo@example.com", Name: "Jo"})
	require.NoError(t, err)

	_, err = f.proposals.Create(ctx, entities.Proposal{Client: entities.ClientInfo{Name: "Jo", Email: "JO@example.com"}})
	require.NoError(t, err)
	_, err = f.proposals.Create(ctx, entities.Proposal{Client: entities.ClientInfo{Name: "Other", Email: "other@example.com"}})
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	q, err := f.questionnaires.Create(ctx, entities.Questionnaire{
		Client:    entities.ClientInfo{Name: "Jo", Email: "jo@example.com"},
		Status:    entities.QuestionnaireStatusSent,
		ExpiresAt: past,
	})
	require.NoError(t, err)

	_, err = f.content.Add(ctx, entities.ContentItem{Category: entities.ContentCategoryReports, Title: "All", URL: "https://x/all", Type: entities.ContentTypeLink})
	require.NoError(t, err)
	_, err = f.content.Add(ctx, entities.ContentItem{Category: entities.ContentCategoryReports, Title: "Mine", URL: "https://x/mine", Type: entities.ContentTypeLink, ClientIDs: []string{portal.ID}})
	require.NoError(t, err)
	_, err = f.content.Add(ctx, entities.ContentItem{Category: entities.ContentCategoryReports, Title: "Theirs", URL: "https://x/theirs", Type: entities.ContentTypeLink, ClientIDs: []string{"someone-else"}})
	require.NoError(t, err)

	view, err := f.uc.GetPortalView(ctx, portal.ID)
	require.NoError(t, err)
	assert.Len(t, view.Proposals, 1)
	require.Len(t, view.Questionnaires, 1)
	assert.Equal(t, entities.QuestionnaireStatusExpired, view.Questionnaires[0].Status)
	assert.Len(t, view.Content[entities.ContentCategoryReports], 2)
	assert.Empty(t, view.Content[entities.ContentCategoryTraining])

	stored, err := f.questionnaires.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuestionnaireStatusExpired, stored.Status)

	_, err = f.uc.SetPortalActive(ctx, portal.ID, false)
	require.NoError(t, err)
	_, err = f.uc.GetPortalView(ctx, portal.ID)
	assert.ErrorIs(t, err, ErrPortalInactive)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.GetPortalView(ctx, "ghost")
	assert.ErrorIs(t, err, ErrPortalNotFound)
}

func TestClientUseCase_ManualClients(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults and email conflicts", func(t *testing.T) {
		f := newClientFixture()
		c, err := f.uc.CreateManualClient(ctx, CreateManualClientInput{Name: "Bea", Email: "Bea@Example.com"})
		require.NoError(t, err)
		assert.Equal(t, entities.ClientKindManual, c.Kind)
		assert.Equal(t, entities.ManualClientStatusProspect, c.Status)
		assert.Equal(t, "admin", c.Source)
		assert.Equal(t, "bea@example.com", c.Email)

		_, err = f.uc.CreateManualClient(ctx, CreateManualClientInput{Name: "Bea 2", Email: "BEA@example.com"})
		assert.ErrorIs(t, err, ErrClientEmailConflict)

		_, _, err = f.uc.CreateClientPortal(ctx, CreatePortalInput{Email: "portal@example.com", Name: "P"})
		require.NoError(t, err)
		_, err = f.uc.CreateManualClient(ctx, CreateManualClientInput{Name: "P2", Email: "portal@example.com"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("resolve and update both shapes", func(t *testing.T) {
		f := newClientFixture()
		m, err := f.uc.CreateManualClient(ctx, CreateManualClientInput{Name: "Bea", Email: "bea@example.com", Phone: "123"})
		require.NoError(t, err)
		p, _, err := f.uc.CreateClientPortal(ctx, CreatePortalInput{Email: "jo@example.com", Name: "Jo"})
		require.NoError(t, err)

		name := "Beatriz"
		updated, err := f.uc.UpdateClient(ctx, m.ID, entities.ClientPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Beatriz", updated.Name)
		assert.Equal(t, "123", updated.Phone)

		company := "Jo Ltd"
		phone := "999"
		updatedPortal, err := f.uc.UpdateClient(ctx, p.ID, entities.ClientPatch{Company: &company, Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, entities.ClientKindPortal, updatedPortal.Kind)
		assert.Equal(t, "Jo Ltd", updatedPortal.Company)
		assert.Empty(t, updatedPortal.Phone)

		taken := "jo@example.com"
		_, err = f.uc.UpdateClient(ctx, m.ID, entities.ClientPatch{Email: &taken})
		assert.ErrorIs(t, err, ErrClientEmailConflict)

		_, err = f.uc.ResolveClient(ctx, "ghost")
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("list merges both kinds", func(t *testing.T) {
		f := newClientFixture()
		_, err := f.uc.CreateManualClient(ctx, CreateManualClientInput{Name: "Bea", Email: "bea@example.com"})
		require.NoError(t, err)
		_, _, err = f.uc.CreateClientPortal(ctx, CreatePortalInput{Email: "jo@example.com", Name: "Jo"})
		require.NoError(t, err)

		all, err := f.uc.ListClients(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete", func(t *testing.T) {
		f := newClientFixture()
		m, err := f.uc.CreateManualClient(ctx, CreateManualClientInput{Name: "Bea", Email: "bea@example.com"})
		require.NoError(t, err)
		require.NoError(t, f.uc.DeleteClient(ctx, m.ID))
		assert.ErrorIs(t, f.uc.DeleteClient(ctx, m.ID), ErrClientNotFound)
	})
}

func TestClientUseCase_ConvertToPortal(t *testing.T) {
	ctx := context.Background()

	t.Run("moves manual client to a portal", func(t *testing.T) {
		f := newClientFixture()
		m, err := f.uc.CreateManualClient(ctx, CreateManualClientInput{Name: "Bea", Email: "bea@example.com", Company: "B Co"})
		require.NoError(t, err)

		portal, err := f.uc.ConvertToPortal(ctx, m.ID)
		require.NoError(t, err)
		assert.True(t, portal.IsActive)
		assert.Equal(t, "bea@example.com", portal.ClientEmail)
		assert.Equal(t, "B Co", portal.ClientCompany)

		gone, err := f.manual.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Empty(t, gone.ID)

		resolved, err := f.uc.ResolveClient(ctx, portal.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ClientKindPortal, resolved.Kind)

		_, err = f.uc.ConvertToPortal(ctx, m.ID)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("email already owned by a portal", func(t *testing.T) {
		f := newClientFixture()
		_, err := f.manual.Create(ctx, entities.ManualClient{ID: "mc-1", Name: "Bea", Email: "bea@example.com"})
		require.NoError(t, err)
		_, err = f.portals.Create(ctx, entities.ClientPortal{ClientName: "Bea", ClientEmail: "bea@example.com", IsActive: true})
		require.NoError(t, err)

		_, err = f.uc.ConvertToPortal(ctx, "mc-1")
		assert.ErrorIs(t, err, ErrAlreadyHasPortal)
		assert.ErrorIs(t, err, ErrConflict)

		still, err := f.manual.GetByID(ctx, "mc-1")
		require.NoError(t, err)
		assert.Equal(t, "mc-1", still.ID)
	})

	t.Run("manual client already linked to a portal", func(t *testing.T) {
		f := newClientFixture()
		_, err := f.manual.Create(ctx, entities.ManualClient{ID: "mc-3", Name: "Cid", Email: "cid@example.com", PortalID: "p-old", PortalActive: true})
		require.NoError(t, err)

		_, err = f.uc.ConvertToPortal(ctx, "mc-3")
		assert.ErrorIs(t, err, ErrAlreadyHasPortal)
		assert.ErrorIs(t, err, ErrConflict)

		still, err := f.manual.GetByID(ctx, "mc-3")
		require.NoError(t, err)
		assert.Equal(t, "mc-3", still.ID)
		assert.Equal(t, "p-old", still.PortalID)
		assert.Equal(t, "cid@example.com", still.Email)

		portalID, err := f.portals.GetIDByEmail(ctx, "cid@example.com")
		require.NoError(t, err)
		assert.Empty(t, portalID)
		portals, err := f.portals.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, portals)
	})

	t.Run("manual client without email", func(t *testing.T) {
		f := newClientFixture()
		_, err := f.manual.Create(ctx, entities.ManualClient{ID: "mc-2", Name: "NoMail"})
		require.NoError(t, err)

		_, err = f.uc.ConvertToPortal(ctx, "mc-2")
		assert.ErrorIs(t, err, ErrClientEmailRequired)
	})
}
