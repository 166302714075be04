package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"clientportal/internal/adapter/persistence/repository"
	"clientportal/internal/domain/entities"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
	mock_interfaces "clientportal/internal/usecase/interfaces/mocks"
)

type trackingFixture struct {
	uc             *TrackingUseCase
	store          *kvstore.MemoryStore
	proposals      *repository.ProposalKVRepository
	questionnaires *repository.QuestionnaireKVRepository
}

func newTrackingFixture(metrics interfaces.IMetricsRecorder) *trackingFixture {
	store := kvstore.NewMemoryStore()
	f := &trackingFixture{
		store:          store,
		proposals:      repository.NewProposalKVRepository(store),
		questionnaires: repository.NewQuestionnaireKVRepository(store),
	}
	f.uc = NewTrackingUseCase(repository.NewTrackingKVRepository(store), f.proposals, f.questionnaires, metrics, nil)
	f.uc.now = func() time.Time { return time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC) }
	return f
}

func TestTrackingUseCase_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("internal hits are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		f := newTrackingFixture(metrics)

		metrics.EXPECT().RecordTrackingSkipped("internal")
		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetProposal, ID: "p1", Event: "open", Internal: true})

		stats, err := f.uc.Stats(ctx, entities.TrackingTargetProposal, "p1")
		require.NoError(t, err)
		assert.Empty(t, stats.Fields)
	})

	t.Run("invalid type and missing id are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		f := newTrackingFixture(metrics)

		metrics.EXPECT().RecordTrackingSkipped("invalid_type")
		metrics.EXPECT().RecordTrackingSkipped("missing_id")
		f.uc.Record(ctx, entities.TrackingEvent{Type: "invoice", ID: "x"})
		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetPortal, ID: " "})
	})

	t.Run("proposal open counts and stamps the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		f := newTrackingFixture(metrics)
		p, err := f.proposals.Create(ctx, entities.Proposal{Client: entities.ClientInfo{Name: "Acme", Email: "a@acme.com"}})
		require.NoError(t, err)

		metrics.EXPECT().RecordTrackingEvent("proposal", "open").Times(2)
		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetProposal, ID: p.ID, IP: "10.0.0.1"})
		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetProposal, ID: p.ID, Event: "OPEN", IP: "10.0.0.2"})

		stats, err := f.uc.Stats(ctx, entities.TrackingTargetProposal, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "2", stats.Fields["open_count"])
		assert.Equal(t, "open", stats.Fields["latest_event"])
		assert.Equal(t, "10.0.0.2", stats.Fields["latest_ip"])
		assert.Equal(t, "2026-05-04T10:00:00Z", stats.Fields["latest_timestamp"])

		stored, err := f.proposals.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.ViewCount)
		require.NotNil(t, stored.LastViewed)
	})

	t.Run("view stamp leaves the proposal document alone", func(t *testing.T) {
		f := newTrackingFixture(nil)
		p, err := f.proposals.Create(ctx, entities.Proposal{Client: entities.ClientInfo{Name: "Acme", Email: "a@acme.com"}})
		require.NoError(t, err)
		ok, err := f.proposals.UpdateStatus(ctx, p.ID, entities.ProposalStatusAccepted)
		require.NoError(t, err)
		require.True(t, ok)
		before, _, err := f.store.Get(ctx, "proposal:"+p.ID)
		require.NoError(t, err)

		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetProposal, ID: p.ID})

		after, _, err := f.store.Get(ctx, "proposal:"+p.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
		stored, err := f.proposals.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ProposalStatusAccepted, stored.Status)
		assert.Equal(t, 1, stored.ViewCount)
	})

	t.Run("unknown proposal id only updates the aggregate", func(t *testing.T) {
		f := newTrackingFixture(nil)
		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetProposal, ID: "ghost"})

		_, found, err := f.store.Get(ctx, "proposal:ghost")
		require.NoError(t, err)
		assert.False(t, found)
		views, err := f.store.HGetAll(ctx, "proposal:ghost:views")
		require.NoError(t, err)
		assert.Empty(t, views)
		stats, err := f.uc.Stats(ctx, entities.TrackingTargetProposal, "ghost")
		require.NoError(t, err)
		assert.Equal(t, "1", stats.Fields["open_count"])
	})

	t.Run("questionnaire view is stamped", func(t *testing.T) {
		f := newTrackingFixture(nil)
		q, err := f.questionnaires.Create(ctx, entities.Questionnaire{Client: entities.ClientInfo{Name: "Ana", Email: "ana@x.com"}, Status: entities.QuestionnaireStatusSent})
		require.NoError(t, err)

		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetQuestionnaire, ID: q.ID, Event: "start"})

		stored, err := f.questionnaires.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.ViewCount)
		stats, err := f.uc.Stats(ctx, entities.TrackingTargetQuestionnaire, q.ID)
		require.NoError(t, err)
		assert.Equal(t, "1", stats.Fields["start_count"])
	})

	t.Run("portal sections", func(t *testing.T) {
		f := newTrackingFixture(nil)

		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetPortal, ID: "portal-1", Event: "view", Section: "Reports"})
		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetPortal, ID: "portal-1", Event: "download", Section: "reports"})
		f.uc.Record(ctx, entities.TrackingEvent{Type: entities.TrackingTargetPortal, ID: "portal-1"})

		stats, err := f.uc.Stats(ctx, entities.TrackingTargetPortal, "portal-1")
		require.NoError(t, err)
		assert.Equal(t, "2", stats.Fields["reports_view_count"])
		assert.Equal(t, "1", stats.Fields["reports_download_count"])
		assert.Equal(t, "2026-05-04T10:00:00Z", stats.Fields["reports_last_viewed"])
		assert.Equal(t, "1", stats.Fields["overview_view_count"])
		assert.Equal(t, "1", stats.Fields["open_count"])
		assert.Equal(t, "reports", stats.Fields["latest_section"])
	})
}

func TestTrackingUseCase_Stats_InvalidTarget(t *testing.T) {
	f := newTrackingFixture(nil)
	_, err := f.uc.Stats(context.Background(), "invoice", "x")
	assert.ErrorIs(t, err, ErrInvalidTrackingTarget)
	_, err = f.uc.Stats(context.Background(), entities.TrackingTargetPortal, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSanitizeToken(t *testing.T) {
	assert.Equal(t, "cta_click", sanitizeToken(" CTA click "))
	assert.Equal(t, "a-b_c", sanitizeToken("a-b_c"))
	assert.Len(t, sanitizeToken(string(make([]byte, 200))), maxTrackingToken)
}
