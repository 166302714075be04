package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/tracking_usecase_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase/interfaces"
)

const (
	maxTrackingToken      = 64
	defaultPortalSection  = "overview"
	skipReasonInternal    = "internal"
	skipReasonInvalidType = "invalid_type"
	skipReasonMissingID   = "missing_id"
)

// ITrackingUseCase records engagement hits from the tracking pixel.
type ITrackingUseCase interface {
	// Record never fails: errors are logged and swallowed.
	Record(ctx context.Context, ev entities.TrackingEvent)
	Stats(ctx context.Context, target entities.TrackingTarget, id string) (entities.TrackingStats, error)
}

type TrackingUseCase struct {
	repo           interfaces.ITrackingRepository
	proposals      interfaces.IProposalRepository
	questionnaires interfaces.IQuestionnaireRepository
	metrics        interfaces.IMetricsRecorder
	logger         *zap.Logger
	now            func() time.Time
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(
	repo interfaces.ITrackingRepository,
	proposals interfaces.IProposalRepository,
	questionnaires interfaces.IQuestionnaireRepository,
	metrics interfaces.IMetricsRecorder,
	logger *zap.Logger,
) *TrackingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackingUseCase{repo: repo, proposals: proposals, questionnaires: questionnaires, metrics: metrics, logger: logger, now: time.Now}
}

// sanitizeToken keeps event and section names usable as key segments.
func sanitizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		if b.Len() >= maxTrackingToken {
			break
		}
	}
	return b.String()
}

func (u *TrackingUseCase) skip(reason string, ev entities.TrackingEvent) {
	u.logger.Debug("[tracking][usecase] skipped",
		zap.String("reason", reason), zap.String("type", string(ev.Type)), zap.String("id", ev.ID))
	if u.metrics != nil {
		u.metrics.RecordTrackingSkipped(reason)
	}
}

func (u *TrackingUseCase) Record(ctx context.Context, ev entities.TrackingEvent) {
	if ev.Internal {
		u.skip(skipReasonInternal, ev)
		return
	}
	if !ev.Type.IsValid() {
		u.skip(skipReasonInvalidType, ev)
		return
	}
	ev.ID = strings.TrimSpace(ev.ID)
	if ev.ID == "" {
		u.skip(skipReasonMissingID, ev)
		return
	}
	ev.Event = sanitizeToken(ev.Event)
	if ev.Event == "" {
		ev.Event = entities.DefaultTrackingEvent
	}
	ev.Section = sanitizeToken(ev.Section)
	now := u.now().UTC()
	ev.OccurredAt = now
	stamp := now.Format(time.RFC3339Nano)
	log := u.logger.With(zap.String("type", string(ev.Type)), zap.String("id", ev.ID), zap.String("event", ev.Event))

	if err := u.repo.SaveEvent(ctx, ev); err != nil {
		log.Warn("[tracking][usecase] failed saving event", zap.Error(err))
	}
	counter := ev.CounterField()
	if _, err := u.repo.Increment(ctx, ev.Type, ev.ID, counter); err != nil {
		log.Warn("[tracking][usecase] failed incrementing counter", zap.String("field", counter), zap.Error(err))
	}
	latest := map[string]string{
		"latest_event":     ev.Event,
		"latest_timestamp": stamp,
		"latest_ip":        ev.IP,
	}
	if ev.Section != "" {
		latest["latest_section"] = ev.Section
	}
	if err := u.repo.SetFields(ctx, ev.Type, ev.ID, latest); err != nil {
		log.Warn("[tracking][usecase] failed updating latest fields", zap.Error(err))
	}

	switch ev.Type {
	case entities.TrackingTargetProposal:
		u.stampProposal(ctx, ev.ID, now, log)
	case entities.TrackingTargetQuestionnaire:
		u.stampQuestionnaire(ctx, ev.ID, now, log)
	case entities.TrackingTargetPortal:
		u.stampPortalSection(ctx, ev, stamp, log)
	}

	if err := u.repo.Touch(ctx, ev.Type, ev.ID); err != nil {
		log.Warn("[tracking][usecase] failed refreshing retention", zap.Error(err))
	}
	if u.metrics != nil {
		u.metrics.RecordTrackingEvent(string(ev.Type), ev.Event)
	}
}

// stampProposal and stampQuestionnaire only touch the view fields, so a
// concurrent status change or response submission is never overwritten.
func (u *TrackingUseCase) stampProposal(ctx context.Context, id string, now time.Time, log *zap.Logger) {
	if u.proposals == nil {
		return
	}
	if _, err := u.proposals.RecordView(ctx, id, now); err != nil {
		log.Warn("[tracking][usecase] failed stamping proposal view", zap.Error(err))
	}
}

func (u *TrackingUseCase) stampQuestionnaire(ctx context.Context, id string, now time.Time, log *zap.Logger) {
	if u.questionnaires == nil {
		return
	}
	if _, err := u.questionnaires.RecordView(ctx, id, now); err != nil {
		log.Warn("[tracking][usecase] failed stamping questionnaire view", zap.Error(err))
	}
}

// stampPortalSection writes <section>_last_viewed and bumps
// <section>_view_count on the portal aggregate, unless the event counter
// already is that field.
func (u *TrackingUseCase) stampPortalSection(ctx context.Context, ev entities.TrackingEvent, stamp string, log *zap.Logger) {
	section := ev.Section
	if section == "" {
		section = defaultPortalSection
	}
	if err := u.repo.SetFields(ctx, ev.Type, ev.ID, map[string]string{section + "_last_viewed": stamp}); err != nil {
		log.Warn("[tracking][usecase] failed stamping portal section", zap.Error(err))
	}
	viewField := section + "_view_count"
	if viewField == ev.CounterField() {
		return
	}
	if _, err := u.repo.Increment(ctx, ev.Type, ev.ID, viewField); err != nil {
		log.Warn("[tracking][usecase] failed counting portal section view", zap.Error(err))
	}
}

func (u *TrackingUseCase) Stats(ctx context.Context, target entities.TrackingTarget, id string) (entities.TrackingStats, error) {
	id = strings.TrimSpace(id)
	if !target.IsValid() || id == "" {
		return entities.TrackingStats{}, ErrInvalidTrackingTarget
	}
	fields, err := u.repo.Stats(ctx, target, id)
	if err != nil {
		return entities.TrackingStats{}, err
	}
	if fields == nil {
		fields = map[string]string{}
	}
	return entities.TrackingStats{Type: target, ID: id, Fields: fields}, nil
}
