package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
)

// TrackingKVRepository writes engagement data.
//
// Layout (every key expires after entities.TrackingRetention):
//   - track:<type>:<id>                                          aggregate hash
//   - track:<type>:<id>[:<section>]:<event>:<unix-nanos>-<nonce>  event JSON
type TrackingKVRepository struct {
	store kvstore.Store
}

var _ interfaces.ITrackingRepository = (*TrackingKVRepository)(nil)

func NewTrackingKVRepository(store kvstore.Store) *TrackingKVRepository {
	return &TrackingKVRepository{store: store}
}

func aggregateKey(target entities.TrackingTarget, id string) string {
	return trackingPrefix + ":" + string(target) + ":" + id
}

func eventKey(ev entities.TrackingEvent) string {
	parts := []string{aggregateKey(ev.Type, ev.ID)}
	if ev.Section != "" {
		parts = append(parts, ev.Section)
	}
	parts = append(parts, ev.Event, fmt.Sprintf("%d-%s", ev.OccurredAt.UnixNano(), ids.RandomSuffix(6)))
	return strings.Join(parts, ":")
}

func (r *TrackingKVRepository) SaveEvent(ctx context.Context, ev entities.TrackingEvent) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, eventKey(ev), string(raw), entities.TrackingRetention)
}

func (r *TrackingKVRepository) Increment(ctx context.Context, target entities.TrackingTarget, id, field string) (int64, error) {
	return r.store.HIncrBy(ctx, aggregateKey(target, id), field, 1)
}

func (r *TrackingKVRepository) SetFields(ctx context.Context, target entities.TrackingTarget, id string, fields map[string]string) error {
	return r.store.HSet(ctx, aggregateKey(target, id), fields)
}

func (r *TrackingKVRepository) Touch(ctx context.Context, target entities.TrackingTarget, id string) error {
	return r.store.Expire(ctx, aggregateKey(target, id), entities.TrackingRetention)
}

func (r *TrackingKVRepository) Stats(ctx context.Context, target entities.TrackingTarget, id string) (map[string]string, error) {
	return r.store.HGetAll(ctx, aggregateKey(target, id))
}
