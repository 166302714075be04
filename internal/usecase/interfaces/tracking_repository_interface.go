package interfaces

import (
	"context"

	"clientportal/internal/domain/entities"
)

// ITrackingRepository stores per-entity aggregate hashes and one record per
// event, every key carrying the tracking retention TTL.
type ITrackingRepository interface {
	SaveEvent(ctx context.Context, ev entities.TrackingEvent) error
	Increment(ctx context.Context, target entities.TrackingTarget, id, field string) (int64, error)
	SetFields(ctx context.Context, target entities.TrackingTarget, id string, fields map[string]string) error
	// Touch refreshes the aggregate TTL.
	Touch(ctx context.Context, target entities.TrackingTarget, id string) error
	Stats(ctx context.Context, target entities.TrackingTarget, id string) (map[string]string, error)
}
