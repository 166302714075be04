package repository

import (
	"context"
	"encoding/json"
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
)

// ContentKVRepository keeps each category as one JSON list under
// content:<category>. Add and Delete rewrite the whole list.
type ContentKVRepository struct {
	store kvstore.Store
	now   func() time.Time
}

var _ interfaces.IContentRepository = (*ContentKVRepository)(nil)

func NewContentKVRepository(store kvstore.Store) *ContentKVRepository {
	return &ContentKVRepository{store: store, now: time.Now}
}

func (r *ContentKVRepository) List(ctx context.Context, category entities.ContentCategory) ([]entities.ContentItem, error) {
	items, ok, err := getJSON[[]entities.ContentItem](ctx, r.store, contentPrefix, string(category))
	if err != nil {
		return nil, err
	}
	if !ok || items == nil {
		return []entities.ContentItem{}, nil
	}
	return items, nil
}

func (r *ContentKVRepository) write(ctx context.Context, category entities.ContentCategory, items []entities.ContentItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, entityKey(contentPrefix, string(category)), string(raw), 0)
}

func (r *ContentKVRepository) Add(ctx context.Context, item entities.ContentItem) (entities.ContentItem, error) {
	items, err := r.List(ctx, item.Category)
	if err != nil {
		return entities.ContentItem{}, err
	}
	if item.ID == "" {
		item.ID = ids.NewContentID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = r.now().UTC()
	}
	items = append(items, item)
	if err := r.write(ctx, item.Category, items); err != nil {
		return entities.ContentItem{}, err
	}
	return item, nil
}

func (r *ContentKVRepository) Delete(ctx context.Context, category entities.ContentCategory, id string) (entities.ContentItem, bool, error) {
	items, err := r.List(ctx, category)
	if err != nil {
		return entities.ContentItem{}, false, err
	}
	for i, it := range items {
		if it.ID != id {
			continue
		}
		rest := append(items[:i:i], items[i+1:]...)
		if err := r.write(ctx, category, rest); err != nil {
			return entities.ContentItem{}, false, err
		}
		return it, true, nil
	}
	return entities.ContentItem{}, false, nil
}
