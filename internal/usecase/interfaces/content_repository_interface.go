package interfaces

import (
	"context"

	"clientportal/internal/domain/entities"
)

// IContentRepository keeps one JSON list per content category.
type IContentRepository interface {
	List(ctx context.Context, category entities.ContentCategory) ([]entities.ContentItem, error)
	Add(ctx context.Context, item entities.ContentItem) (entities.ContentItem, error)
	// Delete returns the removed item and false when it was not in the list.
	Delete(ctx context.Context, category entities.ContentCategory, id string) (entities.ContentItem, bool, error)
}
