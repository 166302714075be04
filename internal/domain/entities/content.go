package entities

import "time"

type ContentCategory string

const (
	ContentCategoryReports   ContentCategory = "reports"
	ContentCategoryResources ContentCategory = "resources"
	ContentCategoryTraining  ContentCategory = "training"
	ContentCategoryLinks     ContentCategory = "links"
)

func (c ContentCategory) IsValid() bool {
	switch c {
	case ContentCategoryReports, ContentCategoryResources, ContentCategoryTraining, ContentCategoryLinks:
		return true
	}
	return false
}

var ContentCategories = []ContentCategory{
	ContentCategoryReports,
	ContentCategoryResources,
	ContentCategoryTraining,
	ContentCategoryLinks,
}

type ContentType string

const (
	ContentTypeLink  ContentType = "link"
	ContentTypeFile  ContentType = "file"
	ContentTypeVideo ContentType = "video"
)

func (t ContentType) IsValid() bool {
	return t == ContentTypeLink || t == ContentTypeFile || t == ContentTypeVideo
}

// ContentItem is a piece of portal-visible content.
//
// ClientIDs is an allow-list of portal ids; empty means visible to every client.
type ContentItem struct {
	ID          string          `json:"id"`
	Category    ContentCategory `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url"`
	Type        ContentType     `json:"type"`
	ClientIDs   []string        `json:"clientIds,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// VisibleTo reports whether the item may be shown to the given portal id.
func (c ContentItem) VisibleTo(clientID string) bool {
	if len(c.ClientIDs) == 0 {
		return true
	}
	for _, id := range c.ClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}
