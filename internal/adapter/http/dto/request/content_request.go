package request

import (
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

type AddContentRequest struct {
	Title       string   `json:"title" binding:"required,max=300"`
	Description string   `json:"description" binding:"max=2000"`
	URL         string   `json:"url" binding:"required,url"`
	Type        string   `json:"type" binding:"contenttype"`
	ClientIDs   []string `json:"clientIds"`
}

func (r AddContentRequest) ToInput(category entities.ContentCategory) usecase.AddContentInput {
	return usecase.AddContentInput{
		Category:    category,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Type:        entities.ContentType(r.Type),
		ClientIDs:   r.ClientIDs,
	}
}

// UploadContentForm is the multipart form of POST /api/content/:category/upload.
type UploadContentForm struct {
	Title       string   `form:"title" binding:"max=300"`
	Description string   `form:"description" binding:"max=2000"`
	ClientIDs   []string `form:"clientIds"`
}
