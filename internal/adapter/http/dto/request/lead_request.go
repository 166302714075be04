package request

import "clientportal/internal/domain/entities"

// LeadRequest is the marketing contact form.
type LeadRequest struct {
	Name    string   `json:"name" binding:"required,max=200"`
	Email   string   `json:"email" binding:"required,email"`
	Phone   string   `json:"phone" binding:"max=50"`
	Company string   `json:"company" binding:"max=200"`
	Message string   `json:"message" binding:"max=5000"`
	Source  string   `json:"source" binding:"max=50"`
	Tags    []string `json:"tags" binding:"max=20"`
}

func (r LeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Message: r.Message,
		Source:  r.Source,
		Tags:    r.Tags,
	}
}
