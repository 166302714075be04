package request

import (
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

type CreatePortalRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required,max=200"`
	Company string `json:"company" binding:"max=200"`
}

func (r CreatePortalRequest) ToInput() usecase.CreatePortalInput {
	return usecase.CreatePortalInput{Email: r.Email, Name: r.Name, Company: r.Company}
}

type SetPortalActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CreateManualClientRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company" binding:"max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Status  string `json:"status" binding:"omitempty,oneof=prospect active inactive churned"`
	Notes   string `json:"notes" binding:"max=5000"`
	Source  string `json:"source" binding:"max=50"`
}

func (r CreateManualClientRequest) ToInput() usecase.CreateManualClientInput {
	return usecase.CreateManualClientInput{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Phone:   r.Phone,
		Status:  r.Status,
		Notes:   r.Notes,
		Source:  r.Source,
	}
}

// UpdateClientRequest only touches the fields present in the body.
type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=200"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Company *string `json:"company" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Status  *string `json:"status" binding:"omitempty,oneof=prospect active inactive churned"`
	Notes   *string `json:"notes" binding:"omitempty,max=5000"`
}

func (r UpdateClientRequest) ToPatch() entities.ClientPatch {
	return entities.ClientPatch{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Phone:   r.Phone,
		Status:  r.Status,
		Notes:   r.Notes,
	}
}
