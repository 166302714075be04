package request

import (
	"strings"
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

type ClientRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company" binding:"max=200"`
	Phone   string `json:"phone" binding:"max=50"`
}

func (r ClientRequest) ToEntity() entities.ClientInfo {
	return entities.ClientInfo{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Company: strings.TrimSpace(r.Company),
		Phone:   strings.TrimSpace(r.Phone),
	}
}

type ServiceRequest struct {
	ID          string   `json:"id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	IsCustom    bool     `json:"isCustom"`
}

// CreateProposalRequest is the staff payload for POST /api/proposals.
type CreateProposalRequest struct {
	ID               string           `json:"id" binding:"omitempty,entityid"`
	Client           ClientRequest    `json:"client" binding:"required"`
	Services         []ServiceRequest `json:"services" binding:"required,min=1,dive"`
	Cost             float64          `json:"cost" binding:"gte=0"`
	Notes            string           `json:"notes"`
	ExpiresAt        *time.Time       `json:"expiresAt"`
	IsRecurring      bool             `json:"isRecurring"`
	PaymentType      string           `json:"paymentType" binding:"paymenttype"`
	DownPayment      *float64         `json:"downPayment" binding:"omitempty,gt=0"`
	InstallmentCount *int             `json:"installmentCount" binding:"omitempty,gte=2"`
}

func (r CreateProposalRequest) ToInput() usecase.CreateProposalInput {
	services := make([]entities.Service, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.Service{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Features:    s.Features,
			Price:       s.Price,
			IsCustom:    s.IsCustom,
		})
	}
	return usecase.CreateProposalInput{
		ID:               strings.TrimSpace(r.ID),
		Client:           r.Client.ToEntity(),
		Services:         services,
		Cost:             r.Cost,
		Notes:            r.Notes,
		ExpiresAt:        r.ExpiresAt,
		IsRecurring:      r.IsRecurring,
		PaymentType:      entities.PaymentType(r.PaymentType),
		DownPayment:      r.DownPayment,
		InstallmentCount: r.InstallmentCount,
	}
}
