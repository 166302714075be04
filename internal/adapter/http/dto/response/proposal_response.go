package response

import (
	"time"

	"clientportal/internal/domain/entities"
)

// ProposalSummary is the back-office list row. The checkout link is left out
// of lists and only returned on the detail route.
type ProposalSummary struct {
	ID          string                  `json:"id"`
	Client      entities.ClientInfo     `json:"client"`
	Cost        float64                 `json:"cost"`
	Status      entities.ProposalStatus `json:"status"`
	PaymentType entities.PaymentType    `json:"paymentType"`
	IsRecurring bool                    `json:"isRecurring"`
	Services    int                     `json:"services"`
	CreatedAt   time.Time               `json:"createdAt"`
	ExpiresAt   *time.Time              `json:"expiresAt,omitempty"`
	LastViewed  *time.Time              `json:"lastViewed,omitempty"`
	ViewCount   int                     `json:"viewCount"`
}

func FromProposalSummary(p entities.Proposal) ProposalSummary {
	return ProposalSummary{
		ID:          p.ID,
		Client:      p.Client,
		Cost:        p.Cost,
		Status:      p.Status,
		PaymentType: p.PaymentType,
		IsRecurring: p.IsRecurring,
		Services:    len(p.Services),
		CreatedAt:   p.CreatedAt,
		ExpiresAt:   p.ExpiresAt,
		LastViewed:  p.LastViewed,
		ViewCount:   p.ViewCount,
	}
}

func FromProposalList(in []entities.Proposal) []ProposalSummary {
	out := make([]ProposalSummary, 0, len(in))
	for _, p := range in {
		out = append(out, FromProposalSummary(p))
	}
	return out
}
