package entities

import "time"

// ProposalStatus represents the lifecycle of a priced service proposal.
//
// Domain notes:
//   - Every proposal starts as pending.
//   - accepted is driven by the payment provider callback, rejected by the client.
//   - expired is stamped lazily when a client opens a pending proposal past ExpiresAt.
//   - Nothing ever moves back to pending.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusExpired  ProposalStatus = "expired"
)

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo reports whether a proposal in status s may be moved to next.
// Re-applying the current status is allowed so provider retries stay idempotent.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	if next == s {
		return true
	}
	switch s {
	case ProposalStatusPending:
		return next == ProposalStatusAccepted || next == ProposalStatusRejected || next == ProposalStatusExpired
	case ProposalStatusExpired:
		// a late payment is still honoured
		return next == ProposalStatusAccepted
	}
	return false
}

type PaymentType string

const (
	PaymentTypeFull         PaymentType = "full"
	PaymentTypePartial      PaymentType = "partial"
	PaymentTypeInstallments PaymentType = "installments"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeFull, PaymentTypePartial, PaymentTypeInstallments:
		return true
	}
	return false
}

// ClientInfo is the contact block embedded in proposals and questionnaires.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Service is a proposal line item. IsCustom marks ad-hoc services typed in by
// staff as opposed to entries picked from the service catalog.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       *float64 `json:"price,omitempty"`
	IsCustom    bool     `json:"isCustom,omitempty"`
}

// Proposal is a priced service offer sent to one client.
//
// Storage model (key-value):
//   - proposal:<id>               JSON document
//   - proposal:ids                set of every proposal id
//   - proposal:email:<lower>      set of ids owned by a client email
//
// Cost is expressed in currency units (not cents) and is trusted from the caller.
type Proposal struct {
	ID               string         `json:"id"`
	Client           ClientInfo     `json:"client"`
	Services         []Service      `json:"services"`
	Cost             float64        `json:"cost"`
	Notes            string         `json:"notes,omitempty"`
	PaymentLink      string         `json:"paymentLink"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	ExpiresAt        *time.Time     `json:"expiresAt,omitempty"`
	Status           ProposalStatus `json:"status"`
	IsRecurring      bool           `json:"isRecurring"`
	PaymentType      PaymentType    `json:"paymentType"`
	DownPayment      *float64       `json:"downPayment,omitempty"`
	InstallmentCount *int           `json:"installmentCount,omitempty"`
	LastViewed       *time.Time     `json:"lastViewed,omitempty"`
	ViewCount        int            `json:"viewCount,omitempty"`
}

// IsPastExpiry reports whether the proposal carries an ExpiresAt that now has passed.
func (p Proposal) IsPastExpiry(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// ChargeAmount is the amount the first checkout must collect.
func (p Proposal) ChargeAmount() float64 {
	if p.PaymentType == PaymentTypePartial && p.DownPayment != nil {
		return *p.DownPayment
	}
	return p.Cost
}
