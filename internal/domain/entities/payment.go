package entities

// CheckoutRequest describes the payable link requested for a proposal.
//
// Recurring proposals become a monthly subscription; everything else becomes a
// one-off checkout. Installments caps the card installments offered (0 = provider default).
type CheckoutRequest struct {
	ProposalID   string
	Title        string
	Description  string
	Amount       float64
	Currency     string
	PayerName    string
	PayerEmail   string
	Recurring    bool
	Installments int
	SuccessURL   string
	PendingURL   string
	FailureURL   string
	// NotificationURL receives the provider webhook.
	NotificationURL string
}

// CheckoutSession is the provider's answer: an id and the URL the client opens.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ProviderPayment is the provider-side state of a payment or subscription.
// ExternalReference carries the proposal id.
type ProviderPayment struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"externalReference"`
}

// Provider statuses that settle a proposal.
const (
	ProviderStatusApproved   = "approved"
	ProviderStatusAuthorized = "authorized"
)

func (p ProviderPayment) IsSettled() bool {
	return p.Status == ProviderStatusApproved || p.Status == ProviderStatusAuthorized
}
