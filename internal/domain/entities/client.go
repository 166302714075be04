package entities

import "time"

// ClientPortal is the access record and identity anchor of a client-facing portal.
//
// Storage model (key-value):
//   - portal:<id>             hash (clientName, clientEmail, clientCompany, createdAt, isActive)
//   - portal:email:<lower>    portal id
//   - portal:ids              set of every portal id
type ClientPortal struct {
	ID            string    `json:"id"`
	ClientEmail   string    `json:"clientEmail"`
	ClientName    string    `json:"clientName"`
	ClientCompany string    `json:"clientCompany,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	IsActive      bool      `json:"isActive"`
}

// ManualClientStatus is free-form in practice; these are the values the admin UI offers.
const (
	ManualClientStatusProspect = "prospect"
	ManualClientStatusActive   = "active"
	ManualClientStatusInactive = "inactive"
	ManualClientStatusChurned  = "churned"
)

// ManualClient is an admin-entered contact that has not been promoted to a portal.
//
// Storage model (key-value):
//   - manual-client:<id>            hash (name, email, company, phone, status, ...)
//   - manual-client:email:<lower>   manual client id
//   - manual-client:ids             set of every manual client id
type ManualClient struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
	Source       string    `json:"source"`
	PortalID     string    `json:"portalId,omitempty"`
	PortalActive bool      `json:"portalActive,omitempty"`
}

// ClientKind tells which storage shape backs a Client.
type ClientKind string

const (
	ClientKindManual ClientKind = "manual"
	ClientKindPortal ClientKind = "portal"
)

// Client is the common read shape over ManualClient and ClientPortal.
type Client struct {
	ID           string     `json:"id"`
	Kind         ClientKind `json:"kind"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Company      string     `json:"company,omitempty"`
	Phone        string     `json:"phone"`
	Status       string     `json:"status,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Source       string     `json:"source,omitempty"`
	PortalID     string     `json:"portalId,omitempty"`
	PortalActive bool       `json:"portalActive"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func ClientFromManual(m ManualClient) Client {
	return Client{
		ID:           m.ID,
		Kind:         ClientKindManual,
		Name:         m.Name,
		Email:        m.Email,
		Company:      m.Company,
		Phone:        m.Phone,
		Status:       m.Status,
		Notes:        m.Notes,
		Source:       m.Source,
		PortalID:     m.PortalID,
		PortalActive: m.PortalActive,
		CreatedAt:    m.CreatedAt,
	}
}

// ClientFromPortal maps a portal into the common shape. Portals carry no phone.
func ClientFromPortal(p ClientPortal) Client {
	status := ManualClientStatusActive
	if !p.IsActive {
		status = ManualClientStatusInactive
	}
	return Client{
		ID:           p.ID,
		Kind:         ClientKindPortal,
		Name:         p.ClientName,
		Email:        p.ClientEmail,
		Company:      p.ClientCompany,
		Phone:        "",
		Status:       status,
		Source:       "portal",
		PortalID:     p.ID,
		PortalActive: p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

// ClientPatch carries the optional fields of a client update.
type ClientPatch struct {
	Name    *string
	Email   *string
	Company *string
	Phone   *string
	Status  *string
	Notes   *string
}
