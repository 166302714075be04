package response

import (
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

func OK() SuccessResponse { return SuccessResponse{Success: true} }

type QuestionnaireFormResponse struct {
	Questionnaire entities.Questionnaire         `json:"questionnaire"`
	Template      entities.QuestionnaireTemplate `json:"template"`
}

type PortalCreatedResponse struct {
	Portal  entities.ClientPortal `json:"portal"`
	Created bool                  `json:"created"`
	URL     string                `json:"url"`
}

// FromPortal builds the creation response; baseURL is the public site root.
func FromPortal(p entities.ClientPortal, created bool, baseURL string) PortalCreatedResponse {
	return PortalCreatedResponse{Portal: p, Created: created, URL: PortalURL(baseURL, p.ID)}
}

func PortalURL(baseURL, portalID string) string {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return baseURL + "/portal/" + portalID
}

type SessionResponse struct {
	Role      entities.Role `json:"role"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{Role: s.Role, ExpiresAt: s.ExpiresAt}
}

type LeadResponse struct {
	Success      bool   `json:"success"`
	ContactID    string `json:"contactId,omitempty"`
	ClientID     string `json:"clientId,omitempty"`
	AlreadyKnown bool   `json:"alreadyKnown"`
}

func FromLeadResult(r usecase.LeadResult) LeadResponse {
	return LeadResponse{Success: true, ContactID: r.ContactID, ClientID: r.ClientID, AlreadyKnown: r.AlreadyKnown}
}
