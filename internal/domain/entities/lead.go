package entities

// Lead is a marketing-site contact request forwarded to the CRM.
type Lead struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Company  string   `json:"company,omitempty"`
	Message  string   `json:"message,omitempty"`
	Source   string   `json:"source,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	CRMRefID string   `json:"crmRefId,omitempty"`
}
