package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	appconfig "clientportal/internal/config"
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase/interfaces"
)

const (
	contactsPath   = "/contacts/"
	apiVersion     = "2021-07-28"
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 2048
)

var ErrCRMNotConfigured = errors.New("crm client not configured")

// StatusError is returned when the CRM answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("crm responded %d: %s", e.StatusCode, e.Body)
}

// Client pushes marketing leads to the CRM contacts API.
type Client struct {
	baseURL    string
	apiKey     string
	locationID string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ interfaces.ICRMClient = (*Client)(nil)

type contactRequest struct {
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	CompanyName string   `json:"companyName,omitempty"`
	LocationID  string   `json:"locationId,omitempty"`
	Source      string   `json:"source,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type contactResponse struct {
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

func NewClient(cfg appconfig.CRMConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.TimeoutDuration()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		locationID: cfg.LocationID,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// CreateContact creates the contact and returns the CRM contact id.
func (c *Client) CreateContact(ctx context.Context, lead entities.Lead) (string, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return "", ErrCRMNotConfigured
	}

	first, last := splitName(lead.Name)
	body, err := json.Marshal(contactRequest{
		FirstName:   first,
		LastName:    last,
		Name:        strings.TrimSpace(lead.Name),
		Email:       strings.TrimSpace(lead.Email),
		Phone:       lead.Phone,
		CompanyName: lead.Company,
		LocationID:  c.locationID,
		Source:      lead.Source,
		Tags:        lead.Tags,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("[lead][crm] request failed", zap.Error(err))
		return "", fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read crm response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}
		c.logger.Warn("[lead][crm] non-2xx response", zap.Int("status", resp.StatusCode))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out contactResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &out); err != nil {
			return "", fmt.Errorf("failed to decode crm response: %w", err)
		}
	}
	c.logger.Info("[lead][crm] contact created", zap.String("contact_id", out.Contact.ID))
	return out.Contact.ID, nil
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
