package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/lead_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/usecase/interfaces"
)

const leadSourceWebsite = "website"

// leadValidate applies the request-binding email rule; display-name forms
// such as "Bob <bob@example.com>" fail it.
var leadValidate = validator.New()

type LeadResult struct {
	ContactID    string `json:"contactId,omitempty"`
	ClientID     string `json:"clientId,omitempty"`
	AlreadyKnown bool   `json:"alreadyKnown"`
}

// ILeadUseCase accepts marketing-site contact requests.
type ILeadUseCase interface {
	Submit(ctx context.Context, lead entities.Lead) (LeadResult, error)
}

type LeadUseCase struct {
	crm     interfaces.ICRMClient
	manual  interfaces.IManualClientRepository
	portals interfaces.IPortalRepository
	logger  *zap.Logger
	now     func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

// NewLeadUseCase accepts a nil crm, in which case leads are only recorded locally.
func NewLeadUseCase(crm interfaces.ICRMClient, manual interfaces.IManualClientRepository, portals interfaces.IPortalRepository, logger *zap.Logger) *LeadUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadUseCase{crm: crm, manual: manual, portals: portals, logger: logger, now: time.Now}
}

func (u *LeadUseCase) Submit(ctx context.Context, lead entities.Lead) (LeadResult, error) {
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	if lead.Name == "" {
		return LeadResult{}, invalid(ErrInvalidLead, "name is required")
	}
	if lead.Email == "" {
		return LeadResult{}, invalid(ErrInvalidLead, "email is required")
	}
	if err := leadValidate.Var(lead.Email, "email"); err != nil {
		return LeadResult{}, invalid(ErrInvalidLead, "email is malformed")
	}
	if lead.Source == "" {
		lead.Source = leadSourceWebsite
	}
	log := u.logger.With(zap.String("email", lead.Email))

	var result LeadResult
	if u.crm == nil {
		log.Warn("[lead][usecase] crm not configured, lead kept locally only")
	} else {
		contactID, err := u.crm.CreateContact(ctx, lead)
		if err != nil {
			log.Error("[lead][usecase] crm contact creation failed", zap.Error(err))
			return LeadResult{}, fmt.Errorf("%w: %v", ErrCRMFailure, err)
		}
		result.ContactID = contactID
		log.Info("[lead][usecase] crm contact created", zap.String("contact_id", contactID))
	}

	manualID, err := u.manual.GetIDByEmail(ctx, lead.Email)
	if err != nil {
		return result, err
	}
	portalID, err := u.portals.GetIDByEmail(ctx, lead.Email)
	if err != nil {
		return result, err
	}
	if manualID != "" || portalID != "" {
		result.AlreadyKnown = true
		result.ClientID = manualID
		if result.ClientID == "" {
			result.ClientID = portalID
		}
		return result, nil
	}

	now := u.now().UTC()
	notes := strings.TrimSpace(lead.Message)
	if result.ContactID != "" {
		notes = strings.TrimSpace(notes + "\ncrm contact: " + result.ContactID)
	}
	m, err := u.manual.Create(ctx, entities.ManualClient{
		ID:           ids.NewManualClientID(now),
		Name:         lead.Name,
		Email:        lead.Email,
		Company:      strings.TrimSpace(lead.Company),
		Phone:        strings.TrimSpace(lead.Phone),
		Status:       entities.ManualClientStatusProspect,
		Notes:        notes,
		CreatedAt:    now,
		LastActivity: now,
		Source:       leadSourceWebsite,
	})
	if err != nil {
		return result, err
	}
	result.ClientID = m.ID
	log.Info("[lead][usecase] prospect recorded", zap.String("client_id", m.ID))
	return result, nil
}
