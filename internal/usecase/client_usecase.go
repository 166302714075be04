package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/client_usecase_mock.go -package=mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/usecase/interfaces"
)

// IClientUseCase reconciles manual clients and client portals behind one
// client id space and serves the client portal view.
type IClientUseCase interface {
	CreateClientPortal(ctx context.Context, in CreatePortalInput) (entities.ClientPortal, bool, error)
	ListPortals(ctx context.Context) ([]entities.ClientPortal, error)
	SetPortalActive(ctx context.Context, id string, active bool) (entities.ClientPortal, error)
	DeletePortal(ctx context.Context, id string) error
	GetPortalView(ctx context.Context, portalID string) (PortalView, error)

	CreateManualClient(ctx context.Context, in CreateManualClientInput) (entities.Client, error)
	ResolveClient(ctx context.Context, id string) (entities.Client, error)
	UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ConvertToPortal(ctx context.Context, manualClientID string) (entities.ClientPortal, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
}

type CreatePortalInput struct {
	Email   string
	Name    string
	Company string
}

type CreateManualClientInput struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Status  string
	Notes   string
	Source  string
}

// PortalView is everything a client sees on their portal page.
type PortalView struct {
	Portal         entities.ClientPortal                               `json:"portal"`
	Proposals      []entities.Proposal                                 `json:"proposals"`
	Questionnaires []entities.Questionnaire                            `json:"questionnaires"`
	Content        map[entities.ContentCategory][]entities.ContentItem `json:"content"`
}

type ClientUseCase struct {
	portals        interfaces.IPortalRepository
	manual         interfaces.IManualClientRepository
	proposals      interfaces.IProposalRepository
	questionnaires interfaces.IQuestionnaireRepository
	content        interfaces.IContentRepository
	logger         *zap.Logger
	now            func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(
	portals interfaces.IPortalRepository,
	manual interfaces.IManualClientRepository,
	proposals interfaces.IProposalRepository,
	questionnaires interfaces.IQuestionnaireRepository,
	content interfaces.IContentRepository,
	logger *zap.Logger,
) *ClientUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientUseCase{
		portals:        portals,
		manual:         manual,
		proposals:      proposals,
		questionnaires: questionnaires,
		content:        content,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateClientPortal is idempotent on the lower-cased email: the second call
// returns the existing portal and created=false.
func (u *ClientUseCase) CreateClientPortal(ctx context.Context, in CreatePortalInput) (entities.ClientPortal, bool, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" {
		return entities.ClientPortal{}, false, ErrClientEmailRequired
	}
	if name == "" {
		return entities.ClientPortal{}, false, invalid(ErrInvalidClient, "name is required")
	}

	existingID, err := u.portals.GetIDByEmail(ctx, email)
	if err != nil {
		return entities.ClientPortal{}, false, err
	}
	if existingID != "" {
		existing, err := u.portals.GetByID(ctx, existingID)
		if err != nil {
			return entities.ClientPortal{}, false, err
		}
		if existing.ID != "" {
			return existing, false, nil
		}
		u.logger.Warn("[client][usecase] dangling portal email index", zap.String("portal_id", existingID))
	}

	p, err := u.portals.Create(ctx, entities.ClientPortal{
		ID:            ids.NewPortalID(name, email),
		ClientEmail:   email,
		ClientName:    name,
		ClientCompany: strings.TrimSpace(in.Company),
		CreatedAt:     u.now().UTC(),
		IsActive:      true,
	})
	if err != nil {
		return entities.ClientPortal{}, false, err
	}
	u.logger.Info("[client][usecase] portal created", zap.String("portal_id", p.ID))
	return p, true, nil
}

func (u *ClientUseCase) ListPortals(ctx context.Context) ([]entities.ClientPortal, error) {
	return u.portals.List(ctx)
}

func (u *ClientUseCase) getPortal(ctx context.Context, id string) (entities.ClientPortal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ClientPortal{}, ErrPortalNotFound
	}
	p, err := u.portals.GetByID(ctx, id)
	if err != nil {
		return entities.ClientPortal{}, err
	}
	if p.ID == "" {
		return entities.ClientPortal{}, ErrPortalNotFound
	}
	return p, nil
}

func (u *ClientUseCase) SetPortalActive(ctx context.Context, id string, active bool) (entities.ClientPortal, error) {
	p, err := u.getPortal(ctx, id)
	if err != nil {
		return entities.ClientPortal{}, err
	}
	ok, err := u.portals.SetActive(ctx, p.ID, active)
	if err != nil {
		return entities.ClientPortal{}, err
	}
	if !ok {
		return entities.ClientPortal{}, ErrPortalNotFound
	}
	p.IsActive = active
	u.logger.Info("[client][usecase] portal activity changed", zap.String("portal_id", p.ID), zap.Bool("active", active))
	return p, nil
}

func (u *ClientUseCase) DeletePortal(ctx context.Context, id string) error {
	ok, err := u.portals.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !ok {
		return ErrPortalNotFound
	}
	u.logger.Info("[client][usecase] portal deleted", zap.String("portal_id", id))
	return nil
}

// GetPortalView loads an active portal with the proposals and questionnaires
// addressed to its email and the content visible to it.
func (u *ClientUseCase) GetPortalView(ctx context.Context, portalID string) (PortalView, error) {
	p, err := u.getPortal(ctx, portalID)
	if err != nil {
		return PortalView{}, err
	}
	if !p.IsActive {
		return PortalView{}, ErrPortalInactive
	}

	proposals, err := u.proposals.ListByEmail(ctx, p.ClientEmail)
	if err != nil {
		return PortalView{}, err
	}
	questionnaires, err := u.questionnaires.ListByEmail(ctx, p.ClientEmail)
	if err != nil {
		return PortalView{}, err
	}
	now := u.now()
	for i, q := range questionnaires {
		if !q.ShouldExpire(now) {
			continue
		}
		q.Status = entities.QuestionnaireStatusExpired
		if err := u.questionnaires.Save(ctx, q); err != nil {
			u.logger.Warn("[client][usecase] failed persisting questionnaire expiry",
				zap.String("questionnaire_id", q.ID), zap.Error(err))
		}
		questionnaires[i] = q
	}

	content := make(map[entities.ContentCategory][]entities.ContentItem, len(entities.ContentCategories))
	for _, category := range entities.ContentCategories {
		items, err := u.content.List(ctx, category)
		if err != nil {
			return PortalView{}, err
		}
		visible := make([]entities.ContentItem, 0, len(items))
		for _, it := range items {
			if it.VisibleTo(p.ID) {
				visible = append(visible, it)
			}
		}
		content[category] = visible
	}

	return PortalView{Portal: p, Proposals: proposals, Questionnaires: questionnaires, Content: content}, nil
}

// emailTaken reports whether a manual client or portal other than exceptID
// already owns email.
func (u *ClientUseCase) emailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	manualID, err := u.manual.GetIDByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if manualID != "" && manualID != exceptID {
		return true, nil
	}
	portalID, err := u.portals.GetIDByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return portalID != "" && portalID != exceptID, nil
}

func (u *ClientUseCase) CreateManualClient(ctx context.Context, in CreateManualClientInput) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" {
		return entities.Client{}, invalid(ErrInvalidClient, "name is required")
	}
	if email == "" {
		return entities.Client{}, ErrClientEmailRequired
	}
	taken, err := u.emailTaken(ctx, email, "")
	if err != nil {
		return entities.Client{}, err
	}
	if taken {
		return entities.Client{}, ErrClientEmailConflict
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entities.ManualClientStatusProspect
	}
	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "admin"
	}
	now := u.now().UTC()
	m, err := u.manual.Create(ctx, entities.ManualClient{
		Name:         name,
		Email:        email,
		Company:      strings.TrimSpace(in.Company),
		Phone:        strings.TrimSpace(in.Phone),
		Status:       status,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		LastActivity: now,
		Source:       source,
	})
	if err != nil {
		return entities.Client{}, err
	}
	u.logger.Info("[client][usecase] manual client created", zap.String("client_id", m.ID), zap.String("source", source))
	return entities.ClientFromManual(m), nil
}

// ResolveClient looks the id up as a manual client first, then as a portal.
func (u *ClientUseCase) ResolveClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClientNotFound
	}
	m, err := u.manual.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if m.ID != "" {
		return entities.ClientFromManual(m), nil
	}
	p, err := u.portals.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if p.ID != "" {
		return entities.ClientFromPortal(p), nil
	}
	return entities.Client{}, ErrClientNotFound
}

// UpdateClient writes the patch back in the shape that backs the id.
func (u *ClientUseCase) UpdateClient(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Client{}, invalid(ErrInvalidClient, "name must not be empty")
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email == "" {
			return entities.Client{}, ErrClientEmailRequired
		}
		patch.Email = &email
	}

	current, err := u.ResolveClient(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if patch.Email != nil && *patch.Email != strings.ToLower(current.Email) {
		taken, err := u.emailTaken(ctx, *patch.Email, current.ID)
		if err != nil {
			return entities.Client{}, err
		}
		if taken {
			return entities.Client{}, ErrClientEmailConflict
		}
	}

	var ok bool
	switch current.Kind {
	case entities.ClientKindManual:
		ok, err = u.manual.Update(ctx, current.ID, patch)
	default:
		ok, err = u.portals.Update(ctx, current.ID, patch)
	}
	if err != nil {
		return entities.Client{}, err
	}
	if !ok {
		return entities.Client{}, ErrClientNotFound
	}
	u.logger.Info("[client][usecase] client updated", zap.String("client_id", current.ID), zap.String("kind", string(current.Kind)))
	return u.ResolveClient(ctx, current.ID)
}

func (u *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	current, err := u.ResolveClient(ctx, id)
	if err != nil {
		return err
	}
	var ok bool
	if current.Kind == entities.ClientKindManual {
		ok, err = u.manual.Delete(ctx, current.ID)
	} else {
		ok, err = u.portals.Delete(ctx, current.ID)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrClientNotFound
	}
	u.logger.Info("[client][usecase] client deleted", zap.String("client_id", current.ID), zap.String("kind", string(current.Kind)))
	return nil
}

// ConvertToPortal promotes a manual client to a portal. The portal write and
// the manual client removal happen in a single store batch.
func (u *ClientUseCase) ConvertToPortal(ctx context.Context, manualClientID string) (entities.ClientPortal, error) {
	manualClientID = strings.TrimSpace(manualClientID)
	if manualClientID == "" {
		return entities.ClientPortal{}, ErrClientNotFound
	}
	m, err := u.manual.GetByID(ctx, manualClientID)
	if err != nil {
		return entities.ClientPortal{}, err
	}
	if m.ID == "" {
		return entities.ClientPortal{}, ErrClientNotFound
	}
	if strings.TrimSpace(m.Email) == "" {
		return entities.ClientPortal{}, ErrClientEmailRequired
	}
	if m.PortalID != "" {
		return entities.ClientPortal{}, ErrAlreadyHasPortal
	}
	existing, err := u.portals.GetIDByEmail(ctx, m.Email)
	if err != nil {
		return entities.ClientPortal{}, err
	}
	if existing != "" {
		return entities.ClientPortal{}, ErrAlreadyHasPortal
	}

	portal, err := u.manual.ConvertToPortal(ctx, m, entities.ClientPortal{
		ID:            ids.NewPortalID(m.Name, m.Email),
		ClientEmail:   m.Email,
		ClientName:    m.Name,
		ClientCompany: m.Company,
		CreatedAt:     u.now().UTC(),
		IsActive:      true,
	})
	if err != nil {
		u.logger.Error("[client][usecase] conversion failed", zap.String("client_id", m.ID), zap.Error(err))
		return entities.ClientPortal{}, err
	}
	u.logger.Info("[client][usecase] manual client converted",
		zap.String("client_id", m.ID), zap.String("portal_id", portal.ID))
	return portal, nil
}

// ListClients merges manual clients and portals, newest first.
func (u *ClientUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	manual, err := u.manual.List(ctx)
	if err != nil {
		return nil, err
	}
	portals, err := u.portals.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(manual)+len(portals))
	for _, m := range manual {
		out = append(out, entities.ClientFromManual(m))
	}
	for _, p := range portals {
		out = append(out, entities.ClientFromPortal(p))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
