package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
)

var ErrManualClientEmailRequired = errors.New("manual client has no email")

// Hash field names of manual-client:<id>.
const (
	manualFieldName         = "name"
	manualFieldEmail        = "email"
	manualFieldCompany      = "company"
	manualFieldPhone        = "phone"
	manualFieldStatus       = "status"
	manualFieldNotes        = "notes"
	manualFieldCreatedAt    = "createdAt"
	manualFieldLastActivity = "lastActivity"
	manualFieldSource       = "source"
	manualFieldPortalID     = "portalId"
	manualFieldPortalActive = "portalActive"
)

// ManualClientKVRepository persists manual clients.
//
// Layout:
//   - manual-client:<id>            hash
//   - manual-client:email:<lower>   manual client id
//   - manual-client:ids             set of ids
type ManualClientKVRepository struct {
	store kvstore.Store
	now   func() time.Time
}

var _ interfaces.IManualClientRepository = (*ManualClientKVRepository)(nil)

func NewManualClientKVRepository(store kvstore.Store) *ManualClientKVRepository {
	return &ManualClientKVRepository{store: store, now: time.Now}
}

func (r *ManualClientKVRepository) Create(ctx context.Context, m entities.ManualClient) (entities.ManualClient, error) {
	now := r.now().UTC()
	if m.ID == "" {
		m.ID = ids.NewManualClientID(now)
	}
	if !ids.Valid(m.ID) {
		return entities.ManualClient{}, ErrInvalidID
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.LastActivity.IsZero() {
		m.LastActivity = now
	}
	m.Email = normalizeEmail(m.Email)

	ops := []kvstore.Op{
		kvstore.HSetOp(entityKey(manualClientPrefix, m.ID), map[string]string{
			manualFieldName:         m.Name,
			manualFieldEmail:        m.Email,
			manualFieldCompany:      m.Company,
			manualFieldPhone:        m.Phone,
			manualFieldStatus:       m.Status,
			manualFieldNotes:        m.Notes,
			manualFieldCreatedAt:    formatTime(m.CreatedAt),
			manualFieldLastActivity: formatTime(m.LastActivity),
			manualFieldSource:       m.Source,
			manualFieldPortalID:     m.PortalID,
			manualFieldPortalActive: strconv.FormatBool(m.PortalActive),
		}),
		kvstore.SAddOp(idsKey(manualClientPrefix), m.ID),
	}
	if m.Email != "" {
		ops = append(ops, kvstore.SetOp(emailKey(manualClientPrefix, m.Email), m.ID, 0))
	}
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return entities.ManualClient{}, err
	}
	return m, nil
}

func (r *ManualClientKVRepository) load(ctx context.Context, id string) (entities.ManualClient, bool, error) {
	if !ids.Valid(id) {
		return entities.ManualClient{}, false, nil
	}
	h, err := r.store.HGetAll(ctx, entityKey(manualClientPrefix, id))
	if err != nil || len(h) == 0 {
		return entities.ManualClient{}, false, err
	}
	return entities.ManualClient{
		ID:           id,
		Name:         h[manualFieldName],
		Email:        h[manualFieldEmail],
		Company:      h[manualFieldCompany],
		Phone:        h[manualFieldPhone],
		Status:       h[manualFieldStatus],
		Notes:        h[manualFieldNotes],
		CreatedAt:    parseTime(h[manualFieldCreatedAt]),
		LastActivity: parseTime(h[manualFieldLastActivity]),
		Source:       h[manualFieldSource],
		PortalID:     h[manualFieldPortalID],
		PortalActive: parseBool(h[manualFieldPortalActive]),
	}, true, nil
}

func (r *ManualClientKVRepository) GetByID(ctx context.Context, id string) (entities.ManualClient, error) {
	m, _, err := r.load(ctx, id)
	return m, err
}

func (r *ManualClientKVRepository) GetIDByEmail(ctx context.Context, email string) (string, error) {
	if normalizeEmail(email) == "" {
		return "", nil
	}
	id, _, err := r.store.Get(ctx, emailKey(manualClientPrefix, email))
	return id, err
}

func (r *ManualClientKVRepository) List(ctx context.Context) ([]entities.ManualClient, error) {
	out, err := loadMembers(ctx, r.store, idsKey(manualClientPrefix), r.load)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ManualClientKVRepository) Update(ctx context.Context, id string, patch entities.ClientPatch) (bool, error) {
	current, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	fields := map[string]string{manualFieldLastActivity: formatTime(r.now().UTC())}
	set := func(field string, v *string) {
		if v != nil {
			fields[field] = *v
		}
	}
	set(manualFieldName, patch.Name)
	set(manualFieldCompany, patch.Company)
	set(manualFieldPhone, patch.Phone)
	set(manualFieldStatus, patch.Status)
	set(manualFieldNotes, patch.Notes)

	var ops []kvstore.Op
	if patch.Email != nil && normalizeEmail(*patch.Email) != current.Email {
		fields[manualFieldEmail] = normalizeEmail(*patch.Email)
		if current.Email != "" {
			ops = append(ops, kvstore.DelOp(emailKey(manualClientPrefix, current.Email)))
		}
		if normalizeEmail(*patch.Email) != "" {
			ops = append(ops, kvstore.SetOp(emailKey(manualClientPrefix, *patch.Email), id, 0))
		}
	}
	ops = append(ops, kvstore.HSetOp(entityKey(manualClientPrefix, id), fields))
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ManualClientKVRepository) removeOps(m entities.ManualClient) []kvstore.Op {
	ops := []kvstore.Op{
		kvstore.DelOp(entityKey(manualClientPrefix, m.ID)),
		kvstore.SRemOp(idsKey(manualClientPrefix), m.ID),
	}
	if m.Email != "" {
		ops = append(ops, kvstore.DelOp(emailKey(manualClientPrefix, m.Email)))
	}
	return ops
}

func (r *ManualClientKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	m, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	if err := r.store.Atomic(ctx, r.removeOps(m)...); err != nil {
		return false, err
	}
	return true, nil
}

// ConvertToPortal creates the portal (hash, email index, id set) and removes
// the manual client (hash, email index, id set) in one batch: either the
// client ends up as a portal or nothing changes.
func (r *ManualClientKVRepository) ConvertToPortal(ctx context.Context, m entities.ManualClient, portal entities.ClientPortal) (entities.ClientPortal, error) {
	if normalizeEmail(portal.ClientEmail) == "" {
		return entities.ClientPortal{}, ErrManualClientEmailRequired
	}
	if portal.ID == "" {
		portal.ID = ids.NewPortalID(portal.ClientName, portal.ClientEmail)
	}
	if !ids.Valid(portal.ID) || !ids.Valid(m.ID) {
		return entities.ClientPortal{}, ErrInvalidID
	}
	if portal.CreatedAt.IsZero() {
		portal.CreatedAt = r.now().UTC()
	}
	portal.ClientEmail = normalizeEmail(portal.ClientEmail)
	ops := append(portalWriteOps(portal), r.removeOps(m)...)
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return entities.ClientPortal{}, err
	}
	return portal, nil
}
