package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
)

// Hash field names of portal:<id>.
const (
	portalFieldName      = "clientName"
	portalFieldEmail     = "clientEmail"
	portalFieldCompany   = "clientCompany"
	portalFieldCreatedAt = "createdAt"
	portalFieldIsActive  = "isActive"
)

// PortalKVRepository persists client portals.
//
// Layout:
//   - portal:<id>            hash
//   - portal:email:<lower>   portal id
//   - portal:ids             set of ids
type PortalKVRepository struct {
	store kvstore.Store
	now   func() time.Time
}

var _ interfaces.IPortalRepository = (*PortalKVRepository)(nil)

func NewPortalKVRepository(store kvstore.Store) *PortalKVRepository {
	return &PortalKVRepository{store: store, now: time.Now}
}

func portalFields(p entities.ClientPortal) map[string]string {
	return map[string]string{
		portalFieldName:      p.ClientName,
		portalFieldEmail:     normalizeEmail(p.ClientEmail),
		portalFieldCompany:   p.ClientCompany,
		portalFieldCreatedAt: formatTime(p.CreatedAt),
		portalFieldIsActive:  strconv.FormatBool(p.IsActive),
	}
}

// portalWriteOps is shared with the manual-client conversion batch.
func portalWriteOps(p entities.ClientPortal) []kvstore.Op {
	return []kvstore.Op{
		kvstore.HSetOp(entityKey(portalPrefix, p.ID), portalFields(p)),
		kvstore.SetOp(emailKey(portalPrefix, p.ClientEmail), p.ID, 0),
		kvstore.SAddOp(idsKey(portalPrefix), p.ID),
	}
}

func (r *PortalKVRepository) Create(ctx context.Context, p entities.ClientPortal) (entities.ClientPortal, error) {
	if p.ID == "" {
		p.ID = ids.NewPortalID(p.ClientName, p.ClientEmail)
	}
	if !ids.Valid(p.ID) {
		return entities.ClientPortal{}, ErrInvalidID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now().UTC()
	}
	p.ClientEmail = normalizeEmail(p.ClientEmail)
	if err := r.store.Atomic(ctx, portalWriteOps(p)...); err != nil {
		return entities.ClientPortal{}, err
	}
	return p, nil
}

func (r *PortalKVRepository) load(ctx context.Context, id string) (entities.ClientPortal, bool, error) {
	if !ids.Valid(id) {
		return entities.ClientPortal{}, false, nil
	}
	h, err := r.store.HGetAll(ctx, entityKey(portalPrefix, id))
	if err != nil || len(h) == 0 {
		return entities.ClientPortal{}, false, err
	}
	return entities.ClientPortal{
		ID:            id,
		ClientName:    h[portalFieldName],
		ClientEmail:   h[portalFieldEmail],
		ClientCompany: h[portalFieldCompany],
		CreatedAt:     parseTime(h[portalFieldCreatedAt]),
		IsActive:      parseBool(h[portalFieldIsActive]),
	}, true, nil
}

func (r *PortalKVRepository) GetByID(ctx context.Context, id string) (entities.ClientPortal, error) {
	p, _, err := r.load(ctx, id)
	return p, err
}

func (r *PortalKVRepository) GetIDByEmail(ctx context.Context, email string) (string, error) {
	if normalizeEmail(email) == "" {
		return "", nil
	}
	id, _, err := r.store.Get(ctx, emailKey(portalPrefix, email))
	return id, err
}

func (r *PortalKVRepository) List(ctx context.Context) ([]entities.ClientPortal, error) {
	out, err := loadMembers(ctx, r.store, idsKey(portalPrefix), r.load)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update rewrites the patched fields; an email change also moves the email index.
// Phone, status and notes have no portal counterpart and are ignored.
func (r *PortalKVRepository) Update(ctx context.Context, id string, patch entities.ClientPatch) (bool, error) {
	current, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	fields := map[string]string{}
	if patch.Name != nil {
		fields[portalFieldName] = *patch.Name
	}
	if patch.Company != nil {
		fields[portalFieldCompany] = *patch.Company
	}
	ops := []kvstore.Op{}
	if patch.Email != nil && normalizeEmail(*patch.Email) != current.ClientEmail {
		fields[portalFieldEmail] = normalizeEmail(*patch.Email)
		if current.ClientEmail != "" {
			ops = append(ops, kvstore.DelOp(emailKey(portalPrefix, current.ClientEmail)))
		}
		ops = append(ops, kvstore.SetOp(emailKey(portalPrefix, *patch.Email), id, 0))
	}
	if len(fields) == 0 {
		return true, nil
	}
	ops = append(ops, kvstore.HSetOp(entityKey(portalPrefix, id), fields))
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PortalKVRepository) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	_, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	if err := r.store.HSet(ctx, entityKey(portalPrefix, id), map[string]string{portalFieldIsActive: strconv.FormatBool(active)}); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PortalKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	p, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	ops := []kvstore.Op{
		kvstore.DelOp(entityKey(portalPrefix, id)),
		kvstore.SRemOp(idsKey(portalPrefix), id),
	}
	if p.ClientEmail != "" {
		ops = append(ops, kvstore.DelOp(emailKey(portalPrefix, p.ClientEmail)))
	}
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return false, err
	}
	return true, nil
}
