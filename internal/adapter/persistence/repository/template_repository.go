package repository

import (
	"context"
	"encoding/json"
	"sort"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
)

// TemplateKVRepository stores custom templates as template:<id> JSON plus the
// template:ids set.
type TemplateKVRepository struct {
	store kvstore.Store
}

var _ interfaces.ITemplateRepository = (*TemplateKVRepository)(nil)

func NewTemplateKVRepository(store kvstore.Store) *TemplateKVRepository {
	return &TemplateKVRepository{store: store}
}

func (r *TemplateKVRepository) Save(ctx context.Context, t entities.QuestionnaireTemplate) error {
	if !ids.Valid(t.ID) {
		return ErrInvalidID
	}
	t.IsBuiltIn = false
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return r.store.Atomic(ctx,
		kvstore.SetOp(entityKey(templatePrefix, t.ID), string(raw), 0),
		kvstore.SAddOp(idsKey(templatePrefix), t.ID),
	)
}

func (r *TemplateKVRepository) load(ctx context.Context, id string) (entities.QuestionnaireTemplate, bool, error) {
	return getJSON[entities.QuestionnaireTemplate](ctx, r.store, templatePrefix, id)
}

func (r *TemplateKVRepository) GetByID(ctx context.Context, id string) (entities.QuestionnaireTemplate, error) {
	t, _, err := r.load(ctx, id)
	return t, err
}

// List returns custom templates ordered by name.
func (r *TemplateKVRepository) List(ctx context.Context) ([]entities.QuestionnaireTemplate, error) {
	out, err := loadMembers(ctx, r.store, idsKey(templatePrefix), r.load)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TemplateKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	if err := r.store.Atomic(ctx,
		kvstore.DelOp(entityKey(templatePrefix, id)),
		kvstore.SRemOp(idsKey(templatePrefix), id),
	); err != nil {
		return false, err
	}
	return true, nil
}
