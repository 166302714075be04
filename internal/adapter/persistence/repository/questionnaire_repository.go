package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
)

// QuestionnaireKVRepository mirrors the proposal layout under the
// "questionnaire" prefix.
type QuestionnaireKVRepository struct {
	store kvstore.Store
}

var _ interfaces.IQuestionnaireRepository = (*QuestionnaireKVRepository)(nil)

func NewQuestionnaireKVRepository(store kvstore.Store) *QuestionnaireKVRepository {
	return &QuestionnaireKVRepository{store: store}
}

// Create writes q as given (the use case stamps dates and status) and assigns
// an id when q.ID is empty.
func (r *QuestionnaireKVRepository) Create(ctx context.Context, q entities.Questionnaire) (entities.Questionnaire, error) {
	if q.ID == "" {
		q.ID = ids.NewQuestionnaireID(q.Client.Name)
	}
	if !ids.Valid(q.ID) {
		return entities.Questionnaire{}, ErrInvalidID
	}
	if q.Responses == nil {
		q.Responses = []entities.QuestionResponse{}
	}
	raw, err := json.Marshal(q)
	if err != nil {
		return entities.Questionnaire{}, err
	}
	ops := []kvstore.Op{
		kvstore.SetOp(entityKey(questionnairePrefix, q.ID), string(raw), 0),
		kvstore.SAddOp(idsKey(questionnairePrefix), q.ID),
	}
	if normalizeEmail(q.Client.Email) != "" {
		ops = append(ops, kvstore.SAddOp(emailKey(questionnairePrefix, q.Client.Email), q.ID))
	}
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return entities.Questionnaire{}, err
	}
	return q, nil
}

func (r *QuestionnaireKVRepository) load(ctx context.Context, id string) (entities.Questionnaire, bool, error) {
	q, ok, err := getJSON[entities.Questionnaire](ctx, r.store, questionnairePrefix, id)
	if err != nil || !ok {
		return q, ok, err
	}
	last, count, viewed, err := loadViews(ctx, r.store, questionnairePrefix, id)
	if err != nil {
		return entities.Questionnaire{}, false, err
	}
	if viewed {
		q.LastViewed, q.ViewCount = last, count
	}
	return q, true, nil
}

func (r *QuestionnaireKVRepository) GetByID(ctx context.Context, id string) (entities.Questionnaire, error) {
	q, _, err := r.load(ctx, id)
	return q, err
}

func (r *QuestionnaireKVRepository) List(ctx context.Context) ([]entities.Questionnaire, error) {
	out, err := loadMembers(ctx, r.store, idsKey(questionnairePrefix), r.load)
	if err != nil {
		return nil, err
	}
	sortQuestionnaires(out)
	return out, nil
}

func (r *QuestionnaireKVRepository) ListByEmail(ctx context.Context, email string) ([]entities.Questionnaire, error) {
	if normalizeEmail(email) == "" {
		return []entities.Questionnaire{}, nil
	}
	all, err := loadMembers(ctx, r.store, emailKey(questionnairePrefix, email), r.load)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, q := range all {
		if strings.EqualFold(strings.TrimSpace(q.Client.Email), strings.TrimSpace(email)) {
			out = append(out, q)
		}
	}
	sortQuestionnaires(out)
	return out, nil
}

func (r *QuestionnaireKVRepository) Save(ctx context.Context, q entities.Questionnaire) error {
	if !ids.Valid(q.ID) {
		return ErrInvalidID
	}
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, entityKey(questionnairePrefix, q.ID), string(raw), 0)
}

func (r *QuestionnaireKVRepository) RecordView(ctx context.Context, id string, at time.Time) (bool, error) {
	_, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	if err := recordView(ctx, r.store, questionnairePrefix, id, at.UTC()); err != nil {
		return false, err
	}
	return true, nil
}

func (r *QuestionnaireKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	q, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	ops := []kvstore.Op{
		kvstore.DelOp(entityKey(questionnairePrefix, id)),
		kvstore.DelOp(viewsKey(questionnairePrefix, id)),
		kvstore.SRemOp(idsKey(questionnairePrefix), id),
	}
	if normalizeEmail(q.Client.Email) != "" {
		ops = append(ops, kvstore.SRemOp(emailKey(questionnairePrefix, q.Client.Email), id))
	}
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return false, err
	}
	return true, nil
}

func sortQuestionnaires(qs []entities.Questionnaire) {
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].CreatedAt.After(qs[j].CreatedAt) })
}
