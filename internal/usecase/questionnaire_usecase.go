package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/questionnaire_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/domain/templates"
	"clientportal/internal/usecase/interfaces"
)

// IQuestionnaireUseCase manages templates and the questionnaires sent from them.
type IQuestionnaireUseCase interface {
	ListTemplates(ctx context.Context) ([]entities.QuestionnaireTemplate, error)
	GetTemplate(ctx context.Context, id string) (entities.QuestionnaireTemplate, error)
	CreateTemplate(ctx context.Context, in TemplateInput) (entities.QuestionnaireTemplate, error)
	UpdateTemplate(ctx context.Context, id string, in TemplateInput) (entities.QuestionnaireTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error

	Create(ctx context.Context, in CreateQuestionnaireInput) (entities.Questionnaire, error)
	Get(ctx context.Context, id string) (entities.Questionnaire, error)
	GetWithTemplate(ctx context.Context, id string) (entities.Questionnaire, entities.QuestionnaireTemplate, error)
	List(ctx context.Context) ([]entities.Questionnaire, error)
	ListForClient(ctx context.Context, email string) ([]entities.Questionnaire, error)
	SaveProgress(ctx context.Context, id string, responses []entities.QuestionResponse) (entities.Questionnaire, error)
	Submit(ctx context.Context, id string, responses []entities.QuestionResponse) (entities.Questionnaire, error)
	Delete(ctx context.Context, id string) error
}

type TemplateInput struct {
	ID          string
	Name        string
	Description string
	Questions   []entities.Question
}

type CreateQuestionnaireInput struct {
	TemplateID string
	Client     entities.ClientInfo
	Notes      string
}

type QuestionnaireUseCase struct {
	repo      interfaces.IQuestionnaireRepository
	templates interfaces.ITemplateRepository
	builtIn   *templates.Registry
	logger    *zap.Logger
	now       func() time.Time
}

var _ IQuestionnaireUseCase = (*QuestionnaireUseCase)(nil)

func NewQuestionnaireUseCase(repo interfaces.IQuestionnaireRepository, templateRepo interfaces.ITemplateRepository, builtIn *templates.Registry, logger *zap.Logger) *QuestionnaireUseCase {
	if builtIn == nil {
		builtIn = templates.BuiltIn()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionnaireUseCase{repo: repo, templates: templateRepo, builtIn: builtIn, logger: logger, now: time.Now}
}

// ListTemplates returns built-ins first, then custom templates.
func (u *QuestionnaireUseCase) ListTemplates(ctx context.Context) ([]entities.QuestionnaireTemplate, error) {
	out := u.builtIn.List()
	custom, err := u.templates.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range custom {
		if u.builtIn.Has(t.ID) {
			continue
		}
		t.IsBuiltIn = false
		out = append(out, t)
	}
	return out, nil
}

func (u *QuestionnaireUseCase) GetTemplate(ctx context.Context, id string) (entities.QuestionnaireTemplate, error) {
	id = strings.TrimSpace(id)
	if t, ok := u.builtIn.Get(id); ok {
		return t, nil
	}
	if id == "" {
		return entities.QuestionnaireTemplate{}, ErrTemplateNotFound
	}
	t, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return entities.QuestionnaireTemplate{}, err
	}
	if t.ID == "" {
		return entities.QuestionnaireTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

func validateTemplate(in *TemplateInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return invalid(ErrInvalidTemplate, "name is required")
	}
	if len(in.Questions) == 0 {
		return invalid(ErrInvalidTemplate, "at least one question is required")
	}
	seen := make(map[string]struct{}, len(in.Questions))
	for i, q := range in.Questions {
		if strings.TrimSpace(q.ID) == "" || strings.TrimSpace(q.Title) == "" {
			return invalid(ErrInvalidTemplate, fmt.Sprintf("question %d needs an id and a title", i))
		}
		if _, dup := seen[q.ID]; dup {
			return invalid(ErrInvalidTemplate, fmt.Sprintf("duplicate question id %q", q.ID))
		}
		seen[q.ID] = struct{}{}
		if !q.Type.IsValid() {
			return invalid(ErrInvalidTemplate, fmt.Sprintf("question %q has unknown type %q", q.ID, q.Type))
		}
		if q.Type.HasOptions() && len(q.Options) == 0 {
			return invalid(ErrInvalidTemplate, fmt.Sprintf("question %q needs options", q.ID))
		}
	}
	return nil
}

func (u *QuestionnaireUseCase) CreateTemplate(ctx context.Context, in TemplateInput) (entities.QuestionnaireTemplate, error) {
	if err := validateTemplate(&in); err != nil {
		return entities.QuestionnaireTemplate{}, err
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = ids.NewTemplateID(in.Name)
	} else if !ids.Valid(id) {
		return entities.QuestionnaireTemplate{}, invalid(ErrInvalidTemplate, "id must be lowercase letters, digits and dashes")
	}
	if u.builtIn.Has(id) {
		return entities.QuestionnaireTemplate{}, ErrBuiltInTemplateReadOnly
	}
	existing, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return entities.QuestionnaireTemplate{}, err
	}
	if existing.ID != "" {
		return entities.QuestionnaireTemplate{}, ErrTemplateAlreadyExists
	}

	t := entities.QuestionnaireTemplate{ID: id, Name: in.Name, Description: strings.TrimSpace(in.Description), Questions: in.Questions}
	if err := u.templates.Save(ctx, t); err != nil {
		return entities.QuestionnaireTemplate{}, err
	}
	u.logger.Info("[template][usecase] created", zap.String("template_id", id))
	return t, nil
}

func (u *QuestionnaireUseCase) UpdateTemplate(ctx context.Context, id string, in TemplateInput) (entities.QuestionnaireTemplate, error) {
	id = strings.TrimSpace(id)
	if u.builtIn.Has(id) {
		return entities.QuestionnaireTemplate{}, ErrBuiltInTemplateReadOnly
	}
	if err := validateTemplate(&in); err != nil {
		return entities.QuestionnaireTemplate{}, err
	}
	existing, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return entities.QuestionnaireTemplate{}, err
	}
	if existing.ID == "" {
		return entities.QuestionnaireTemplate{}, ErrTemplateNotFound
	}

	t := entities.QuestionnaireTemplate{ID: id, Name: in.Name, Description: strings.TrimSpace(in.Description), Questions: in.Questions}
	if err := u.templates.Save(ctx, t); err != nil {
		return entities.QuestionnaireTemplate{}, err
	}
	u.logger.Info("[template][usecase] updated", zap.String("template_id", id))
	return t, nil
}

func (u *QuestionnaireUseCase) DeleteTemplate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if u.builtIn.Has(id) {
		return ErrBuiltInTemplateReadOnly
	}
	ok, err := u.templates.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTemplateNotFound
	}
	u.logger.Info("[template][usecase] deleted", zap.String("template_id", id))
	return nil
}

func (u *QuestionnaireUseCase) Create(ctx context.Context, in CreateQuestionnaireInput) (entities.Questionnaire, error) {
	in.Client.Name = strings.TrimSpace(in.Client.Name)
	in.Client.Email = strings.TrimSpace(in.Client.Email)
	if strings.TrimSpace(in.TemplateID) == "" {
		return entities.Questionnaire{}, invalid(ErrInvalidQuestionnaire, "templateId is required")
	}
	if in.Client.Name == "" || in.Client.Email == "" {
		return entities.Questionnaire{}, invalid(ErrInvalidQuestionnaire, "client name and email are required")
	}
	tpl, err := u.GetTemplate(ctx, in.TemplateID)
	if err != nil {
		return entities.Questionnaire{}, err
	}

	now := u.now().UTC()
	sent := now
	q, err := u.repo.Create(ctx, entities.Questionnaire{
		TemplateID: tpl.ID,
		Client:     in.Client,
		Title:      tpl.Name,
		Status:     entities.QuestionnaireStatusSent,
		CreatedAt:  now,
		SentAt:     &sent,
		ExpiresAt:  now.Add(entities.QuestionnaireValidity),
		Responses:  []entities.QuestionResponse{},
		Notes:      strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return entities.Questionnaire{}, err
	}
	u.logger.Info("[questionnaire][usecase] created",
		zap.String("questionnaire_id", q.ID), zap.String("template_id", tpl.ID))
	return q, nil
}

// Get flips a questionnaire read past its expiry to expired and persists it.
func (u *QuestionnaireUseCase) Get(ctx context.Context, id string) (entities.Questionnaire, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Questionnaire{}, ErrQuestionnaireNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Questionnaire{}, err
	}
	if q.ID == "" {
		return entities.Questionnaire{}, ErrQuestionnaireNotFound
	}
	return u.expireIfDue(ctx, q)
}

func (u *QuestionnaireUseCase) expireIfDue(ctx context.Context, q entities.Questionnaire) (entities.Questionnaire, error) {
	if !q.ShouldExpire(u.now()) {
		return q, nil
	}
	q.Status = entities.QuestionnaireStatusExpired
	if err := u.repo.Save(ctx, q); err != nil {
		return entities.Questionnaire{}, err
	}
	u.logger.Info("[questionnaire][usecase] expired on read", zap.String("questionnaire_id", q.ID))
	return q, nil
}

func (u *QuestionnaireUseCase) GetWithTemplate(ctx context.Context, id string) (entities.Questionnaire, entities.QuestionnaireTemplate, error) {
	q, err := u.Get(ctx, id)
	if err != nil {
		return entities.Questionnaire{}, entities.QuestionnaireTemplate{}, err
	}
	tpl, err := u.GetTemplate(ctx, q.TemplateID)
	if err != nil {
		return entities.Questionnaire{}, entities.QuestionnaireTemplate{}, err
	}
	return q, tpl, nil
}

func (u *QuestionnaireUseCase) List(ctx context.Context) ([]entities.Questionnaire, error) {
	qs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.expireAll(ctx, qs)
}

func (u *QuestionnaireUseCase) ListForClient(ctx context.Context, email string) ([]entities.Questionnaire, error) {
	if strings.TrimSpace(email) == "" {
		return nil, invalid(ErrInvalidClient, "email is required")
	}
	qs, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return u.expireAll(ctx, qs)
}

func (u *QuestionnaireUseCase) expireAll(ctx context.Context, qs []entities.Questionnaire) ([]entities.Questionnaire, error) {
	for i := range qs {
		q, err := u.expireIfDue(ctx, qs[i])
		if err != nil {
			return nil, err
		}
		qs[i] = q
	}
	return qs, nil
}

// SaveProgress stores draft answers and moves a sent questionnaire to in-progress.
func (u *QuestionnaireUseCase) SaveProgress(ctx context.Context, id string, responses []entities.QuestionResponse) (entities.Questionnaire, error) {
	q, err := u.Get(ctx, id)
	if err != nil {
		return entities.Questionnaire{}, err
	}
	switch q.Status {
	case entities.QuestionnaireStatusExpired:
		return entities.Questionnaire{}, ErrQuestionnaireExpired
	case entities.QuestionnaireStatusCompleted:
		return entities.Questionnaire{}, ErrQuestionnaireCompleted
	}
	q.Responses = normalizeResponses(responses)
	q.Status = entities.QuestionnaireStatusInProgress
	if err := u.repo.Save(ctx, q); err != nil {
		return entities.Questionnaire{}, err
	}
	return q, nil
}

// Submit completes the questionnaire. Submissions past the expiry fail with
// ErrQuestionnaireExpired and leave the stored responses untouched.
func (u *QuestionnaireUseCase) Submit(ctx context.Context, id string, responses []entities.QuestionResponse) (entities.Questionnaire, error) {
	q, err := u.Get(ctx, id)
	if err != nil {
		return entities.Questionnaire{}, err
	}
	now := u.now().UTC()
	if q.Status == entities.QuestionnaireStatusExpired || q.IsPastExpiry(now) {
		u.logger.Info("[questionnaire][usecase] submit after expiry", zap.String("questionnaire_id", q.ID))
		return entities.Questionnaire{}, ErrQuestionnaireExpired
	}

	responses = normalizeResponses(responses)
	tpl, err := u.GetTemplate(ctx, q.TemplateID)
	switch {
	case err == nil:
		if missing := missingRequired(tpl, responses); len(missing) > 0 {
			return entities.Questionnaire{}, invalid(ErrMissingRequiredResponses, strings.Join(missing, ", "))
		}
	case errors.Is(err, ErrTemplateNotFound):
		u.logger.Warn("[questionnaire][usecase] template gone, skipping required check",
			zap.String("questionnaire_id", q.ID), zap.String("template_id", q.TemplateID))
	default:
		return entities.Questionnaire{}, err
	}

	q.Responses = responses
	q.Status = entities.QuestionnaireStatusCompleted
	q.CompletedAt = &now
	if err := u.repo.Save(ctx, q); err != nil {
		return entities.Questionnaire{}, err
	}
	u.logger.Info("[questionnaire][usecase] submitted",
		zap.String("questionnaire_id", q.ID), zap.Int("responses", len(responses)))
	return q, nil
}

func normalizeResponses(responses []entities.QuestionResponse) []entities.QuestionResponse {
	out := make([]entities.QuestionResponse, 0, len(responses))
	for _, r := range responses {
		r.QuestionID = strings.TrimSpace(r.QuestionID)
		if r.QuestionID == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

func missingRequired(tpl entities.QuestionnaireTemplate, responses []entities.QuestionResponse) []string {
	answered := make(map[string]bool, len(responses))
	for _, r := range responses {
		if !r.IsEmpty() {
			answered[r.QuestionID] = true
		}
	}
	var missing []string
	for _, q := range tpl.Questions {
		if q.Required && !answered[q.ID] {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

func (u *QuestionnaireUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid(ErrInvalidQuestionnaire, "id is required")
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuestionnaireNotFound
	}
	u.logger.Info("[questionnaire][usecase] deleted", zap.String("questionnaire_id", id))
	return nil
}
