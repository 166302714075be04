package interfaces

import (
	"context"
	"time"

	"clientportal/internal/domain/entities"
)

// IQuestionnaireRepository persists questionnaire instances.
type IQuestionnaireRepository interface {
	Create(ctx context.Context, q entities.Questionnaire) (entities.Questionnaire, error)
	GetByID(ctx context.Context, id string) (entities.Questionnaire, error)
	List(ctx context.Context) ([]entities.Questionnaire, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Questionnaire, error)
	Save(ctx context.Context, q entities.Questionnaire) error
	// RecordView has the semantics of IProposalRepository.RecordView.
	RecordView(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ITemplateRepository persists custom templates only; built-ins live in the
// embedded registry.
type ITemplateRepository interface {
	Save(ctx context.Context, t entities.QuestionnaireTemplate) error
	GetByID(ctx context.Context, id string) (entities.QuestionnaireTemplate, error)
	List(ctx context.Context) ([]entities.QuestionnaireTemplate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
