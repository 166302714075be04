package request

import (
	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

type CreateQuestionnaireRequest struct {
	TemplateID string        `json:"templateId" binding:"required"`
	Client     ClientRequest `json:"client" binding:"required"`
	Notes      string        `json:"notes"`
}

func (r CreateQuestionnaireRequest) ToInput() usecase.CreateQuestionnaireInput {
	return usecase.CreateQuestionnaireInput{TemplateID: r.TemplateID, Client: r.Client.ToEntity(), Notes: r.Notes}
}

type QuestionResponseRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Answer     any    `json:"answer"`
}

// ResponsesRequest is the body of progress saves and submissions.
type ResponsesRequest struct {
	Responses []QuestionResponseRequest `json:"responses" binding:"dive"`
}

func (r ResponsesRequest) ToEntities() []entities.QuestionResponse {
	out := make([]entities.QuestionResponse, 0, len(r.Responses))
	for _, resp := range r.Responses {
		out = append(out, entities.QuestionResponse{QuestionID: resp.QuestionID, Answer: resp.Answer})
	}
	return out
}

type QuestionOptionRequest struct {
	ID          string `json:"id" binding:"required"`
	Text        string `json:"text" binding:"required"`
	AllowCustom bool   `json:"allowCustom"`
}

type QuestionRequest struct {
	ID          string                  `json:"id" binding:"required"`
	Type        string                  `json:"type" binding:"required,questiontype"`
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	Required    bool                    `json:"required"`
	Options     []QuestionOptionRequest `json:"options" binding:"dive"`
	Placeholder string                  `json:"placeholder"`
}

// TemplateRequest is the body of template creates and updates.
type TemplateRequest struct {
	ID          string            `json:"id" binding:"omitempty,templateid"`
	Name        string            `json:"name" binding:"required,max=200"`
	Description string            `json:"description"`
	Questions   []QuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

func (r TemplateRequest) ToInput() usecase.TemplateInput {
	questions := make([]entities.Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		var options []entities.QuestionOption
		for _, o := range q.Options {
			options = append(options, entities.QuestionOption{ID: o.ID, Text: o.Text, AllowCustom: o.AllowCustom})
		}
		questions = append(questions, entities.Question{
			ID:          q.ID,
			Type:        entities.QuestionType(q.Type),
			Title:       q.Title,
			Description: q.Description,
			Required:    q.Required,
			Options:     options,
			Placeholder: q.Placeholder,
		})
	}
	return usecase.TemplateInput{ID: r.ID, Name: r.Name, Description: r.Description, Questions: questions}
}
