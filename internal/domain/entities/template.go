package entities

type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"
	QuestionTypeEmail    QuestionType = "email"
	QuestionTypeCheckbox QuestionType = "checkbox"
	QuestionTypeRadio    QuestionType = "radio"
	QuestionTypeTextarea QuestionType = "textarea"
	QuestionTypeSelect   QuestionType = "select"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeEmail, QuestionTypeCheckbox, QuestionTypeRadio, QuestionTypeTextarea, QuestionTypeSelect:
		return true
	}
	return false
}

// HasOptions reports whether the question type is answered by picking options.
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeCheckbox || t == QuestionTypeRadio || t == QuestionTypeSelect
}

type QuestionOption struct {
	ID          string `json:"id" yaml:"id"`
	Text        string `json:"text" yaml:"text"`
	AllowCustom bool   `json:"allowCustom,omitempty" yaml:"allowCustom,omitempty"`
}

type Question struct {
	ID          string           `json:"id" yaml:"id"`
	Type        QuestionType     `json:"type" yaml:"type"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []QuestionOption `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// QuestionnaireTemplate is a reusable form definition.
//
// IsBuiltIn is never persisted: it is derived at read time from membership in
// the embedded built-in registry.
type QuestionnaireTemplate struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Questions   []Question `json:"questions" yaml:"questions"`
	IsBuiltIn   bool       `json:"isBuiltIn" yaml:"-"`
}
