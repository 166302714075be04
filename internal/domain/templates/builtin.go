// Package templates holds the built-in questionnaire templates shipped with the
// binary. The set is fixed at build time; provenance of any template id is
// derived from membership here, never from a stored flag.
package templates

import (
	_ "embed"
	"fmt"

	"clientportal/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed builtin_templates.yaml
var builtinYAML []byte

type registryFile struct {
	Templates []entities.QuestionnaireTemplate `yaml:"templates"`
}

// Registry is an ordered, read-only set of templates.
type Registry struct {
	ordered []entities.QuestionnaireTemplate
	byID    map[string]int
}

var builtin = mustParse(builtinYAML)

// BuiltIn returns the registry compiled into the binary.
func BuiltIn() *Registry {
	return builtin
}

// Parse decodes a registry document and validates it.
func Parse(raw []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode built-in templates: %w", err)
	}
	r := &Registry{byID: make(map[string]int, len(f.Templates))}
	for _, t := range f.Templates {
		if t.ID == "" || t.Name == "" || len(t.Questions) == 0 {
			return nil, fmt.Errorf("built-in template %q is incomplete", t.ID)
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate built-in template %q", t.ID)
		}
		for _, q := range t.Questions {
			if !q.Type.IsValid() {
				return nil, fmt.Errorf("built-in template %q: question %q has invalid type %q", t.ID, q.ID, q.Type)
			}
		}
		t.IsBuiltIn = true
		r.byID[t.ID] = len(r.ordered)
		r.ordered = append(r.ordered, t)
	}
	return r, nil
}

func mustParse(raw []byte) *Registry {
	r, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Get returns a copy of the template so callers cannot mutate the registry.
func (r *Registry) Get(id string) (entities.QuestionnaireTemplate, bool) {
	i, ok := r.byID[id]
	if !ok {
		return entities.QuestionnaireTemplate{}, false
	}
	return cloneTemplate(r.ordered[i]), true
}

func (r *Registry) List() []entities.QuestionnaireTemplate {
	out := make([]entities.QuestionnaireTemplate, 0, len(r.ordered))
	for _, t := range r.ordered {
		out = append(out, cloneTemplate(t))
	}
	return out
}

func cloneTemplate(t entities.QuestionnaireTemplate) entities.QuestionnaireTemplate {
	qs := make([]entities.Question, len(t.Questions))
	for i, q := range t.Questions {
		q.Options = append([]entities.QuestionOption(nil), q.Options...)
		qs[i] = q
	}
	t.Questions = qs
	return t
}
