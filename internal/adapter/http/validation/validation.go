// Package validation registers the domain binding rules on gin's validator
// and renders validator errors as per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the rules on gin's default validator engine. Safe to call
// more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not validator/v10")
			return
		}
		registerErr = RegisterRules(v)
	})
	return registerErr
}

// RegisterRules adds the custom tags to v and makes field errors report JSON names.
func RegisterRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"paymenttype":     oneOfType(func(s string) bool { return entities.PaymentType(s).IsValid() }),
		"questiontype":    oneOfType(func(s string) bool { return entities.QuestionType(s).IsValid() }),
		"contentcategory": oneOfType(func(s string) bool { return entities.ContentCategory(s).IsValid() }),
		"contenttype":     oneOfType(func(s string) bool { return entities.ContentType(s).IsValid() }),
		"trackingtarget":  oneOfType(func(s string) bool { return entities.TrackingTarget(s).IsValid() }),
		"templateid":      keyID,
		"entityid":        keyID,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// oneOfType accepts the empty string so optional fields can combine the tag
// with omitempty or a server-side default.
func oneOfType(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || valid(s)
	}
}

func keyID(fl validator.FieldLevel) bool {
	return ids.Valid(fl.Field().String())
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// FieldErrors maps a binding error to field -> message. Errors that are not
// validator errors (malformed JSON) come back under "body".
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		if err != nil {
			out["body"] = "Malformed request body"
		}
		return out
	}
	for _, fe := range ve {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "min":
		return fmt.Sprintf("Must have at least %s item(s) or characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "paymenttype":
		return "Must be one of: full, partial, installments"
	case "questiontype":
		return "Must be one of: text, email, checkbox, radio, textarea, select"
	case "contentcategory":
		return "Must be one of: reports, resources, training, links"
	case "contenttype":
		return "Must be one of: link, file, video"
	case "trackingtarget":
		return "Must be one of: proposal, questionnaire, portal"
	case "templateid", "entityid":
		return "Must be lowercase letters, digits and dashes, and not a reserved name"
	}
	return "Invalid value"
}
