// Package inputval checks submitted form and JSON input against struct tags.
//
// Rules come from waffle/pantry/validate (required, oneof, min, max) plus
// two registered here:
//
//	blockkind  one of the lesson content block kinds
//	objectid   a backend identifier, 24 hex characters
//
// The label tag names the field in messages:
//
//	type newLessonInput struct {
//	    CourseID string `validate:"required,objectid" label:"Course ID"`
//	}
package inputval

import (
	"errors"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/validate"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rule names callers branch on.
const (
	RuleRequired  = "required"
	RuleBlockKind = "blockkind"
	RuleObjectID  = "objectid"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Label   string
	Rule    string
	Message string
}

// Result collects the failed rules of one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// FirstRule returns the rule that failed first, or "".
func (r *Result) FirstRule() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Rule
}

// All joins every message with "; ".
func (r *Result) All() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

var (
	validator     *validate.Validator
	validatorOnce sync.Once
)

func stringRule(check func(string) bool) func(any) bool {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && check(s)
	}
}

func instance() *validate.Validator {
	validatorOnce.Do(func() {
		validator = validate.New(validate.WithStopOnFirstError())
		validator.RegisterRuleFunc(RuleBlockKind, stringRule(IsBlockKind), RuleBlockKind)
		validator.RegisterRuleFunc(RuleObjectID, stringRule(IsValidObjectID), RuleObjectID)
	})
	return validator
}

// Validate checks s, a struct or pointer to struct, against its validate tags.
func Validate(s any) *Result {
	res := &Result{}

	err := instance().Struct(s)
	if err == nil {
		return res
	}

	var errs validate.Errors
	if !errors.As(err, &errs) {
		return res
	}

	labels := labelsOf(s)
	for _, e := range errs {
		label := labels[e.Field]
		if label == "" {
			label = e.Field
		}
		res.Errors = append(res.Errors, FieldError{
			Field:   e.Field,
			Label:   label,
			Rule:    e.Rule,
			Message: message(label, e.Rule, e.Param),
		})
	}
	return res
}

// labelsOf maps field names, or their json names when tagged, to label tags.
func labelsOf(s any) map[string]string {
	labels := map[string]string{}

	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return labels
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		label := f.Tag.Get("label")
		if label == "" {
			continue
		}
		name := f.Name
		if j, _, _ := strings.Cut(f.Tag.Get("json"), ","); j != "" && j != "-" {
			name = j
		}
		labels[name] = label
	}
	return labels
}

func message(label, rule, param string) string {
	switch rule {
	case RuleRequired:
		return label + " is required."
	case "oneof", "enum":
		return label + " must be one of: " + strings.ReplaceAll(param, " ", ", ") + "."
	case "min":
		return label + " must be at least " + param + " characters."
	case "max":
		return label + " must be at most " + param + " characters."
	case RuleBlockKind:
		kinds := models.AllBlockKinds()
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		return label + " must be one of: " + strings.Join(names, ", ") + "."
	case RuleObjectID:
		return label + " is not a valid ID."
	}
	return label + " is invalid."
}

// IsBlockKind reports whether s names a block kind, ignoring case and
// surrounding space.
func IsBlockKind(s string) bool {
	return models.IsValidBlockKind(strings.ToLower(strings.TrimSpace(s)))
}

// IsValidHTTPURL reports whether s is an absolute http:// or https:// URL.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidObjectID reports whether s is a 24 hex character identifier.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}
