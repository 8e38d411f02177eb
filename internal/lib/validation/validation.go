// Package validation checks request payloads against per-endpoint rule
// tables. A table lists fields in priority order, each with validator tags and
// the single message a client gets when that field is the first to fail.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// Field declares the rules for one payload key.
//
// Rules is a comma separated list of go-playground/validator tags plus the
// engine tags "string", "integer" and "confirmed". Blank values are only checked
// against "required"; every other rule applies to present values.
type Field struct {
	Name    string
	Rules   string
	Message string
}

type Table []Field

// First returns the highest priority field that has violations.
func (t Table) First(errs Errors) (Field, bool) {
	for _, f := range t {
		if errs.Has(f.Name) {
			return f, true
		}
	}
	return Field{}, false
}

// Errors maps a field name to every rule message it violated, in rule order.
type Errors map[string][]string

func (e Errors) Empty() bool {
	return len(e) == 0
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// RuleFunc is a custom rule registered under its own tag.
type RuleFunc func(ctx context.Context, value any) bool

type Engine struct {
	validate *validator.Validate
	messages map[string]string
}

func New() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())

	messages := make(map[string]string, len(defaultMessages))
	for tag, msg := range defaultMessages {
		messages[tag] = msg
	}

	return &Engine{
		validate: v,
		messages: messages,
	}
}

// RegisterRule adds a custom tag. message may use :attribute and :param.
func (e *Engine) RegisterRule(tag, message string, fn RuleFunc) error {
	const op = "validation.Engine.RegisterRule"

	err := e.validate.RegisterValidationCtx(tag, func(ctx context.Context, fl validator.FieldLevel) bool {
		return fn(ctx, fl.Field().Interface())
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	e.messages[tag] = message

	return nil
}

// Check runs every rule of every field in table against payload and collects
// all violations. A field stops at its first type violation, every other
// rule is always checked.
func (e *Engine) Check(ctx context.Context, payload map[string]any, table Table) Errors {
	errs := Errors{}

	for _, f := range table {
		value := payload[f.Name]
		tags := splitRules(f.Rules)

		if isBlank(value) {
			for _, tag := range tags {
				if tag == "required" {
					errs.add(f.Name, e.message(f.Name, tag, ""))
				}
			}
			continue
		}

	rules:
		for _, tag := range tags {
			switch tag {
			case "required", "omitempty":
				continue
			case "string":
				// length and format rules assume a string
				if _, ok := value.(string); !ok {
					errs.add(f.Name, e.message(f.Name, tag, ""))
					break rules
				}
				continue
			case "integer":
				if !IsInteger(value) {
					errs.add(f.Name, e.message(f.Name, tag, ""))
				}
				continue
			case "confirmed":
				if !reflect.DeepEqual(payload[f.Name+"_confirmation"], value) {
					errs.add(f.Name, e.message(f.Name, tag, ""))
				}
				continue
			}

			if err := e.validate.VarCtx(ctx, value, tag); err != nil {
				name, param, _ := strings.Cut(tag, "=")
				errs.add(f.Name, e.message(f.Name, name, param))
			}
		}
	}

	return errs
}

// ParseInteger reads v as a base 10 int64. Leading zeros are decimal, and
// fractions or out of range values are errors.
func ParseInteger(v any) (int64, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func IsInteger(v any) bool {
	_, err := ParseInteger(v)
	return err == nil
}

func (e *Engine) message(field, tag, param string) string {
	tmpl, ok := e.messages[tag]
	if !ok {
		tmpl = defaultMessage
	}

	return strings.NewReplacer(
		":attribute", strings.ReplaceAll(field, "_", " "),
		":param", param,
	).Replace(tmpl)
}

func splitRules(rules string) []string {
	parts := strings.Split(rules, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
