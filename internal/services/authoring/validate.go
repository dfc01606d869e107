package authoring

import (
	"fmt"
	"strings"

	"peorisk/internal/apperr"
	"peorisk/internal/domain"
)

var errInvalid = apperr.Invalid("question validation failed")

// FieldError points at one offending field of one question.
type FieldError struct {
	Index      int    `json:"index"`
	QuestionID string `json:"questionId,omitempty"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("question %d %s: %s", fe.Index, fe.Field, fe.Message)
	}
	return "invalid questions: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() error { return errInvalid }

// Validate checks every question and the uniqueness of ids across the set.
// It returns nil or a ValidationErrors.
func Validate(questions []domain.Question) error {
	var errs ValidationErrors
	seen := make(map[string]int, len(questions))
	for i, q := range questions {
		errs = append(errs, validateQuestion(i, q)...)
		if q.ID == "" {
			continue
		}
		if first, dup := seen[q.ID]; dup {
			errs = append(errs, FieldError{
				Index: i, QuestionID: q.ID, Field: "id",
				Message: fmt.Sprintf("duplicates question %d", first),
			})
			continue
		}
		seen[q.ID] = i
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateQuestion(index int, q domain.Question) ValidationErrors {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, FieldError{Index: index, QuestionID: q.ID, Field: field, Message: msg})
	}

	if strings.TrimSpace(q.ID) == "" {
		add("id", "is required")
	}
	if strings.TrimSpace(q.Text) == "" {
		add("text", "is required")
	}
	if !q.Type.Known() {
		add("type", fmt.Sprintf("unknown type %q", q.Type))
	}
	if q.Type.NeedsOptions() {
		if len(q.Options) == 0 {
			add("options", "at least one option is required")
		}
		values := make(map[string]bool, len(q.Options))
		for j, o := range q.Options {
			if strings.TrimSpace(o.Label) == "" {
				add(fmt.Sprintf("options[%d].label", j), "is required")
			}
			if strings.TrimSpace(o.Value) == "" {
				add(fmt.Sprintf("options[%d].value", j), "is required")
				continue
			}
			if values[o.Value] {
				add(fmt.Sprintf("options[%d].value", j), fmt.Sprintf("duplicate value %q", o.Value))
			}
			values[o.Value] = true
		}
	}
	if q.Condition != nil {
		if err := q.Condition.Validate(); err != nil {
			add("condition", err.Error())
		}
	}
	return errs
}
