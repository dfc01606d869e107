package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ConditionOp string

const (
	OpEq      ConditionOp = "eq"
	OpNeq     ConditionOp = "neq"
	OpIn      ConditionOp = "in"
	OpPresent ConditionOp = "present"
	OpAnd     ConditionOp = "and"
	OpOr      ConditionOp = "or"
	OpNot     ConditionOp = "not"
)

// Condition is a serializable visibility predicate over Answers.
//
// Leaf operators (eq, neq, in, present) read Path, a flat answer key such as
// "state" or a nested one such as "company_profile.state". Combinators (and,
// or, not) read Terms; not takes exactly one term.
type Condition struct {
	Op     ConditionOp `json:"op" yaml:"op"`
	Path   string      `json:"path,omitempty" yaml:"path,omitempty"`
	Value  string      `json:"value,omitempty" yaml:"value,omitempty"`
	Values []string    `json:"values,omitempty" yaml:"values,omitempty"`
	Terms  []Condition `json:"terms,omitempty" yaml:"terms,omitempty"`
}

func Eq(path, value string) Condition  { return Condition{Op: OpEq, Path: path, Value: value} }
func Neq(path, value string) Condition { return Condition{Op: OpNeq, Path: path, Value: value} }
func Present(path string) Condition    { return Condition{Op: OpPresent, Path: path} }
func And(terms ...Condition) Condition { return Condition{Op: OpAnd, Terms: terms} }
func Or(terms ...Condition) Condition  { return Condition{Op: OpOr, Terms: terms} }
func Not(term Condition) Condition     { return Condition{Op: OpNot, Terms: []Condition{term}} }

func In(path string, values ...string) Condition {
	return Condition{Op: OpIn, Path: path, Values: values}
}

// Evaluate interprets c against answers. Missing keys are absent: eq, in and
// present are false for them and neq is true.
func (c Condition) Evaluate(answers Answers) bool {
	switch c.Op {
	case OpEq:
		v, ok := answers.Lookup(c.Path).Scalar()
		return ok && v == c.Value
	case OpNeq:
		v, ok := answers.Lookup(c.Path).Scalar()
		return !ok || v != c.Value
	case OpIn:
		v, ok := answers.Lookup(c.Path).Scalar()
		if !ok {
			return false
		}
		for _, candidate := range c.Values {
			if v == candidate {
				return true
			}
		}
		return false
	case OpPresent:
		return !answers.Lookup(c.Path).IsEmpty()
	case OpAnd:
		for _, t := range c.Terms {
			if !t.Evaluate(answers) {
				return false
			}
		}
		return true
	case OpOr:
		for _, t := range c.Terms {
			if t.Evaluate(answers) {
				return true
			}
		}
		return false
	case OpNot:
		return len(c.Terms) == 1 && !c.Terms[0].Evaluate(answers)
	}
	return false
}

// Validate checks the structural shape of c.
func (c Condition) Validate() error {
	switch c.Op {
	case OpEq, OpNeq, OpPresent:
		if strings.TrimSpace(c.Path) == "" {
			return fmt.Errorf("%s condition requires a path", c.Op)
		}
	case OpIn:
		if strings.TrimSpace(c.Path) == "" {
			return errors.New("in condition requires a path")
		}
		if len(c.Values) == 0 {
			return errors.New("in condition requires at least one value")
		}
	case OpAnd, OpOr:
		if len(c.Terms) == 0 {
			return fmt.Errorf("%s condition requires terms", c.Op)
		}
		for i, t := range c.Terms {
			if err := t.Validate(); err != nil {
				return fmt.Errorf("%s term %d: %w", c.Op, i, err)
			}
		}
	case OpNot:
		if len(c.Terms) != 1 {
			return errors.New("not condition requires exactly one term")
		}
		return c.Terms[0].Validate()
	default:
		return fmt.Errorf("unknown condition operator %q", c.Op)
	}
	return nil
}

func (c Condition) Clone() Condition {
	out := c
	if c.Values != nil {
		out.Values = append([]string(nil), c.Values...)
	}
	if c.Terms != nil {
		out.Terms = make([]Condition, len(c.Terms))
		for i, t := range c.Terms {
			out.Terms[i] = t.Clone()
		}
	}
	return out
}

// String renders c in the admin editor's expression syntax.
func (c Condition) String() string {
	switch c.Op {
	case OpEq:
		return "answers." + c.Path + " === " + quote(c.Value)
	case OpNeq:
		return "answers." + c.Path + " !== " + quote(c.Value)
	case OpIn:
		parts := make([]string, len(c.Values))
		for i, v := range c.Values {
			parts[i] = "answers." + c.Path + " === " + quote(v)
		}
		return "(" + strings.Join(parts, " || ") + ")"
	case OpPresent:
		return "answers." + c.Path
	case OpAnd, OpOr:
		sep := " && "
		if c.Op == OpOr {
			sep = " || "
		}
		parts := make([]string, len(c.Terms))
		for i, t := range c.Terms {
			parts[i] = t.String()
		}
		return "(" + strings.Join(parts, sep) + ")"
	case OpNot:
		if len(c.Terms) == 1 {
			return "!(" + c.Terms[0].String() + ")"
		}
	}
	return ""
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
