package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ProfileQuestionID is the answer key the company profile is stored under.
const ProfileQuestionID = "company_profile"

type AnswerKind uint8

const (
	KindAbsent AnswerKind = iota
	KindScalar
	KindProfile
)

// CompanyProfile is the composite answer of a company_profile question.
// Numeric sub-fields stay as typed text; the assembler parses them.
type CompanyProfile struct {
	CompanyName     string `json:"companyName"`
	State           string `json:"state"`
	Employees       string `json:"employees"`
	YearsInBusiness string `json:"yearsInBusiness"`
	Size            string `json:"size"`
}

// Field returns the sub-field addressed by its wire name.
func (p CompanyProfile) Field(name string) (string, bool) {
	switch name {
	case "companyName":
		return p.CompanyName, true
	case "state":
		return p.State, true
	case "employees":
		return p.Employees, true
	case "yearsInBusiness":
		return p.YearsInBusiness, true
	case "size":
		return p.Size, true
	}
	return "", false
}

// WithField returns a copy of p with the named sub-field replaced.
func (p CompanyProfile) WithField(name, value string) (CompanyProfile, error) {
	switch name {
	case "companyName":
		p.CompanyName = value
	case "state":
		p.State = value
	case "employees":
		p.Employees = value
	case "yearsInBusiness":
		p.YearsInBusiness = value
	case "size":
		p.Size = value
	default:
		return p, fmt.Errorf("unknown company profile field %q", name)
	}
	return p, nil
}

// ProfileFields lists the company profile sub-fields in display order.
var ProfileFields = []string{"companyName", "state", "employees", "yearsInBusiness", "size"}

// Answer is either absent, a scalar or a company profile. The zero value is
// absent. An answer decoded from JSON keeps the submitted text and encodes
// back to it unchanged.
type Answer struct {
	kind    AnswerKind
	scalar  string
	profile CompanyProfile
	raw     []byte
}

func Scalar(v string) Answer { return Answer{kind: KindScalar, scalar: v} }

func Profile(p CompanyProfile) Answer { return Answer{kind: KindProfile, profile: p} }

func (a Answer) Kind() AnswerKind { return a.kind }

func (a Answer) IsAbsent() bool { return a.kind == KindAbsent }

func (a Answer) Scalar() (string, bool) {
	return a.scalar, a.kind == KindScalar
}

func (a Answer) Profile() (CompanyProfile, bool) {
	return a.profile, a.kind == KindProfile
}

// IsEmpty is true for absent answers and blank scalars. A profile is never
// empty here; Question.Answered applies the stricter profile rule.
func (a Answer) IsEmpty() bool {
	switch a.kind {
	case KindScalar:
		return a.scalar == ""
	case KindProfile:
		return false
	}
	return true
}

// String renders scalars as-is and profiles as their JSON form.
func (a Answer) String() string {
	switch a.kind {
	case KindScalar:
		return a.scalar
	case KindProfile:
		b, err := a.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(b)
	}
	return ""
}

// HasProfileField reports whether a profile answer carries the named
// sub-field with a non-null value. Profiles built in code carry all of them.
func (a Answer) HasProfileField(name string) bool {
	if a.kind != KindProfile {
		return false
	}
	if _, ok := a.profile.Field(name); !ok {
		return false
	}
	if a.raw == nil {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(a.raw, &fields); err != nil {
		return false
	}
	v, ok := fields[name]
	return ok && string(v) != "null"
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}
	switch a.kind {
	case KindScalar:
		return json.Marshal(a.scalar)
	case KindProfile:
		return json.Marshal(a.profile)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts strings, numbers, booleans, null and objects. Numbers
// and booleans are coerced to their text form.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*a = Answer{}
	case map[string]any:
		var p CompanyProfile
		for _, name := range ProfileFields {
			field, ok := v[name]
			if !ok || field == nil {
				continue
			}
			s, err := coerceScalar(field)
			if err != nil {
				return fmt.Errorf("company profile %s: %w", name, err)
			}
			p, _ = p.WithField(name, s)
		}
		*a = Profile(p)
	default:
		s, err := coerceScalar(v)
		if err != nil {
			return err
		}
		*a = Scalar(s)
	}
	if a.kind != KindAbsent {
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		a.raw = buf.Bytes()
	}
	return nil
}

func coerceScalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", fmt.Errorf("unsupported answer value of type %T", v)
}

// Answers maps question ids to answers.
type Answers map[string]Answer

// Get returns the stored answer or an absent one.
func (as Answers) Get(id string) Answer {
	if as == nil {
		return Answer{}
	}
	return as[id]
}

// Set stores a; setting an absent answer removes the key.
func (as Answers) Set(id string, a Answer) {
	if a.IsAbsent() {
		delete(as, id)
		return
	}
	as[id] = a
}

func (as Answers) Clone() Answers {
	out := make(Answers, len(as))
	for k, v := range as {
		out[k] = v
	}
	return out
}

// Lookup resolves a dotted path. The first segment names an answer key and a
// second segment addresses a company profile sub-field. Anything that does
// not resolve is absent.
func (as Answers) Lookup(path string) Answer {
	path = strings.TrimPrefix(path, "answers.")
	key, sub, nested := strings.Cut(path, ".")
	a := as.Get(key)
	if !nested {
		return a
	}
	p, ok := a.Profile()
	if !ok || strings.Contains(sub, ".") {
		return Answer{}
	}
	v, ok := p.Field(sub)
	if !ok || v == "" {
		return Answer{}
	}
	return Scalar(v)
}
