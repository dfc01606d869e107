package domain

import "time"

// Core domain models shared by the engine, the services and the adapters.
// Transport shapes live in internal/adapters/http; keep these decoupled.

type QuestionType string

const (
	TypeText           QuestionType = "text"
	TypeNumber         QuestionType = "number"
	TypeTextarea       QuestionType = "textarea"
	TypeSelect         QuestionType = "select"
	TypeRadio          QuestionType = "radio"
	TypeCompanyProfile QuestionType = "company_profile"
)

// Known reports whether t is one of the supported input types.
func (t QuestionType) Known() bool {
	switch t {
	case TypeText, TypeNumber, TypeTextarea, TypeSelect, TypeRadio, TypeCompanyProfile:
		return true
	}
	return false
}

// NeedsOptions is true for the choice types.
func (t QuestionType) NeedsOptions() bool {
	return t == TypeSelect || t == TypeRadio
}

type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type Question struct {
	ID          string       `json:"id" yaml:"id"`
	Text        string       `json:"text" yaml:"text"`
	Type        QuestionType `json:"type" yaml:"type"`
	Options     []Option     `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Condition   *Condition   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Optional    bool         `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Visible evaluates the question's condition against answers. A question
// without a condition is always visible.
func (q Question) Visible(answers Answers) bool {
	if q.Condition == nil {
		return true
	}
	return q.Condition.Evaluate(answers)
}

// Answered reports whether answers hold a usable value for q. A company
// profile counts once both the company name and the state are filled in.
func (q Question) Answered(answers Answers) bool {
	a := answers.Get(q.ID)
	if q.Type == TypeCompanyProfile {
		p, ok := a.Profile()
		return ok && p.CompanyName != "" && p.State != ""
	}
	return !a.IsEmpty()
}

// Clone returns a deep copy so callers can hand questions across ownership
// boundaries without sharing option slices or conditions.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]Option(nil), q.Options...)
	}
	if q.Condition != nil {
		c := q.Condition.Clone()
		out.Condition = &c
	}
	return out
}

func CloneQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// Submission is the persisted shape of a completed assessment.
type Submission struct {
	ID              int64     `json:"id"`
	SubmittedAt     time.Time `json:"submittedAt"`
	CompanyName     string    `json:"companyName"`
	State           string    `json:"state"`
	Employees       *int      `json:"employees"`
	YearsInBusiness *int      `json:"yearsInBusiness"`
	AnnualRevenue   *string   `json:"annualRevenue"`
	Industry        *string   `json:"industry"`
	WorkersComp     *string   `json:"workersCompCoverage"`
	SafetyProgram   *string   `json:"safetyProgram"`
	CalOshaPermit   *string   `json:"calOshaPermit"`
	PreviousClaims  *string   `json:"previousClaims"`
	AnswersRaw      string    `json:"answersJson"`
}

// LookupRecord is registry-style display data returned by the company lookup.
// It is never treated as validated input.
type LookupRecord struct {
	Agency     string   `json:"agency"`
	Status     string   `json:"status"`
	FilingDate string   `json:"filingDate"`
	Address    string   `json:"address"`
	Officers   []string `json:"officers"`
	DocNumber  string   `json:"docNumber"`
	EntityType string   `json:"entityType"`
	LastReport string   `json:"lastReport"`
	SourceURL  string   `json:"sourceUrl"`
}

// Session is a snapshot of a server-hosted wizard run.
type Session struct {
	ID           string      `json:"id"`
	CurrentIndex int         `json:"currentIndex"`
	History      []int       `json:"history"`
	IsComplete   bool        `json:"isComplete"`
	Current      *Question   `json:"current,omitempty"`
	CanAdvance   bool        `json:"canAdvance"`
	Answers      Answers     `json:"answers"`
	Submission   *Submission `json:"submission,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
