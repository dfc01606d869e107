package assessments

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"peorisk/internal/domain"
)

// Flat answer keys promoted to their own columns.
const (
	KeyIndustry       = "industry"
	KeyWorkersComp    = "workersComp"
	KeySafetyProgram  = "safetyProgram"
	KeyCalOshaPermit  = "calOshaPermit"
	KeyPreviousClaims = "previousClaims"
)

// Assemble flattens answers into a Submission stamped with now. Malformed
// numeric fields become nil; only serialization of the aggregate can fail.
func Assemble(answers domain.Answers, now time.Time) (domain.Submission, error) {
	raw, err := json.Marshal(answersOrEmpty(answers))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("serialize answers: %w", err)
	}

	s := domain.Submission{
		SubmittedAt:    now.UTC(),
		AnswersRaw:     string(raw),
		Industry:       flat(answers, KeyIndustry),
		WorkersComp:    flat(answers, KeyWorkersComp),
		SafetyProgram:  flat(answers, KeySafetyProgram),
		CalOshaPermit:  flat(answers, KeyCalOshaPermit),
		PreviousClaims: flat(answers, KeyPreviousClaims),
	}
	profile := answers.Get(domain.ProfileQuestionID)
	if p, ok := profile.Profile(); ok {
		s.CompanyName = p.CompanyName
		s.State = p.State
		s.Employees = parseInt(p.Employees)
		s.YearsInBusiness = parseInt(p.YearsInBusiness)
		if profile.HasProfileField("size") {
			size := p.Size
			s.AnnualRevenue = &size
		}
	}
	return s, nil
}

func answersOrEmpty(answers domain.Answers) domain.Answers {
	if answers == nil {
		return domain.Answers{}
	}
	return answers
}

func flat(answers domain.Answers, key string) *string {
	a := answers.Get(key)
	if a.IsAbsent() {
		return nil
	}
	v := a.String()
	return &v
}

func parseInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
