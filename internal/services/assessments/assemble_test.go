package assessments

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/domain"
)

var submittedAt = time.Date(2025, 3, 4, 10, 30, 0, 0, time.FixedZone("PST", -8*3600))

func TestAssembleAcme(t *testing.T) {
	answers := domain.Answers{
		domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "CA", Employees: "12"}),
	}
	s, err := Assemble(answers, submittedAt)
	require.NoError(t, err)

	assert.Equal(t, "Acme", s.CompanyName)
	assert.Equal(t, "CA", s.State)
	require.NotNil(t, s.Employees)
	assert.Equal(t, 12, *s.Employees)
	assert.Nil(t, s.YearsInBusiness)
	require.NotNil(t, s.AnnualRevenue)
	assert.Equal(t, "", *s.AnnualRevenue)
	assert.Nil(t, s.Industry)
	assert.Equal(t, submittedAt.UTC(), s.SubmittedAt)
	assert.Equal(t, time.UTC, s.SubmittedAt.Location())
	assert.JSONEq(t, `{"company_profile":{"companyName":"Acme","state":"CA","employees":"12","yearsInBusiness":"","size":""}}`, s.AnswersRaw)
}

func TestAssembleMalformedNumbersDegradeToNil(t *testing.T) {
	answers := domain.Answers{
		domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "TX", Employees: "many", YearsInBusiness: " 7 "}),
	}
	s, err := Assemble(answers, submittedAt)
	require.NoError(t, err)

	assert.Nil(t, s.Employees)
	require.NotNil(t, s.YearsInBusiness)
	assert.Equal(t, 7, *s.YearsInBusiness)
}

func TestAssembleFlatFields(t *testing.T) {
	answers := domain.Answers{
		domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "CA", Size: "1m_5m"}),
		KeyIndustry:              domain.Scalar("construction"),
		KeyWorkersComp:           domain.Scalar("yes"),
		KeySafetyProgram:         domain.Scalar("in_progress"),
		KeyCalOshaPermit:         domain.Scalar("no"),
		"construction_height":    domain.Scalar("yes"),
	}
	s, err := Assemble(answers, submittedAt)
	require.NoError(t, err)

	assert.Equal(t, "1m_5m", *s.AnnualRevenue)
	assert.Equal(t, "construction", *s.Industry)
	assert.Equal(t, "yes", *s.WorkersComp)
	assert.Equal(t, "in_progress", *s.SafetyProgram)
	assert.Equal(t, "no", *s.CalOshaPermit)
	assert.Nil(t, s.PreviousClaims)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(s.AnswersRaw), &raw))
	assert.Equal(t, "yes", raw["construction_height"])
}

func TestAssembleWithoutProfile(t *testing.T) {
	s, err := Assemble(nil, submittedAt)
	require.NoError(t, err)
	assert.Empty(t, s.CompanyName)
	assert.Nil(t, s.Employees)
	assert.Equal(t, "{}", s.AnswersRaw)
}

func TestAssembleProfileUnderFlatKeyIsJSONText(t *testing.T) {
	answers := domain.Answers{KeyIndustry: domain.Profile(domain.CompanyProfile{CompanyName: "Odd"})}
	s, err := Assemble(answers, submittedAt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"companyName":"Odd","state":"","employees":"","yearsInBusiness":"","size":""}`, *s.Industry)
}

func TestAssembleKeepsSubmittedAnswersVerbatim(t *testing.T) {
	body := `{
		"company_profile": {"companyName": "Acme", "state": "TX", "employees": 40, "yearsInBusiness": "", "size": ""},
		"notes": {"site": "north"},
		"industry": "retail"
	}`
	var answers domain.Answers
	require.NoError(t, json.Unmarshal([]byte(body), &answers))

	s, err := Assemble(answers, submittedAt)
	require.NoError(t, err)

	assert.JSONEq(t, body, s.AnswersRaw)
	require.NotNil(t, s.Employees)
	assert.Equal(t, 40, *s.Employees)
	assert.Nil(t, s.YearsInBusiness)
	require.NotNil(t, s.AnnualRevenue)
	assert.Equal(t, "", *s.AnnualRevenue)
}

func TestAssembleMissingSizeIsNull(t *testing.T) {
	var answers domain.Answers
	require.NoError(t, json.Unmarshal([]byte(`{"company_profile":{"companyName":"Acme","state":"TX"}}`), &answers))

	s, err := Assemble(answers, submittedAt)
	require.NoError(t, err)
	assert.Nil(t, s.AnnualRevenue)
	assert.JSONEq(t, `{"company_profile":{"companyName":"Acme","state":"TX"}}`, s.AnswersRaw)
}
