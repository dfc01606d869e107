package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionWithoutConditionAlwaysVisible(t *testing.T) {
	q := Question{ID: "industry", Text: "Industry?", Type: TypeText}

	for _, answers := range []Answers{
		nil,
		{},
		{"state": Scalar("CA")},
		{ProfileQuestionID: Profile(CompanyProfile{CompanyName: "Acme"})},
	} {
		assert.True(t, q.Visible(answers))
	}
}

func TestConditionEvaluate(t *testing.T) {
	answers := Answers{
		"state":           Scalar("CA"),
		"industry":        Scalar("construction"),
		"claims_history":  Scalar(""),
		ProfileQuestionID: Profile(CompanyProfile{CompanyName: "Acme", State: "NY"}),
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"flat eq", Eq("state", "CA"), true},
		{"flat eq mismatch", Eq("state", "NY"), false},
		{"missing key eq", Eq("healthcare_type", "hospital"), false},
		{"missing key neq", Neq("healthcare_type", "hospital"), true},
		{"nested eq", Eq("company_profile.state", "NY"), true},
		{"nested missing field", Eq("company_profile.size", "micro"), false},
		{"nested into scalar", Eq("state.code", "CA"), false},
		{"answers prefix", Eq("answers.industry", "construction"), true},
		{"in", In("industry", "healthcare", "construction"), true},
		{"in missing", In("wc_code", "8810"), false},
		{"present blank", Present("claims_history"), false},
		{"present nested", Present("company_profile.companyName"), true},
		{"and", And(Eq("state", "CA"), Eq("industry", "construction")), true},
		{"or", Or(Eq("state", "TX"), Eq("industry", "construction")), true},
		{"not", Not(Eq("state", "CA")), false},
		{"empty and", And(), true},
		{"empty or", Or(), false},
		{"unknown op", Condition{Op: "matches", Path: "state"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.Evaluate(answers))
		})
	}
}

func TestConditionValidate(t *testing.T) {
	assert.NoError(t, And(Eq("state", "CA"), Not(Present("industry"))).Validate())
	assert.Error(t, Eq("", "CA").Validate())
	assert.Error(t, In("state").Validate())
	assert.Error(t, Condition{Op: OpNot}.Validate())
	assert.Error(t, Or(Eq("state", "CA"), Condition{Op: "bogus"}).Validate())
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in   string
		want Condition
	}{
		{"answers.state === 'CA'", Eq("state", "CA")},
		{`answers.industry == "construction"`, Eq("industry", "construction")},
		{"'yes' === answers.claims_history", Eq("claims_history", "yes")},
		{"answers.state !== 'CA'", Neq("state", "CA")},
		{"answers.company_profile?.state === 'FL'", Eq("company_profile.state", "FL")},
		{"answers.wc_code", Present("wc_code")},
		{"answers.employees_count === 10", Eq("employees_count", "10")},
		{
			"answers.state === 'CA' && (answers.industry === 'construction' || !answers.wc_code)",
			And(Eq("state", "CA"), Or(Eq("industry", "construction"), Not(Present("wc_code")))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCondition(tt.in)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseConditionEmptyAndErrors(t *testing.T) {
	c, err := ParseCondition("   ")
	assert.NoError(t, err)
	assert.Nil(t, c)

	for _, bad := range []string{
		"answers.state === ",
		"answers.state === 'CA",
		"'CA' === 'NY'",
		"(answers.state === 'CA'",
		"answers.state = 'CA'",
		"'CA'",
	} {
		_, err := ParseCondition(bad)
		assert.Error(t, err, bad)
	}
}

func TestConditionStringRoundTrip(t *testing.T) {
	conds := []Condition{
		Eq("state", "CA"),
		Neq("company_profile.state", "O'Hare"),
		Present("wc_code"),
		And(Eq("state", "CA"), Not(Eq("industry", "tech"))),
		Or(Eq("state", "CA"), Eq("state", "NY")),
		Eq("notes", `a\`),
		Eq("notes", `C:\temp\'x'`),
	}
	for _, c := range conds {
		parsed, err := ParseCondition(c.String())
		require.NoError(t, err, c.String())
		assert.Equal(t, c, *parsed)
	}
}
