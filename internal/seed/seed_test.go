package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/domain"
	"peorisk/internal/services/authoring"
)

func TestDefaultIsValid(t *testing.T) {
	qs, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, qs)
	assert.NoError(t, authoring.Validate(qs))

	assert.Equal(t, domain.ProfileQuestionID, qs[0].ID)
	assert.Equal(t, domain.TypeCompanyProfile, qs[0].Type)

	byID := map[string]domain.Question{}
	for _, q := range qs {
		byID[q.ID] = q
	}
	permit, ok := byID["calOshaPermit"]
	require.True(t, ok)
	require.NotNil(t, permit.Condition)

	ca := domain.Answers{domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "CA"})}
	ny := domain.Answers{domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "NY"})}
	assert.True(t, permit.Visible(ca))
	assert.False(t, permit.Visible(ny))
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yaml")
	src := `
- id: industry
  text: Which industry?
  type: select
  options:
    - {label: Technology, value: tech}
- id: notes
  text: Anything else?
  type: textarea
  optional: true
  condition:
    op: neq
    path: industry
    value: tech
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	qs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.True(t, qs[1].Optional)
	assert.Equal(t, domain.Neq("industry", "tech"), *qs[1].Condition)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	want, err := Default()
	require.NoError(t, err)
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseRejectsBadCondition(t *testing.T) {
	_, err := Parse([]byte("- id: x\n  text: X\n  type: text\n  condition: {op: in, path: state}\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
