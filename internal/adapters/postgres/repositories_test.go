package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/domain"
	"peorisk/internal/ports"
	"peorisk/internal/services/assessments"
)

// Runs only against a disposable database named by TEST_DATABASE_URL.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url, 2)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE assessments RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}

func TestAssessmentRepository(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	var _ ports.AssessmentRepository = db

	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	first, err := assessments.Assemble(domain.Answers{
		domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Acme", State: "CA", Employees: "12", Size: "under_1m"}),
		"industry":               domain.Scalar("construction"),
	}, base)
	require.NoError(t, err)
	second, err := assessments.Assemble(domain.Answers{
		domain.ProfileQuestionID: domain.Profile(domain.CompanyProfile{CompanyName: "Globex", State: "NY", Employees: "many"}),
	}, base.Add(time.Hour))
	require.NoError(t, err)

	id1, at1, err := db.Insert(ctx, first)
	require.NoError(t, err)
	assert.True(t, at1.Equal(base))
	id2, _, err := db.Insert(ctx, second)
	require.NoError(t, err)

	all, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, id2, all[0].ID)
	assert.Nil(t, all[0].Employees)

	got, err := db.Get(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, 12, *got.Employees)
	assert.Equal(t, "under_1m", *got.AnnualRevenue)
	assert.Equal(t, "construction", *got.Industry)
	assert.Nil(t, got.PreviousClaims)
	assert.JSONEq(t, first.AnswersRaw, got.AnswersRaw)

	_, err = db.Get(ctx, id2+100)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
