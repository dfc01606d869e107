package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peorisk/internal/domain"
)

func newStore(t *testing.T, seed []domain.Question) (*QuestionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewQuestionStore(rdb, "", seed), mr
}

func TestListFallsBackToSeed(t *testing.T) {
	seed := []domain.Question{{ID: "industry", Text: "Industry?", Type: domain.TypeText}}
	store, _ := newStore(t, seed)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}

func TestReplaceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, nil)
	cond := domain.And(domain.Eq("company_profile.state", "CA"), domain.Not(domain.Present("wc_code")))
	qs := []domain.Question{
		{ID: "calOshaPermit", Text: "Permit?", Type: domain.TypeRadio, Options: []domain.Option{{Label: "Yes", Value: "yes"}}, Condition: &cond},
		{ID: "notes", Text: "Notes", Type: domain.TypeTextarea, Optional: true},
	}

	require.NoError(t, store.Replace(ctx, qs))
	assert.True(t, mr.Exists(DefaultKey))

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, qs, got)
}

func TestReplaceWithEmptySetDoesNotFallBack(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t, []domain.Question{{ID: "a", Text: "A", Type: domain.TypeText}})

	require.NoError(t, store.Replace(ctx, nil))
	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListCorruptValue(t *testing.T) {
	store, mr := newStore(t, nil)
	require.NoError(t, mr.Set(DefaultKey, "{not json"))
	_, err := store.List(context.Background())
	assert.Error(t, err)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := Connect(context.Background(), Options{Addr: mr.Addr()})
	require.NoError(t, err)
	assert.NoError(t, rdb.Close())

	_, err = Connect(context.Background(), Options{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
