// Package redis stores the committed question set in Redis so admin edits
// survive restarts.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"

	"peorisk/internal/domain"
)

const DefaultKey = "peorisk:questions"

type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client and verifies it with PING.
func Connect(ctx context.Context, opts Options) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// QuestionStore keeps the whole ordered set as one JSON value. Until the
// first Replace it serves the seed.
type QuestionStore struct {
	rdb  *goredis.Client
	key  string
	seed []domain.Question
}

func NewQuestionStore(rdb *goredis.Client, key string, seed []domain.Question) *QuestionStore {
	if key == "" {
		key = DefaultKey
	}
	return &QuestionStore{rdb: rdb, key: key, seed: domain.CloneQuestions(seed)}
}

func (s *QuestionStore) List(ctx context.Context) ([]domain.Question, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.CloneQuestions(s.seed), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	var qs []domain.Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return qs, nil
}

func (s *QuestionStore) Replace(ctx context.Context, questions []domain.Question) error {
	if questions == nil {
		questions = []domain.Question{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
