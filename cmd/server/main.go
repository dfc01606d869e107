package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	httpadapter "peorisk/internal/adapters/http"
	"peorisk/internal/adapters/memory"
	pg "peorisk/internal/adapters/postgres"
	rdstore "peorisk/internal/adapters/redis"
	"peorisk/internal/config"
	"peorisk/internal/logger"
	"peorisk/internal/ports"
	"peorisk/internal/seed"
	"peorisk/internal/services/assessments"
	"peorisk/internal/services/authoring"
	"peorisk/internal/services/companies"
	"peorisk/internal/services/sessions"
	"peorisk/internal/workers/sweeper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questions, err := seed.Load(cfg.QuestionsFile)
	if err != nil {
		return err
	}
	if err := authoring.Validate(questions); err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}

	var store ports.QuestionStore = memory.NewQuestionStore(questions)
	if cfg.RedisAddr != "" {
		rdb, err := rdstore.Connect(ctx, rdstore.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		store = rdstore.NewQuestionStore(rdb, rdstore.DefaultKey, questions)
		log.Info("question set stored in redis", map[string]interface{}{"addr": cfg.RedisAddr})
	}

	var (
		repo   ports.AssessmentRepository
		health httpadapter.Pinger
	)
	switch err := cfg.RequireDatabase(); {
	case err == nil:
		db, err := pg.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		repo, health = db, db
	case cfg.Env == "production":
		return err
	default:
		log.Warn("DATABASE_URL not set, keeping assessments in memory", nil)
		repo = memory.NewAssessmentRepository()
	}

	assessmentSvc := assessments.New(repo, log)
	authoringSvc, err := authoring.New(ctx, store, log)
	if err != nil {
		return err
	}
	sessionSvc := sessions.New(store, assessmentSvc, log)
	companySvc := companies.New(cfg.LookupDelay)

	api, err := httpadapter.New(httpadapter.Deps{
		Questions:   store,
		Assessments: assessmentSvc,
		Authoring:   authoringSvc,
		Sessions:    sessionSvc,
		Companies:   companySvc,
		Health:      health,
		Log:         log,
	})
	if err != nil {
		return err
	}

	go sweeper.Run(ctx, sessionSvc, cfg.SessionSweep, cfg.SessionTTL, log)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
	}
	ln = netutil.LimitListener(ln, cfg.MaxConnections)

	srv := &http.Server{
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Info("listening", map[string]interface{}{
		"addr":            cfg.ListenAddr,
		"env":             cfg.Env,
		"max_connections": cfg.MaxConnections,
		"questions":       len(questions),
	})

	select {
	case <-ctx.Done():
		log.Info("shutting down", nil)
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
