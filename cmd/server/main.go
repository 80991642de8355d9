package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "policymind/internal/adapters/http"
	"policymind/internal/adapters/llm"
	"policymind/internal/adapters/mailer"
	"policymind/internal/adapters/memory"
	pg "policymind/internal/adapters/postgres"
	"policymind/internal/adapters/pdftext"
	"policymind/internal/config"
	"policymind/internal/logger"
	"policymind/internal/ports"
	"policymind/internal/services/analysis"
	briefingsvc "policymind/internal/services/briefings"
	compsvc "policymind/internal/services/companies"
	notifysvc "policymind/internal/services/notifications"
	profsvc "policymind/internal/services/profiles"
	"policymind/internal/services/recipients"
	regsvc "policymind/internal/services/regulations"
)

// store is everything the services need from a persistence adapter.
type store interface {
	ports.MembershipRepository
	ports.BriefingRepository
	ports.ProfileRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Warnf("config: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		logger.Log.Warnf("logger init: %v", err)
	}
	log := logger.Log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db store
	switch cfg.StoreDriver {
	case config.StoreMemory:
		db = memory.New()
		log.Warn("using in-memory store; data is lost on restart")
	default:
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required for Postgres adapters")
		}
		pool, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		defer pool.Close()
		if err := pool.Migrate(ctx); err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
		db = pool
	}

	engineOpts := []analysis.Option{analysis.WithRateLimit(cfg.LLM.RPM)}
	provider, err := llm.New(ctx, llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	switch {
	case err != nil:
		log.Warnf("llm provider disabled: %v", err)
	case provider != nil:
		engineOpts = append(engineOpts, analysis.WithProvider(provider))
		log.Infof("llm enrichment enabled (model %s)", cfg.LLM.Model)
	default:
		log.Info("llm enrichment disabled; using heuristic summaries")
	}

	mail := mailer.NewLazy(mailer.FromConfig(mailer.Config{
		Host:   cfg.Mail.Host,
		Port:   cfg.Mail.Port,
		User:   cfg.Mail.User,
		Pass:   cfg.Mail.Pass,
		Secure: cfg.Mail.Secure,
		From:   cfg.Mail.From,
	}, log))

	if cfg.AuthSecret == "" {
		log.Warn("AUTH_SECRET not set; every /api request will be rejected")
	}

	briefings := briefingsvc.New(db)
	srv := httpadapter.New(httpadapter.Services{
		Briefings:   briefings,
		Regulations: regsvc.New(db, pdftext.New(), analysis.New(engineOpts...), briefings),
		Notifier:    notifysvc.New(db, db, mail, recipients.ParseList(cfg.NotificationRecipients)),
		Profiles:    profsvc.New(db),
		Companies:   compsvc.New(db),
	}, []byte(cfg.AuthSecret), cfg.RequestTimeout)

	r := chi.NewRouter()
	r.Mount("/", srv.Routes())
	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Infof("listening on %s", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Infof("shutting down on %s", sig)
		cancel()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}
}
