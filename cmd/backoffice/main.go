package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ufernand853/seguros-main-sub000/internal/application/auth"
	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/config"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	infraauth "github.com/ufernand853/seguros-main-sub000/internal/infrastructure/auth"
	httprouter "github.com/ufernand853/seguros-main-sub000/internal/infrastructure/http"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/http/handlers"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/http/middleware"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/lockout"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/persistence/postgres"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/security"
	"github.com/ufernand853/seguros-main-sub000/internal/migrations"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	if err := migrations.Up(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	db, err := postgres.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	tokenStore := postgres.NewRefreshTokenStore(db, cfg.JWT.RefreshTTL)
	clientRepo := postgres.NewClientRepository(db)
	insurerRepo := postgres.NewInsurerRepository(db)
	policyRepo := postgres.NewPolicyRepository(db)
	opportunityRepo := postgres.NewOpportunityRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   64,
	})
	issuer := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret), cfg.JWT.Issuer, cfg.JWT.AccessTTL)

	if cfg.Bootstrap.Email != "" {
		if err := seedAccount(ctx, accountRepo, hasher, cfg.Bootstrap.Email, "Administrador", cfg.Bootstrap.Password, domain.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("bootstrap admin account")
		}
	}
	if cfg.Server.DevMode {
		if err := seedAccount(ctx, accountRepo, hasher, "demo@seguros.test", "Demo", "Demo1234", domain.RoleOperator); err != nil {
			log.Warn().Err(err).Msg("seed demo account")
		}
	}

	loginUC := auth.NewLogin(accountRepo, hasher, issuer, tokenStore, cfg.JWT.AccessTTL)
	refreshUC := auth.NewRefresh(accountRepo, issuer, tokenStore, cfg.JWT.AccessTTL)
	logoutUC := auth.NewLogout(tokenStore)

	lockoutStore := lockout.NewMemoryStore(cfg.Lockout.MaxAttempts, cfg.Lockout.Cooldown)
	guard := middleware.NewRequestGuard(issuer)

	router, err := httprouter.NewRouter(httprouter.RouterConfig{
		Logger:        log,
		Guard:         guard,
		Auth:          handlers.NewAuthHandler(loginUC, refreshUC, logoutUC, lockoutStore, log),
		Accounts:      handlers.NewAccountsHandler(accountRepo, hasher, log),
		Clients:       handlers.NewClientsHandler(clientRepo),
		Insurers:      handlers.NewInsurersHandler(insurerRepo),
		Policies:      handlers.NewPoliciesHandler(policyRepo),
		Opportunities: handlers.NewOpportunitiesHandler(opportunityRepo),
		Tasks:         handlers.NewTasksHandler(taskRepo),
		Health:        handlers.NewHealthHandler(db),
		RateLimit:     cfg.Server.RateLimit,
		CORSOrigins:   cfg.Server.CORSOrigins,
		DevMode:       cfg.Server.DevMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}

// seedAccount creates the account if the email is not registered yet.
func seedAccount(ctx context.Context, repo ports.AccountRepository, hasher ports.PasswordHasher, email, name, password string, role domain.Role) error {
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	now := time.Now()
	return repo.Create(ctx, &domain.Account{
		ID:           domain.NewAccountID(uuid.New()),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
