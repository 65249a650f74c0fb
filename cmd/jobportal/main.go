package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/jobportal/db"
	"github.com/dmitrymomot/jobportal/pkg/clientip"
	"github.com/dmitrymomot/jobportal/pkg/config"
	"github.com/dmitrymomot/jobportal/pkg/cookie"
	"github.com/dmitrymomot/jobportal/pkg/httpserver"
	"github.com/dmitrymomot/jobportal/pkg/logger"
	"github.com/dmitrymomot/jobportal/pkg/pg"
	"github.com/dmitrymomot/jobportal/pkg/ratelimit"
	"github.com/dmitrymomot/jobportal/pkg/requestid"
	"github.com/dmitrymomot/jobportal/pkg/session"
	"github.com/dmitrymomot/jobportal/svc/account"
	"github.com/dmitrymomot/jobportal/svc/employer"
)

type appConfig struct {
	Name       string `env:"APP_NAME" envDefault:"jobportal"`
	Env        string `env:"APP_ENV" envDefault:"development"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
}

func main() {
	if err := config.LoadEnv(); err != nil {
		slog.Error("failed to load .env", logger.Error(err))
		os.Exit(1)
	}

	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, app, log); err != nil {
		log.Error("jobportal stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, log *slog.Logger) error {
	var (
		dbCfg      pg.Config
		sessionCfg session.Config
		cookieCfg  cookie.Config
		limitCfg   ratelimit.Config
		httpCfg    httpserver.Config
		proxyCfg   clientip.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&dbCfg) },
		func() error { return config.Load(&sessionCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&proxyCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	ips, err := clientip.NewFromConfig(proxyCfg)
	if err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, db.Migrations, db.MigrationsDir, dbCfg, log); err != nil {
		return err
	}

	sessions := session.NewFromConfig(
		session.NewPostgresStore(pool, dbCfg.QueryTimeout),
		sessionCfg,
		session.WithLogger(log),
		session.WithCookieManager(cookie.NewFromConfig(cookieCfg)),
	)

	accounts := account.NewService(
		pool,
		account.NewStorage(pool, dbCfg.QueryTimeout),
		sessions,
		account.NewBcryptHasher(app.BcryptCost),
		log,
	)
	employers := employer.NewService(pool, employer.NewStorage(pool, dbCfg.QueryTimeout), log)

	limiter := ratelimit.NewFromConfig(limitCfg)
	throttle := ratelimit.Middleware(limiter, ratelimit.ByClientIP, account.TooManyRequests)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(ips.Middleware)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, pg.Healthcheck(pool)))

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)
		account.NewHandler(accounts, sessions, throttle, log).Routes(r)
		employer.NewHandler(employers, log).Routes(r)
	})

	go sessions.RunCleanup(ctx, sessionCfg.CleanupInterval)
	go limiter.RunSweeper(ctx)

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
