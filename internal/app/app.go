package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asanmartin/bimviewer-backend/internal/adapter/postgres"
	commentrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/comment"
	projectrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/project"
	snapshotrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/snapshot"
	topicrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/topic"
	userrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/user"
	viewpointrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/viewpoint"
	jwtauth "github.com/asanmartin/bimviewer-backend/internal/auth"
	"github.com/asanmartin/bimviewer-backend/internal/config"
	authsvc "github.com/asanmartin/bimviewer-backend/internal/service/auth"
	"github.com/asanmartin/bimviewer-backend/internal/service/bcfpkg"
	projectsvc "github.com/asanmartin/bimviewer-backend/internal/service/project"
	"github.com/asanmartin/bimviewer-backend/internal/service/rdi"
	viewpointsvc "github.com/asanmartin/bimviewer-backend/internal/service/viewpoint"
	"github.com/asanmartin/bimviewer-backend/internal/transport/middleware"
	"github.com/asanmartin/bimviewer-backend/internal/transport/rest"

	"golang.org/x/crypto/bcrypt"
)

// Run is the application entry point: load configuration, connect to the
// database, wire services and transport, then serve until SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	topics := topicrepo.New(pool)
	viewpoints := viewpointrepo.New(pool)
	snapshots := snapshotrepo.New(pool)
	projects := projectrepo.New(pool)
	users := userrepo.New(pool)
	comments := commentrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, bcrypt.DefaultCost)
	projectService := projectsvc.NewService(logger, projects)
	rdiService := rdi.NewService(logger, topics, comments, projects, cfg.Vocabulary.Domain())
	viewpointService := viewpointsvc.NewService(logger, viewpoints, snapshots, topics, txManager)
	bcfService := bcfpkg.NewService(logger, topics, viewpoints, snapshots, projects, txManager, cfg.BCF)

	router := rest.NewRouter(rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Projects:   rest.NewProjectHandler(projectService, logger),
		RDIs:       rest.NewRDIHandler(rdiService, viewpointService, logger),
		Viewpoints: rest.NewViewpointHandler(viewpointService, logger),
		BCF:        rest.NewBCFHandler(bcfService, logger, cfg.BCF.MaxImportBytes),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimit),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
