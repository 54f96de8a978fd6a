package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/zaishu/zaishu-api/internal/config"
	"github.com/zaishu/zaishu-api/internal/page"
	"github.com/zaishu/zaishu-api/internal/platform/isbn"
	"github.com/zaishu/zaishu-api/internal/platform/postgres"
	"github.com/zaishu/zaishu-api/internal/service/auth"
	"github.com/zaishu/zaishu-api/internal/store"
	"github.com/zaishu/zaishu-api/internal/web"
	"golang.org/x/crypto/bcrypt"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	bookStore     store.BookStore
	feedbackStore store.FeedbackStore
	categoryStore store.CategoryStore
	favoriteStore store.FavoriteStore
	commentStore  store.CommentStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	isbnClient       isbn.Lookuper
	pages            *web.Renderer
}

// newApplication creates the application with every store backed by db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.pages, err = web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	app.isbnClient = isbn.NewClient(cfg.ISBN)

	app.userStore = postgres.NewPostgresUserStore(db, bcrypt.DefaultCost)
	app.bookStore = postgres.NewPostgresBookStore(db)
	app.feedbackStore = postgres.NewPostgresFeedbackStore(db)
	app.categoryStore = postgres.NewPostgresCategoryStore(db)
	app.favoriteStore = postgres.NewPostgresFavoriteStore(db)
	app.commentStore = postgres.NewPostgresCommentStore(db)

	logger.Info("application initialized")
	return app, nil
}

// pageLimits bounds every listing endpoint.
func (app *application) pageLimits() page.Limits {
	return page.Limits{
		DefaultSize: app.config.Pagination.DefaultPageSize,
		MaxSize:     app.config.Pagination.MaxPageSize,
	}
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
