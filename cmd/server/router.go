package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zaishu/zaishu-api/internal/api"
	apiMiddleware "github.com/zaishu/zaishu-api/internal/api/middleware"
	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/web"
)

// route binds one method and path pattern to a handler. Protected routes run
// behind the auth gate.
type route struct {
	method    string
	pattern   string
	protected bool
	handler   http.Handler
}

// routes is the route table of the service. Static segments win over {params}
// at the same position, so /book/search and /book/mine never reach /book/{id}.
func (app *application) routes() []route {
	limits := app.pageLimits()

	system := api.NewSystemHandler(app.pages)
	feedback := api.NewFeedbackHandler(app.feedbackStore)
	books := api.NewBookHandler(app.bookStore, app.userStore, limits)
	accounts := api.NewAccountHandler(app.userStore, app.jwtService, app.passwordVerifier)
	users := api.NewUserHandler(app.userStore)
	categories := api.NewCategoryHandler(app.categoryStore, app.bookStore, limits)
	favorites := api.NewFavoriteHandler(app.favoriteStore, app.bookStore, limits)
	comments := api.NewCommentHandler(app.commentStore, app.bookStore, limits)
	tools := api.NewToolHandler(app.isbnClient)

	public := func(method, pattern string, h shared.HandlerFunc) route {
		return route{method: method, pattern: pattern, handler: api.Handle(h)}
	}
	protected := func(method, pattern string, h shared.HandlerFunc) route {
		return route{method: method, pattern: pattern, protected: true, handler: api.Handle(h)}
	}

	return []route{
		{method: http.MethodGet, pattern: "/", handler: system.Page(web.PageIndex)},
		{method: http.MethodGet, pattern: "/protocol", handler: system.Page(web.PageProtocol)},
		{method: http.MethodGet, pattern: "/about", handler: system.Page(web.PageAbout)},
		{method: http.MethodGet, pattern: "/health", handler: http.HandlerFunc(system.Health)},
		public(http.MethodGet, "/hello", system.Hello),

		public(http.MethodPost, "/feedback", feedback.Create),

		public(http.MethodGet, "/book/isbn/{isbn}", tools.ISBN),
		public(http.MethodGet, "/book/search", books.Search),
		public(http.MethodGet, "/book/info", books.Info),
		public(http.MethodGet, "/book/{id}", books.ListByUser),
		protected(http.MethodGet, "/book/mine", books.Mine),
		protected(http.MethodPost, "/book", books.Create),
		protected(http.MethodDelete, "/book/{id}", books.Delete),

		public(http.MethodGet, "/base/time", tools.Time),
		public(http.MethodGet, "/base/isbn/{isbn}", tools.ISBN),
		protected(http.MethodGet, "/tool/time", tools.Time),
		protected(http.MethodGet, "/tool/isbn/{isbn}", tools.ISBN),

		public(http.MethodPost, "/account/register", accounts.Register),
		public(http.MethodPost, "/account/login", accounts.Login),

		public(http.MethodGet, "/category", categories.List),
		public(http.MethodGet, "/category/{id}/books", categories.Books),

		protected(http.MethodGet, "/user/me", users.Me),
		protected(http.MethodGet, "/user/{id}", users.Get),

		protected(http.MethodGet, "/favorite", favorites.List),
		protected(http.MethodPost, "/favorite", favorites.Add),
		protected(http.MethodDelete, "/favorite/{bookId}", favorites.Remove),

		protected(http.MethodGet, "/comment", comments.List),
		protected(http.MethodPost, "/comment", comments.Add),
		protected(http.MethodDelete, "/comment/{id}", comments.Remove),
	}
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	table := app.routes()
	for _, rt := range table {
		if !rt.protected {
			r.Method(rt.method, rt.pattern, rt.handler)
		}
	}
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		for _, rt := range table {
			if rt.protected {
				r.Method(rt.method, rt.pattern, rt.handler)
			}
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusNotFound,
			shared.Failure(http.StatusNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusMethodNotAllowed,
			shared.Failure(http.StatusMethodNotAllowed, "method not allowed"))
	})

	return r
}
