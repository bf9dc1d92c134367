package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/docs"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(RateLimitMiddleware)

	r.Get("/healthz", handlers.HealthHandler)
	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/admin/users", handlers.RegisterAsAdminHandler)
		r.Post("/refresh", handlers.RefreshNowHandler)

		r.Route("/dashboards/{dashboard}", func(r chi.Router) {
			r.Get("/", handlers.GetDashboardHandler)

			r.Get("/filters", handlers.GetFilterStateHandler)
			r.Post("/filters/toggle", handlers.ToggleFilterHandler)
			r.Post("/filters/select-all", handlers.SelectAllFilterHandler)
			r.Post("/filters/reset", handlers.ResetFiltersHandler)
			r.Put("/settings", handlers.UpdateSettingsHandler)

			r.Get("/bookmarks", handlers.ListBookmarksHandler)
			r.Post("/bookmarks", handlers.SaveBookmarkHandler)
			r.Post("/bookmarks/{id}/apply", handlers.ApplyBookmarkHandler)

			r.Post("/export/csv", handlers.ExportCSVHandler)
			r.Post("/export/xlsx", handlers.ExportWorkbookHandler)
			r.Post("/export/pdf", handlers.ExportPDFHandler)
		})
	})

	return r
}
