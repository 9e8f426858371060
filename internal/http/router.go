// http — REST-транспорт lifelog поверх chi.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-lifelog/internal/http/handlers"
	"github.com/pribylovaa/go-lifelog/internal/http/middleware"
	"github.com/pribylovaa/go-lifelog/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
	Metrics  middleware.HTTPObserver
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" && opts.BasePath != "/" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// profile
	r.Get("/profile", h.GetProfile)
	r.Post("/profile", h.CreateProfile)
	r.Get("/profile/expectancy", h.GetLifeExpectancy)

	// entries
	r.Get("/entries", h.ListEntries)
	r.Delete("/entries", h.DeleteAllEntries)
	r.Get("/entries/{date}", h.GetEntry)
	r.Put("/entries/{date}", h.SaveEntry)
	r.Post("/entries/{date}/tags/toggle", h.ToggleTag)
	r.Get("/entries/{date}/guide", h.GetGuide)

	// photos
	r.Get("/entries/{date}/photos", h.GetPhotos)
	r.Put("/entries/{date}/photos", h.SetPhotos)
	r.Get("/entries/{date}/photos/thumbnail", h.GetThumbnail)
	r.Get("/entries/{date}/photos/{index}", h.GetPhoto)
	r.Delete("/entries/{date}/photos/{index}", h.DeletePhoto)
	r.Post("/entries/{date}/photos/presign", h.PhotoPresign)
	r.Post("/entries/{date}/photos/confirm", h.PhotoConfirm)

	// insights
	r.Get("/insights/trend", h.GetTrend)
	r.Get("/insights/distribution", h.GetDistribution)
	r.Get("/insights/streak", h.GetStreak)
	r.Get("/insights/summary", h.GetSummary)
}
