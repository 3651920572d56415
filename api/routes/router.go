package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wishlane-app/wishlane-backend/api/controllers"
	"github.com/wishlane-app/wishlane-backend/api/middleware"
	"github.com/wishlane-app/wishlane-backend/internal/auth"
	"github.com/wishlane-app/wishlane-backend/internal/catalog"
	"github.com/wishlane-app/wishlane-backend/internal/social"
	"github.com/wishlane-app/wishlane-backend/internal/wishlists"
	"github.com/wishlane-app/wishlane-backend/pkg/config"
	"github.com/wishlane-app/wishlane-backend/pkg/logger"
	"github.com/wishlane-app/wishlane-backend/pkg/metrics"
)

// Dependencies carries everything the router needs to serve requests.
type Dependencies struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        controllers.Pinger
	RedisPinger     controllers.Pinger
	Sessions        middleware.SessionChecker
	AuthService     auth.Service
	WishlistService wishlists.Service
	CatalogService  catalog.Service
	SocialService   social.Service
	Metrics         *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Recoverer(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(deps.Metrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.RedisPinger))
	})

	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", controllers.AuthSignup(deps.AuthService, logg))
		r.Post("/auth/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Get("/products/fakestore", controllers.CatalogProducts(deps.CatalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.Post("/auth/logout", controllers.AuthLogout(deps.AuthService, logg))
			r.Get("/auth/profile", controllers.AuthProfile(deps.AuthService, logg))

			r.Route("/wishlists", func(r chi.Router) {
				r.Post("/", controllers.WishlistCreate(deps.WishlistService, logg))
				r.Get("/", controllers.WishlistList(deps.WishlistService, logg))
				r.Get("/{id}", controllers.WishlistGet(deps.WishlistService, logg))
				r.Put("/{id}", controllers.WishlistUpdate(deps.WishlistService, logg))
				r.Delete("/{id}", controllers.WishlistDelete(deps.WishlistService, logg))
				r.Post("/{id}/invite", controllers.WishlistInvite(deps.WishlistService, logg))
			})

			r.Route("/products/wishlist/{wid}", func(r chi.Router) {
				r.Post("/", controllers.ItemAdd(deps.WishlistService, logg))
				r.Get("/", controllers.ItemList(deps.WishlistService, logg))
				r.Delete("/{itemId}", controllers.ItemRemove(deps.WishlistService, logg))

				r.Post("/{itemId}/like", controllers.ItemLike(deps.SocialService, logg))
				r.Delete("/{itemId}/like", controllers.ItemUnlike(deps.SocialService, logg))
				r.Get("/{itemId}/likes", controllers.ItemLikes(deps.SocialService, logg))

				r.Post("/{itemId}/comment", controllers.CommentAdd(deps.SocialService, logg))
				r.Delete("/{itemId}/comment/{commentId}", controllers.CommentDelete(deps.SocialService, logg))
				r.Get("/{itemId}/comments", controllers.CommentList(deps.SocialService, logg))
			})
		})
	})

	return r
}
