package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kwabenaosei/shopdesk-backend/api/controllers"
	"github.com/kwabenaosei/shopdesk-backend/api/middleware"
	"github.com/kwabenaosei/shopdesk-backend/internal/cart"
	"github.com/kwabenaosei/shopdesk-backend/internal/catalog"
	"github.com/kwabenaosei/shopdesk-backend/internal/sales"
	"github.com/kwabenaosei/shopdesk-backend/pkg/config"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
	"github.com/kwabenaosei/shopdesk-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogIndex *catalog.Index,
	cartService cart.Service,
	salesService sales.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	display, err := enums.ParseCurrency(cfg.Currency.Display)
	if err != nil {
		display = enums.CurrencyGHS
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/search", controllers.CatalogSearch(catalogIndex, logg))
		r.Get("/payment-methods", controllers.PaymentMethodList())

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", controllers.CartCreate(cartService, logg))
			r.Route("/{cartID}", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Patch("/items/{itemID}", controllers.CartUpdateItem(cartService, logg))
				r.Delete("/items/{itemID}", controllers.CartRemoveItem(cartService, logg))
				r.Post("/commit", controllers.CartCommit(salesService, logg))
			})
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.SalesList(salesService, cfg.Ledger, logg))
			r.Get("/stats", controllers.SalesStats(salesService, display, logg))
			r.Get("/{salesID}", controllers.SalesDetail(salesService, logg))
		})
	})

	return r
}
