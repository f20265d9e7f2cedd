// Package routes assembles the HTTP surface: public catalog and auth
// endpoints, token-guarded checkout endpoints, health, metrics, and the
// static front-end fallback.
package routes

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/reqid"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// Deps are the wired handlers and infrastructure the router composes.
type Deps struct {
	Log       *slog.Logger
	Tokens    *auth.TokenService
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Payments  *controllers.PaymentController
	Orders    *controllers.OrderController
	StaticDir string
}

// New builds the full request handler.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger(deps.Log))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, response.M{"message": "Vastra API is running"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/products", deps.Products.Index)
		api.Post("/signup", deps.Auth.Signup)
		api.Post("/login", deps.Auth.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Auth(deps.Tokens))
			protected.Post("/razorpay/order", deps.Payments.CreateOrder)
			protected.Post("/orders", deps.Orders.Place)
			protected.Get("/me", deps.Auth.Me)
		})
	})

	// Everything else serves the pre-built front-end.
	r.NotFound(staticFallback(deps.StaticDir))

	return r
}

// staticFallback serves files from dir, falling back to index.html so
// client-side routes resolve to the front-end document.
func staticFallback(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
