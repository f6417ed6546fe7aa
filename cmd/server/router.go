package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nugomed/nugomed-api/internal/api"
	apimiddleware "github.com/nugomed/nugomed-api/internal/api/middleware"
	"github.com/nugomed/nugomed-api/internal/api/shared"
)

// setupRouter configures the router with all middleware and routes.
// Catalogue reads (surgeries, tier lists, partners) are public so the site
// can render without a session; everything touching customers, buys, or
// email requires a bearer token, as do all mutations.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(app.userStore, app.authenticator)
	surgeryHandler := api.NewSurgeryHandler(app.surgeryStore)
	tierListHandler := api.NewTierListHandler(app.tierListStore)
	partnerHandler := api.NewPartnerHandler(app.partnerStore)
	customerHandler := api.NewCustomerHandler(app.customerStore)
	buyHandler := api.NewBuyHandler(app.buyStore, app.purchases)
	emailHandler := api.NewEmailHandler(app.emailStore, app.mailer)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.authenticator)

	// Public surface
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK,
			map[string]string{"message": "Hello World"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Post("/token", authHandler.Token)
	r.Post("/users", authHandler.Register)

	r.Get("/surgeries", surgeryHandler.List)
	r.Get("/surgeries/{id}", surgeryHandler.Get)
	r.Get("/surgeries/{id}/tier-lists", tierListHandler.ListBySurgery)
	r.Get("/tier-lists", tierListHandler.List)
	r.Get("/tier-lists/{id}", tierListHandler.Get)
	r.Get("/partners", partnerHandler.List)
	r.Get("/partners/{id}", partnerHandler.Get)

	// Protected surface
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users/me", authHandler.Me)

		r.Post("/surgeries", surgeryHandler.Create)
		r.Put("/surgeries/{id}", surgeryHandler.Update)
		r.Patch("/surgeries/{id}", surgeryHandler.Patch)
		r.Delete("/surgeries/{id}", surgeryHandler.Delete)

		r.Post("/tier-lists", tierListHandler.Create)
		r.Put("/tier-lists/{id}", tierListHandler.Update)
		r.Delete("/tier-lists/{id}", tierListHandler.Delete)

		r.Post("/partners", partnerHandler.Create)
		r.Put("/partners/{id}", partnerHandler.Update)
		r.Delete("/partners/{id}", partnerHandler.Delete)

		r.Get("/customers", customerHandler.List)
		r.Get("/customers/{id}", customerHandler.Get)
		r.Post("/customers", customerHandler.Create)
		r.Put("/customers/{id}", customerHandler.Update)
		r.Delete("/customers/{id}", customerHandler.Delete)

		r.Get("/buys", buyHandler.List)
		r.Get("/buys/{id}", buyHandler.Get)
		r.Get("/buys/{id}/documents/{document}", buyHandler.Document)
		r.Post("/buys", buyHandler.Create)
		r.Delete("/buys/{id}", buyHandler.Delete)

		r.Post("/send-email", emailHandler.Send)
		r.Get("/emails", emailHandler.List)
		r.Get("/emails/{id}", emailHandler.Get)
	})

	return r
}
