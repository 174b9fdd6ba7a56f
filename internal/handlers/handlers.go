package handlers

import (
	"net/http"

	_ "github.com/dkoleda/crowdledger/docs"
	authhandlers "github.com/dkoleda/crowdledger/internal/handlers/auth"
	cataloghandlers "github.com/dkoleda/crowdledger/internal/handlers/catalog"
	pledgehandlers "github.com/dkoleda/crowdledger/internal/handlers/pledges"
	"github.com/dkoleda/crowdledger/internal/service"
	pkgauth "github.com/dkoleda/crowdledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	RedeemToken(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetPackages(w http.ResponseWriter, r *http.Request)
}

type PledgeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Reclaim(w http.ResponseWriter, r *http.Request)
	GetPledges(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CatalogHandler CatalogHandler
	PledgeHandler  PledgeHandler

	jwtService pkgauth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CatalogHandler: cataloghandlers.New(s.CatalogService),
		PledgeHandler:  pledgehandlers.New(s.PledgeService),
		jwtService:     s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(pkgauth.OptionalMiddleware(h.jwtService)).Post("/signin", h.AuthHandler.SignIn)
			r.Get("/signin/{token}", h.AuthHandler.RedeemToken)
			r.Post("/signout", h.AuthHandler.SignOut)
		})

		r.Get("/packages", h.CatalogHandler.GetPackages)

		r.Route("/pledges", func(r chi.Router) {
			// submit, pay and reclaim accept anonymous callers
			r.Group(func(r chi.Router) {
				r.Use(pkgauth.OptionalMiddleware(h.jwtService))
				r.Post("/", h.PledgeHandler.Submit)
				r.Post("/{id}/payments", h.PledgeHandler.Pay)
				r.Post("/{id}/reclaim", h.PledgeHandler.Reclaim)
			})
			r.With(pkgauth.Middleware(h.jwtService)).Get("/", h.PledgeHandler.GetPledges)
		})
	})

	return r
}
