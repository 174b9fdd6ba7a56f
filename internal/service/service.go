package service

import (
	authhandlers "github.com/dkoleda/crowdledger/internal/handlers/auth"
	cataloghandlers "github.com/dkoleda/crowdledger/internal/handlers/catalog"
	pledgehandlers "github.com/dkoleda/crowdledger/internal/handlers/pledges"

	"github.com/dkoleda/crowdledger/internal/config"
	"github.com/dkoleda/crowdledger/internal/notify"
	"github.com/dkoleda/crowdledger/internal/pg"
	"github.com/dkoleda/crowdledger/internal/psp"
	"github.com/dkoleda/crowdledger/internal/repo"
	"github.com/dkoleda/crowdledger/internal/service/authservice"
	"github.com/dkoleda/crowdledger/internal/service/catalogservice"
	"github.com/dkoleda/crowdledger/internal/service/pledgeservice"
	"github.com/dkoleda/crowdledger/internal/service/userservice"
	pkgauth "github.com/dkoleda/crowdledger/pkg/auth"
	"github.com/dkoleda/crowdledger/pkg/clients"
)

type Services struct {
	AuthService    authhandlers.Service
	CatalogService cataloghandlers.Service
	PledgeService  pledgehandlers.Service
	JWTService     pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, httpClient clients.HTTPClientI) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	notifier := notify.NewMailgunNotifier(cfg.Mailgun, httpClient)

	settlers := psp.NewRegistry(
		psp.NewPaymentSlipSettler(repo.Payments),
		psp.NewStripeSettler(repo.Payments, psp.NewStripeClient(cfg.Stripe, httpClient), cfg.Stripe.Currency),
		psp.NewPostfinanceSettler(repo.Payments, cfg.PF.SHAOutSecret),
		psp.NewPaypalSettler(repo.Payments, cfg.Paypal, httpClient),
	)

	userService := userservice.New(repo.Users)
	pledgeService := pledgeservice.New(repo.Catalog, repo.Pledges, repo.Payments, repo.Users, userService, settlers, txManager)
	authService := authservice.New(repo.Users, notifier, jwtService, txManager, cfg.PublicURL, cfg.MailFrom)
	catalogService := catalogservice.New(repo.Catalog)

	return &Services{
		AuthService:    authService,
		CatalogService: catalogService,
		PledgeService:  pledgeService,
		JWTService:     jwtService,
	}
}
