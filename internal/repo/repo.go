package repo

import (
	"github.com/dkoleda/crowdledger/internal/pg"
	catalogrepo "github.com/dkoleda/crowdledger/internal/repo/catalog-repo"
	paymentrepo "github.com/dkoleda/crowdledger/internal/repo/payment-repo"
	pledgerepo "github.com/dkoleda/crowdledger/internal/repo/pledge-repo"
	userrepo "github.com/dkoleda/crowdledger/internal/repo/user-repo"
)

type Repositories struct {
	Catalog  *catalogrepo.Repository
	Users    *userrepo.Repository
	Pledges  *pledgerepo.Repository
	Payments *paymentrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Catalog:  catalogrepo.New(conn),
		Users:    userrepo.New(conn),
		Pledges:  pledgerepo.New(conn),
		Payments: paymentrepo.New(conn),
	}
}
