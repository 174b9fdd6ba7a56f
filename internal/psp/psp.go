package psp

import (
	"context"
	"errors"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
)

const (
	MethodPaymentSlip     = "PAYMENTSLIP"
	MethodStripe          = "STRIPE"
	MethodPostfinanceCard = "POSTFINANCECARD"
	MethodPaypal          = "PAYPAL"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrPayloadRequired   = errors.New("psp payload required")
	ErrReplayDetected    = errors.New("psp transaction id was already used")
	ErrProviderRejected  = errors.New("payment provider rejected the transaction")
)

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ExistsByMethodAndPSPID(ctx context.Context, method, pspID string) (bool, error)
	CreatePaymentSource(ctx context.Context, source *domain.PaymentSource) error
}

// Settlement is the outcome of one provider settlement. AmountMismatch flags
// a divergence between the provider-confirmed amount and the pledge total for
// providers whose authoritative amount arrives only after the money moved;
// the payment stays recorded, the discrepancy is reported, never rolled back.
type Settlement struct {
	PledgeStatus   string
	Payment        *domain.Payment
	AmountMismatch bool
}

// Settler settles a pledge via one payment provider. Implementations verify
// authenticity, determine the authoritative charged amount and persist the
// payment row (plus any reusable payment source for the owning user).
type Settler interface {
	Method() string
	Settle(ctx context.Context, pledge *domain.Pledge, payload *dto.PledgePaymentDTO) (*Settlement, error)
}

// Registry dispatches to the Settler matching a payment method. Adding a
// provider means registering one more Settler, nothing else changes.
type Registry struct {
	settlers map[string]Settler
}

func NewRegistry(settlers ...Settler) *Registry {
	r := &Registry{settlers: make(map[string]Settler, len(settlers))}
	for _, s := range settlers {
		r.settlers[s.Method()] = s
	}
	return r
}

func (r *Registry) Settler(method string) (Settler, error) {
	s, ok := r.settlers[method]
	if !ok {
		return nil, ErrUnsupportedMethod
	}
	return s, nil
}
