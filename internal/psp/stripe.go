package psp

import (
	"context"
	"errors"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/dkoleda/crowdledger/internal/pg"
	"go.uber.org/zap"
)

var ErrSourceRequired = errors.New("sourceId required")

// StripeSettler charges the card synchronously. The payment row is written
// outside the surrounding pledge transaction: once real money moved, the row
// must survive even if a later step fails and the transaction rolls back. An
// orphaned successful payment beats a lost one.
type StripeSettler struct {
	payments PaymentRepo
	gateway  GatewayClient
	currency string
}

func NewStripeSettler(payments PaymentRepo, gateway GatewayClient, currency string) *StripeSettler {
	return &StripeSettler{
		payments: payments,
		gateway:  gateway,
		currency: currency,
	}
}

func (s *StripeSettler) Method() string {
	return MethodStripe
}

func (s *StripeSettler) Settle(ctx context.Context, pledge *domain.Pledge, payload *dto.PledgePaymentDTO) (*Settlement, error) {
	if payload.SourceID == "" {
		return nil, ErrSourceRequired
	}

	charge, err := s.gateway.Charge(ctx, pledge.Total, s.currency, payload.SourceID)
	if err != nil {
		zap.L().Error("card charge failed", zap.Int("pledgeID", pledge.ID), zap.Error(err))
		return nil, err
	}

	// durable write: the charge succeeded, bypass the pledge transaction
	payment, err := s.payments.Create(pg.WithoutTx(ctx), &domain.Payment{
		Type:       domain.PaymentTypePledge,
		Method:     MethodStripe,
		Total:      charge.Amount,
		Status:     domain.PaymentStatusPaid,
		PSPID:      charge.ID,
		PSPPayload: charge.Raw,
	})
	if err != nil {
		return nil, err
	}

	if charge.Source.ID != "" {
		err = s.payments.CreatePaymentSource(ctx, &domain.PaymentSource{
			Method: MethodStripe,
			UserID: pledge.UserID,
			PSPID:  charge.Source.ID,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Settlement{
		PledgeStatus: domain.PledgeStatusSuccessful,
		Payment:      payment,
	}, nil
}
