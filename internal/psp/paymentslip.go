package psp

import (
	"context"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentSlipSettler records an offline bank-transfer settlement. Nothing is
// verified here; the amount is the client-claimed pledge total and the money
// is reconciled manually later, so the pledge only advances to
// WAITING_FOR_PAYMENT.
type PaymentSlipSettler struct {
	payments PaymentRepo
}

func NewPaymentSlipSettler(payments PaymentRepo) *PaymentSlipSettler {
	return &PaymentSlipSettler{payments: payments}
}

func (s *PaymentSlipSettler) Method() string {
	return MethodPaymentSlip
}

func (s *PaymentSlipSettler) Settle(ctx context.Context, pledge *domain.Pledge, payload *dto.PledgePaymentDTO) (*Settlement, error) {
	payment, err := s.payments.Create(ctx, &domain.Payment{
		Type:   domain.PaymentTypePledge,
		Method: MethodPaymentSlip,
		Total:  pledge.Total,
		Status: domain.PaymentStatusWaiting,
		// no provider involved; a fresh key keeps the row idempotency-safe
		PSPID: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment slip issued",
		zap.Int("pledgeID", pledge.ID),
		zap.Int64("total", pledge.Total),
	)

	return &Settlement{
		PledgeStatus: domain.PledgeStatusWaitingForPayment,
		Payment:      payment,
	}, nil
}
