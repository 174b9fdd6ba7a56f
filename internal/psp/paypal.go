package psp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkoleda/crowdledger/internal/config"
	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/dkoleda/crowdledger/pkg/clients"
	"go.uber.org/zap"
)

type paypalPayload struct {
	TX string `json:"tx"`
}

// PaypalSettler settles a third-party redirect. The transaction id comes from
// the client, so it is replay-checked and then confirmed server-to-server:
// only the provider's own acknowledgement and amount are trusted.
type PaypalSettler struct {
	payments PaymentRepo
	cfg      config.PaypalConfig
	client   clients.HTTPClientI
}

func NewPaypalSettler(payments PaymentRepo, cfg config.PaypalConfig, client clients.HTTPClientI) *PaypalSettler {
	return &PaypalSettler{
		payments: payments,
		cfg:      cfg,
		client:   client,
	}
}

func (s *PaypalSettler) Method() string {
	return MethodPaypal
}

func (s *PaypalSettler) Settle(ctx context.Context, pledge *domain.Pledge, payload *dto.PledgePaymentDTO) (*Settlement, error) {
	if len(payload.PSPPayload) == 0 {
		return nil, ErrPayloadRequired
	}
	var pp paypalPayload
	if err := json.Unmarshal(payload.PSPPayload, &pp); err != nil || pp.TX == "" {
		return nil, fmt.Errorf("%w: %s", ErrPayloadRequired, "pspPayload.tx required")
	}

	used, err := s.payments.ExistsByMethodAndPSPID(ctx, MethodPaypal, pp.TX)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrReplayDetected
	}

	details, err := s.confirm(pp.TX)
	if err != nil {
		return nil, err
	}
	if details.Get("ACK") != "Success" {
		zap.L().Info("transaction confirmation not acknowledged",
			zap.Int("pledgeID", pledge.ID),
			zap.String("ack", details.Get("ACK")),
		)
		return nil, fmt.Errorf("%w: transaction invalid", ErrProviderRejected)
	}

	total, err := amountToCents(details.Get("AMT"))
	if err != nil {
		return nil, fmt.Errorf("can't parse confirmed amount: %w", err)
	}

	detailsJSON, err := json.Marshal(flatten(details))
	if err != nil {
		return nil, err
	}
	payment, err := s.payments.Create(ctx, &domain.Payment{
		Type:       domain.PaymentTypePledge,
		Method:     MethodPaypal,
		Total:      total,
		Status:     domain.PaymentStatusPaid,
		PSPID:      pp.TX,
		PSPPayload: detailsJSON,
	})
	if err != nil {
		return nil, err
	}

	mismatch := total != pledge.Total
	if mismatch {
		zap.L().Warn("settled amount does not match pledge total",
			zap.Int("pledgeID", pledge.ID),
			zap.Int64("pledgeTotal", pledge.Total),
			zap.Int64("paidTotal", total),
		)
	}

	return &Settlement{
		PledgeStatus:   domain.PledgeStatusSuccessful,
		Payment:        payment,
		AmountMismatch: mismatch,
	}, nil
}

// confirm asks the provider for the transaction details over the NVP
// form-encoded API.
func (s *PaypalSettler) confirm(tx string) (url.Values, error) {
	form := url.Values{}
	form.Set("METHOD", "GetTransactionDetails")
	form.Set("TRANSACTIONID", tx)
	form.Set("VERSION", "204.0")
	form.Set("USER", s.cfg.User)
	form.Set("PWD", s.cfg.Pwd)
	form.Set("SIGNATURE", s.cfg.Signature)

	statusCode, respBody, err := s.client.PostForm(s.cfg.URL, form, nil)
	if err != nil {
		return nil, fmt.Errorf("transaction confirmation failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderRejected, statusCode)
	}

	details, err := url.ParseQuery(string(respBody))
	if err != nil {
		return nil, fmt.Errorf("can't parse confirmation response: %w", err)
	}
	return details, nil
}

func flatten(values url.Values) map[string]string {
	flat := make(map[string]string, len(values))
	for k := range values {
		flat[k] = values.Get(k)
	}
	return flat
}
