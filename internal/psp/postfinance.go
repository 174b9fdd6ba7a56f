package psp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"go.uber.org/zap"
)

// PostfinanceSettler verifies a card-network redirect callback. Authenticity
// comes from a SHA-1 signature the provider computes over the callback fields
// and a shared secret; the payload is otherwise client-supplied, so the PAYID
// is replay-checked before anything is written.
type PostfinanceSettler struct {
	payments  PaymentRepo
	shaSecret string
}

func NewPostfinanceSettler(payments PaymentRepo, shaSecret string) *PostfinanceSettler {
	return &PostfinanceSettler{
		payments:  payments,
		shaSecret: shaSecret,
	}
}

func (s *PostfinanceSettler) Method() string {
	return MethodPostfinanceCard
}

func (s *PostfinanceSettler) Settle(ctx context.Context, pledge *domain.Pledge, payload *dto.PledgePaymentDTO) (*Settlement, error) {
	if len(payload.PSPPayload) == 0 {
		return nil, ErrPayloadRequired
	}
	var fields map[string]any
	if err := json.Unmarshal(payload.PSPPayload, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadRequired, "pspPayload is not an object")
	}

	shaSign, _ := fields["SHASIGN"].(string)
	delete(fields, "SHASIGN")
	if !s.verifySignature(fields, shaSign) {
		return nil, fmt.Errorf("%w: SHASIGN not correct", ErrProviderRejected)
	}

	payID, _ := fields["PAYID"].(string)
	if payID == "" {
		return nil, fmt.Errorf("%w: %s", ErrPayloadRequired, "PAYID missing")
	}
	used, err := s.payments.ExistsByMethodAndPSPID(ctx, MethodPostfinanceCard, payID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrReplayDetected
	}

	// callback amount arrives in major units
	total, err := amountToCents(fields["amount"])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadRequired, "amount missing or malformed")
	}

	payment, err := s.payments.Create(ctx, &domain.Payment{
		Type:       domain.PaymentTypePledge,
		Method:     MethodPostfinanceCard,
		Total:      total,
		Status:     domain.PaymentStatusPaid,
		PSPID:      payID,
		PSPPayload: payload.PSPPayload,
	})
	if err != nil {
		return nil, err
	}

	if alias, _ := fields["ALIAS"].(string); alias != "" {
		err = s.payments.CreatePaymentSource(ctx, &domain.PaymentSource{
			Method: MethodPostfinanceCard,
			UserID: pledge.UserID,
			PSPID:  alias,
		})
		if err != nil {
			return nil, err
		}
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

// verifySignature recomputes the provider signature: fields sorted by their
// upper-cased names, each non-empty one appended as NAME=value followed by
// the shared secret, SHA-1 over the whole string.
func (s *PostfinanceSettler) verifySignature(fields map[string]any, shaSign string) bool {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToUpper(keys[i]) < strings.ToUpper(keys[j])
	})

	var sb strings.Builder
	for _, k := range keys {
		value := fieldValue(fields[k])
		if value == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(k))
		sb.WriteString("=")
		sb.WriteString(value)
		sb.WriteString(s.shaSecret)
	}

	sum := sha1.Sum([]byte(sb.String()))
	return strings.EqualFold(shaSign, hex.EncodeToString(sum[:]))
}

func fieldValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func amountToCents(v any) (int64, error) {
	switch value := v.(type) {
	case float64:
		return int64(value*100 + 0.5), nil
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, err
		}
		return int64(f*100 + 0.5), nil
	default:
		return 0, fmt.Errorf("unsupported amount type %T", v)
	}
}
