package psp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/dkoleda/crowdledger/internal/config"
	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/dkoleda/crowdledger/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func newPaypalMock(t *testing.T) (*PaypalSettler, *MockPaymentRepo, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	payments := NewMockPaymentRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	cfg := config.PaypalConfig{
		URL:       "https://api.paypal.example.com/nvp",
		User:      "merchant",
		Pwd:       "secret",
		Signature: "sig",
	}
	return NewPaypalSettler(payments, cfg, client), payments, client
}

func TestPaypalSettle(t *testing.T) {
	pledge := &domain.Pledge{ID: 42, UserID: 7, Total: 24000}
	payload := &dto.PledgePaymentDTO{Method: MethodPaypal, PSPPayload: json.RawMessage(`{"tx":"TX123"}`)}

	t.Run("Transaction id is mandatory", func(t *testing.T) {
		settler, _, _ := newPaypalMock(t)

		_, err := settler.Settle(context.Background(), pledge, &dto.PledgePaymentDTO{Method: MethodPaypal, PSPPayload: json.RawMessage(`{}`)})
		assert.ErrorIs(t, err, ErrPayloadRequired)
	})

	t.Run("Replayed transaction id is rejected", func(t *testing.T) {
		settler, payments, _ := newPaypalMock(t)
		payments.EXPECT().ExistsByMethodAndPSPID(gomock.Any(), MethodPaypal, "TX123").Return(true, nil)

		_, err := settler.Settle(context.Background(), pledge, payload)
		assert.ErrorIs(t, err, ErrReplayDetected)
	})

	t.Run("Unacknowledged transaction is rejected", func(t *testing.T) {
		settler, payments, client := newPaypalMock(t)
		payments.EXPECT().ExistsByMethodAndPSPID(gomock.Any(), MethodPaypal, "TX123").Return(false, nil)
		client.EXPECT().PostForm("https://api.paypal.example.com/nvp", gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte("ACK=Failure&L_ERRORCODE0=10004"), nil)

		_, err := settler.Settle(context.Background(), pledge, payload)
		assert.ErrorIs(t, err, ErrProviderRejected)
	})

	t.Run("Confirmed transaction settles with the provider amount", func(t *testing.T) {
		settler, payments, client := newPaypalMock(t)
		payments.EXPECT().ExistsByMethodAndPSPID(gomock.Any(), MethodPaypal, "TX123").Return(false, nil)
		client.EXPECT().PostForm("https://api.paypal.example.com/nvp", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, form url.Values, _ http.Header) (int, []byte, error) {
				assert.Equal(t, "GetTransactionDetails", form.Get("METHOD"))
				assert.Equal(t, "TX123", form.Get("TRANSACTIONID"))
				assert.Equal(t, "merchant", form.Get("USER"))
				return http.StatusOK, []byte("ACK=Success&AMT=240.00&CURRENCYCODE=CHF"), nil
			})
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
				assert.Equal(t, MethodPaypal, payment.Method)
				assert.Equal(t, int64(24000), payment.Total)
				assert.Equal(t, "TX123", payment.PSPID)
				payment.ID = 5
				return payment, nil
			})

		settlement, err := settler.Settle(context.Background(), pledge, payload)
		assert.NoError(t, err)
		assert.Equal(t, domain.PledgeStatusSuccessful, settlement.PledgeStatus)
		assert.False(t, settlement.AmountMismatch)
	})

	t.Run("Diverging confirmed amount is flagged", func(t *testing.T) {
		settler, payments, client := newPaypalMock(t)
		payments.EXPECT().ExistsByMethodAndPSPID(gomock.Any(), MethodPaypal, "TX123").Return(false, nil)
		client.EXPECT().PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte("ACK=Success&AMT=100.00"), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
				assert.Equal(t, int64(10000), payment.Total)
				return payment, nil
			})

		settlement, err := settler.Settle(context.Background(), pledge, payload)
		assert.NoError(t, err)
		assert.True(t, settlement.AmountMismatch)
	})
}
