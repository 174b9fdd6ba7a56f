package psp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dkoleda/crowdledger/internal/config"
	"github.com/dkoleda/crowdledger/pkg/clients"
)

// Charge is the gateway's answer to a synchronous card charge.
type Charge struct {
	ID     string       `json:"id"`
	Amount int64        `json:"amount"`
	Source ChargeSource `json:"source"`
	Raw    []byte       `json:"-"`
}

type ChargeSource struct {
	ID string `json:"id"`
}

type gatewayError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GatewayClient performs a synchronous card charge. The call itself is the
// proof of authorization; a decline comes back as an error.
type GatewayClient interface {
	Charge(ctx context.Context, amount int64, currency, source string) (*Charge, error)
}

type StripeClient struct {
	cfg    config.StripeConfig
	client clients.HTTPClientI
}

func NewStripeClient(cfg config.StripeConfig, client clients.HTTPClientI) *StripeClient {
	return &StripeClient{cfg: cfg, client: client}
}

func (c *StripeClient) Charge(ctx context.Context, amount int64, currency, source string) (*Charge, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("source", source)

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	statusCode, respBody, err := c.client.PostForm(c.cfg.APIURL+"/charges", form, headers)
	if err != nil {
		return nil, fmt.Errorf("charge request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		var gwErr gatewayError
		if err := json.Unmarshal(respBody, &gwErr); err == nil && gwErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrProviderRejected, gwErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: status %d", ErrProviderRejected, statusCode)
	}

	var charge Charge
	if err := json.Unmarshal(respBody, &charge); err != nil {
		return nil, fmt.Errorf("can't parse charge response: %w", err)
	}
	charge.Raw = respBody
	return &charge, nil
}
