package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkoleda/crowdledger/internal/config"
	"github.com/dkoleda/crowdledger/pkg/clients"
	"go.uber.org/zap"
)

type Mail struct {
	To      string
	From    string
	Subject string
	Text    string
}

// Notifier delivers mail fire-and-forget: a failed send is logged for
// operators and never propagated into the pledge or payment result.
type Notifier interface {
	Send(ctx context.Context, mail Mail)
}

type MailgunNotifier struct {
	cfg        config.MailgunConfig
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func NewMailgunNotifier(cfg config.MailgunConfig, client clients.HTTPClientI) *MailgunNotifier {
	return &MailgunNotifier{
		cfg:        cfg,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

func (n *MailgunNotifier) Send(ctx context.Context, mail Mail) {
	err := n.workerPool.AddTask(ctx, func() error {
		return n.deliver(mail)
	})
	if err != nil {
		zap.L().Error("can't enqueue mail", zap.String("to", mail.To), zap.Error(err))
	}
}

func (n *MailgunNotifier) deliver(mail Mail) error {
	form := url.Values{}
	form.Set("to", mail.To)
	form.Set("from", mail.From)
	form.Set("subject", mail.Subject)
	form.Set("text", mail.Text)

	headers := http.Header{}
	credentials := base64.StdEncoding.EncodeToString([]byte("api:" + n.cfg.APIKey))
	headers.Set("Authorization", "Basic "+credentials)

	endpoint := fmt.Sprintf("%s/%s/messages", n.cfg.APIURL, n.cfg.Domain)
	statusCode, respBody, err := n.client.PostForm(endpoint, form, headers)
	if err != nil {
		return fmt.Errorf("can't send mail to %s: %w", mail.To, err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("mail delivery to %s failed: status %d, body %s", mail.To, statusCode, respBody)
	}

	zap.L().Info("mail sent", zap.String("to", mail.To), zap.String("subject", mail.Subject))
	return nil
}

func (n *MailgunNotifier) Close() {
	n.workerPool.Close()
}
