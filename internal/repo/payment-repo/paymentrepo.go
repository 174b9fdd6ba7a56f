package paymentrepo

import (
	"context"
	"errors"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicatePSPID surfaces the unique (method, psp_id) index. Two racing
// settlements with the same provider transaction id resolve here: exactly one
// insert wins, the loser gets this error.
var ErrDuplicatePSPID = errors.New("payment with this psp id already exists")

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (type, method, total, status, psp_id, psp_payload)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, payment.Type, payment.Method, payment.Total, payment.Status, payment.PSPID, payment.PSPPayload).
		Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicatePSPID
		}
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) ExistsByMethodAndPSPID(ctx context.Context, method, pspID string) (bool, error) {
	query := `
        SELECT COUNT(*)
        FROM payments
        WHERE method = $1 AND psp_id = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, method, pspID).Scan(&count); err != nil {
		zap.L().Error("can't count payments by psp id", zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreatePledgePayment(ctx context.Context, link *domain.PledgePayment) error {
	query := `
        INSERT INTO pledge_payments (pledge_id, payment_id, payment_type)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, link.PledgeID, link.PaymentID, link.PaymentType); err != nil {
		zap.L().Error("can't save pledge payment link", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreatePaymentSource(ctx context.Context, source *domain.PaymentSource) error {
	query := `
        INSERT INTO payment_sources (method, user_id, psp_id, psp_payload)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, source.Method, source.UserID, source.PSPID, source.PSPPayload); err != nil {
		zap.L().Error("can't save payment source", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByPledgeID(ctx context.Context, pledgeID int) ([]domain.Payment, error) {
	query := `
        SELECT p.id, p.type, p.method, p.total, p.status, COALESCE(p.psp_id, ''), p.psp_payload, p.created_at
        FROM payments p
        JOIN pledge_payments pp ON pp.payment_id = p.id
        WHERE pp.pledge_id = $1
        ORDER BY p.created_at
    `
	rows, err := r.db.Query(ctx, query, pledgeID)
	if err != nil {
		zap.L().Error("can't get payments for pledge", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.Type, &payment.Method, &payment.Total, &payment.Status, &payment.PSPID, &payment.PSPPayload, &payment.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
