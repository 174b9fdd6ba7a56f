package pledgerepo

import (
	"context"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Pledge, error) {
	query := `
        SELECT id, user_id, package_id, total, donation, reason, status, created_at
        FROM pledges
        WHERE id = $1
    `
	var pledge domain.Pledge
	err := r.db.QueryRow(ctx, query, id).
		Scan(&pledge.ID, &pledge.UserID, &pledge.PackageID, &pledge.Total, &pledge.Donation, &pledge.Reason, &pledge.Status, &pledge.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pledge", zap.Error(err))
		return nil, err
	}
	return &pledge, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Pledge, error) {
	query := `
        SELECT id, user_id, package_id, total, donation, reason, status, created_at
        FROM pledges
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get pledges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pledges []domain.Pledge
	for rows.Next() {
		var pledge domain.Pledge
		err := rows.Scan(&pledge.ID, &pledge.UserID, &pledge.PackageID, &pledge.Total, &pledge.Donation, &pledge.Reason, &pledge.Status, &pledge.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan pledge row", zap.Error(err))
			return nil, err
		}
		pledges = append(pledges, pledge)
	}
	return pledges, nil
}

func (r *Repository) Create(ctx context.Context, pledge *domain.Pledge) (*domain.Pledge, error) {
	query := `
        INSERT INTO pledges (user_id, package_id, total, donation, reason, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, pledge.UserID, pledge.PackageID, pledge.Total, pledge.Donation, pledge.Reason, pledge.Status).
		Scan(&pledge.ID, &pledge.CreatedAt)
	if err != nil {
		zap.L().Error("can't save pledge", zap.Error(err))
		return nil, err
	}
	return pledge, nil
}

func (r *Repository) CreateOption(ctx context.Context, option *domain.PledgeOption) error {
	query := `
        INSERT INTO pledge_options (pledge_id, template_id, amount, price)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, option.PledgeID, option.TemplateID, option.Amount, option.Price); err != nil {
		zap.L().Error("can't save pledge option", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindOptions(ctx context.Context, pledgeID int) ([]domain.PledgeOption, error) {
	query := `
        SELECT pledge_id, template_id, amount, price
        FROM pledge_options
        WHERE pledge_id = $1
        ORDER BY template_id
    `
	rows, err := r.db.Query(ctx, query, pledgeID)
	if err != nil {
		zap.L().Error("can't get pledge options", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var options []domain.PledgeOption
	for rows.Next() {
		var option domain.PledgeOption
		err := rows.Scan(&option.PledgeID, &option.TemplateID, &option.Amount, &option.Price)
		if err != nil {
			zap.L().Error("can't scan pledge option row", zap.Error(err))
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (*domain.Pledge, error) {
	query := `
        UPDATE pledges
        SET status = $1
        WHERE id = $2
        RETURNING id, user_id, package_id, total, donation, reason, status, created_at
    `
	var pledge domain.Pledge
	err := r.db.QueryRow(ctx, query, status, id).
		Scan(&pledge.ID, &pledge.UserID, &pledge.PackageID, &pledge.Total, &pledge.Donation, &pledge.Reason, &pledge.Status, &pledge.CreatedAt)
	if err != nil {
		zap.L().Error("can't update pledge status", zap.Error(err))
		return nil, err
	}
	return &pledge, nil
}

func (r *Repository) UpdateOwner(ctx context.Context, id, userID int) (*domain.Pledge, error) {
	query := `
        UPDATE pledges
        SET user_id = $1
        WHERE id = $2
        RETURNING id, user_id, package_id, total, donation, reason, status, created_at
    `
	var pledge domain.Pledge
	err := r.db.QueryRow(ctx, query, userID, id).
		Scan(&pledge.ID, &pledge.UserID, &pledge.PackageID, &pledge.Total, &pledge.Donation, &pledge.Reason, &pledge.Status, &pledge.CreatedAt)
	if err != nil {
		zap.L().Error("can't update pledge owner", zap.Error(err))
		return nil, err
	}
	return &pledge, nil
}
