package catalogrepo

import (
	"context"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/pg"
	"go.uber.org/zap"
)

// Repository is the read-only catalog accessor. Inside TXManager.Begin its
// queries run on the transaction snapshot, so a validation and the writes it
// guards observe the same catalog state.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindPackages(ctx context.Context) ([]domain.Package, error) {
	query := `
        SELECT id, name
        FROM packages
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var pkg domain.Package
		if err := rows.Scan(&pkg.ID, &pkg.Name); err != nil {
			zap.L().Error("can't scan package row", zap.Error(err))
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func (r *Repository) FindOptionsByPackageID(ctx context.Context, packageID int) ([]domain.PackageOption, error) {
	query := `
        SELECT id, package_id, name, price, min_amount, max_amount, user_price, min_user_price
        FROM package_options
        WHERE package_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, packageID)
	if err != nil {
		zap.L().Error("can't get package options", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var options []domain.PackageOption
	for rows.Next() {
		var opt domain.PackageOption
		err := rows.Scan(&opt.ID, &opt.PackageID, &opt.Name, &opt.Price, &opt.MinAmount, &opt.MaxAmount, &opt.UserPrice, &opt.MinUserPrice)
		if err != nil {
			zap.L().Error("can't scan package option row", zap.Error(err))
			return nil, err
		}
		options = append(options, opt)
	}
	return options, nil
}

// FindOptionsByIDs returns only the options that still exist; callers compare
// the row count against the requested ids to detect stale selections.
func (r *Repository) FindOptionsByIDs(ctx context.Context, ids []int) ([]domain.PackageOption, error) {
	query := `
        SELECT id, package_id, name, price, min_amount, max_amount, user_price, min_user_price
        FROM package_options
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't get package options by ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var options []domain.PackageOption
	for rows.Next() {
		var opt domain.PackageOption
		err := rows.Scan(&opt.ID, &opt.PackageID, &opt.Name, &opt.Price, &opt.MinAmount, &opt.MaxAmount, &opt.UserPrice, &opt.MinUserPrice)
		if err != nil {
			zap.L().Error("can't scan package option row", zap.Error(err))
			return nil, err
		}
		options = append(options, opt)
	}
	return options, nil
}
