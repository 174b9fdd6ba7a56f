package catalogservice

import (
	"context"

	"github.com/dkoleda/crowdledger/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindPackages(ctx context.Context) ([]domain.Package, error)
	FindOptionsByPackageID(ctx context.Context, packageID int) ([]domain.PackageOption, error)
}

type Service struct {
	catalogRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		catalogRepo: repo,
	}
}

func (s *Service) GetPackages(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.catalogRepo.FindPackages(ctx)
	if err != nil {
		zap.L().Error("failed to get packages", zap.Error(err))
		return nil, err
	}
	return packages, nil
}

func (s *Service) GetOptions(ctx context.Context, packageID int) ([]domain.PackageOption, error) {
	options, err := s.catalogRepo.FindOptionsByPackageID(ctx, packageID)
	if err != nil {
		zap.L().Error("failed to get package options", zap.Error(err))
		return nil, err
	}
	return options, nil
}
