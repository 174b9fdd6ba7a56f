package pledgeservice

import (
	"context"
	"errors"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"go.uber.org/zap"
)

// minPledgeTotal is the floor for any pledge, in minor units.
const minPledgeTotal int64 = 100

var (
	ErrInvalidSelection      = errors.New("one or more of the claimed template ids are invalid")
	ErrCrossPackageSelection = errors.New("options must all be part of the same package")
	ErrAmountOutOfRange      = errors.New("amount in option out of range")
	ErrTotalTooLow           = errors.New("pledge total is below the minimum for this selection")
	ErrReasonRequired        = errors.New("a reason is required for reduced pledges")
)

type validatedSelection struct {
	packageID int
	donation  int64
	options   []domain.PledgeOption
}

// validateSelection checks the claimed options against the catalog snapshot
// of the surrounding transaction and computes the donation. Prices are copied
// into the result so later catalog changes never touch the recorded pledge.
func (s *Service) validateSelection(ctx context.Context, req *dto.SubmitPledgeRequestDTO) (*validatedSelection, error) {
	if len(req.Options) == 0 {
		return nil, ErrInvalidSelection
	}

	ids := make([]int, 0, len(req.Options))
	for _, opt := range req.Options {
		ids = append(ids, opt.TemplateID)
	}

	packageOptions, err := s.catalogRepo.FindOptionsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	// a template became invalid after the client fetched it
	if len(packageOptions) < len(req.Options) {
		return nil, ErrInvalidSelection
	}

	byID := make(map[int]domain.PackageOption, len(packageOptions))
	for _, pko := range packageOptions {
		byID[pko.ID] = pko
	}

	packageID := packageOptions[0].PackageID
	var minTotal, regularTotal int64
	options := make([]domain.PledgeOption, 0, len(req.Options))

	for _, plo := range req.Options {
		pko, ok := byID[plo.TemplateID]
		if !ok {
			return nil, ErrInvalidSelection
		}
		if pko.PackageID != packageID {
			return nil, ErrCrossPackageSelection
		}
		if plo.Amount < pko.MinAmount || plo.Amount > pko.MaxAmount {
			zap.L().Info("option amount out of range",
				zap.Int("templateID", plo.TemplateID),
				zap.Int("amount", plo.Amount),
			)
			return nil, ErrAmountOutOfRange
		}

		if pko.UserPrice {
			minTotal += pko.MinUserPrice * int64(plo.Amount)
		} else {
			minTotal += pko.Price * int64(plo.Amount)
		}
		regularTotal += pko.Price * int64(plo.Amount)

		options = append(options, domain.PledgeOption{
			TemplateID: plo.TemplateID,
			Amount:     plo.Amount,
			Price:      pko.Price,
		})
	}

	if minTotal < minPledgeTotal {
		minTotal = minPledgeTotal
	}
	if regularTotal < minPledgeTotal {
		regularTotal = minPledgeTotal
	}

	if req.Total < minTotal {
		return nil, ErrTotalTooLow
	}

	donation := req.Total - regularTotal
	if donation < 0 && req.Reason == "" {
		return nil, ErrReasonRequired
	}

	return &validatedSelection{
		packageID: packageID,
		donation:  donation,
		options:   options,
	}, nil
}
