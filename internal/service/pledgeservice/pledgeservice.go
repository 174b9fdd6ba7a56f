package pledgeservice

import (
	"context"
	"errors"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/dkoleda/crowdledger/internal/pg"
	"github.com/dkoleda/crowdledger/internal/psp"
	"go.uber.org/zap"
)

type CatalogRepo interface {
	FindOptionsByIDs(ctx context.Context, ids []int) ([]domain.PackageOption, error)
}

type PledgeRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Pledge, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Pledge, error)
	Create(ctx context.Context, pledge *domain.Pledge) (*domain.Pledge, error)
	CreateOption(ctx context.Context, option *domain.PledgeOption) error
	FindOptions(ctx context.Context, pledgeID int) ([]domain.PledgeOption, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Pledge, error)
	UpdateOwner(ctx context.Context, id, userID int) (*domain.Pledge, error)
}

type PaymentRepo interface {
	CreatePledgePayment(ctx context.Context, link *domain.PledgePayment) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	UpdateEmail(ctx context.Context, id int, email string) error
}

type Resolver interface {
	Resolve(ctx context.Context, auth domain.AuthState, claimed *dto.PledgeUserDTO) (*domain.User, error)
}

type Settlers interface {
	Settler(method string) (psp.Settler, error)
}

type Service struct {
	catalogRepo CatalogRepo
	pledgeRepo  PledgeRepo
	paymentRepo PaymentRepo
	userRepo    UserRepo
	resolver    Resolver
	settlers    Settlers
	txManager   pg.TXManager
}

func New(catalogRepo CatalogRepo, pledgeRepo PledgeRepo, paymentRepo PaymentRepo, userRepo UserRepo, resolver Resolver, settlers Settlers, txManager pg.TXManager) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		pledgeRepo:  pledgeRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		resolver:    resolver,
		settlers:    settlers,
		txManager:   txManager,
	}
}

var (
	ErrPledgeNotFound       = errors.New("pledge not found")
	ErrPledgeUserMissing    = errors.New("pledge user not found")
	ErrPledgeAlreadySettled = errors.New("pledge is already settled")
	ErrAlreadyOwner         = errors.New("pledge already belongs to the claiming email")
	ErrCannotClaimVerified  = errors.New("cannot claim pledges of verified users")
	ErrEmailMismatch        = errors.New("logged in users can only claim pledges to themselves")
)

// Submit validates the selection, resolves the owning user and records the
// pledge with a price snapshot of every chosen option. All or nothing: any
// failure rolls the whole transaction back.
func (s *Service) Submit(ctx context.Context, req *dto.SubmitPledgeRequestDTO, auth domain.AuthState) (*domain.Pledge, error) {
	var result *domain.Pledge

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		selection, err := s.validateSelection(ctx, req)
		if err != nil {
			return err
		}

		user, err := s.resolver.Resolve(ctx, auth, req.User)
		if err != nil {
			return err
		}

		pledge, err := s.pledgeRepo.Create(ctx, &domain.Pledge{
			UserID:    user.ID,
			PackageID: selection.packageID,
			Total:     req.Total,
			Donation:  selection.donation,
			Reason:    req.Reason,
			Status:    domain.PledgeStatusDraft,
		})
		if err != nil {
			return err
		}

		for i := range selection.options {
			selection.options[i].PledgeID = pledge.ID
			if err := s.pledgeRepo.CreateOption(ctx, &selection.options[i]); err != nil {
				return err
			}
		}
		pledge.Options = selection.options

		result = pledge
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("pledge submitted",
		zap.Int("pledgeID", result.ID),
		zap.Int64("total", result.Total),
		zap.Int64("donation", result.Donation),
	)
	return result, nil
}

// Pay settles a pledge via the provider matching payload.Method. If the
// caller is signed in and is not the current owner, the pledge is adopted
// first. The card-gateway adapter persists its payment outside the
// transaction; everything else commits or rolls back as one unit.
func (s *Service) Pay(ctx context.Context, pledgeID int, payload *dto.PledgePaymentDTO, auth domain.AuthState) (*domain.Pledge, bool, error) {
	var (
		result   *domain.Pledge
		mismatch bool
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pledge, err := s.pledgeRepo.FindByID(ctx, pledgeID)
		if err != nil {
			return err
		}
		if pledge == nil {
			return ErrPledgeNotFound
		}
		if pledge.Status == domain.PledgeStatusSuccessful {
			return ErrPledgeAlreadySettled
		}

		user, err := s.userRepo.FindByID(ctx, pledge.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			zap.L().Error("pledge references a missing user", zap.Int("pledgeID", pledge.ID), zap.Int("userID", pledge.UserID))
			return ErrPledgeUserMissing
		}

		if auth.Authenticated() && auth.UserID != user.ID {
			zap.L().Info("pledge does not belong to the signed in user, transferring",
				zap.Int("pledgeID", pledge.ID),
				zap.Int("fromUserID", user.ID),
				zap.Int("toUserID", auth.UserID),
			)
			pledge, err = s.pledgeRepo.UpdateOwner(ctx, pledge.ID, auth.UserID)
			if err != nil {
				return err
			}
		}

		settler, err := s.settlers.Settler(payload.Method)
		if err != nil {
			return err
		}
		settlement, err := settler.Settle(ctx, pledge, payload)
		if err != nil {
			return err
		}

		if pledge.Status != settlement.PledgeStatus {
			pledge, err = s.pledgeRepo.UpdateStatus(ctx, pledge.ID, settlement.PledgeStatus)
			if err != nil {
				return err
			}
		}

		err = s.paymentRepo.CreatePledgePayment(ctx, &domain.PledgePayment{
			PledgeID:    pledge.ID,
			PaymentID:   settlement.Payment.ID,
			PaymentType: domain.PaymentTypePledge,
		})
		if err != nil {
			return err
		}

		options, err := s.pledgeRepo.FindOptions(ctx, pledge.ID)
		if err != nil {
			return err
		}
		pledge.Options = options

		result = pledge
		mismatch = settlement.AmountMismatch
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	zap.L().Info("pledge payment recorded",
		zap.Int("pledgeID", result.ID),
		zap.String("method", payload.Method),
		zap.String("status", result.Status),
	)
	return result, mismatch, nil
}

// Reclaim reassigns an anonymous pledge to the claiming email. Verified
// owners are never up for grabs.
func (s *Service) Reclaim(ctx context.Context, pledgeID int, email string, auth domain.AuthState) (*domain.Pledge, error) {
	var result *domain.Pledge

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pledge, err := s.pledgeRepo.FindByID(ctx, pledgeID)
		if err != nil {
			return err
		}
		if pledge == nil {
			return ErrPledgeNotFound
		}

		owner, err := s.userRepo.FindByID(ctx, pledge.UserID)
		if err != nil {
			return err
		}
		if owner == nil {
			zap.L().Error("pledge references a missing user", zap.Int("pledgeID", pledge.ID), zap.Int("userID", pledge.UserID))
			return ErrPledgeUserMissing
		}

		if owner.Email == email {
			return ErrAlreadyOwner
		}
		if owner.Verified {
			return ErrCannotClaimVerified
		}

		if auth.Authenticated() {
			if auth.Email != email {
				return ErrEmailMismatch
			}
			pledge, err = s.pledgeRepo.UpdateOwner(ctx, pledge.ID, auth.UserID)
			if err != nil {
				return err
			}
		} else {
			// claim without signing in: move the placeholder to the new email
			if err := s.userRepo.UpdateEmail(ctx, owner.ID, email); err != nil {
				return err
			}
		}

		result = pledge
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("pledge reclaimed", zap.Int("pledgeID", result.ID), zap.String("email", email))
	return result, nil
}

// GetPledges lists the caller's pledges with their recorded options.
func (s *Service) GetPledges(ctx context.Context, userID int) ([]domain.Pledge, error) {
	pledges, err := s.pledgeRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get pledges", zap.Error(err))
		return nil, err
	}
	for i := range pledges {
		options, err := s.pledgeRepo.FindOptions(ctx, pledges[i].ID)
		if err != nil {
			return nil, err
		}
		pledges[i].Options = options
	}
	return pledges, nil
}
