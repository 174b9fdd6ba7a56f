package userservice

import (
	"context"
	"errors"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateName(ctx context.Context, id int, name string) (*domain.User, error)
	UpdateEmail(ctx context.Context, id int, email string) error
}

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		userRepo: repo,
	}
}

var (
	ErrIdentityConflict   = errors.New("logged in callers must not provide pledge user data")
	ErrUserDataRequired   = errors.New("pledge must provide a user when not logged in")
	ErrEmailTaken         = errors.New("a verified user with this email already exists, login instead")
	ErrSessionUserMissing = errors.New("session user not found")
)

// Resolve maps the caller to exactly one user record. Authenticated callers
// are their session user; anonymous callers name an email that either joins
// an existing placeholder or creates a new one. Must run inside the caller's
// transaction so that a concurrent submit with the same email cannot create
// two placeholders.
func (s *Service) Resolve(ctx context.Context, auth domain.AuthState, claimed *dto.PledgeUserDTO) (*domain.User, error) {
	if auth.Authenticated() {
		if claimed != nil {
			return nil, ErrIdentityConflict
		}
		user, err := s.userRepo.FindByID(ctx, auth.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			zap.L().Error("authenticated caller has no user row", zap.Int("userID", auth.UserID))
			return nil, ErrSessionUserMissing
		}
		return user, nil
	}

	if claimed == nil {
		return nil, ErrUserDataRequired
	}

	user, err := s.userRepo.FindByEmail(ctx, claimed.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if user.Verified {
			zap.L().Info("anonymous pledge for a verified email rejected", zap.String("email", claimed.Email))
			return nil, ErrEmailTaken
		}
		// same pending identity, last writer wins
		return s.userRepo.UpdateName(ctx, user.ID, claimed.Name)
	}

	return s.userRepo.Create(ctx, &domain.User{
		Email:    claimed.Email,
		Name:     claimed.Name,
		Verified: false,
	})
}
