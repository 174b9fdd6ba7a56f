package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/notify"
	"github.com/dkoleda/crowdledger/internal/pg"
	"github.com/dkoleda/crowdledger/pkg/auth"
	"github.com/dkoleda/crowdledger/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	MarkVerified(ctx context.Context, id int) error
	SaveSigninToken(ctx context.Context, token *domain.SigninToken) error
	ConsumeSigninToken(ctx context.Context, token string) (*domain.SigninToken, error)
}

type Service struct {
	userRepo   Repo
	notifier   notify.Notifier
	jwtService auth.JWTServiceInterface
	txManager  pg.TXManager
	publicURL  string
	mailFrom   string
}

func New(repo Repo, notifier notify.Notifier, jwtService auth.JWTServiceInterface, txManager pg.TXManager, publicURL, mailFrom string) *Service {
	return &Service{
		userRepo:   repo,
		notifier:   notifier,
		jwtService: jwtService,
		txManager:  txManager,
		publicURL:  publicURL,
		mailFrom:   mailFrom,
	}
}

const (
	tokenTTL   = 30 * time.Minute
	sessionTTL = 24 * time.Hour
)

var (
	ErrInvalidEmail = errors.New("email address is not valid")
	ErrInvalidToken = errors.New("signin token is invalid or expired")
)

// SignIn starts the passwordless login flow: a one-time token is stored and
// mailed as a link, and the caller is shown a control phrase that the mail
// repeats. An already signed-in caller gets an empty phrase and no mail.
func (s *Service) SignIn(ctx context.Context, email string, authState domain.AuthState) (string, error) {
	if authState.Authenticated() {
		// fail gracefully
		return "", nil
	}

	if !validate.IsEmail(email) {
		return "", ErrInvalidEmail
	}

	token := uuid.NewString()
	phrase := randomPhrase()

	err := s.userRepo.SaveSigninToken(ctx, &domain.SigninToken{
		Token:  token,
		Email:  email,
		Phrase: phrase,
	})
	if err != nil {
		zap.L().Error("can't save signin token", zap.Error(err))
		return "", err
	}

	verificationURL := s.publicURL + "/api/auth/signin/" + token
	s.notifier.Send(ctx, notify.Mail{
		To:      email,
		From:    s.mailFrom,
		Subject: "Login Link",
		Text: fmt.Sprintf(
			"Ma'am, Sir,\n\nif you were shown the words <%s>, click the following link to sign in:\n%s\n",
			phrase, verificationURL,
		),
	})

	zap.L().Info("signin link issued", zap.String("email", email))
	return phrase, nil
}

// RedeemToken exchanges a mailed signin token for a session JWT. The token is
// consumed atomically with the user upsert; redeeming proves control of the
// mailbox, so the user becomes verified.
func (s *Service) RedeemToken(ctx context.Context, token string) (string, error) {
	var user *domain.User

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		st, err := s.userRepo.ConsumeSigninToken(ctx, token)
		if err != nil {
			return err
		}
		if st == nil || time.Since(st.CreatedAt) > tokenTTL {
			return ErrInvalidToken
		}

		user, err = s.userRepo.FindByEmail(ctx, st.Email)
		if err != nil {
			return err
		}
		if user == nil {
			user, err = s.userRepo.Create(ctx, &domain.User{
				Email:    st.Email,
				Verified: true,
			})
			return err
		}
		if !user.Verified {
			if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
				return err
			}
			user.Verified = true
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	sessionToken, err := s.jwtService.GenerateJWT(user.ID, user.Email, time.Now().Add(sessionTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}

	zap.L().Info("user signed in", zap.String("email", user.Email))
	return sessionToken, nil
}
