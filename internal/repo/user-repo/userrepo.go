package userrepo

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

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, name, verified FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Email, &user.Name, &user.Verified)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, name, verified FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.Name, &user.Verified)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, verified)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.Name, user.Verified).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateName(ctx context.Context, id int, name string) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = $1
		WHERE id = $2
		RETURNING id, email, name, verified
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, name, id).Scan(&user.ID, &user.Email, &user.Name, &user.Verified)
	if err != nil {
		zap.L().Error("can't update user name", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateEmail(ctx context.Context, id int, email string) error {
	query := `
		UPDATE users
		SET email = $1
		WHERE id = $2
	`
	if _, err := repo.db.Exec(ctx, query, email, id); err != nil {
		zap.L().Error("can't update user email", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) MarkVerified(ctx context.Context, id int) error {
	query := `
		UPDATE users
		SET verified = TRUE
		WHERE id = $1
	`
	if _, err := repo.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't mark user verified", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) SaveSigninToken(ctx context.Context, token *domain.SigninToken) error {
	query := `
		INSERT INTO signin_tokens (token, email, phrase)
		VALUES ($1, $2, $3)
	`
	if _, err := repo.db.Exec(ctx, query, token.Token, token.Email, token.Phrase); err != nil {
		zap.L().Error("can't save signin token", zap.Error(err))
		return err
	}
	return nil
}

// ConsumeSigninToken deletes the token row and returns it. A token redeems at
// most once.
func (repo *Repository) ConsumeSigninToken(ctx context.Context, token string) (*domain.SigninToken, error) {
	query := `
		DELETE FROM signin_tokens
		WHERE token = $1
		RETURNING token, email, phrase, created_at
	`
	var st domain.SigninToken
	err := repo.db.QueryRow(ctx, query, token).Scan(&st.Token, &st.Email, &st.Phrase, &st.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't consume signin token", zap.Error(err))
		return nil, err
	}
	return &st, nil
}
