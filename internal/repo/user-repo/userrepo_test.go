package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	columns := []string{"id", "email", "name", "verified"}

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User exists",
			email: "backer@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, verified FROM users WHERE email = $1")).
					WithArgs("backer@example.com").
					WillReturnRows(pgxmock.NewRows(columns).AddRow(7, "backer@example.com", "Jane Backer", true))
			},
			result: &domain.User{ID: 7, Email: "backer@example.com", Name: "Jane Backer", Verified: true},
		},
		{
			name:  "User does not exist",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, verified FROM users WHERE email = $1")).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "backer@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, verified FROM users WHERE email = $1")).
					WithArgs("backer@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("backer@example.com", "Jane Backer", false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	user, err := repo.Create(context.Background(), &domain.User{
		Email: "backer@example.com", Name: "Jane Backer",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateName(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs("New Name", 7).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "verified"}).
			AddRow(7, "backer@example.com", "New Name", false))

	user, err := repo.UpdateName(context.Background(), 7, "New Name")
	assert.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateEmail(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs("new@example.com", 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateEmail(context.Background(), 7, "new@example.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkVerified(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET verified = TRUE")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkVerified(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SigninTokens(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Token is stored", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO signin_tokens")).
			WithArgs("t0ken", "backer@example.com", "brave waving Otter").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveSigninToken(context.Background(), &domain.SigninToken{
			Token: "t0ken", Email: "backer@example.com", Phrase: "brave waving Otter",
		})
		assert.NoError(t, err)
	})

	t.Run("Token redeems exactly once", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM signin_tokens")).
			WithArgs("t0ken").
			WillReturnRows(pgxmock.NewRows([]string{"token", "email", "phrase", "created_at"}).
				AddRow("t0ken", "backer@example.com", "brave waving Otter", now))

		st, err := repo.ConsumeSigninToken(context.Background(), "t0ken")
		assert.NoError(t, err)
		assert.Equal(t, "backer@example.com", st.Email)

		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM signin_tokens")).
			WithArgs("t0ken").
			WillReturnError(pgx.ErrNoRows)

		st, err = repo.ConsumeSigninToken(context.Background(), "t0ken")
		assert.NoError(t, err)
		assert.Nil(t, st)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
