package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	return service, repo
}

func TestResolve(t *testing.T) {
	service, repo := NewMock(t)

	claimed := &dto.PledgeUserDTO{Email: "backer@example.com", Name: "Jane Backer"}

	tests := []struct {
		name          string
		auth          domain.AuthState
		claimed       *dto.PledgeUserDTO
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:    "Authenticated caller resolves to the session user",
			auth:    domain.AuthState{UserID: 7, Email: "me@example.com"},
			claimed: nil,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 7).
					Return(&domain.User{ID: 7, Email: "me@example.com", Verified: true}, nil)
			},
			expectedUser: &domain.User{ID: 7, Email: "me@example.com", Verified: true},
		},
		{
			name:          "Authenticated caller must not claim a different identity",
			auth:          domain.AuthState{UserID: 7, Email: "me@example.com"},
			claimed:       claimed,
			expectedError: ErrIdentityConflict,
		},
		{
			name: "Session user row is gone",
			auth: domain.AuthState{UserID: 7, Email: "me@example.com"},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrSessionUserMissing,
		},
		{
			name:          "Anonymous caller must provide user data",
			claimed:       nil,
			expectedError: ErrUserDataRequired,
		},
		{
			name:    "Anonymous pledge for a verified email is rejected",
			claimed: claimed,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "backer@example.com").
					Return(&domain.User{ID: 3, Email: "backer@example.com", Verified: true}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:    "Anonymous pledge joins an existing placeholder",
			claimed: claimed,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "backer@example.com").
					Return(&domain.User{ID: 3, Email: "backer@example.com", Name: "Old Name"}, nil)
				repo.EXPECT().UpdateName(gomock.Any(), 3, "Jane Backer").
					Return(&domain.User{ID: 3, Email: "backer@example.com", Name: "Jane Backer"}, nil)
			},
			expectedUser: &domain.User{ID: 3, Email: "backer@example.com", Name: "Jane Backer"},
		},
		{
			name:    "Anonymous pledge creates a placeholder",
			claimed: claimed,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "backer@example.com").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), &domain.User{
					Email: "backer@example.com", Name: "Jane Backer", Verified: false,
				}).Return(&domain.User{ID: 4, Email: "backer@example.com", Name: "Jane Backer"}, nil)
			},
			expectedUser: &domain.User{ID: 4, Email: "backer@example.com", Name: "Jane Backer"},
		},
		{
			name:    "Lookup fails",
			claimed: claimed,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "backer@example.com").
					Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Resolve(context.Background(), tt.auth, tt.claimed)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}
