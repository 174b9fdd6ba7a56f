package pledgeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestValidateSelection(t *testing.T) {
	service, m := NewMock(t)

	catalogOptions := []domain.PackageOption{
		{ID: 1, PackageID: 10, Name: "Membership", Price: 24000, MinAmount: 1, MaxAmount: 1},
		{ID: 2, PackageID: 10, Name: "Notebook", Price: 2000, MinAmount: 0, MaxAmount: 10},
		{ID: 3, PackageID: 20, Name: "Donation", Price: 0, MinAmount: 1, MaxAmount: 1, UserPrice: true, MinUserPrice: 0},
	}

	tests := []struct {
		name          string
		req           *dto.SubmitPledgeRequestDTO
		prepareMock   func()
		expected      *validatedSelection
		expectedError error
	}{
		{
			name:          "No options selected",
			req:           &dto.SubmitPledgeRequestDTO{Total: 24000},
			expectedError: ErrInvalidSelection,
		},
		{
			name: "Unknown template id",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 99, Amount: 1}},
				Total:   24000,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{99}).Return(nil, nil)
			},
			expectedError: ErrInvalidSelection,
		},
		{
			name: "Options from different packages",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 1, Amount: 1}, {TemplateID: 3, Amount: 1}},
				Total:   24000,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{1, 3}).
					Return([]domain.PackageOption{catalogOptions[0], catalogOptions[2]}, nil)
			},
			expectedError: ErrCrossPackageSelection,
		},
		{
			name: "Amount above the allowed maximum",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 2, Amount: 11}},
				Total:   24000,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{2}).
					Return([]domain.PackageOption{catalogOptions[1]}, nil)
			},
			expectedError: ErrAmountOutOfRange,
		},
		{
			name: "Total below the selection minimum",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 1, Amount: 1}},
				Total:   20000,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{1}).
					Return([]domain.PackageOption{catalogOptions[0]}, nil)
			},
			expectedError: ErrTotalTooLow,
		},
		{
			name: "User-priced minimum is clamped to the floor",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 3, Amount: 1}},
				Total:   99,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{3}).
					Return([]domain.PackageOption{catalogOptions[2]}, nil)
			},
			expectedError: ErrTotalTooLow,
		},
		{
			name: "Floor total is accepted for a user-priced option",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 3, Amount: 1}},
				Total:   100,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{3}).
					Return([]domain.PackageOption{catalogOptions[2]}, nil)
			},
			expected: &validatedSelection{packageID: 20, donation: 0},
		},
		{
			name: "Surplus becomes a donation",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 1, Amount: 1}, {TemplateID: 2, Amount: 2}},
				Total:   30000,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{1, 2}).
					Return([]domain.PackageOption{catalogOptions[0], catalogOptions[1]}, nil)
			},
			expected: &validatedSelection{packageID: 10, donation: 2000},
		},
		{
			name: "Reduced pledge without a reason is rejected",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 3, Amount: 1}},
				Total:   100,
			},
			prepareMock: func() {
				userPriced := catalogOptions[2]
				userPriced.Price = 24000
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{3}).
					Return([]domain.PackageOption{userPriced}, nil)
			},
			expectedError: ErrReasonRequired,
		},
		{
			name: "Reduced pledge with a reason records a negative donation",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 3, Amount: 1}},
				Total:   100,
				Reason:  "student budget",
			},
			prepareMock: func() {
				userPriced := catalogOptions[2]
				userPriced.Price = 24000
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{3}).
					Return([]domain.PackageOption{userPriced}, nil)
			},
			expected: &validatedSelection{packageID: 20, donation: -23900},
		},
		{
			name: "Catalog lookup fails",
			req: &dto.SubmitPledgeRequestDTO{
				Options: []dto.PledgeOptionDTO{{TemplateID: 1, Amount: 1}},
				Total:   24000,
			},
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{1}).
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

			selection, err := service.validateSelection(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, selection)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected.packageID, selection.packageID)
				assert.Equal(t, tt.expected.donation, selection.donation)
				assert.Len(t, selection.options, len(tt.req.Options))
			}
		})
	}
}

func TestValidateSelectionSnapshotsPrices(t *testing.T) {
	service, m := NewMock(t)

	m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{2}).
		Return([]domain.PackageOption{
			{ID: 2, PackageID: 10, Price: 2000, MinAmount: 0, MaxAmount: 10},
		}, nil)

	selection, err := service.validateSelection(context.Background(), &dto.SubmitPledgeRequestDTO{
		Options: []dto.PledgeOptionDTO{{TemplateID: 2, Amount: 3}},
		Total:   6000,
	})
	assert.NoError(t, err)
	assert.Equal(t, []domain.PledgeOption{{TemplateID: 2, Amount: 3, Price: 2000}}, selection.options)
}
