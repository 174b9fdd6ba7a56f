package pledgeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/dkoleda/crowdledger/internal/domain"
	"github.com/dkoleda/crowdledger/internal/dto"
	"github.com/dkoleda/crowdledger/internal/pg"
	"github.com/dkoleda/crowdledger/internal/psp"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type serviceMocks struct {
	ctrl        *gomock.Controller
	catalogRepo *MockCatalogRepo
	pledgeRepo  *MockPledgeRepo
	paymentRepo *MockPaymentRepo
	userRepo    *MockUserRepo
	resolver    *MockResolver
	settlers    *MockSettlers
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		ctrl:        ctrl,
		catalogRepo: NewMockCatalogRepo(ctrl),
		pledgeRepo:  NewMockPledgeRepo(ctrl),
		paymentRepo: NewMockPaymentRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		resolver:    NewMockResolver(ctrl),
		settlers:    NewMockSettlers(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.catalogRepo, m.pledgeRepo, m.paymentRepo, m.userRepo, m.resolver, m.settlers, m.txManager)
	return service, m
}

func TestSubmit(t *testing.T) {
	service, m := NewMock(t)

	req := &dto.SubmitPledgeRequestDTO{
		Options: []dto.PledgeOptionDTO{{TemplateID: 1, Amount: 1}},
		Total:   24000,
		User:    &dto.PledgeUserDTO{Email: "backer@example.com", Name: "Jane Backer"},
	}
	catalogOptions := []domain.PackageOption{
		{ID: 1, PackageID: 10, Price: 24000, MinAmount: 1, MaxAmount: 1},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pledge is recorded with a price snapshot",
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{1}).Return(catalogOptions, nil)
				m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), req.User).
					Return(&domain.User{ID: 7, Email: "backer@example.com"}, nil)
				m.pledgeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pledge *domain.Pledge) (*domain.Pledge, error) {
						assert.Equal(t, 7, pledge.UserID)
						assert.Equal(t, 10, pledge.PackageID)
						assert.Equal(t, domain.PledgeStatusDraft, pledge.Status)
						pledge.ID = 42
						return pledge, nil
					})
				m.pledgeRepo.EXPECT().CreateOption(gomock.Any(), &domain.PledgeOption{
					PledgeID: 42, TemplateID: 1, Amount: 1, Price: 24000,
				}).Return(nil)
			},
		},
		{
			name: "Resolver rejects the caller",
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{1}).Return(catalogOptions, nil)
				m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), req.User).
					Return(nil, errors.New("email taken"))
			},
			expectedError: errors.New("email taken"),
		},
		{
			name: "Option insert fails and nothing is returned",
			prepareMock: func() {
				m.catalogRepo.EXPECT().FindOptionsByIDs(gomock.Any(), []int{1}).Return(catalogOptions, nil)
				m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), req.User).
					Return(&domain.User{ID: 7}, nil)
				m.pledgeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&domain.Pledge{ID: 42}, nil)
				m.pledgeRepo.EXPECT().CreateOption(gomock.Any(), gomock.Any()).
					Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pledge, err := service.Submit(context.Background(), req, domain.AuthState{})
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, pledge)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, pledge.ID)
				assert.Len(t, pledge.Options, 1)
			}
		})
	}
}

func TestPay(t *testing.T) {
	service, m := NewMock(t)
	payload := &dto.PledgePaymentDTO{Method: psp.MethodPaymentSlip}

	tests := []struct {
		name            string
		auth            domain.AuthState
		prepareMock     func()
		expectedStatus  string
		expectedMistach bool
		expectedError   error
	}{
		{
			name: "Pledge does not exist",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrPledgeNotFound,
		},
		{
			name: "Settled pledges refuse another payment",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, Status: domain.PledgeStatusSuccessful}, nil)
			},
			expectedError: ErrPledgeAlreadySettled,
		},
		{
			name: "Pledge owner is gone",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7, Status: domain.PledgeStatusDraft}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrPledgeUserMissing,
		},
		{
			name: "Unsupported payment method",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7, Status: domain.PledgeStatusDraft}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7}, nil)
				m.settlers.EXPECT().Settler(psp.MethodPaymentSlip).Return(nil, psp.ErrUnsupportedMethod)
			},
			expectedError: psp.ErrUnsupportedMethod,
		},
		{
			name: "Offline settlement advances the pledge and links the payment",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7, Status: domain.PledgeStatusDraft}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7}, nil)

				settler := psp.NewMockSettler(m.ctrl)
				m.settlers.EXPECT().Settler(psp.MethodPaymentSlip).Return(settler, nil)
				settler.EXPECT().Settle(gomock.Any(), gomock.Any(), payload).Return(&psp.Settlement{
					PledgeStatus: domain.PledgeStatusWaitingForPayment,
					Payment:      &domain.Payment{ID: 5},
				}, nil)

				m.pledgeRepo.EXPECT().UpdateStatus(gomock.Any(), 42, domain.PledgeStatusWaitingForPayment).
					Return(&domain.Pledge{ID: 42, UserID: 7, Status: domain.PledgeStatusWaitingForPayment}, nil)
				m.paymentRepo.EXPECT().CreatePledgePayment(gomock.Any(), &domain.PledgePayment{
					PledgeID: 42, PaymentID: 5, PaymentType: domain.PaymentTypePledge,
				}).Return(nil)
				m.pledgeRepo.EXPECT().FindOptions(gomock.Any(), 42).Return([]domain.PledgeOption{{PledgeID: 42}}, nil)
			},
			expectedStatus: domain.PledgeStatusWaitingForPayment,
		},
		{
			name: "Foreign pledge is adopted by the signed in payer",
			auth: domain.AuthState{UserID: 9, Email: "other@example.com"},
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7, Status: domain.PledgeStatusDraft}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7}, nil)
				m.pledgeRepo.EXPECT().UpdateOwner(gomock.Any(), 42, 9).
					Return(&domain.Pledge{ID: 42, UserID: 9, Status: domain.PledgeStatusDraft}, nil)

				settler := psp.NewMockSettler(m.ctrl)
				m.settlers.EXPECT().Settler(psp.MethodPaymentSlip).Return(settler, nil)
				settler.EXPECT().Settle(gomock.Any(), gomock.Any(), payload).Return(&psp.Settlement{
					PledgeStatus: domain.PledgeStatusWaitingForPayment,
					Payment:      &domain.Payment{ID: 6},
				}, nil)

				m.pledgeRepo.EXPECT().UpdateStatus(gomock.Any(), 42, domain.PledgeStatusWaitingForPayment).
					Return(&domain.Pledge{ID: 42, UserID: 9, Status: domain.PledgeStatusWaitingForPayment}, nil)
				m.paymentRepo.EXPECT().CreatePledgePayment(gomock.Any(), gomock.Any()).Return(nil)
				m.pledgeRepo.EXPECT().FindOptions(gomock.Any(), 42).Return(nil, nil)
			},
			expectedStatus: domain.PledgeStatusWaitingForPayment,
		},
		{
			name: "Amount mismatch is reported, not fatal",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7, Total: 24000, Status: domain.PledgeStatusDraft}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7}, nil)

				settler := psp.NewMockSettler(m.ctrl)
				m.settlers.EXPECT().Settler(psp.MethodPaymentSlip).Return(settler, nil)
				settler.EXPECT().Settle(gomock.Any(), gomock.Any(), payload).Return(&psp.Settlement{
					PledgeStatus:   domain.PledgeStatusSuccessful,
					Payment:        &domain.Payment{ID: 7, Total: 20000},
					AmountMismatch: true,
				}, nil)

				m.pledgeRepo.EXPECT().UpdateStatus(gomock.Any(), 42, domain.PledgeStatusSuccessful).
					Return(&domain.Pledge{ID: 42, UserID: 7, Status: domain.PledgeStatusSuccessful}, nil)
				m.paymentRepo.EXPECT().CreatePledgePayment(gomock.Any(), gomock.Any()).Return(nil)
				m.pledgeRepo.EXPECT().FindOptions(gomock.Any(), 42).Return(nil, nil)
			},
			expectedStatus:  domain.PledgeStatusSuccessful,
			expectedMistach: true,
		},
		{
			name: "Provider rejects the settlement",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7, Status: domain.PledgeStatusDraft}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7}, nil)

				settler := psp.NewMockSettler(m.ctrl)
				m.settlers.EXPECT().Settler(psp.MethodPaymentSlip).Return(settler, nil)
				settler.EXPECT().Settle(gomock.Any(), gomock.Any(), payload).Return(nil, psp.ErrProviderRejected)
			},
			expectedError: psp.ErrProviderRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pledge, mismatch, err := service.Pay(context.Background(), 42, payload, tt.auth)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, pledge)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, pledge.Status)
				assert.Equal(t, tt.expectedMistach, mismatch)
			}
		})
	}
}

func TestReclaim(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		email         string
		auth          domain.AuthState
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Pledge does not exist",
			email: "new@example.com",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)
			},
			expectedError: ErrPledgeNotFound,
		},
		{
			name:  "Claiming email already owns the pledge",
			email: "owner@example.com",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).
					Return(&domain.User{ID: 7, Email: "owner@example.com"}, nil)
			},
			expectedError: ErrAlreadyOwner,
		},
		{
			name:  "Verified owners keep their pledges",
			email: "new@example.com",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).
					Return(&domain.User{ID: 7, Email: "owner@example.com", Verified: true}, nil)
			},
			expectedError: ErrCannotClaimVerified,
		},
		{
			name:  "Signed in callers can only claim to their own email",
			email: "new@example.com",
			auth:  domain.AuthState{UserID: 9, Email: "me@example.com"},
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).
					Return(&domain.User{ID: 7, Email: "owner@example.com"}, nil)
			},
			expectedError: ErrEmailMismatch,
		},
		{
			name:  "Signed in caller takes the pledge over",
			email: "me@example.com",
			auth:  domain.AuthState{UserID: 9, Email: "me@example.com"},
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).
					Return(&domain.User{ID: 7, Email: "owner@example.com"}, nil)
				m.pledgeRepo.EXPECT().UpdateOwner(gomock.Any(), 42, 9).
					Return(&domain.Pledge{ID: 42, UserID: 9}, nil)
			},
		},
		{
			name:  "Anonymous claim rewrites the placeholder email",
			email: "new@example.com",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByID(gomock.Any(), 42).
					Return(&domain.Pledge{ID: 42, UserID: 7}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 7).
					Return(&domain.User{ID: 7, Email: "owner@example.com"}, nil)
				m.userRepo.EXPECT().UpdateEmail(gomock.Any(), 7, "new@example.com").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pledge, err := service.Reclaim(context.Background(), 42, tt.email, tt.auth)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, pledge)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, pledge.ID)
			}
		})
	}
}

func TestGetPledges(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedLen   int
		expectedError error
	}{
		{
			name: "Pledges come back with their options",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByUserID(gomock.Any(), 7).
					Return([]domain.Pledge{{ID: 1}, {ID: 2}}, nil)
				m.pledgeRepo.EXPECT().FindOptions(gomock.Any(), 1).
					Return([]domain.PledgeOption{{PledgeID: 1}}, nil)
				m.pledgeRepo.EXPECT().FindOptions(gomock.Any(), 2).Return(nil, nil)
			},
			expectedLen: 2,
		},
		{
			name: "Lookup fails",
			prepareMock: func() {
				m.pledgeRepo.EXPECT().FindByUserID(gomock.Any(), 7).
					Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pledges, err := service.GetPledges(context.Background(), 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, pledges)
			} else {
				assert.NoError(t, err)
				assert.Len(t, pledges, tt.expectedLen)
				assert.NotEmpty(t, pledges[0].Options)
			}
		})
	}
}
