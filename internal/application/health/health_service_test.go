package health

import (
	"context"
	"testing"
	"time"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/health"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTreatmentRepository is a mock implementation of health.TreatmentRepository
type MockTreatmentRepository struct {
	mock.Mock
}

func (m *MockTreatmentRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*health.Treatment, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*health.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]health.Treatment, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]health.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) FindByAnimal(ctx context.Context, farmID, animalID uuid.UUID, filter shared.Filter) ([]health.Treatment, error) {
	args := m.Called(ctx, farmID, animalID, filter)
	return args.Get(0).([]health.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) FindByDateRange(ctx context.Context, farmID uuid.UUID, start, end time.Time) ([]health.Treatment, error) {
	args := m.Called(ctx, farmID, start, end)
	return args.Get(0).([]health.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) Save(ctx context.Context, t *health.Treatment) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTreatmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of finance.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByCode(ctx context.Context, code string) (*finance.Transaction, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, t *finance.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func newTestService() (*HealthService, *MockTreatmentRepository, *MockTransactionRepository) {
	treatmentRepo := new(MockTreatmentRepository)
	txRepo := new(MockTransactionRepository)
	return NewHealthService(treatmentRepo, txRepo), treatmentRepo, txRepo
}

func TestHealthService_CreateTreatment(t *testing.T) {
	svc, treatmentRepo, _ := newTestService()
	farmID := uuid.New()

	treatmentRepo.On("Save", mock.Anything, mock.AnythingOfType("*health.Treatment")).Return(nil)

	resp, err := svc.CreateTreatment(context.Background(), farmID, uuid.New(), CreateTreatmentRequest{
		AnimalID: uuid.New(),
		Cost:     decimal.NewFromInt(350),
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.False(t, resp.IsPaid)
	assert.True(t, resp.PendingAmount.Equal(decimal.NewFromInt(350)))
	treatmentRepo.AssertExpectations(t)
}

func TestHealthService_AddTreatmentTransaction_SettlesTreatment(t *testing.T) {
	svc, treatmentRepo, txRepo := newTestService()
	farmID := uuid.New()
	treatment, err := health.NewTreatment(farmID, uuid.New(), uuid.New(), "Dr. Njoroge", time.Now(), decimal.NewFromInt(1), valueobject.NewMoneyUSD(decimal.NewFromInt(350)), nil, "")
	require.NoError(t, err)
	tx, err := finance.NewTransaction(farmID, uuid.New(), finance.TransactionTypeOutgoing, valueobject.NewMoneyUSD(decimal.NewFromInt(350)), time.Now(), "")
	require.NoError(t, err)

	treatmentRepo.On("FindByIDForFarm", mock.Anything, farmID, treatment.ID).Return(treatment, nil)
	txRepo.On("FindByID", mock.Anything, tx.ID).Return(tx, nil)
	treatmentRepo.On("Save", mock.Anything, treatment).Return(nil)

	resp, err := svc.AddTreatmentTransaction(context.Background(), farmID, treatment.ID, tx.ID)
	require.NoError(t, err)

	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.True(t, resp.IsPaid)
	assert.True(t, resp.PendingAmount.IsZero())
}

func TestHealthService_AddTreatmentTransaction_CrossFarmRejected(t *testing.T) {
	svc, treatmentRepo, txRepo := newTestService()
	farmID := uuid.New()
	treatment, err := health.NewTreatment(farmID, uuid.New(), uuid.New(), "", time.Now(), decimal.NewFromInt(1), valueobject.NewMoneyUSD(decimal.NewFromInt(350)), nil, "")
	require.NoError(t, err)
	tx, err := finance.NewTransaction(uuid.New(), uuid.New(), finance.TransactionTypeOutgoing, valueobject.NewMoneyUSD(decimal.NewFromInt(350)), time.Now(), "")
	require.NoError(t, err)

	treatmentRepo.On("FindByIDForFarm", mock.Anything, farmID, treatment.ID).Return(treatment, nil)
	txRepo.On("FindByID", mock.Anything, tx.ID).Return(tx, nil)

	_, err = svc.AddTreatmentTransaction(context.Background(), farmID, treatment.ID, tx.ID)

	require.ErrorIs(t, err, shared.ErrFarmMismatch)
	treatmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
