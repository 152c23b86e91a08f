package product

import (
	"context"
	"testing"
	"time"

	"github.com/farmstead/backend/internal/domain/product"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of product.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]product.Product, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) CountReferences(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductionRecordRepository is a mock implementation of product.ProductionRecordRepository
type MockProductionRecordRepository struct {
	mock.Mock
}

func (m *MockProductionRecordRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*product.ProductionRecord, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.ProductionRecord), args.Error(1)
}

func (m *MockProductionRecordRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]product.ProductionRecord, error) {
	args := m.Called(ctx, productID, filter)
	return args.Get(0).([]product.ProductionRecord), args.Error(1)
}

func (m *MockProductionRecordRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]product.ProductionRecord, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]product.ProductionRecord), args.Error(1)
}

func (m *MockProductionRecordRepository) Save(ctx context.Context, r *product.ProductionRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// MockSaleRepository is a mock implementation of product.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*product.Sale, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]product.Sale, error) {
	args := m.Called(ctx, productID, filter)
	return args.Get(0).([]product.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]product.Sale, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]product.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByDateRange(ctx context.Context, farmID uuid.UUID, start, end time.Time) ([]product.Sale, error) {
	args := m.Called(ctx, farmID, start, end)
	return args.Get(0).([]product.Sale), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, s *product.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func newTestService() (*ProductService, *MockProductRepository, *MockProductionRecordRepository, *MockSaleRepository) {
	productRepo := new(MockProductRepository)
	productionRepo := new(MockProductionRecordRepository)
	saleRepo := new(MockSaleRepository)
	scope := NewNoOpTransactionScope(productRepo, productionRepo, saleRepo)
	return NewProductService(scope, productRepo, productionRepo, saleRepo), productRepo, productionRepo, saleRepo
}

func mustPrice(t *testing.T, s string) valueobject.Money {
	t.Helper()
	return valueobject.NewMoneyUSD(decimal.RequireFromString(s))
}

func newStockedProduct(t *testing.T, farmID uuid.UUID, inventory string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(farmID, "Milk", "", "liter")
	require.NoError(t, err)
	p.Inventory = decimal.RequireFromString(inventory)
	p.ClearDomainEvents()
	return p
}

func TestProductService_RecordProduction(t *testing.T) {
	svc, productRepo, productionRepo, _ := newTestService()
	farmID := uuid.New()
	p := newStockedProduct(t, farmID, "10")

	productRepo.On("FindByIDForFarm", mock.Anything, farmID, p.ID).Return(p, nil)
	productRepo.On("Save", mock.Anything, p).Return(nil)
	productionRepo.On("Save", mock.Anything, mock.AnythingOfType("*product.ProductionRecord")).Return(nil)

	resp, err := svc.RecordProduction(context.Background(), farmID, uuid.New(), RecordProductionRequest{
		ProductID: p.ID,
		Quantity:  decimal.RequireFromString("25.5"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Quantity.Equal(decimal.RequireFromString("25.5")))
	assert.True(t, p.Inventory.Equal(decimal.RequireFromString("35.5")))
	productRepo.AssertExpectations(t)
	productionRepo.AssertExpectations(t)
}

func TestProductService_RecordSale_SnapshotsTotalAndAllowsOverdraw(t *testing.T) {
	svc, productRepo, _, saleRepo := newTestService()
	farmID := uuid.New()
	p := newStockedProduct(t, farmID, "10")

	productRepo.On("FindByIDForFarm", mock.Anything, farmID, p.ID).Return(p, nil)
	productRepo.On("Save", mock.Anything, p).Return(nil)
	saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*product.Sale")).Return(nil)

	resp, err := svc.RecordSale(context.Background(), farmID, uuid.New(), RecordSaleRequest{
		ProductID: p.ID,
		BuyerName: "Local dairy",
		Quantity:  decimal.NewFromInt(20),
		UnitPrice: decimal.RequireFromString("1.50"),
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(30)))
	assert.True(t, p.Inventory.Equal(decimal.NewFromInt(-10)))
}

func TestProductService_RecordSale_UnknownProduct(t *testing.T) {
	svc, productRepo, _, saleRepo := newTestService()
	farmID := uuid.New()
	productID := uuid.New()

	productRepo.On("FindByIDForFarm", mock.Anything, farmID, productID).Return(nil, shared.ErrNotFound)

	_, err := svc.RecordSale(context.Background(), farmID, uuid.New(), RecordSaleRequest{
		ProductID: productID,
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(1),
	})

	require.ErrorIs(t, err, shared.ErrNotFound)
	saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_DeleteSale_RestoresInventory(t *testing.T) {
	svc, productRepo, _, saleRepo := newTestService()
	farmID := uuid.New()
	userID := uuid.New()
	p := newStockedProduct(t, farmID, "10")

	sale, err := p.RecordSale("Local dairy", decimal.NewFromInt(4), mustPrice(t, "2.00"), "cash", true, time.Now(), userID)
	require.NoError(t, err)
	p.ClearDomainEvents()

	productRepo.On("FindByIDForFarm", mock.Anything, farmID, p.ID).Return(p, nil)
	productRepo.On("Save", mock.Anything, p).Return(nil)
	saleRepo.On("FindByIDForFarm", mock.Anything, farmID, sale.ID).Return(sale, nil)
	saleRepo.On("Save", mock.Anything, sale).Return(nil)

	err = svc.DeleteSale(context.Background(), farmID, sale.ID, userID)
	require.NoError(t, err)

	assert.True(t, p.Inventory.Equal(decimal.NewFromInt(10)))
	assert.True(t, sale.IsDeleted)
	require.NotNil(t, sale.DeletedBy)
	assert.Equal(t, userID, *sale.DeletedBy)
}

func TestProductService_DeleteSale_AlreadyDeleted(t *testing.T) {
	svc, productRepo, _, saleRepo := newTestService()
	farmID := uuid.New()
	userID := uuid.New()
	p := newStockedProduct(t, farmID, "10")

	sale, err := p.RecordSale("", decimal.NewFromInt(4), mustPrice(t, "2.00"), "", false, time.Now(), userID)
	require.NoError(t, err)
	require.NoError(t, p.ReverseSale(sale, userID))
	p.ClearDomainEvents()
	inventoryBefore := p.Inventory

	productRepo.On("FindByIDForFarm", mock.Anything, farmID, p.ID).Return(p, nil)
	saleRepo.On("FindByIDForFarm", mock.Anything, farmID, sale.ID).Return(sale, nil)

	err = svc.DeleteSale(context.Background(), farmID, sale.ID, userID)

	require.ErrorIs(t, err, shared.ErrAlreadyDeleted)
	assert.True(t, p.Inventory.Equal(inventoryBefore))
	productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProductionRecord_ReversesInventory(t *testing.T) {
	svc, productRepo, productionRepo, _ := newTestService()
	farmID := uuid.New()
	userID := uuid.New()
	p := newStockedProduct(t, farmID, "0")

	record, err := p.RecordProduction(decimal.NewFromInt(40), time.Now(), userID)
	require.NoError(t, err)
	p.ClearDomainEvents()

	productRepo.On("FindByIDForFarm", mock.Anything, farmID, p.ID).Return(p, nil)
	productRepo.On("Save", mock.Anything, p).Return(nil)
	productionRepo.On("FindByIDForFarm", mock.Anything, farmID, record.ID).Return(record, nil)
	productionRepo.On("Save", mock.Anything, record).Return(nil)

	err = svc.DeleteProductionRecord(context.Background(), farmID, record.ID, userID)
	require.NoError(t, err)

	assert.True(t, p.Inventory.IsZero())
	assert.True(t, record.IsDeleted)
}

func TestProductService_DeleteProduct_BlockedWhenReferenced(t *testing.T) {
	svc, productRepo, _, _ := newTestService()
	farmID := uuid.New()
	p := newStockedProduct(t, farmID, "0")

	productRepo.On("FindByIDForFarm", mock.Anything, farmID, p.ID).Return(p, nil)
	productRepo.On("CountReferences", mock.Anything, p.ID).Return(int64(3), nil)

	err := svc.DeleteProduct(context.Background(), farmID, p.ID)

	require.ErrorIs(t, err, shared.ErrInUse)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
