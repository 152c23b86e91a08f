package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	farmapp "github.com/farmstead/backend/internal/application/farm"
	feedapp "github.com/farmstead/backend/internal/application/feed"
	"github.com/farmstead/backend/internal/domain/feed"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFeedRepository implements feed.FeedRepository for testing
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*feed.Feed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.Feed), args.Error(1)
}

func (m *MockFeedRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.Feed, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.Feed), args.Error(1)
}

func (m *MockFeedRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.Feed, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]feed.Feed), args.Error(1)
}

func (m *MockFeedRepository) Save(ctx context.Context, f *feed.Feed) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFeedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFeedRepository) CountReferences(ctx context.Context, feedID uuid.UUID) (int64, error) {
	args := m.Called(ctx, feedID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFeedTypeRepository implements feed.FeedTypeRepository for testing
type MockFeedTypeRepository struct {
	mock.Mock
}

func (m *MockFeedTypeRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.FeedType, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.FeedType), args.Error(1)
}

func (m *MockFeedTypeRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.FeedType, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]feed.FeedType), args.Error(1)
}

func (m *MockFeedTypeRepository) FindByNameForFarm(ctx context.Context, farmID uuid.UUID, name string) (*feed.FeedType, error) {
	args := m.Called(ctx, farmID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.FeedType), args.Error(1)
}

func (m *MockFeedTypeRepository) Save(ctx context.Context, t *feed.FeedType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockFeedTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFeedTypeRepository) CountFeeds(ctx context.Context, feedTypeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, feedTypeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFeedPurchaseRepository implements feed.FeedPurchaseRepository for testing
type MockFeedPurchaseRepository struct {
	mock.Mock
}

func (m *MockFeedPurchaseRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.FeedPurchase, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.FeedPurchase), args.Error(1)
}

func (m *MockFeedPurchaseRepository) FindByFeed(ctx context.Context, feedID uuid.UUID, filter shared.Filter) ([]feed.FeedPurchase, error) {
	args := m.Called(ctx, feedID, filter)
	return args.Get(0).([]feed.FeedPurchase), args.Error(1)
}

func (m *MockFeedPurchaseRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.FeedPurchase, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]feed.FeedPurchase), args.Error(1)
}

func (m *MockFeedPurchaseRepository) Save(ctx context.Context, p *feed.FeedPurchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockFeedEntryRepository implements feed.FeedEntryRepository for testing
type MockFeedEntryRepository struct {
	mock.Mock
}

func (m *MockFeedEntryRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.FeedEntry, error) {
	args := m.Called(ctx, farmID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.FeedEntry), args.Error(1)
}

func (m *MockFeedEntryRepository) FindByFeed(ctx context.Context, feedID uuid.UUID, filter shared.Filter) ([]feed.FeedEntry, error) {
	args := m.Called(ctx, feedID, filter)
	return args.Get(0).([]feed.FeedEntry), args.Error(1)
}

func (m *MockFeedEntryRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.FeedEntry, error) {
	args := m.Called(ctx, farmID, filter)
	return args.Get(0).([]feed.FeedEntry), args.Error(1)
}

func (m *MockFeedEntryRepository) Save(ctx context.Context, e *feed.FeedEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// Test setup helpers

type feedHandlerMocks struct {
	farmRepo     *MockFarmRepository
	feedRepo     *MockFeedRepository
	typeRepo     *MockFeedTypeRepository
	purchaseRepo *MockFeedPurchaseRepository
	entryRepo    *MockFeedEntryRepository
}

func setupFeedHandler() (*FeedHandler, *feedHandlerMocks) {
	mocks := &feedHandlerMocks{
		farmRepo:     new(MockFarmRepository),
		feedRepo:     new(MockFeedRepository),
		typeRepo:     new(MockFeedTypeRepository),
		purchaseRepo: new(MockFeedPurchaseRepository),
		entryRepo:    new(MockFeedEntryRepository),
	}
	scope := feedapp.NewNoOpTransactionScope(mocks.feedRepo, mocks.purchaseRepo, mocks.entryRepo)
	feedService := feedapp.NewFeedService(scope, mocks.feedRepo, mocks.typeRepo, mocks.purchaseRepo, mocks.entryRepo)
	farmService := farmapp.NewFarmService(mocks.farmRepo)
	return NewFeedHandler(feedService, farmService), mocks
}

func createTestFeed(farmID, feedTypeID uuid.UUID) *feed.Feed {
	f, _ := feed.NewFeed(farmID, feedTypeID, "Corn Silage", "", "kg")
	return f
}

// Tests

func TestFeedHandler_ListFeeds_Success(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.feedRepo.On("FindAllForFarm", mock.Anything, farmID, mock.AnythingOfType("shared.Filter")).
		Return([]feed.Feed{*createTestFeed(farmID, uuid.New())}, nil)

	router := setupTestRouter(ownerID)
	router.GET("/feeds/get_feeds/:farm_id", handler.ListFeeds)

	req := httptest.NewRequest(http.MethodGet, "/feeds/get_feeds/"+farmID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.farmRepo.AssertExpectations(t)
	mocks.feedRepo.AssertExpectations(t)
}

func TestFeedHandler_ListFeeds_Forbidden(t *testing.T) {
	handler, mocks := setupFeedHandler()
	farmID := uuid.New()

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(uuid.New(), farmID), nil)

	router := setupTestRouter(uuid.New())
	router.GET("/feeds/get_feeds/:farm_id", handler.ListFeeds)

	req := httptest.NewRequest(http.MethodGet, "/feeds/get_feeds/"+farmID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mocks.farmRepo.AssertExpectations(t)
}

func TestFeedHandler_AddFeed_Success(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()
	feedTypeID := uuid.New()
	feedType, _ := feed.NewFeedType(farmID, ownerID, "Grain", "")

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.typeRepo.On("FindByIDForFarm", mock.Anything, farmID, feedTypeID).Return(feedType, nil)
	mocks.feedRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.Feed")).Return(nil)

	router := setupTestRouter(ownerID)
	router.POST("/feeds/add_feed/:farm_id", handler.AddFeed)

	body, _ := json.Marshal(feedapp.CreateFeedRequest{
		Name:       "Corn Silage",
		FeedTypeID: feedTypeID,
		Unit:       "kg",
	})
	req := httptest.NewRequest(http.MethodPost, "/feeds/add_feed/"+farmID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.feedRepo.AssertExpectations(t)
}

func TestFeedHandler_AddFeed_UnknownFeedType(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()
	feedTypeID := uuid.New()

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.typeRepo.On("FindByIDForFarm", mock.Anything, farmID, feedTypeID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter(ownerID)
	router.POST("/feeds/add_feed/:farm_id", handler.AddFeed)

	body, _ := json.Marshal(feedapp.CreateFeedRequest{
		Name:       "Corn Silage",
		FeedTypeID: feedTypeID,
		Unit:       "kg",
	})
	req := httptest.NewRequest(http.MethodPost, "/feeds/add_feed/"+farmID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mocks.typeRepo.AssertExpectations(t)
}

func TestFeedHandler_EditFeed_Success(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()
	feedID := uuid.New()
	f := createTestFeed(farmID, uuid.New())
	f.ID = feedID

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.feedRepo.On("FindByIDForFarm", mock.Anything, farmID, feedID).Return(f, nil)
	mocks.feedRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.Feed")).Return(nil)

	router := setupTestRouter(ownerID)
	router.POST("/feeds/edit_feed/:id", handler.EditFeed)

	reqBody := EditFeedRequest{
		FarmID: farmID,
		UpdateFeedRequest: feedapp.UpdateFeedRequest{
			Name: "Alfalfa Hay",
			Unit: "kg",
		},
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/feeds/edit_feed/"+feedID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.feedRepo.AssertExpectations(t)
}

func TestFeedHandler_EditFeed_MissingFarmID(t *testing.T) {
	handler, _ := setupFeedHandler()

	router := setupTestRouter(uuid.New())
	router.POST("/feeds/edit_feed/:id", handler.EditFeed)

	body, _ := json.Marshal(feedapp.UpdateFeedRequest{Name: "Alfalfa Hay", Unit: "kg"})
	req := httptest.NewRequest(http.MethodPost, "/feeds/edit_feed/"+uuid.NewString(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedHandler_DeleteFeed_InUse(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()
	feedID := uuid.New()
	f := createTestFeed(farmID, uuid.New())
	f.ID = feedID

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.feedRepo.On("FindByIDForFarm", mock.Anything, farmID, feedID).Return(f, nil)
	mocks.feedRepo.On("CountReferences", mock.Anything, feedID).Return(int64(3), nil)

	router := setupTestRouter(ownerID)
	router.POST("/feeds/delete_feed/:id", handler.DeleteFeed)

	body, _ := json.Marshal(DeleteFeedRequest{FarmID: farmID})
	req := httptest.NewRequest(http.MethodPost, "/feeds/delete_feed/"+feedID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mocks.feedRepo.AssertExpectations(t)
}

func TestFeedHandler_AddPurchase_Success(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()
	feedID := uuid.New()
	f := createTestFeed(farmID, uuid.New())
	f.ID = feedID

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.feedRepo.On("FindByIDForFarm", mock.Anything, farmID, feedID).Return(f, nil)
	mocks.feedRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.Feed")).Return(nil)
	mocks.purchaseRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.FeedPurchase")).Return(nil)

	router := setupTestRouter(ownerID)
	router.POST("/feeds/add_feed_purchase/:farm_id", handler.AddPurchase)

	body, _ := json.Marshal(feedapp.RecordPurchaseRequest{
		FeedID:   feedID,
		Quantity: decimal.NewFromInt(100),
		Cost:     decimal.NewFromInt(250),
	})
	req := httptest.NewRequest(http.MethodPost, "/feeds/add_feed_purchase/"+farmID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.feedRepo.AssertExpectations(t)
	mocks.purchaseRepo.AssertExpectations(t)
}

func TestFeedHandler_DeletePurchase_Success(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()
	feedID := uuid.New()
	f := createTestFeed(farmID, uuid.New())
	f.ID = feedID

	purchase, err := f.RecordPurchase(decimal.NewFromInt(50), valueobject.NewMoneyUSD(decimal.NewFromInt(100)), time.Now(), ownerID)
	assert.NoError(t, err)
	purchaseID := purchase.ID

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.purchaseRepo.On("FindByIDForFarm", mock.Anything, farmID, purchaseID).Return(purchase, nil)
	mocks.feedRepo.On("FindByIDForFarm", mock.Anything, farmID, feedID).Return(f, nil)
	mocks.feedRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.Feed")).Return(nil)
	mocks.purchaseRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.FeedPurchase")).Return(nil)

	router := setupTestRouter(ownerID)
	router.DELETE("/feeds/delete_feed_purchase/:farm_id/:id", handler.DeletePurchase)

	req := httptest.NewRequest(http.MethodDelete, "/feeds/delete_feed_purchase/"+farmID.String()+"/"+purchaseID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.purchaseRepo.AssertExpectations(t)
}

func TestFeedHandler_AddEntry_Success(t *testing.T) {
	handler, mocks := setupFeedHandler()
	ownerID := uuid.New()
	farmID := uuid.New()
	feedID := uuid.New()
	f := createTestFeed(farmID, uuid.New())
	f.ID = feedID

	mocks.farmRepo.On("FindByID", mock.Anything, farmID).Return(createTestFarm(ownerID, farmID), nil)
	mocks.feedRepo.On("FindByIDForFarm", mock.Anything, farmID, feedID).Return(f, nil)
	mocks.feedRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.Feed")).Return(nil)
	mocks.entryRepo.On("Save", mock.Anything, mock.AnythingOfType("*feed.FeedEntry")).Return(nil)

	router := setupTestRouter(ownerID)
	router.POST("/feeds/add_feed_entry/:farm_id", handler.AddEntry)

	body, _ := json.Marshal(feedapp.RecordEntryRequest{
		FeedID:       feedID,
		AnimalTypeID: uuid.New(),
		Quantity:     decimal.NewFromInt(10),
	})
	req := httptest.NewRequest(http.MethodPost, "/feeds/add_feed_entry/"+farmID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.feedRepo.AssertExpectations(t)
	mocks.entryRepo.AssertExpectations(t)
}
