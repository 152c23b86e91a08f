package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	farmapp "github.com/farmstead/backend/internal/application/farm"
	feedapp "github.com/farmstead/backend/internal/application/feed"
	financeapp "github.com/farmstead/backend/internal/application/finance"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/infrastructure/persistence"
)

// TestFarmIsolation verifies that farm-scoped lookups never cross farm
// boundaries, even for records that exist under another farm.
func TestFarmIsolation(t *testing.T) {
	db := NewTestDB(t)
	feedSvc := newFeedService(db)
	financeSvc := newFinanceService(db)
	ctx := context.Background()

	aliceID := uuid.New()
	bobID := uuid.New()
	aliceFarm := db.CreateTestFarm(aliceID)
	bobFarm := db.CreateTestFarm(bobID)

	feedType, err := feedSvc.CreateFeedType(ctx, aliceFarm, aliceID, feedapp.CreateFeedTypeRequest{Name: "Grain"})
	require.NoError(t, err)

	f, err := feedSvc.CreateFeed(ctx, aliceFarm, feedapp.CreateFeedRequest{
		Name:       "Corn",
		FeedTypeID: feedType.ID,
		Unit:       "kg",
	})
	require.NoError(t, err)

	// Bob's farm cannot see Alice's feed
	_, err = feedSvc.GetFeed(ctx, bobFarm, f.ID)
	require.ErrorIs(t, err, shared.ErrNotFound)

	feeds, err := feedSvc.ListFeeds(ctx, bobFarm, feedapp.FeedListFilter{})
	require.NoError(t, err)
	assert.Empty(t, feeds)

	// Alice's feed type does not resolve when creating a feed under Bob's farm
	_, err = feedSvc.CreateFeed(ctx, bobFarm, feedapp.CreateFeedRequest{
		Name:       "Borrowed Corn",
		FeedTypeID: feedType.ID,
		Unit:       "kg",
	})
	require.ErrorIs(t, err, shared.ErrNotFound)

	// A transaction from another farm cannot settle an expense
	expense, err := financeSvc.CreateExpense(ctx, aliceFarm, aliceID, financeapp.CreateExpenseRequest{
		Name:   "Seed",
		Amount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	foreignPayment, err := financeSvc.CreateTransaction(ctx, bobFarm, bobID, financeapp.CreateTransactionRequest{
		TransactionType: "outgoing",
		Amount:          decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = financeSvc.AddExpenseTransaction(ctx, aliceFarm, expense.ID, financeapp.LinkTransactionRequest{
		TransactionID: foreignPayment.ID,
	})
	require.ErrorIs(t, err, shared.ErrFarmMismatch)
}

func TestFarmAuthorize(t *testing.T) {
	db := NewTestDB(t)
	farmSvc := farmapp.NewFarmService(persistence.NewGormFarmRepository(db.DB))
	ctx := context.Background()

	ownerID := uuid.New()
	strangerID := uuid.New()
	farmID := db.CreateTestFarm(ownerID)

	require.NoError(t, farmSvc.Authorize(ctx, ownerID, farmID))

	err := farmSvc.Authorize(ctx, strangerID, farmID)
	require.ErrorIs(t, err, shared.ErrForbidden)

	err = farmSvc.Authorize(ctx, ownerID, uuid.New())
	require.ErrorIs(t, err, shared.ErrNotFound)
}
