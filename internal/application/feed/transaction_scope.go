package feed

import (
	"context"

	"github.com/farmstead/backend/internal/domain/feed"
)

// TransactionScope provides transactional access to the feed repositories.
// Purchase, consumption and reversal recording mutate a Feed row plus a record
// row; both writes must commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the feed repositories within a
// transaction. All repositories returned share the same database transaction.
type TransactionalRepositories interface {
	// FeedRepo returns the feed repository scoped to the current transaction
	FeedRepo() feed.FeedRepository
	// PurchaseRepo returns the purchase repository scoped to the current transaction
	PurchaseRepo() feed.FeedPurchaseRepository
	// EntryRepo returns the entry repository scoped to the current transaction
	EntryRepo() feed.FeedEntryRepository
}

// NoOpTransactionScope runs the function without a real transaction. Useful in
// tests and wherever atomicity is provided elsewhere.
type NoOpTransactionScope struct {
	feedRepo     feed.FeedRepository
	purchaseRepo feed.FeedPurchaseRepository
	entryRepo    feed.FeedEntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	feedRepo feed.FeedRepository,
	purchaseRepo feed.FeedPurchaseRepository,
	entryRepo feed.FeedEntryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		feedRepo:     feedRepo,
		purchaseRepo: purchaseRepo,
		entryRepo:    entryRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// FeedRepo returns the feed repository
func (s *NoOpTransactionScope) FeedRepo() feed.FeedRepository {
	return s.feedRepo
}

// PurchaseRepo returns the purchase repository
func (s *NoOpTransactionScope) PurchaseRepo() feed.FeedPurchaseRepository {
	return s.purchaseRepo
}

// EntryRepo returns the entry repository
func (s *NoOpTransactionScope) EntryRepo() feed.FeedEntryRepository {
	return s.entryRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
