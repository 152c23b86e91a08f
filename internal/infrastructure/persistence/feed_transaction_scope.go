package persistence

import (
	"context"

	appfeed "github.com/farmstead/backend/internal/application/feed"
	"github.com/farmstead/backend/internal/domain/feed"
	"gorm.io/gorm"
)

// GormFeedTransactionScope implements the feed TransactionScope using GORM
// transactions. A purchase or consumption touches the feed row and a record
// row; both writes commit or roll back together.
type GormFeedTransactionScope struct {
	db *gorm.DB
}

// NewGormFeedTransactionScope creates a new GormFeedTransactionScope
func NewGormFeedTransactionScope(db *gorm.DB) *GormFeedTransactionScope {
	return &GormFeedTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormFeedTransactionScope) Execute(ctx context.Context, fn func(repos appfeed.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormFeedTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormFeedTransactionalRepositories provides feed repositories bound to one transaction.
type gormFeedTransactionalRepositories struct {
	tx *gorm.DB
}

// FeedRepo returns the feed repository scoped to the current transaction
func (r *gormFeedTransactionalRepositories) FeedRepo() feed.FeedRepository {
	return NewGormFeedRepository(r.tx)
}

// PurchaseRepo returns the purchase repository scoped to the current transaction
func (r *gormFeedTransactionalRepositories) PurchaseRepo() feed.FeedPurchaseRepository {
	return NewGormFeedPurchaseRepository(r.tx)
}

// EntryRepo returns the entry repository scoped to the current transaction
func (r *gormFeedTransactionalRepositories) EntryRepo() feed.FeedEntryRepository {
	return NewGormFeedEntryRepository(r.tx)
}

var _ appfeed.TransactionScope = (*GormFeedTransactionScope)(nil)
var _ appfeed.TransactionalRepositories = (*gormFeedTransactionalRepositories)(nil)
