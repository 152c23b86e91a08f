package persistence

import (
	"context"

	appproduct "github.com/farmstead/backend/internal/application/product"
	"github.com/farmstead/backend/internal/domain/product"
	"gorm.io/gorm"
)

// GormProductTransactionScope implements the product TransactionScope using
// GORM transactions. Production, sale and reversal recording mutate a product
// row plus a record row; both writes commit or roll back together.
type GormProductTransactionScope struct {
	db *gorm.DB
}

// NewGormProductTransactionScope creates a new GormProductTransactionScope
func NewGormProductTransactionScope(db *gorm.DB) *GormProductTransactionScope {
	return &GormProductTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormProductTransactionScope) Execute(ctx context.Context, fn func(repos appproduct.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormProductTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormProductTransactionalRepositories provides product repositories bound to one transaction.
type gormProductTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormProductTransactionalRepositories) ProductRepo() product.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// ProductionRepo returns the production record repository scoped to the current transaction
func (r *gormProductTransactionalRepositories) ProductionRepo() product.ProductionRecordRepository {
	return NewGormProductionRecordRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormProductTransactionalRepositories) SaleRepo() product.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var _ appproduct.TransactionScope = (*GormProductTransactionScope)(nil)
var _ appproduct.TransactionalRepositories = (*gormProductTransactionalRepositories)(nil)
