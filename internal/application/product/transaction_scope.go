package product

import (
	"context"

	"github.com/farmstead/backend/internal/domain/product"
)

// TransactionScope provides transactional access to the product repositories.
// Recording or reversing production and sales mutates a Product row plus a
// record row; both writes must commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the product repositories within
// a transaction. All repositories returned share the same database transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() product.ProductRepository
	// ProductionRepo returns the production record repository scoped to the current transaction
	ProductionRepo() product.ProductionRecordRepository
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() product.SaleRepository
}

// NoOpTransactionScope runs the function without a real transaction. Useful in
// tests and wherever atomicity is provided elsewhere.
type NoOpTransactionScope struct {
	productRepo    product.ProductRepository
	productionRepo product.ProductionRecordRepository
	saleRepo       product.SaleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	productRepo product.ProductRepository,
	productionRepo product.ProductionRecordRepository,
	saleRepo product.SaleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:    productRepo,
		productionRepo: productionRepo,
		saleRepo:       saleRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() product.ProductRepository {
	return s.productRepo
}

// ProductionRepo returns the production record repository
func (s *NoOpTransactionScope) ProductionRepo() product.ProductionRecordRepository {
	return s.productionRepo
}

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() product.SaleRepository {
	return s.saleRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
