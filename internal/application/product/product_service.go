package product

import (
	"context"
	"time"

	"github.com/farmstead/backend/internal/domain/product"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductService handles products, production output and sales
type ProductService struct {
	scope          TransactionScope
	productRepo    product.ProductRepository
	productionRepo product.ProductionRecordRepository
	saleRepo       product.SaleRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	scope TransactionScope,
	productRepo product.ProductRepository,
	productionRepo product.ProductionRecordRepository,
	saleRepo product.SaleRepository,
) *ProductService {
	return &ProductService{
		scope:          scope,
		productRepo:    productRepo,
		productionRepo: productionRepo,
		saleRepo:       saleRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// publishDomainEvents publishes the aggregate's events after a successful commit
func (s *ProductService) publishDomainEvents(ctx context.Context, p *product.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := p.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	p.ClearDomainEvents()
}

// CreateProduct creates a new product with zero inventory
func (s *ProductService) CreateProduct(ctx context.Context, farmID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	p, err := product.NewProduct(farmID, req.Name, req.Description, req.Unit)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// GetProduct retrieves a product by ID within a farm
func (s *ProductService) GetProduct(ctx context.Context, farmID, productID uuid.UUID) (*ProductResponse, error) {
	p, err := s.productRepo.FindByIDForFarm(ctx, farmID, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(p)
	return &response, nil
}

// ListProducts retrieves a farm's products
func (s *ProductService) ListProducts(ctx context.Context, farmID uuid.UUID, filter ProductListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// UpdateProduct updates a product's descriptive fields. Inventory only moves
// through production and sale records.
func (s *ProductService) UpdateProduct(ctx context.Context, farmID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.productRepo.FindByIDForFarm(ctx, farmID, productID)
	if err != nil {
		return nil, err
	}

	if err := p.Update(req.Name, req.Description, req.Unit); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// DeleteProduct removes a product unless production or sale records reference it
func (s *ProductService) DeleteProduct(ctx context.Context, farmID, productID uuid.UUID) error {
	p, err := s.productRepo.FindByIDForFarm(ctx, farmID, productID)
	if err != nil {
		return err
	}

	count, err := s.productRepo.CountReferences(ctx, p.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrInUse
	}

	return s.productRepo.Delete(ctx, p.ID)
}

// RecordProduction records production output: inventory grows, atomically
// with the record row.
func (s *ProductService) RecordProduction(ctx context.Context, farmID, userID uuid.UUID, req RecordProductionRequest) (*ProductionRecordResponse, error) {
	productionDate := time.Now()
	if req.ProductionDate != nil {
		productionDate = *req.ProductionDate
	}

	var p *product.Product
	var record *product.ProductionRecord

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		p, err = repos.ProductRepo().FindByIDForFarm(ctx, farmID, req.ProductID)
		if err != nil {
			return err
		}

		record, err = p.RecordProduction(req.Quantity, productionDate, userID)
		if err != nil {
			return err
		}

		if err := repos.ProductRepo().Save(ctx, p); err != nil {
			return err
		}
		return repos.ProductionRepo().Save(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, p)

	response := ToProductionRecordResponse(record)
	return &response, nil
}

// DeleteProductionRecord reverses a production record: the record is
// soft-deleted and the quantity leaves inventory, atomically.
func (s *ProductService) DeleteProductionRecord(ctx context.Context, farmID, recordID, userID uuid.UUID) error {
	var p *product.Product

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		record, err := repos.ProductionRepo().FindByIDForFarm(ctx, farmID, recordID)
		if err != nil {
			return err
		}

		p, err = repos.ProductRepo().FindByIDForFarm(ctx, farmID, record.ProductID)
		if err != nil {
			return err
		}

		if err := p.ReverseProduction(record, userID); err != nil {
			return err
		}

		if err := repos.ProductRepo().Save(ctx, p); err != nil {
			return err
		}
		return repos.ProductionRepo().Save(ctx, record)
	})
	if err != nil {
		return err
	}

	s.publishDomainEvents(ctx, p)
	return nil
}

// ListProductionRecords retrieves production records for a farm, optionally
// for one product
func (s *ProductService) ListProductionRecords(ctx context.Context, farmID uuid.UUID, filter ProductListFilter) ([]ProductionRecordResponse, error) {
	domainFilter := buildFilter(filter)

	var records []product.ProductionRecord
	var err error
	if filter.ProductID != nil {
		records, err = s.productionRepo.FindByProduct(ctx, *filter.ProductID, domainFilter)
	} else {
		records, err = s.productionRepo.FindAllForFarm(ctx, farmID, domainFilter)
	}
	if err != nil {
		return nil, err
	}
	return ToProductionRecordResponses(records), nil
}

// RecordSale records a sale: inventory shrinks and the total amount is
// snapshotted, atomically with the sale row.
func (s *ProductService) RecordSale(ctx context.Context, farmID, userID uuid.UUID, req RecordSaleRequest) (*SaleResponse, error) {
	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	var p *product.Product
	var sale *product.Sale

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		p, err = repos.ProductRepo().FindByIDForFarm(ctx, farmID, req.ProductID)
		if err != nil {
			return err
		}

		sale, err = p.RecordSale(req.BuyerName, req.Quantity, valueobject.NewMoneyUSD(req.UnitPrice), req.PaymentMethod, req.IsPaid, saleDate, userID)
		if err != nil {
			return err
		}

		if err := repos.ProductRepo().Save(ctx, p); err != nil {
			return err
		}
		return repos.SaleRepo().Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, p)

	response := ToSaleResponse(sale)
	return &response, nil
}

// DeleteSale reverses a sale: the record is soft-deleted and the quantity
// returns to inventory, atomically.
func (s *ProductService) DeleteSale(ctx context.Context, farmID, saleID, userID uuid.UUID) error {
	var p *product.Product

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByIDForFarm(ctx, farmID, saleID)
		if err != nil {
			return err
		}

		p, err = repos.ProductRepo().FindByIDForFarm(ctx, farmID, sale.ProductID)
		if err != nil {
			return err
		}

		if err := p.ReverseSale(sale, userID); err != nil {
			return err
		}

		if err := repos.ProductRepo().Save(ctx, p); err != nil {
			return err
		}
		return repos.SaleRepo().Save(ctx, sale)
	})
	if err != nil {
		return err
	}

	s.publishDomainEvents(ctx, p)
	return nil
}

// ListSales retrieves sales for a farm, optionally for one product
func (s *ProductService) ListSales(ctx context.Context, farmID uuid.UUID, filter ProductListFilter) ([]SaleResponse, error) {
	domainFilter := buildFilter(filter)

	var sales []product.Sale
	var err error
	if filter.ProductID != nil {
		sales, err = s.saleRepo.FindByProduct(ctx, *filter.ProductID, domainFilter)
	} else {
		sales, err = s.saleRepo.FindAllForFarm(ctx, farmID, domainFilter)
	}
	if err != nil {
		return nil, err
	}
	return ToSaleResponses(sales), nil
}

func buildFilter(f ProductListFilter) shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}
	return filter
}
