package finance

import (
	"context"
	"time"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// FinanceService handles ledger transactions, expenses and equipment
// purchases, including payment reconciliation through transaction links.
type FinanceService struct {
	transactionRepo finance.TransactionRepository
	expenseRepo     finance.ExpenseRepository
	equipmentRepo   finance.EquipmentRepository
	purchaseRepo    finance.EquipmentPurchaseRepository
	eventPublisher  shared.EventPublisher
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(
	transactionRepo finance.TransactionRepository,
	expenseRepo finance.ExpenseRepository,
	equipmentRepo finance.EquipmentRepository,
	purchaseRepo finance.EquipmentPurchaseRepository,
) *FinanceService {
	return &FinanceService{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
		equipmentRepo:   equipmentRepo,
		purchaseRepo:    purchaseRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *FinanceService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *FinanceService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// CreateTransaction records a ledger transaction
func (s *FinanceService) CreateTransaction(ctx context.Context, farmID, userID uuid.UUID, req CreateTransactionRequest) (*TransactionResponse, error) {
	txDate := time.Now()
	if req.TransactionDate != nil {
		txDate = *req.TransactionDate
	}

	tx, err := finance.NewTransaction(farmID, userID, finance.TransactionType(req.TransactionType), valueobject.NewMoneyUSD(req.Amount), txDate, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, tx.GetDomainEvents())
	tx.ClearDomainEvents()

	response := ToTransactionResponse(tx)
	return &response, nil
}

// ListTransactions retrieves a farm's ledger transactions
func (s *FinanceService) ListTransactions(ctx context.Context, farmID uuid.UUID, filter ListFilter) ([]TransactionResponse, error) {
	transactions, err := s.transactionRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToTransactionResponses(transactions), nil
}

// CreateExpense records an expense; a zero-amount expense starts out paid
func (s *FinanceService) CreateExpense(ctx context.Context, farmID, userID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	e, err := finance.NewExpense(farmID, userID, req.Name, req.Category, valueobject.NewMoneyUSD(req.Amount), req.DueDate, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// GetExpense retrieves an expense with its payment state
func (s *FinanceService) GetExpense(ctx context.Context, farmID, expenseID uuid.UUID) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByIDForFarm(ctx, farmID, expenseID)
	if err != nil {
		return nil, err
	}
	response := ToExpenseResponse(e)
	return &response, nil
}

// ListExpenses retrieves a farm's expenses
func (s *FinanceService) ListExpenses(ctx context.Context, farmID uuid.UUID, filter ListFilter) ([]ExpenseResponse, error) {
	expenses, err := s.expenseRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(expenses), nil
}

// UpdateExpense updates an expense and re-derives its payment state
func (s *FinanceService) UpdateExpense(ctx context.Context, farmID, expenseID uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByIDForFarm(ctx, farmID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := e.Update(req.Name, req.Category, valueobject.NewMoneyUSD(req.Amount), req.DueDate, req.Notes); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(e)
	return &response, nil
}

// DeleteExpense removes an expense
func (s *FinanceService) DeleteExpense(ctx context.Context, farmID, expenseID uuid.UUID) error {
	e, err := s.expenseRepo.FindByIDForFarm(ctx, farmID, expenseID)
	if err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, e.ID)
}

// AddExpenseTransaction links a transaction to an expense and reconciles it.
// The transaction must belong to the same farm as the expense.
func (s *FinanceService) AddExpenseTransaction(ctx context.Context, farmID, expenseID uuid.UUID, req LinkTransactionRequest) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByIDForFarm(ctx, farmID, expenseID)
	if err != nil {
		return nil, err
	}

	tx, err := s.transactionRepo.FindByID(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := e.AddTransaction(tx); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, e.GetDomainEvents())
	e.ClearDomainEvents()

	response := ToExpenseResponse(e)
	return &response, nil
}

// RemoveExpenseTransaction unlinks a transaction from an expense and reconciles it
func (s *FinanceService) RemoveExpenseTransaction(ctx context.Context, farmID, expenseID uuid.UUID, req LinkTransactionRequest) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByIDForFarm(ctx, farmID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := e.RemoveTransaction(req.TransactionID); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, e.GetDomainEvents())
	e.ClearDomainEvents()

	response := ToExpenseResponse(e)
	return &response, nil
}

// CreateEquipment registers equipment for a farm
func (s *FinanceService) CreateEquipment(ctx context.Context, farmID, userID uuid.UUID, req CreateEquipmentRequest) (*EquipmentResponse, error) {
	e, err := finance.NewEquipment(farmID, userID, req.Name, req.Description, req.Condition)
	if err != nil {
		return nil, err
	}

	if err := s.equipmentRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	response := ToEquipmentResponse(e)
	return &response, nil
}

// ListEquipment retrieves a farm's equipment
func (s *FinanceService) ListEquipment(ctx context.Context, farmID uuid.UUID, filter ListFilter) ([]EquipmentResponse, error) {
	equipment, err := s.equipmentRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToEquipmentResponses(equipment), nil
}

// CreateEquipmentPurchase records an equipment purchase as a payable document
func (s *FinanceService) CreateEquipmentPurchase(ctx context.Context, farmID, userID uuid.UUID, req CreateEquipmentPurchaseRequest) (*EquipmentPurchaseResponse, error) {
	if _, err := s.equipmentRepo.FindByIDForFarm(ctx, farmID, req.EquipmentID); err != nil {
		return nil, err
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	p, err := finance.NewEquipmentPurchase(farmID, userID, req.EquipmentID, valueobject.NewMoneyUSD(req.TotalCost), purchaseDate, req.DueDate, req.Supplier)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToEquipmentPurchaseResponse(p)
	return &response, nil
}

// ListEquipmentPurchases retrieves a farm's equipment purchases
func (s *FinanceService) ListEquipmentPurchases(ctx context.Context, farmID uuid.UUID, filter ListFilter) ([]EquipmentPurchaseResponse, error) {
	purchases, err := s.purchaseRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToEquipmentPurchaseResponses(purchases), nil
}

// AddEquipmentPurchaseTransaction links a transaction to an equipment purchase
func (s *FinanceService) AddEquipmentPurchaseTransaction(ctx context.Context, farmID, purchaseID uuid.UUID, req LinkTransactionRequest) (*EquipmentPurchaseResponse, error) {
	p, err := s.purchaseRepo.FindByIDForFarm(ctx, farmID, purchaseID)
	if err != nil {
		return nil, err
	}

	tx, err := s.transactionRepo.FindByID(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := p.AddTransaction(tx); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, p.GetDomainEvents())
	p.ClearDomainEvents()

	response := ToEquipmentPurchaseResponse(p)
	return &response, nil
}

// RemoveEquipmentPurchaseTransaction unlinks a transaction from an equipment purchase
func (s *FinanceService) RemoveEquipmentPurchaseTransaction(ctx context.Context, farmID, purchaseID uuid.UUID, req LinkTransactionRequest) (*EquipmentPurchaseResponse, error) {
	p, err := s.purchaseRepo.FindByIDForFarm(ctx, farmID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := p.RemoveTransaction(req.TransactionID); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, p.GetDomainEvents())
	p.ClearDomainEvents()

	response := ToEquipmentPurchaseResponse(p)
	return &response, nil
}

// buildFilter maps the API filter onto the domain filter with defaults applied
func buildFilter(filter ListFilter) shared.Filter {
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

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["payment_status"] = filter.Status
	}
	return domainFilter
}
