package handler

import (
	farmapp "github.com/farmstead/backend/internal/application/farm"
	financeapp "github.com/farmstead/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FinanceHandler handles transaction, expense and equipment endpoints
type FinanceHandler struct {
	BaseHandler
	service *financeapp.FinanceService
	farms   *farmapp.FarmService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(service *financeapp.FinanceService, farms *farmapp.FarmService) *FinanceHandler {
	return &FinanceHandler{
		service: service,
		farms:   farms,
	}
}

// LinkTransactionRequest links a ledger transaction to a payable record
type LinkTransactionRequest struct {
	FarmID        uuid.UUID `json:"farm_id" binding:"required"`
	TransactionID uuid.UUID `json:"transaction_id" binding:"required"`
}

// EditExpenseRequest carries the farm scope for routes keyed by expense ID only
type EditExpenseRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
	financeapp.UpdateExpenseRequest
}

// FarmScopeRequest identifies the farm a record belongs to
type FarmScopeRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
}

// AddTransaction godoc
// @Summary      Record a ledger transaction
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body financeapp.CreateTransactionRequest true "Transaction request"
// @Success      201 {object} dto.Response{data=financeapp.TransactionResponse}
// @Security     BearerAuth
// @Router       /farms/add_transaction/{farm_id} [post]
func (h *FinanceHandler) AddTransaction(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req financeapp.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateTransaction(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListTransactions godoc
// @Summary      List ledger transactions for a farm
// @Tags         farms
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]financeapp.TransactionResponse}
// @Security     BearerAuth
// @Router       /farms/get_transactions/{farm_id} [get]
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter financeapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transactions, err := h.service.ListTransactions(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, transactions)
}

// AddExpense godoc
// @Summary      Record an expense
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body financeapp.CreateExpenseRequest true "Expense request"
// @Success      201 {object} dto.Response{data=financeapp.ExpenseResponse}
// @Security     BearerAuth
// @Router       /farms/add_expense/{farm_id} [post]
func (h *FinanceHandler) AddExpense(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateExpense(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListExpenses godoc
// @Summary      List expenses for a farm
// @Tags         farms
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]financeapp.ExpenseResponse}
// @Security     BearerAuth
// @Router       /farms/get_expenses/{farm_id} [get]
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter financeapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expenses, err := h.service.ListExpenses(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expenses)
}

// EditExpense godoc
// @Summary      Edit an expense
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID"
// @Param        request body EditExpenseRequest true "Expense update request"
// @Success      200 {object} dto.Response{data=financeapp.ExpenseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/edit_expense/{id} [post]
func (h *FinanceHandler) EditExpense(c *gin.Context) {
	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req EditExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.UpdateExpense(c.Request.Context(), scope.FarmID, expenseID, req.UpdateExpenseRequest)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteExpense godoc
// @Summary      Delete an expense
// @Description  Hard-deletes the expense; linked ledger transactions stay on the books
// @Tags         farms
// @Accept       json
// @Param        id path string true "Expense ID"
// @Param        request body FarmScopeRequest true "Farm scope"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/delete_expense/{id} [post]
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req FarmScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	if err := h.service.DeleteExpense(c.Request.Context(), scope.FarmID, expenseID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddExpenseTransaction godoc
// @Summary      Link a transaction to an expense
// @Description  Links an outgoing ledger transaction and recomputes the payment status
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID"
// @Param        request body LinkTransactionRequest true "Link request"
// @Success      200 {object} dto.Response{data=financeapp.ExpenseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/add_expense_transaction/{id} [post]
func (h *FinanceHandler) AddExpenseTransaction(c *gin.Context) {
	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req LinkTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.AddExpenseTransaction(c.Request.Context(), scope.FarmID, expenseID,
		financeapp.LinkTransactionRequest{TransactionID: req.TransactionID})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RemoveExpenseTransaction godoc
// @Summary      Unlink a transaction from an expense
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID"
// @Param        request body LinkTransactionRequest true "Unlink request"
// @Success      200 {object} dto.Response{data=financeapp.ExpenseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/remove_expense_transaction/{id} [post]
func (h *FinanceHandler) RemoveExpenseTransaction(c *gin.Context) {
	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req LinkTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.RemoveExpenseTransaction(c.Request.Context(), scope.FarmID, expenseID,
		financeapp.LinkTransactionRequest{TransactionID: req.TransactionID})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// AddEquipment godoc
// @Summary      Register equipment
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body financeapp.CreateEquipmentRequest true "Equipment request"
// @Success      201 {object} dto.Response{data=financeapp.EquipmentResponse}
// @Security     BearerAuth
// @Router       /farms/add_equipment/{farm_id} [post]
func (h *FinanceHandler) AddEquipment(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req financeapp.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateEquipment(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListEquipment godoc
// @Summary      List equipment for a farm
// @Tags         farms
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]financeapp.EquipmentResponse}
// @Security     BearerAuth
// @Router       /farms/get_equipment/{farm_id} [get]
func (h *FinanceHandler) ListEquipment(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter financeapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	equipment, err := h.service.ListEquipment(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, equipment)
}

// AddEquipmentPurchase godoc
// @Summary      Record an equipment purchase
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body financeapp.CreateEquipmentPurchaseRequest true "Purchase request"
// @Success      201 {object} dto.Response{data=financeapp.EquipmentPurchaseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/add_equipment_purchase/{farm_id} [post]
func (h *FinanceHandler) AddEquipmentPurchase(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req financeapp.CreateEquipmentPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateEquipmentPurchase(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListEquipmentPurchases godoc
// @Summary      List equipment purchases for a farm
// @Tags         farms
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]financeapp.EquipmentPurchaseResponse}
// @Security     BearerAuth
// @Router       /farms/get_equipment_purchases/{farm_id} [get]
func (h *FinanceHandler) ListEquipmentPurchases(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter financeapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchases, err := h.service.ListEquipmentPurchases(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, purchases)
}

// AddEquipmentPurchaseTransaction godoc
// @Summary      Link a transaction to an equipment purchase
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        id path string true "Equipment purchase ID"
// @Param        request body LinkTransactionRequest true "Link request"
// @Success      200 {object} dto.Response{data=financeapp.EquipmentPurchaseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/add_equipment_purchase_transaction/{id} [post]
func (h *FinanceHandler) AddEquipmentPurchaseTransaction(c *gin.Context) {
	purchaseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req LinkTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.AddEquipmentPurchaseTransaction(c.Request.Context(), scope.FarmID, purchaseID,
		financeapp.LinkTransactionRequest{TransactionID: req.TransactionID})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RemoveEquipmentPurchaseTransaction godoc
// @Summary      Unlink a transaction from an equipment purchase
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        id path string true "Equipment purchase ID"
// @Param        request body LinkTransactionRequest true "Unlink request"
// @Success      200 {object} dto.Response{data=financeapp.EquipmentPurchaseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/remove_equipment_purchase_transaction/{id} [post]
func (h *FinanceHandler) RemoveEquipmentPurchaseTransaction(c *gin.Context) {
	purchaseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req LinkTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.RemoveEquipmentPurchaseTransaction(c.Request.Context(), scope.FarmID, purchaseID,
		financeapp.LinkTransactionRequest{TransactionID: req.TransactionID})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
