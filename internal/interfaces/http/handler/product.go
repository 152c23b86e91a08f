package handler

import (
	farmapp "github.com/farmstead/backend/internal/application/farm"
	productapp "github.com/farmstead/backend/internal/application/product"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles product, production record and sale endpoints
type ProductHandler struct {
	BaseHandler
	service *productapp.ProductService
	farms   *farmapp.FarmService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *productapp.ProductService, farms *farmapp.FarmService) *ProductHandler {
	return &ProductHandler{
		service: service,
		farms:   farms,
	}
}

// EditProductRequest carries the farm scope for routes keyed by product ID only
type EditProductRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
	productapp.UpdateProductRequest
}

// ListProducts godoc
// @Summary      List products for a farm
// @Tags         products
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]productapp.ProductResponse}
// @Security     BearerAuth
// @Router       /products/get_products/{farm_id} [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter productapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.service.ListProducts(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// AddProduct godoc
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body productapp.CreateProductRequest true "Product creation request"
// @Success      201 {object} dto.Response{data=productapp.ProductResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/add_product/{farm_id} [post]
func (h *ProductHandler) AddProduct(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req productapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateProduct(c.Request.Context(), scope.FarmID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// EditProduct godoc
// @Summary      Edit a product's descriptive fields
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body EditProductRequest true "Product update request"
// @Success      200 {object} dto.Response{data=productapp.ProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/edit_product/{id} [post]
func (h *ProductHandler) EditProduct(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req EditProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.UpdateProduct(c.Request.Context(), scope.FarmID, productID, req.UpdateProductRequest)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Description  Fails while production records or sales still reference the product
// @Tags         products
// @Accept       json
// @Param        id path string true "Product ID"
// @Param        request body FarmScopeRequest true "Farm scope"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/delete_product/{id} [post]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
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

	if err := h.service.DeleteProduct(c.Request.Context(), scope.FarmID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListProductionRecords godoc
// @Summary      List production records for a farm
// @Tags         products
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]productapp.ProductionRecordResponse}
// @Security     BearerAuth
// @Router       /products/get_production_records/{farm_id} [get]
func (h *ProductHandler) ListProductionRecords(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter productapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	records, err := h.service.ListProductionRecords(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// AddProductionRecord godoc
// @Summary      Record production output
// @Description  Adds the produced quantity to the product's inventory
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body productapp.RecordProductionRequest true "Production request"
// @Success      201 {object} dto.Response{data=productapp.ProductionRecordResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/add_production_record/{farm_id} [post]
func (h *ProductHandler) AddProductionRecord(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req productapp.RecordProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.RecordProduction(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// DeleteProductionRecord godoc
// @Summary      Soft-delete a production record
// @Description  Marks the record deleted and removes its quantity from inventory
// @Tags         products
// @Param        farm_id path string true "Farm ID"
// @Param        id path string true "Production record ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/delete_production_record/{farm_id}/{id} [delete]
func (h *ProductHandler) DeleteProductionRecord(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	recordID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	if err := h.service.DeleteProductionRecord(c.Request.Context(), scope.FarmID, recordID, scope.UserID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListSales godoc
// @Summary      List product sales for a farm
// @Tags         products
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]productapp.SaleResponse}
// @Security     BearerAuth
// @Router       /products/get_product_sales/{farm_id} [get]
func (h *ProductHandler) ListSales(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter productapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sales, err := h.service.ListSales(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}

// AddSale godoc
// @Summary      Record a product sale
// @Description  Draws down the product's inventory and records the sale amount
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body productapp.RecordSaleRequest true "Sale request"
// @Success      201 {object} dto.Response{data=productapp.SaleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/add_product_sale/{farm_id} [post]
func (h *ProductHandler) AddSale(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req productapp.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.RecordSale(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// DeleteSale godoc
// @Summary      Soft-delete a product sale
// @Description  Marks the sale deleted and returns the quantity to inventory
// @Tags         products
// @Param        farm_id path string true "Farm ID"
// @Param        id path string true "Sale ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/delete_product_sale/{farm_id}/{id} [delete]
func (h *ProductHandler) DeleteSale(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	saleID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.service.DeleteSale(c.Request.Context(), scope.FarmID, saleID, scope.UserID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
