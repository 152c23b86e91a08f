package handler

import (
	farmapp "github.com/farmstead/backend/internal/application/farm"
	healthapp "github.com/farmstead/backend/internal/application/health"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TreatmentHandler handles animal treatment endpoints
type TreatmentHandler struct {
	BaseHandler
	service *healthapp.HealthService
	farms   *farmapp.FarmService
}

// NewTreatmentHandler creates a new TreatmentHandler
func NewTreatmentHandler(service *healthapp.HealthService, farms *farmapp.FarmService) *TreatmentHandler {
	return &TreatmentHandler{
		service: service,
		farms:   farms,
	}
}

// EditTreatmentRequest carries the farm scope for routes keyed by treatment ID only
type EditTreatmentRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
	healthapp.UpdateTreatmentRequest
}

// AddTreatment godoc
// @Summary      Record an animal treatment
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body healthapp.CreateTreatmentRequest true "Treatment request"
// @Success      201 {object} dto.Response{data=healthapp.TreatmentResponse}
// @Security     BearerAuth
// @Router       /health/add_treatment/{farm_id} [post]
func (h *TreatmentHandler) AddTreatment(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req healthapp.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateTreatment(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListTreatments godoc
// @Summary      List treatments for a farm
// @Tags         health
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]healthapp.TreatmentResponse}
// @Security     BearerAuth
// @Router       /health/get_treatments/{farm_id} [get]
func (h *TreatmentHandler) ListTreatments(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter healthapp.TreatmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	treatments, err := h.service.ListTreatments(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, treatments)
}

// EditTreatment godoc
// @Summary      Edit a treatment
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Treatment ID"
// @Param        request body EditTreatmentRequest true "Treatment update request"
// @Success      200 {object} dto.Response{data=healthapp.TreatmentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /health/edit_treatment/{id} [post]
func (h *TreatmentHandler) EditTreatment(c *gin.Context) {
	treatmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID")
		return
	}

	var req EditTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.UpdateTreatment(c.Request.Context(), scope.FarmID, treatmentID, req.UpdateTreatmentRequest)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteTreatment godoc
// @Summary      Delete a treatment
// @Description  Hard-deletes the treatment; linked ledger transactions stay on the books
// @Tags         health
// @Accept       json
// @Param        id path string true "Treatment ID"
// @Param        request body FarmScopeRequest true "Farm scope"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /health/delete_treatment/{id} [post]
func (h *TreatmentHandler) DeleteTreatment(c *gin.Context) {
	treatmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID")
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

	if err := h.service.DeleteTreatment(c.Request.Context(), scope.FarmID, treatmentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddTreatmentTransaction godoc
// @Summary      Link a transaction to a treatment
// @Description  Links an outgoing ledger transaction and recomputes the payment status
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Treatment ID"
// @Param        request body LinkTransactionRequest true "Link request"
// @Success      200 {object} dto.Response{data=healthapp.TreatmentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /health/add_treatment_transaction/{id} [post]
func (h *TreatmentHandler) AddTreatmentTransaction(c *gin.Context) {
	treatmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID")
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

	resp, err := h.service.AddTreatmentTransaction(c.Request.Context(), scope.FarmID, treatmentID, req.TransactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RemoveTreatmentTransaction godoc
// @Summary      Unlink a transaction from a treatment
// @Tags         health
// @Accept       json
// @Produce      json
// @Param        id path string true "Treatment ID"
// @Param        request body LinkTransactionRequest true "Unlink request"
// @Success      200 {object} dto.Response{data=healthapp.TreatmentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /health/remove_treatment_transaction/{id} [post]
func (h *TreatmentHandler) RemoveTreatmentTransaction(c *gin.Context) {
	treatmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID")
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

	resp, err := h.service.RemoveTreatmentTransaction(c.Request.Context(), scope.FarmID, treatmentID, req.TransactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
