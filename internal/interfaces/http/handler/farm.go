package handler

import (
	farmapp "github.com/farmstead/backend/internal/application/farm"
	"github.com/gin-gonic/gin"
)

// FarmHandler handles farm management API endpoints
type FarmHandler struct {
	BaseHandler
	service *farmapp.FarmService
}

// NewFarmHandler creates a new FarmHandler
func NewFarmHandler(service *farmapp.FarmService) *FarmHandler {
	return &FarmHandler{
		service: service,
	}
}

// Create godoc
// @Summary      Create a farm
// @Description  Creates a farm owned by the authenticated user
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        request body farmapp.CreateFarmRequest true "Farm creation request"
// @Success      201 {object} dto.Response{data=farmapp.FarmResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/create_farm [post]
func (h *FarmHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req farmapp.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateFarm(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List godoc
// @Summary      List farms
// @Description  Lists the farms owned by the authenticated user
// @Tags         farms
// @Produce      json
// @Success      200 {object} dto.Response{data=[]farmapp.FarmResponse}
// @Security     BearerAuth
// @Router       /farms/get_farms [get]
func (h *FarmHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter farmapp.FarmListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	farms, err := h.service.ListFarms(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, farms)
}

// Get godoc
// @Summary      Get a farm
// @Tags         farms
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=farmapp.FarmResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/get_farm/{farm_id} [get]
func (h *FarmHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID")
		return
	}

	resp, err := h.service.GetFarm(c.Request.Context(), userID, farmID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @Summary      Edit a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body farmapp.UpdateFarmRequest true "Farm update request"
// @Success      200 {object} dto.Response{data=farmapp.FarmResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/edit_farm/{farm_id} [post]
func (h *FarmHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID")
		return
	}

	var req farmapp.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateFarm(c.Request.Context(), userID, farmID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a farm
// @Tags         farms
// @Param        farm_id path string true "Farm ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/delete_farm/{farm_id} [post]
func (h *FarmHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID")
		return
	}

	if err := h.service.DeleteFarm(c.Request.Context(), userID, farmID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
