package handler

import (
	farmapp "github.com/farmstead/backend/internal/application/farm"
	feedapp "github.com/farmstead/backend/internal/application/feed"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedHandler handles feed, feed type, purchase and consumption endpoints
type FeedHandler struct {
	BaseHandler
	service *feedapp.FeedService
	farms   *farmapp.FarmService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(service *feedapp.FeedService, farms *farmapp.FarmService) *FeedHandler {
	return &FeedHandler{
		service: service,
		farms:   farms,
	}
}

// EditFeedRequest carries the farm scope for routes keyed by feed ID only
type EditFeedRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
	feedapp.UpdateFeedRequest
}

// DeleteFeedRequest identifies the farm a feed belongs to
type DeleteFeedRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
}

// EditFeedTypeRequest carries the farm scope for feed type edits
type EditFeedTypeRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
	feedapp.UpdateFeedTypeRequest
}

// ListFeeds godoc
// @Summary      List feeds for a farm
// @Tags         feeds
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]feedapp.FeedResponse}
// @Security     BearerAuth
// @Router       /feeds/get_feeds/{farm_id} [get]
func (h *FeedHandler) ListFeeds(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter feedapp.FeedListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	feeds, err := h.service.ListFeeds(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, feeds)
}

// AddFeed godoc
// @Summary      Create a feed
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body feedapp.CreateFeedRequest true "Feed creation request"
// @Success      201 {object} dto.Response{data=feedapp.FeedResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/add_feed/{farm_id} [post]
func (h *FeedHandler) AddFeed(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req feedapp.CreateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateFeed(c.Request.Context(), scope.FarmID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// EditFeed godoc
// @Summary      Edit a feed's descriptive fields
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        id path string true "Feed ID"
// @Param        request body EditFeedRequest true "Feed update request"
// @Success      200 {object} dto.Response{data=feedapp.FeedResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/edit_feed/{id} [post]
func (h *FeedHandler) EditFeed(c *gin.Context) {
	feedID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid feed ID")
		return
	}

	var req EditFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.UpdateFeed(c.Request.Context(), scope.FarmID, feedID, req.UpdateFeedRequest)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteFeed godoc
// @Summary      Delete a feed
// @Description  Fails while purchases or consumption entries still reference the feed
// @Tags         feeds
// @Accept       json
// @Param        id path string true "Feed ID"
// @Param        request body DeleteFeedRequest true "Farm scope"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/delete_feed/{id} [post]
func (h *FeedHandler) DeleteFeed(c *gin.Context) {
	feedID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid feed ID")
		return
	}

	var req DeleteFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	if err := h.service.DeleteFeed(c.Request.Context(), scope.FarmID, feedID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListFeedTypes godoc
// @Summary      List feed types for a farm
// @Tags         feeds
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]feedapp.FeedTypeResponse}
// @Security     BearerAuth
// @Router       /feeds/get_feed_types/{farm_id} [get]
func (h *FeedHandler) ListFeedTypes(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter feedapp.FeedListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	types, err := h.service.ListFeedTypes(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// AddFeedType godoc
// @Summary      Create a feed type
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body feedapp.CreateFeedTypeRequest true "Feed type creation request"
// @Success      201 {object} dto.Response{data=feedapp.FeedTypeResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/add_feed_type/{farm_id} [post]
func (h *FeedHandler) AddFeedType(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req feedapp.CreateFeedTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateFeedType(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// EditFeedType godoc
// @Summary      Rename a feed type
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        id path string true "Feed type ID"
// @Param        request body EditFeedTypeRequest true "Feed type update request"
// @Success      200 {object} dto.Response{data=feedapp.FeedTypeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/edit_feed_type/{id} [post]
func (h *FeedHandler) EditFeedType(c *gin.Context) {
	typeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid feed type ID")
		return
	}

	var req EditFeedTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	resp, err := h.service.UpdateFeedType(c.Request.Context(), scope.FarmID, typeID, req.UpdateFeedTypeRequest)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteFeedType godoc
// @Summary      Delete a feed type
// @Description  Fails while feeds still reference the type
// @Tags         feeds
// @Accept       json
// @Param        id path string true "Feed type ID"
// @Param        request body DeleteFeedRequest true "Farm scope"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/delete_feed_type/{id} [post]
func (h *FeedHandler) DeleteFeedType(c *gin.Context) {
	typeID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid feed type ID")
		return
	}

	var req DeleteFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scope, ok := resolveBodyFarmScope(c, &h.BaseHandler, h.farms, req.FarmID)
	if !ok {
		return
	}

	if err := h.service.DeleteFeedType(c.Request.Context(), scope.FarmID, typeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListPurchases godoc
// @Summary      List feed purchases for a farm
// @Tags         feeds
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]feedapp.FeedPurchaseResponse}
// @Security     BearerAuth
// @Router       /feeds/get_feed_purchases/{farm_id} [get]
func (h *FeedHandler) ListPurchases(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter feedapp.FeedListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchases, err := h.service.ListPurchases(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, purchases)
}

// AddPurchase godoc
// @Summary      Record a feed purchase
// @Description  Restocks the feed and folds the purchase into its weighted-average cost
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body feedapp.RecordPurchaseRequest true "Purchase request"
// @Success      201 {object} dto.Response{data=feedapp.FeedPurchaseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/add_feed_purchase/{farm_id} [post]
func (h *FeedHandler) AddPurchase(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req feedapp.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.RecordPurchase(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// DeletePurchase godoc
// @Summary      Soft-delete a feed purchase
// @Description  Marks the purchase deleted and reverses its inventory and cost effect
// @Tags         feeds
// @Param        farm_id path string true "Farm ID"
// @Param        id path string true "Purchase ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/delete_feed_purchase/{farm_id}/{id} [delete]
func (h *FeedHandler) DeletePurchase(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	purchaseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.service.DeletePurchase(c.Request.Context(), scope.FarmID, purchaseID, scope.UserID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListEntries godoc
// @Summary      List feed consumption entries for a farm
// @Tags         feeds
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Success      200 {object} dto.Response{data=[]feedapp.FeedEntryResponse}
// @Security     BearerAuth
// @Router       /feeds/get_feed_entries/{farm_id} [get]
func (h *FeedHandler) ListEntries(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var filter feedapp.FeedListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entries, err := h.service.ListEntries(c.Request.Context(), scope.FarmID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// AddEntry godoc
// @Summary      Record feed consumption
// @Description  Draws down inventory and snapshots the cost per unit into the entry
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        request body feedapp.RecordEntryRequest true "Consumption request"
// @Success      201 {object} dto.Response{data=feedapp.FeedEntryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/add_feed_entry/{farm_id} [post]
func (h *FeedHandler) AddEntry(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req feedapp.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.RecordEntry(c.Request.Context(), scope.FarmID, scope.UserID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// DeleteEntry godoc
// @Summary      Soft-delete a feed consumption entry
// @Description  Marks the entry deleted and returns the quantity to inventory
// @Tags         feeds
// @Param        farm_id path string true "Farm ID"
// @Param        id path string true "Entry ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feeds/delete_feed_entry/{farm_id}/{id} [delete]
func (h *FeedHandler) DeleteEntry(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	entryID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), scope.FarmID, entryID, scope.UserID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
