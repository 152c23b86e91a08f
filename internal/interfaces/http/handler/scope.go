package handler

import (
	farmapp "github.com/farmstead/backend/internal/application/farm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// farmScope identifies the authenticated user and the farm a request targets.
type farmScope struct {
	UserID uuid.UUID
	FarmID uuid.UUID
}

// resolveFarmScope extracts the user from JWT claims and the farm from the
// :farm_id route parameter, then verifies the user owns the farm. When ok is
// false the error response has already been written.
func resolveFarmScope(c *gin.Context, h *BaseHandler, farms *farmapp.FarmService) (farmScope, bool) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return farmScope{}, false
	}

	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID")
		return farmScope{}, false
	}

	if err := farms.Authorize(c.Request.Context(), userID, farmID); err != nil {
		h.HandleError(c, err)
		return farmScope{}, false
	}

	return farmScope{UserID: userID, FarmID: farmID}, true
}

// resolveBodyFarmScope is resolveFarmScope for routes that carry the farm ID
// in the request body instead of the path.
func resolveBodyFarmScope(c *gin.Context, h *BaseHandler, farms *farmapp.FarmService, farmID uuid.UUID) (farmScope, bool) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return farmScope{}, false
	}

	if farmID == uuid.Nil {
		h.BadRequest(c, "Invalid farm ID")
		return farmScope{}, false
	}

	if err := farms.Authorize(c.Request.Context(), userID, farmID); err != nil {
		h.HandleError(c, err)
		return farmScope{}, false
	}

	return farmScope{UserID: userID, FarmID: farmID}, true
}

// parseUUIDParam parses a UUID route parameter by name.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
