package handler

import (
	farmapp "github.com/farmstead/backend/internal/application/farm"
	reportapp "github.com/farmstead/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves aggregated farm statistics
type ReportHandler struct {
	BaseHandler
	service *reportapp.ReportService
	farms   *farmapp.FarmService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *reportapp.ReportService, farms *farmapp.FarmService) *ReportHandler {
	return &ReportHandler{
		service: service,
		farms:   farms,
	}
}

// GetFarmStatistics godoc
// @Summary      Get aggregated statistics for a farm
// @Description  Returns revenue, cost breakdown, net result and time-bucketed series for the requested period
// @Tags         farms
// @Produce      json
// @Param        farm_id path string true "Farm ID"
// @Param        start_date query string false "Period start (YYYY-MM-DD)"
// @Param        end_date query string false "Period end (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.FarmStatistics}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /farms/get_farm_statistics/{farm_id} [get]
func (h *ReportHandler) GetFarmStatistics(c *gin.Context) {
	scope, ok := resolveFarmScope(c, &h.BaseHandler, h.farms)
	if !ok {
		return
	}

	var req reportapp.StatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stats, err := h.service.GetFarmStatistics(c.Request.Context(), scope.FarmID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
