// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/analytics"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// AnalyticsController handles read-only reporting endpoints.
type AnalyticsController struct {
	trendsUseCase    *analytics.GetTrendsUseCase
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase
	insightsUseCase  *analytics.GetSpendingInsightsUseCase
	dataRangeUseCase *analytics.GetDataRangeUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	trendsUseCase *analytics.GetTrendsUseCase,
	breakdownUseCase *analytics.GetCategoryBreakdownUseCase,
	insightsUseCase *analytics.GetSpendingInsightsUseCase,
	dataRangeUseCase *analytics.GetDataRangeUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		trendsUseCase:    trendsUseCase,
		breakdownUseCase: breakdownUseCase,
		insightsUseCase:  insightsUseCase,
		dataRangeUseCase: dataRangeUseCase,
	}
}

// Trends handles GET /analytics/trends requests.
func (c *AnalyticsController) Trends(ctx *gin.Context) {
	start, end, ok := parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), analytics.GetTrendsInput{
		StartDate:   start,
		EndDate:     end,
		Granularity: analytics.Granularity(ctx.Query("granularity")),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// DataRange handles GET /analytics/data-range requests.
func (c *AnalyticsController) DataRange(ctx *gin.Context) {
	output, err := c.dataRangeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}

// CategoryBreakdown handles GET /analytics/categories requests.
func (c *AnalyticsController) CategoryBreakdown(ctx *gin.Context) {
	start, end, ok := parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), analytics.GetCategoryBreakdownInput{
		StartDate: start,
		EndDate:   end,
		Type:      entity.TransactionType(ctx.Query("type")),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// Insights handles GET /analytics/insights requests.
func (c *AnalyticsController) Insights(ctx *gin.Context) {
	output, err := c.insightsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSpendingInsightsResponse(output))
}

// parseRange reads start_date and end_date. Missing dates are left zero for the
// use case to reject.
func parseRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	var start, end time.Time
	var err error
	if v := ctx.Query("start_date"); v != "" {
		if start, err = dto.ParseDate(v); err != nil {
			badRequest(ctx, "Invalid start_date")
			return start, end, false
		}
	}
	if v := ctx.Query("end_date"); v != "" {
		if end, err = dto.ParseDate(v); err != nil {
			badRequest(ctx, "Invalid end_date")
			return start, end, false
		}
	}
	return start, end, true
}
