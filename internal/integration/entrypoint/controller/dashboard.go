package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestao-financeira/backend/internal/application/usecase/dashboard"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	seriesUseCase    *dashboard.GetMonthlySeriesUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	location         *time.Location
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	seriesUseCase *dashboard.GetMonthlySeriesUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	location *time.Location,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		seriesUseCase:    seriesUseCase,
		breakdownUseCase: breakdownUseCase,
		location:         location,
	}
}

// Summary handles GET /dashboard requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// MonthlySeries handles GET /dashboard/monthly-series requests.
func (c *DashboardController) MonthlySeries(ctx *gin.Context) {
	var query dto.DashboardQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "months must be a number",
			Code:  string(domainerror.ErrCodeInvalidMonthCount),
		})
		return
	}

	output, err := c.seriesUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySeriesInput{Months: query.Months})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(output))
}

// CategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	var query dto.FilterQuery
	_ = ctx.ShouldBindQuery(&query)

	from, to, err := query.DateRange(c.location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		DateFrom: from,
		DateTo:   to,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(dshErr.Code), dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidMonthCount:
		return http.StatusBadRequest
	case domainerror.ErrCodeDashboardFetchFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
