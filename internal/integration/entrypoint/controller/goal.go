package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/usecase/goal"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/dto"
)

// GoalController handles monthly goal endpoints.
type GoalController struct {
	getUseCase    *goal.GetGoalUseCase
	upsertUseCase *goal.UpsertGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(getUseCase *goal.GetGoalUseCase, upsertUseCase *goal.UpsertGoalUseCase) *GoalController {
	return &GoalController{
		getUseCase:    getUseCase,
		upsertUseCase: upsertUseCase,
	}
}

// Get handles GET /goals/:month/:year requests.
func (c *GoalController) Get(ctx *gin.Context) {
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Month must be a number",
			Code:  string(domainerror.ErrCodeInvalidGoalMonth),
		})
		return
	}
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Year must be a number",
			Code:  string(domainerror.ErrCodeInvalidGoalYear),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{Month: month, Year: year})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Upsert handles POST /goals requests.
func (c *GoalController) Upsert(ctx *gin.Context) {
	var req dto.UpsertGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidGoalRequestBody),
		})
		return
	}

	salesTarget := decimal.Zero
	if req.SalesTarget != nil {
		salesTarget = *req.SalesTarget
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), goal.UpsertGoalInput{
		Month:       req.Month,
		Year:        req.Year,
		SalesTarget: salesTarget,
		UnitsTarget: req.UnitsTarget,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidGoalMonth,
		domainerror.ErrCodeInvalidGoalYear,
		domainerror.ErrCodeInvalidGoalTarget,
		domainerror.ErrCodeInvalidGoalRequestBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
