package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestao-financeira/backend/internal/application/usecase/category"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/dto"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles expense category preference endpoints.
type CategoryController struct {
	getUseCase  *category.GetPreferencesUseCase
	saveUseCase *category.SavePreferencesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	getUseCase *category.GetPreferencesUseCase,
	saveUseCase *category.SavePreferencesUseCase,
) *CategoryController {
	return &CategoryController{
		getUseCase:  getUseCase,
		saveUseCase: saveUseCase,
	}
}

// Get handles GET /expense-categories requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetPreferencesInput{UserID: userID})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryPreferencesResponse{
		Categories: output.Categories,
		IsDefault:  output.IsDefault,
	})
}

// Save handles PUT /expense-categories requests.
func (c *CategoryController) Save(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CategoryPreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidCategoryRequestBody),
		})
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), category.SavePreferencesInput{
		UserID:     userID,
		Categories: req.Categories,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryPreferencesResponse{Categories: output.Categories})
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyCategoryList,
		domainerror.ErrCodeTooManyCategories,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidCategoryRequestBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
