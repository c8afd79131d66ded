package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/usecase/sale"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	listUseCase         *sale.ListSalesUseCase
	getUseCase          *sale.GetSaleUseCase
	createUseCase       *sale.CreateSaleUseCase
	updateUseCase       *sale.UpdateSaleUseCase
	deleteUseCase       *sale.DeleteSaleUseCase
	monthlyUseCase      *sale.GetMonthlySeriesUseCase
	monthlyUnitsUseCase *sale.GetMonthlyUnitsUseCase
	location            *time.Location
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	listUseCase *sale.ListSalesUseCase,
	getUseCase *sale.GetSaleUseCase,
	createUseCase *sale.CreateSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
	monthlyUseCase *sale.GetMonthlySeriesUseCase,
	monthlyUnitsUseCase *sale.GetMonthlyUnitsUseCase,
	location *time.Location,
) *SaleController {
	return &SaleController{
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		monthlyUseCase:      monthlyUseCase,
		monthlyUnitsUseCase: monthlyUnitsUseCase,
		location:            location,
	}
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	var query dto.FilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeInvalidSaleFilter),
		})
		return
	}

	filter, err := query.ToFilter(c.location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSaleFilter),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{Filter: filter})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output))
}

// Get handles GET /sales/:id requests.
func (c *SaleController) Get(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), sale.GetSaleInput{SaleID: saleID})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleDetailResponse(output.Sale, output.Warnings))
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	fields, ok := c.bindSale(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{SaleFields: fields})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleDetailResponse(output.Sale, output.Warnings))
}

// Update handles PUT /sales/:id requests.
func (c *SaleController) Update(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}
	fields, ok := c.bindSale(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), sale.UpdateSaleInput{
		SaleID:     saleID,
		SaleFields: fields,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleDetailResponse(output.Sale, output.Warnings))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), sale.DeleteSaleInput{SaleID: saleID})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// Monthly handles GET /sales/monthly/:month/:year requests.
func (c *SaleController) Monthly(ctx *gin.Context) {
	input, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"points": dto.ToMonthTotalResponses(output.Points)})
}

// MonthlyUnits handles GET /sales/products/monthly/:month/:year requests.
func (c *SaleController) MonthlyUnits(ctx *gin.Context) {
	input, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyUnitsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"points": dto.ToMonthUnitsResponses(output.Points)})
}

func (c *SaleController) bindSale(ctx *gin.Context) (sale.SaleFields, bool) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSaleRequestBody),
		})
		return sale.SaleFields{}, false
	}

	date, ok := dto.ParseRequestDate(req.Date)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidSaleDate),
		})
		return sale.SaleFields{}, false
	}

	items := make([]sale.ItemInput, len(req.Items))
	for i, item := range req.Items {
		productID, err := uuid.Parse(strings.TrimSpace(item.ProductID))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid product ID format",
				Code:  string(domainerror.ErrCodeSaleProductNotFound),
			})
			return sale.SaleFields{}, false
		}
		items[i] = sale.ItemInput{ProductID: productID, Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}

	return sale.SaleFields{
		Date:          date,
		Payee:         req.Payee,
		Value:         req.Value,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Note:          req.Note,
		Items:         items,
	}, true
}

func (c *SaleController) parseSaleID(ctx *gin.Context) (uuid.UUID, bool) {
	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
			Code:  string(domainerror.ErrCodeInvalidSaleID),
		})
		return uuid.Nil, false
	}
	return saleID, true
}

func (c *SaleController) parsePeriod(ctx *gin.Context) (sale.MonthlySeriesInput, bool) {
	month, monthErr := strconv.Atoi(ctx.Param("month"))
	year, yearErr := strconv.Atoi(ctx.Param("year"))
	if monthErr != nil || yearErr != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Month and year must be numbers",
			Code:  string(domainerror.ErrCodeInvalidSalePeriod),
		})
		return sale.MonthlySeriesInput{}, false
	}
	return sale.MonthlySeriesInput{Month: month, Year: year}, true
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(c.getStatusCodeForSaleError(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSaleWithoutItems,
		domainerror.ErrCodeSaleProductNotFound,
		domainerror.ErrCodeInvalidItemQuantity,
		domainerror.ErrCodeInvalidItemPrice,
		domainerror.ErrCodeInvalidSaleValue,
		domainerror.ErrCodeInvalidSalePayment,
		domainerror.ErrCodeInvalidSaleStatus,
		domainerror.ErrCodeInvalidSaleDate,
		domainerror.ErrCodeInvalidSalePeriod,
		domainerror.ErrCodeInvalidSaleFilter,
		domainerror.ErrCodeInvalidSaleID,
		domainerror.ErrCodeInvalidSaleRequestBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
