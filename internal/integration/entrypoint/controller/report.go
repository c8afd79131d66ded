package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestao-financeira/backend/internal/application/usecase/report"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/dto"
	"github.com/gestao-financeira/backend/internal/integration/export"
)

// ReportController handles report preview and export endpoints.
type ReportController struct {
	previewUseCase *report.PreviewReportUseCase
	exportUseCase  *report.ExportReportUseCase
	location       *time.Location
}

// NewReportController creates a new report controller instance.
func NewReportController(
	previewUseCase *report.PreviewReportUseCase,
	exportUseCase *report.ExportReportUseCase,
	location *time.Location,
) *ReportController {
	return &ReportController{
		previewUseCase: previewUseCase,
		exportUseCase:  exportUseCase,
		location:       location,
	}
}

// Preview handles GET /reports/:type/preview requests.
func (c *ReportController) Preview(ctx *gin.Context) {
	reportType, query, ok := c.parseRequest(ctx)
	if !ok {
		return
	}
	filter, ok := c.parseFilter(ctx, query)
	if !ok {
		return
	}

	bundle, err := c.previewUseCase.Execute(ctx.Request.Context(), report.PreviewReportInput{
		Type:   reportType,
		Filter: filter,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportPreviewResponse(bundle))
}

// Export handles GET /reports/:type/export requests. The file is sent as an
// attachment named {type}_{YYYY-MM-DD}.{ext}.
func (c *ReportController) Export(ctx *gin.Context) {
	reportType, query, ok := c.parseRequest(ctx)
	if !ok {
		return
	}

	rawFormat := query.Format
	if rawFormat == "" {
		rawFormat = string(entity.ReportFormatPDF)
	}
	format, err := report.ParseFormat(rawFormat)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	filter, ok := c.parseFilter(ctx, query)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		Type:   reportType,
		Format: format,
		Filter: filter,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	filename := export.Filename(output.Type, output.Format, output.GeneratedAt)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Header("Content-Length", strconv.Itoa(len(output.Data)))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

func (c *ReportController) parseRequest(ctx *gin.Context) (entity.ReportType, dto.ReportQuery, bool) {
	var query dto.ReportQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeInvalidReportFilter),
		})
		return "", query, false
	}

	reportType, err := report.ParseType(ctx.Param("type"))
	if err != nil {
		c.handleReportError(ctx, err)
		return "", query, false
	}
	return reportType, query, true
}

func (c *ReportController) parseFilter(ctx *gin.Context, query dto.ReportQuery) (aggregation.Filter, bool) {
	filter, err := query.ToFilter(c.location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidReportFilter),
		})
		return filter, false
	}
	return filter, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(c.getStatusCodeForReportError(rptErr.Code), dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportType,
		domainerror.ErrCodeInvalidReportFormat,
		domainerror.ErrCodeInvalidReportFilter:
		return http.StatusBadRequest
	case domainerror.ErrCodeReportFetchFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
