package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestao-financeira/backend/internal/application/usecase/settings"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/integration/entrypoint/dto"
)

// logoFormField is the multipart field carrying the logo file.
const logoFormField = "logo"

// SettingsController handles company settings endpoints.
type SettingsController struct {
	getUseCase        *settings.GetSettingsUseCase
	updateUseCase     *settings.UpdateSettingsUseCase
	uploadLogoUseCase *settings.UploadLogoUseCase
	getLogoUseCase    *settings.GetLogoUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	uploadLogoUseCase *settings.UploadLogoUseCase,
	getLogoUseCase *settings.GetLogoUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		uploadLogoUseCase: uploadLogoUseCase,
		getLogoUseCase:    getLogoUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidSettingsRequestBody),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		CompanyName: req.CompanyName,
		CNPJ:        req.CNPJ,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// UploadLogo handles POST /settings/logo requests (multipart field "logo").
func (c *SettingsController) UploadLogo(ctx *gin.Context) {
	maxSize := c.uploadLogoUseCase.MaxSize()
	// Headroom for the multipart envelope; the use case enforces the real limit.
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxSize+64<<10)

	file, err := ctx.FormFile(logoFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.handleSettingsError(ctx, domainerror.NewSettingsError(
				domainerror.ErrCodeLogoTooLarge,
				domainerror.ErrLogoTooLarge.Error(),
				domainerror.ErrLogoTooLarge,
			))
			return
		}
		c.handleSettingsError(ctx, domainerror.NewSettingsError(
			domainerror.ErrCodeLogoMissing,
			domainerror.ErrLogoMissing.Error(),
			domainerror.ErrLogoMissing,
		))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}
	defer src.Close()

	// One byte past the limit is enough for the use case to reject it.
	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	output, err := c.uploadLogoUseCase.Execute(ctx.Request.Context(), settings.UploadLogoInput{Data: data})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// GetLogo handles GET /settings/logo requests.
func (c *SettingsController) GetLogo(ctx *gin.Context) {
	output, err := c.getLogoUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "no-cache")
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var cfgErr *domainerror.SettingsError
	if errors.As(err, &cfgErr) {
		ctx.JSON(c.getStatusCodeForSettingsError(cfgErr.Code), dto.ErrorResponse{
			Error: cfgErr.Message,
			Code:  string(cfgErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func (c *SettingsController) getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeLogoMissing,
		domainerror.ErrCodeLogoUnsupportedType,
		domainerror.ErrCodeInvalidSettingsRequestBody:
		return http.StatusBadRequest
	case domainerror.ErrCodeLogoTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeLogoNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeLogoStorageFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
