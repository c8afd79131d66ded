package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/application/usecase/dataset"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// DefaultLookbackMonths is the length of the overview monthly series.
const DefaultLookbackMonths = 6

// Config holds report defaults.
type Config struct {
	CompanyName    string // used until company settings name one
	LookbackMonths int
}

// Generator loads records and builds report bundles.
type Generator struct {
	loader       *dataset.Loader
	goalRepo     adapter.GoalRepository
	settingsRepo adapter.SettingsRepository
	storage      adapter.ObjectStorage
	cfg          Config
	now          func() time.Time
}

// NewGenerator creates a new Generator. storage may be nil, in which case
// reports carry no logo.
func NewGenerator(
	loader *dataset.Loader,
	goalRepo adapter.GoalRepository,
	settingsRepo adapter.SettingsRepository,
	storage adapter.ObjectStorage,
	cfg Config,
	now func() time.Time,
) *Generator {
	if cfg.LookbackMonths <= 0 {
		cfg.LookbackMonths = DefaultLookbackMonths
	}
	if strings.TrimSpace(cfg.CompanyName) == "" {
		cfg.CompanyName = entity.DefaultCompanyName
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		loader:       loader,
		goalRepo:     goalRepo,
		settingsRepo: settingsRepo,
		storage:      storage,
		cfg:          cfg,
		now:          now,
	}
}

// ParseType validates a report type path parameter.
func ParseType(raw string) (entity.ReportType, error) {
	t := entity.ReportType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			domainerror.ErrInvalidReportType.Error(),
			domainerror.ErrInvalidReportType,
		)
	}
	return t, nil
}

// ParseFormat validates a format query parameter.
func ParseFormat(raw string) (entity.ReportFormat, error) {
	f := entity.ReportFormat(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFormat,
			domainerror.ErrInvalidReportFormat.Error(),
			domainerror.ErrInvalidReportFormat,
		)
	}
	return f, nil
}

// bundle builds the bundle of reportType. withLogo also loads the company logo.
func (g *Generator) bundle(ctx context.Context, reportType entity.ReportType, filter aggregation.Filter, withLogo bool) (*entity.ReportBundle, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFilter,
			domainerror.ErrInvalidDateRange.Error(),
			domainerror.ErrInvalidDateRange,
		)
	}

	loc := g.loader.Location()
	set, err := g.loader.Load(ctx, dataset.DayWindow(filter.DateFrom, filter.DateTo, loc))
	if err != nil {
		return nil, domainerror.NewReportError(domainerror.ErrCodeReportFetchFailed, "failed to load report data", err)
	}

	now := g.now().In(loc)
	goal, err := g.goalRepo.FindByMonth(ctx, int(now.Month()), now.Year())
	if err != nil && !errors.Is(err, domainerror.ErrGoalNotFound) {
		return nil, domainerror.NewReportError(domainerror.ErrCodeReportFetchFailed, "failed to load goal", err)
	}

	// The goal line always tracks the current month, whatever the date filter.
	var goalSales []aggregation.Record
	if goal != nil {
		goalSales, err = g.loader.LoadSales(ctx, dataset.MonthWindow(now))
		if err != nil {
			return nil, domainerror.NewReportError(domainerror.ErrCodeReportFetchFailed, "failed to load current month sales", err)
		}
	}

	bundle := Build(reportType, Source{
		Sales:     set.SaleRecords,
		Expenses:  set.ExpenseRecords,
		Goal:      goal,
		GoalSales: goalSales,
		Filter:    filter,
		Now:       now,
		Lookback:  g.cfg.LookbackMonths,
	})
	bundle.CompanyName = g.cfg.CompanyName

	settings, err := g.settingsRepo.Get(ctx)
	switch {
	case err == nil:
		if strings.TrimSpace(settings.CompanyName) != "" {
			bundle.CompanyName = settings.CompanyName
		}
		if withLogo && settings.HasLogo() && g.storage != nil {
			g.attachLogo(ctx, bundle, settings)
		}
	case !errors.Is(err, domainerror.ErrSettingsNotFound):
		return nil, domainerror.NewReportError(domainerror.ErrCodeReportFetchFailed, "failed to load company settings", err)
	}

	return bundle, nil
}

// attachLogo adds the logo to the bundle. A missing logo never fails the report.
func (g *Generator) attachLogo(ctx context.Context, bundle *entity.ReportBundle, settings *entity.CompanySettings) {
	obj, err := g.storage.Get(ctx, settings.LogoKey)
	if err != nil {
		slog.Warn("Report generated without logo", "error", err, "key", settings.LogoKey)
		return
	}
	bundle.Logo = obj.Data
	bundle.LogoType = settings.LogoContentType
	if bundle.LogoType == "" {
		bundle.LogoType = obj.ContentType
	}
}

// PreviewReportInput selects a report.
type PreviewReportInput struct {
	Type   entity.ReportType
	Filter aggregation.Filter
}

// PreviewReportUseCase returns a report bundle without encoding it.
type PreviewReportUseCase struct {
	generator *Generator
}

// NewPreviewReportUseCase creates a new PreviewReportUseCase instance.
func NewPreviewReportUseCase(generator *Generator) *PreviewReportUseCase {
	return &PreviewReportUseCase{generator: generator}
}

// Execute builds the bundle.
func (uc *PreviewReportUseCase) Execute(ctx context.Context, input PreviewReportInput) (*entity.ReportBundle, error) {
	return uc.generator.bundle(ctx, input.Type, input.Filter, false)
}

// ExportReportInput selects a report and its encoding.
type ExportReportInput struct {
	Type   entity.ReportType
	Format entity.ReportFormat
	Filter aggregation.Filter
}

// ExportReportOutput is a complete encoded report.
type ExportReportOutput struct {
	Data        []byte
	ContentType string
	Type        entity.ReportType
	Format      entity.ReportFormat
	GeneratedAt time.Time
}

// ExportReportUseCase builds and encodes a report.
type ExportReportUseCase struct {
	generator *Generator
	renderers adapter.ReportRenderers
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(generator *Generator, renderers adapter.ReportRenderers) *ExportReportUseCase {
	return &ExportReportUseCase{
		generator: generator,
		renderers: renderers,
	}
}

// Execute builds and renders the report. On any render error no bytes are returned.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	renderer, err := uc.renderers.Renderer(input.Format)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFormat,
			domainerror.ErrInvalidReportFormat.Error(),
			err,
		)
	}

	bundle, err := uc.generator.bundle(ctx, input.Type, input.Filter, true)
	if err != nil {
		return nil, err
	}

	data, err := renderer.Render(bundle)
	if err != nil {
		slog.Error("Report render failed", "error", err, "type", input.Type, "format", input.Format)
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportRenderFailed,
			fmt.Sprintf("failed to render %s report", input.Format),
			err,
		)
	}

	slog.Info("Report exported", "type", input.Type, "format", input.Format, "bytes", len(data))

	return &ExportReportOutput{
		Data:        data,
		ContentType: input.Format.ContentType(),
		Type:        input.Type,
		Format:      input.Format,
		GeneratedAt: bundle.GeneratedAt,
	}, nil
}
