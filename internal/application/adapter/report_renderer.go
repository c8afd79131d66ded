package adapter

import "github.com/gestao-financeira/backend/internal/domain/entity"

// ReportRenderer encodes a report bundle into one file format.
// Implementations must return either the complete file or an error, never partial output.
type ReportRenderer interface {
	Format() entity.ReportFormat
	Render(bundle *entity.ReportBundle) ([]byte, error)
}

// ReportRenderers resolves the renderer for a format.
type ReportRenderers interface {
	Renderer(format entity.ReportFormat) (ReportRenderer, error)
}
