package export

import (
	"fmt"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// Registry maps export formats to renderers.
type Registry struct {
	renderers map[entity.ReportFormat]adapter.ReportRenderer
}

// NewRegistry creates a registry holding the given renderers. A later renderer
// replaces an earlier one with the same format.
func NewRegistry(renderers ...adapter.ReportRenderer) *Registry {
	r := &Registry{renderers: make(map[entity.ReportFormat]adapter.ReportRenderer, len(renderers))}
	for _, renderer := range renderers {
		r.renderers[renderer.Format()] = renderer
	}
	return r
}

// NewDefaultRegistry returns a registry with the PDF, XLSX and TXT renderers.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewPDFRenderer(), NewXLSXRenderer(), NewTextRenderer())
}

// Renderer returns the renderer registered for format.
func (r *Registry) Renderer(format entity.ReportFormat) (adapter.ReportRenderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domainerror.ErrRendererNotFound, format)
	}
	return renderer, nil
}

// recoverRender turns a panic raised by an encoding library into an error, so a
// failed render never escapes as a crash or a partial file.
func recoverRender(format entity.ReportFormat, out *[]byte, err *error) {
	if r := recover(); r != nil {
		*out = nil
		*err = fmt.Errorf("%s renderer panicked: %v", format, r)
	}
}
