package export

import (
	"fmt"
	"time"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// Filename returns the download name of a report: {type}_{YYYY-MM-DD}.{ext}.
func Filename(reportType entity.ReportType, format entity.ReportFormat, generatedAt time.Time) string {
	return fmt.Sprintf("%s_%s.%s", reportType, generatedAt.Format("2006-01-02"), format)
}
