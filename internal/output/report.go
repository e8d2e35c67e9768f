package output

import (
	"fmt"
	"strings"

	"github.com/SumitLubal/retirement/internal/domain"
)

// GenerateReport renders a report with the named formatter and writes it to filename,
// or to a timestamped file when filename is empty. It returns the path written.
func GenerateReport(report *domain.ProjectionReport, format, filename string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, report, filename, FileExtension(format))
}

// Render formats a report with the named formatter without writing it anywhere.
func Render(report *domain.ProjectionReport, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	return f.Format(report)
}
