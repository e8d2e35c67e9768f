package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/SumitLubal/retirement/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested format name
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.ProjectionReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ProjectionReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ProjectionReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                      { return ff.ID }

// WriteFormatted runs a formatter and writes output to filename, or to a timestamped file with ext when filename is empty.
func WriteFormatted(f Formatter, report *domain.ProjectionReport, filename, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("retirement_projection_%s.%s", time.Now().Format("20060102_150405"), ext)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	JSONFormatter{},
	PDFFormatter{},
	TableFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"summary":      "console",
	"csv-detailed": "detailed-csv",
	"csv-summary":  "csv",
	"json-pretty":  "json",
	"pdf-report":   "pdf",
	"terminal":     "table",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// FileExtension returns the file extension used when writing a format to disk.
func FileExtension(format string) string {
	switch n := NormalizeFormatName(format); {
	case strings.Contains(n, "csv"):
		return "csv"
	case n == "console" || n == "table":
		return "txt"
	default:
		return n
	}
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
