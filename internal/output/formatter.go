package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lifepath/projector/internal/domain"
)

// ErrUnsupportedFormat is returned when a format name resolves to no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }

// Options tune how amounts are rendered.
type Options struct {
	CurrencySymbol string
}

func (o Options) symbol() string {
	if o.CurrencySymbol == "" {
		return "$"
	}
	return o.CurrencySymbol
}

var nowFunc = time.Now

// SetNowFunc overrides the clock used for report file names.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// WriteFormatted runs a formatter and writes output to a timestamped file
// under dir (the working directory when empty).
func WriteFormatted(f Formatter, report *domain.Report, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("lifepath_report_%s.%s", nowFunc().Format("20060102_150405"), ext)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		filename = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters builds every registered formatter for the given options.
var builtInFormatters = []func(Options) Formatter{
	func(o Options) Formatter { return ConsoleFormatter{Symbol: o.symbol()} },
	func(o Options) Formatter { return ConsoleLiteFormatter{Symbol: o.symbol()} },
	func(Options) Formatter { return CSVSummarizer{} },
	func(Options) Formatter { return CSVDetailedExporter{} },
	func(o Options) Formatter { return HTMLFormatter{Symbol: o.symbol()} },
	func(Options) Formatter { return JSONFormatter{} },
	func(Options) Formatter { return YAMLFormatter{} },
}

// NewFormatter resolves name (or an alias) to a formatter configured with opts.
func NewFormatter(name string, opts Options) (Formatter, error) {
	n := NormalizeFormatName(name)
	for _, build := range builtInFormatters {
		if f := build(opts); f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GetFormatterByName fetches a registered formatter with default options.
func GetFormatterByName(name string) Formatter {
	f, err := NewFormatter(name, Options{})
	if err != nil {
		return nil
	}
	return f
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":        "console",
	"text":         "console-lite",
	"txt":          "console-lite",
	"csv-detailed": "detailed-csv",
	"csv-summary":  "csv",
	"html-report":  "html",
	"json-pretty":  "json",
	"yml":          "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, build := range builtInFormatters {
		names = append(names, build(Options{}).Name())
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

// Extension returns the file extension used when writing a format to disk.
func Extension(name string) string {
	switch n := NormalizeFormatName(name); {
	case n == "console" || n == "console-lite":
		return "txt"
	case strings.Contains(n, "csv"):
		return "csv"
	default:
		return n
	}
}

// ContentType returns the MIME type served for a format.
func ContentType(name string) string {
	switch Extension(name) {
	case "csv":
		return "text/csv; charset=utf-8"
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	case "html":
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
