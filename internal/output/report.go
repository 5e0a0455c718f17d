package output

import (
	"github.com/lifepath/projector/internal/domain"
)

// GenerateReport renders report in the named format and writes it to a
// timestamped file under dir. "all" writes the console-lite, detailed-csv
// and html variants.
func GenerateReport(report *domain.Report, format, dir string, opts Options) ([]string, error) {
	formats := []string{format}
	if NormalizeFormatName(format) == "all" {
		formats = []string{"console-lite", "detailed-csv", "html"}
	}

	written := make([]string, 0, len(formats))
	for _, name := range formats {
		f, err := NewFormatter(name, opts)
		if err != nil {
			return written, err
		}
		path, err := WriteFormatted(f, report, dir, Extension(f.Name()))
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
