package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// Formatter renders a single calculation result
type Formatter interface {
	Name() string
	Format(result *domain.CalculationResult) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(result *domain.CalculationResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.CalculationResult) ([]byte, error) {
	return f.F(result)
}

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"json":    JSONFormatter{Pretty: true},
	"csv":     CSVFormatter{},
}

var formatAliases = map[string]string{
	"text":    "console",
	"table":   "console",
	"verbose": "console",
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil when there is none
func GetFormatterByName(name string) Formatter {
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted alternative format names
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// WriteFormatted renders result and writes it to a timestamped file in the
// working directory, returning the file name
func WriteFormatted(f Formatter, result *domain.CalculationResult, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("salary_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
