package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestResult() *domain.CalculationResult {
	return &domain.CalculationResult{
		Sector:              domain.SectorStandard,
		Gross:               decimal.NewFromInt(4050),
		Net:                 decimal.NewFromInt(2574),
		PensionContribution: decimal.NewFromInt(938),
		HealthContribution:  decimal.NewFromInt(375),
		IncomeTax:           decimal.NewFromInt(163),
		ContributionBase:    decimal.NewFromInt(3750),
		PersonalDeduction:   decimal.NewFromInt(810),
		TaxableIncome:       decimal.NewFromInt(1627),
		UntaxedAmount:       decimal.NewFromInt(300),
		EmployerBase:        decimal.NewFromInt(3750),
		EmployerSurcharge:   decimal.NewFromInt(84),
		TotalCost:           decimal.NewFromInt(4134),
		Rates: domain.RateBreakdown{
			Pension:       decimal.NewFromInt(25),
			Health:        decimal.NewFromInt(10),
			IncomeTax:     decimal.NewFromInt(10),
			WorkInsurance: decimal.RequireFromString("2.25"),
		},
		Notes:     []string{"untaxed amount of 300 lei applied at or below the minimum wage"},
		Converged: true,
	}
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(result *domain.CalculationResult) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(buildTestResult())
	assert.NoError(t, err, "Should not error")
	assert.True(t, called, "Should call the function")
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name(), "Should return the ID")
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(result *domain.CalculationResult) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestResult(), "txt")
	assert.NoError(t, err, "Should not error")
	assert.Contains(t, filename, "salary_report_", "Should have correct prefix")
	assert.True(t, strings.HasSuffix(filename, ".txt"), "Should have correct extension")

	content, err := os.ReadFile(filename)
	assert.NoError(t, err, "Should be able to read the file")
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(result *domain.CalculationResult) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestResult(), "txt")
	assert.Error(t, err, "Should error when formatter fails")
	assert.Empty(t, filename, "Should return empty filename on error")
	assert.Contains(t, err.Error(), "formatter error")
}

func TestConsoleFormatter_Format(t *testing.T) {
	formatter := ConsoleFormatter{}
	assert.Equal(t, "console", formatter.Name())

	out, err := formatter.Format(buildTestResult())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "SALARY CALCULATION - STANDARD SECTOR")
	assert.Contains(t, content, "Pension (CAS) 25%:")
	assert.Contains(t, content, "938 lei")
	assert.Contains(t, content, "Work insurance (CAM) 2.25%:")
	assert.Contains(t, content, "4134 lei")
	assert.Contains(t, content, "Untaxed amount:")
	assert.Contains(t, content, "NET SALARY:")
	assert.Contains(t, content, "2574 lei")
	assert.Contains(t, content, "NOTES")
	assert.NotContains(t, content, "Voucher income", "Zero voucher income is omitted")
	assert.NotContains(t, content, "Search:", "Forward results have no search line")
}

func TestConsoleFormatter_Overtaxed(t *testing.T) {
	result := buildTestResult()
	result.IsOvertaxed = true
	result.OvertaxShortfall = decimal.NewFromInt(418)
	result.Iterations = 12
	result.Converged = false

	out, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Part-time overtaxation applies.")
	assert.Contains(t, content, "Employer shortfall:")
	assert.Contains(t, content, "418 lei")
	assert.Contains(t, content, "Search: 12 iterations (closest match)")
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := CSVFormatter{}
	assert.Equal(t, "csv", formatter.Name())

	out, err := formatter.Format(buildTestResult())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Sector", records[0][0])
	assert.Equal(t, "standard", records[1][0])
	assert.Equal(t, "4050", records[1][1])
	assert.Equal(t, "2574", records[1][2])
	assert.Equal(t, "false", records[1][12])
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := JSONFormatter{}
	assert.Equal(t, "json", formatter.Name())

	out, err := formatter.Format(buildTestResult())
	require.NoError(t, err)

	var decoded domain.CalculationResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.True(t, decoded.Net.Equal(decimal.NewFromInt(2574)))
	assert.True(t, decoded.Rates.WorkInsurance.Equal(decimal.RequireFromString("2.25")))
	assert.Contains(t, string(out), "\"totalCost\"")
	assert.Equal(t, domain.SectorStandard, decoded.Sector)
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
	assert.Equal(t, []string{"table", "text", "verbose"}, AvailableFormatAliases())
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		formatter := GetFormatterByName(name)
		require.NotNil(t, formatter, "Should return formatter for %s", name)
		assert.Equal(t, name, formatter.Name())
	}

	alias := GetFormatterByName("text")
	require.NotNil(t, alias)
	assert.Equal(t, "console", alias.Name())

	assert.Nil(t, GetFormatterByName("non-existent"), "Should return nil formatter for non-existent name")
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, buildTestResult(), "csv"))
	assert.Contains(t, buf.String(), "standard,4050,2574")

	err := GenerateReport(&buf, buildTestResult(), "pdf")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format: pdf")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "2574 lei", FormatLei(decimal.NewFromInt(2574)))
	assert.Equal(t, "2575 lei", FormatLei(decimal.RequireFromString("2574.5")))
	assert.Equal(t, "21.25%", FormatPercentage(decimal.RequireFromString("21.25")))
}
