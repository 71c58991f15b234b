package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/salcalc/internal/config"
	"github.com/rgehrsitz/salcalc/internal/domain"
)

// run executes a fresh command tree and returns what it printed on stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "salcalc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flag("help"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("rules"))
}

func TestRootCommand_Execute(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "salcalc")
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "calculate")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := run(t, "invalid-command")
	assert.Error(t, err)
}

func TestRootCommand_InvalidFlag(t *testing.T) {
	_, err := run(t, "--invalid-flag")
	assert.Error(t, err)
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "compare", "raise", "validate", "rules", "version"}

	registered := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "expected command %q to be registered", name)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "salcalc dev"))
}

func TestCalculate_Console(t *testing.T) {
	out, err := run(t, "calculate", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "STANDARD SECTOR")
	assert.Contains(t, out, "2967 lei")
	assert.Contains(t, out, "5112 lei")
}

func TestCalculate_NetToGrossJSON(t *testing.T) {
	out, err := run(t, "calculate", "2967", "--type", "net", "--format", "json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "5000", result["gross"])
	assert.Equal(t, "2967", result["net"])
	assert.Equal(t, true, result["converged"])
}

func TestCalculate_SectorAndOptions(t *testing.T) {
	out, err := run(t, "calculate", "5000", "--sector", "construction", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "construction")

	out, err = run(t, "calculate", "5000", "--disabled", "--format", "json")
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "0", result["incomeTax"])
}

func TestCalculate_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"not a number", []string{"calculate", "abc"}, "not a number"},
		{"zero", []string{"calculate", "0"}, "must be positive"},
		{"negative", []string{"calculate", "--", "-100"}, "must be positive"},
		{"unknown sector", []string{"calculate", "5000", "--sector", "mining"}, "unknown sector"},
		{"unknown type", []string{"calculate", "5000", "--type", "hourly"}, "unknown calculation type"},
		{"negative children", []string{"calculate", "5000", "--children", "-1"}, "must not be negative"},
		{"unknown format", []string{"calculate", "5000", "--format", "pdf"}, "unsupported format"},
		{"missing value", []string{"calculate"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCalculate_SectorErrorIsSentinel(t *testing.T) {
	_, err := run(t, "calculate", "5000", "--sector", "mining")
	assert.True(t, errors.Is(err, domain.ErrUnknownSector))
}

func TestCalculate_RulesFile(t *testing.T) {
	path := writeRules(t, `
year: 2030
salary:
  minimum_wage:
    standard: 5000
`)
	out, err := run(t, "calculate", "5000", "--rules", path, "--format", "json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	// at the minimum wage the untaxed amount applies
	assert.Equal(t, "300", result["untaxedAmount"])
}

func TestRules_FromEnvironment(t *testing.T) {
	path := writeRules(t, "year: 2031\n")
	t.Setenv("SALCALC_RULES", path)

	out, err := run(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "year: 2031")
}

func TestCalculate_InvalidRulesFile(t *testing.T) {
	path := writeRules(t, "salary:\n  rates:\n    pension: 150\n")
	_, err := run(t, "calculate", "5000", "--rules", path)
	require.Error(t, err)

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "salary.rates.pension", verr.Field)
}

func TestCompare_Formats(t *testing.T) {
	out, err := run(t, "compare", "8000", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "construction,alternative,8000,5500")

	out, err = run(t, "compare", "8000", "--format", "json")
	require.NoError(t, err)
	var set map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &set))

	out, err = run(t, "compare", "8000")
	require.NoError(t, err)
	assert.Contains(t, out, "Agriculture")

	_, err = run(t, "compare", "8000", "--format", "xml")
	assert.Error(t, err)
}

func TestCompare_Scenarios(t *testing.T) {
	out, err := run(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Templates:")
	assert.Contains(t, out, "sector_construction")

	out, err = run(t, "compare", "5000", "--with", "one_child,sector_construction", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "construction,alternative,5000,3437")

	out, err = run(t, "compare", "2967", "--type", "net", "--transform", "set_meal_vouchers:value=40,days=21", "--format", "json")
	require.NoError(t, err)
	var set map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	base := set["baseResult"].(map[string]any)
	assert.Equal(t, "Current", base["label"])
	assert.Equal(t, "5000", base["gross"])

	_, err = run(t, "compare", "5000", "--with", "golden_parachute")
	assert.ErrorContains(t, err, "unknown template")

	_, err = run(t, "compare")
	assert.Error(t, err)
}

func TestRaise(t *testing.T) {
	out, err := run(t, "raise", "5000", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "RAISE ANALYSIS - STANDARD SECTOR")
	assert.Contains(t, out, "Cost per extra lei net: 1.88")

	out, err = run(t, "raise", "5000", "1000", "--goal", "cost", "--format", "json")
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "532", result["net_increase"])

	out, err = run(t, "raise", "5000", "500", "--all-sectors")
	require.NoError(t, err)
	assert.Contains(t, out, "Best: Construction")

	out, err = run(t, "raise", "5000", "500", "--max-gross", "5500")
	require.NoError(t, err)
	assert.Contains(t, out, "NOT MET")
}

func TestRaise_RejectsBadInput(t *testing.T) {
	_, err := run(t, "raise", "5000", "0")
	assert.ErrorContains(t, err, "must be positive")

	_, err = run(t, "raise", "5000", "500", "--goal", "bonus")
	assert.ErrorContains(t, err, "unknown raise goal")

	_, err = run(t, "raise", "5000", "2000", "--goal", "target_net")
	assert.ErrorContains(t, err, "does not exceed the current net")

	_, err = run(t, "raise", "5000", "500", "--format", "csv")
	assert.ErrorContains(t, err, "unsupported format")

	_, err = run(t, "raise", "5000")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", writeRules(t, "year: 2025\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "2025 are valid")

	_, err = run(t, "validate", writeRules(t, "salary:\n  rates:\n    second_pillar: 30\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second_pillar")

	_, err = run(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRulesCommand_Defaults(t *testing.T) {
	out, err := run(t, "rules")
	require.NoError(t, err)

	rules, err := config.NewRulesParser().LoadFromBytes([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRules().Year, rules.Year)
	assert.True(t, config.DefaultRules().Salary.MinimumWage.Standard.Equal(rules.Salary.MinimumWage.Standard))
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "warning", "error"} {
		logger, err := newLogger(level, "console")
		require.NoError(t, err, level)
		require.NotNil(t, logger)
	}

	_, err := newLogger("trace", "console")
	assert.Error(t, err)
	_, err = newLogger("info", "xml")
	assert.Error(t, err)

	_, err = run(t, "calculate", "5000", "--log-level", "loud")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount(" 4050.50 ")
	require.NoError(t, err)
	assert.Equal(t, "4050.5", amount.String())

	for _, raw := range []string{"", "1,000", "-1", "0", "five"} {
		_, err := parseAmount(raw)
		assert.Error(t, err, raw)
	}
}

func TestReportExtension(t *testing.T) {
	assert.Equal(t, "json", reportExtension("json"))
	assert.Equal(t, "csv", reportExtension("csv"))
	assert.Equal(t, "txt", reportExtension("console"))
}

func TestFileExists(t *testing.T) {
	assert.True(t, fileExists("main.go"))
	assert.False(t, fileExists("non_existing_file.txt"))
}
