package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rgehrsitz/salcalc/internal/calculation"
	"github.com/rgehrsitz/salcalc/internal/config"
	"github.com/rgehrsitz/salcalc/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// defaultRulesFile is picked up from the working directory when --rules is not set
const defaultRulesFile = "fiscal_rules.yaml"

// app holds the state shared by every subcommand
type app struct {
	settings *viper.Viper
	logger   *zap.Logger
}

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SALCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newRootCmd() *cobra.Command {
	a := &app{settings: newSettings()}

	rootCmd := &cobra.Command{
		Use:          "salcalc",
		Short:        "Romanian salary calculator CLI",
		Long:         "Gross, net and employer cost calculator for Romanian salaries, with the IT, construction and agriculture facilities",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("rules", "", "Path to fiscal rules file (default: "+defaultRulesFile+" if it exists)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")
	flags.Bool("debug", false, "Enable debug output for detailed calculations")
	for _, name := range []string{"rules", "log-level", "log-format", "debug"} {
		_ = a.settings.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		a.calculateCmd(),
		a.compareCmd(),
		a.raiseCmd(),
		a.validateCmd(),
		a.rulesCmd(),
		versionCmd(),
	)
	return rootCmd
}

func (a *app) initLogger() error {
	level := a.settings.GetString("log-level")
	if a.settings.GetBool("debug") {
		level = "debug"
	}
	logger, err := newLogger(level, a.settings.GetString("log-format"))
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

// loadRules resolves the rules file from --rules, SALCALC_RULES or the
// working directory, falling back to the built-in rules
func (a *app) loadRules() (domain.FiscalRules, string, error) {
	path := a.settings.GetString("rules")
	if path == "" && fileExists(defaultRulesFile) {
		path = defaultRulesFile
	}
	if path == "" {
		return config.DefaultRules(), "built-in", nil
	}

	parser := config.NewRulesParser()
	rules, err := parser.LoadFromFile(path)
	if err != nil {
		return domain.FiscalRules{}, "", err
	}
	if err := parser.ValidateRules(rules); err != nil {
		return domain.FiscalRules{}, "", fmt.Errorf("invalid rules in %s: %w", path, err)
	}
	return rules, path, nil
}

func (a *app) newCalculator() (*calculation.SalaryCalculator, error) {
	rules, source, err := a.loadRules()
	if err != nil {
		return nil, err
	}
	a.log().Debug("fiscal rules loaded",
		zap.String("op", "rules"),
		zap.String("source", source),
		zap.Int("year", rules.Year),
	)

	calc := calculation.NewSalaryCalculator(rules)
	calc.SetLogger(newCalculationLogger(a.log()))
	return calc, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "salcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
