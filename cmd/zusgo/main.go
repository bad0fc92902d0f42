package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pmroz/zusgo/internal/calculation"
	"github.com/pmroz/zusgo/internal/config"
	"github.com/pmroz/zusgo/internal/domain"
	"github.com/pmroz/zusgo/internal/indices"
	"github.com/pmroz/zusgo/internal/output"
	"github.com/pmroz/zusgo/internal/sanity"
	"github.com/pmroz/zusgo/internal/server"
	"github.com/pmroz/zusgo/internal/store"
	"github.com/pmroz/zusgo/internal/tui"
	"github.com/pmroz/zusgo/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "zusgo",
	Short: "Pension capital projection calculator",
	Long:  "Projects future retirement benefits under the defined-contribution pension scheme: capital accumulation, benefit derivation and plausibility checking.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run a pension projection for a worker profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath, _ := cmd.Flags().GetString("input")
		indicesPath, _ := cmd.Flags().GetString("indices")
		format, _ := cmd.Flags().GetString("format")

		profile, table, err := loadInputs(profilePath, indicesPath)
		if err != nil {
			return err
		}

		engine := calculation.NewEngine(table)
		result, err := engine.Project(profile, time.Now().Year())
		if err != nil {
			return err
		}
		verdict := sanity.Check(result, table)

		return output.Generate(os.Stdout, output.Report{
			Profile: profile,
			Result:  result,
			Verdict: verdict,
		}, format)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a worker profile without projecting",
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath, _ := cmd.Flags().GetString("input")

		parser := config.NewInputParser()
		profile, err := parser.LoadProfile(profilePath)
		if err != nil {
			return err
		}

		result := validation.Validate(profile, time.Now().Year())
		if result.Valid {
			fmt.Println("Profile is valid.")
		} else {
			fmt.Println("Profile is INVALID.")
		}
		for _, e := range result.Errors {
			fmt.Printf("  error:   %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection pipeline over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := server.LoadConfig(configPath)
		if err != nil {
			return err
		}

		logger, err := initializeLogger(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		records, err := store.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer func() { _ = records.Close() }()

		handler, err := server.NewHandler(logger, indices.Default(), records, cfg.AuditTrailYears)
		if err != nil {
			return err
		}

		router := server.NewRouter(handler, cfg.AllowedOrigins)
		logger.Info("starting server", zap.String("address", cfg.Address))
		return http.ListenAndServe(cfg.Address, router)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse a projection interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath, _ := cmd.Flags().GetString("input")
		indicesPath, _ := cmd.Flags().GetString("indices")

		profile, table, err := loadInputs(profilePath, indicesPath)
		if err != nil {
			return err
		}

		engine := calculation.NewEngine(table)
		result, err := engine.Project(profile, time.Now().Year())
		if err != nil {
			return err
		}
		verdict := sanity.Check(result, table)

		p := tea.NewProgram(tui.NewModel(result, verdict), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "zusgo %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

// loadInputs reads the profile and optional index table override; the
// default table is used when no override file is given.
func loadInputs(profilePath, indicesPath string) (*domain.WorkerProfile, *domain.IndexTable, error) {
	parser := config.NewInputParser()
	profile, err := parser.LoadProfile(profilePath)
	if err != nil {
		return nil, nil, err
	}

	table := indices.Default()
	if indicesPath != "" {
		table, err = indices.LoadFromFile(indicesPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return profile, table, nil
}

func initializeLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "", "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func init() {
	calculateCmd.Flags().StringP("input", "i", "", "worker profile YAML file")
	calculateCmd.Flags().String("indices", "", "index table override YAML file")
	calculateCmd.Flags().StringP("format", "f", "console", "output format (console, json, csv)")
	_ = calculateCmd.MarkFlagRequired("input")

	validateCmd.Flags().StringP("input", "i", "", "worker profile YAML file")
	_ = validateCmd.MarkFlagRequired("input")

	serveCmd.Flags().StringP("config", "c", "", "server config YAML file")

	tuiCmd.Flags().StringP("input", "i", "", "worker profile YAML file")
	tuiCmd.Flags().String("indices", "", "index table override YAML file")
	_ = tuiCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(calculateCmd, validateCmd, serveCmd, tuiCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
