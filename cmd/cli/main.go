package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/farmos/crop-service/config"
	"github.com/farmos/crop-service/internal/catalog"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zerolog.Logger
	cat     *catalog.Catalog
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crop-service",
	Short: "Crop Service CLI - Farm crop growth tracking tool",
	Long: `A CLI tool for tracking crop growth stages, planning planting schedules,
and measuring field areas. Works against the built-in species catalog (Sweet Corn,
Beetroot, Cabbages, Onions, Okra) or a catalog override file.`,
	PersistentPreRunE: persistentPreRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config is optional for some commands, don't fail here
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// persistentPreRun runs before each command and initializes dependencies
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	// Initialize logger (use console format for CLI)
	logger = initLogger()

	if err := initCatalog(); err != nil {
		return fmt.Errorf("catalog initialization failed: %w", err)
	}

	return nil
}

func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if cfg != nil && cfg.Logging.Level != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsedLevel
		}
	}

	// Always use console format for CLI
	var output io.Writer
	if cfg != nil && cfg.Logging.Format == "json" {
		output = os.Stdout
	} else {
		noColor := false
		if cfg != nil {
			noColor = cfg.Logging.NoColor
		}
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: noColor}
	}

	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &log
}

func initCatalog() error {
	path := ""
	if cfg != nil {
		path = cfg.Catalog.Path
	}

	if path == "" {
		cat = catalog.Default()
		return nil
	}

	loaded, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog from %s: %w", path, err)
	}
	cat = loaded
	return nil
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
