package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/lebna/internal/config"
	"github.com/philipparndt/lebna/internal/logging"
	"github.com/philipparndt/lebna/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	cfg    = config.Default()
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "lebna",
	Short: "Triangle land-area calculator",
	Long: `lebna computes the area of a triangular plot from its three side lengths
using Heron's formula. Areas are shown in square meters and in Lebna
(1 lebna = 44.44 m²), and can be added to a running total.`,
	Version:          version.GetFullVersion(),
	PersistentPreRun: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command, args []string) {
	resolved, err := resolveConfig(configPath, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = resolved

	logger = logging.New(os.Stderr, cfg.Log.Level)
	slog.SetDefault(logger)

	logger.Debug("config loaded", "path", configPath, "canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))
}

// resolveConfig loads the config file and applies command-line overrides,
// which are held to the same checks as values from the file
func resolveConfig(path, level string) (config.Config, error) {
	loaded, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if level != "" {
		loaded.Log.Level = level
		if err := loaded.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	return loaded, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
