package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/philipparndt/lebna/internal/config"
	"github.com/philipparndt/lebna/internal/logging"
	"github.com/philipparndt/lebna/internal/ui"
	"github.com/philipparndt/lebna/version"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "lebna-gui",
	Short:   "Triangle land-area calculator window",
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	Run:     runGUI,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (.toml or .yaml)")
}

func runGUI(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.Log.Level)

	opts, err := cfg.RenderOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.NewWithID("com.github.philipparndt.lebna")
	w := a.NewWindow("Triangle Area Calculator")

	form := ui.NewForm(a, opts, logger)
	w.SetContent(form.Content())
	w.Resize(fyne.NewSize(480, 720))
	w.ShowAndRun()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
