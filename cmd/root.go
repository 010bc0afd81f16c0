package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/discourselab/speechviz/internal/config"
	"github.com/discourselab/speechviz/internal/dataset"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "speechviz",
	Short: "speechviz: bilingual figures from annotated political speech",
	Long: `speechviz ingests sentence-level annotations of political speech
transcripts (CSV, JSON or JSONL), computes composite indices such as
diplomatic tone, agency and directness, and renders them as bilingual
HTML figures, optionally rasterized to 1920x1080 PNG.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.speechviz/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	if debug {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
			dataset.SetLogger(l)
		}
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// activeConfig returns the loaded configuration, or defaults when loading
// failed.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load("")
	if err != nil {
		return &cfgpkg.Global{
			OutputDir: "figures", ExportPNG: true,
			PNGWidth: 1920, PNGHeight: 1080,
			Languages: []string{"fr", "en"}, BrowserTimeoutSec: 60,
			ExcerptMinLen: 160, ExcerptMaxLen: 360, ExcerptLimit: 3,
			MinActorMentions: 3,
		}
	}
	return c
}
