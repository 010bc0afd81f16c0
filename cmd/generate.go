package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/excerpt"
	"github.com/discourselab/speechviz/internal/export"
	"github.com/discourselab/speechviz/internal/figures"
	"github.com/discourselab/speechviz/internal/report"
	"github.com/discourselab/speechviz/internal/utils"
)

var (
	genData       string
	genLang       string
	genFig        int
	genPNG        bool
	genOut        string
	genFullReport bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate figures from an annotated transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()

		languages := c.Languages
		if cmd.Flags().Changed("lang") {
			if genLang != "fr" && genLang != "en" {
				return fmt.Errorf("invalid --lang %q (use fr or en)", genLang)
			}
			languages = []string{genLang}
		}
		if len(languages) == 0 {
			languages = []string{"fr", "en"}
		}

		exportPNG := c.ExportPNG
		if cmd.Flags().Changed("png") {
			exportPNG = genPNG
		}
		outDir := c.OutputDir
		if cmd.Flags().Changed("out") {
			outDir = genOut
		}

		d, err := dataset.Load(genData)
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(outDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		gens := figures.All()
		if cmd.Flags().Changed("fig") {
			g, ok := figures.ByID(genFig)
			if !ok {
				return fmt.Errorf("no figure %d (run 'speechviz list')", genFig)
			}
			gens = []figures.Generator{g}
		}

		var exporter *export.Exporter
		if exportPNG {
			exporter = export.New(export.Options{
				Width:      c.PNGWidth,
				Height:     c.PNGHeight,
				BrowserBin: c.BrowserBin,
				Timeout:    time.Duration(c.BrowserTimeoutSec) * time.Second,
			}, logger)
			if !exporter.Available() {
				fmt.Println("⚠ No headless browser found; keeping HTML only")
				exporter = nil
			}
		}

		manifest := figures.NewManifest(genData, languages)
		for _, lang := range languages {
			excerpt.Reset()
			fmt.Printf("Language: %s\n", lang)
			for _, g := range gens {
				ctx := figures.NewContext(d, lang)
				ctx.Excerpts = excerpt.Options{
					MinLen: c.ExcerptMinLen, MaxLen: c.ExcerptMaxLen, Limit: c.ExcerptLimit,
				}
				ctx.MinActorMentions = c.MinActorMentions

				html, err := g.Build(ctx)
				if err == figures.ErrSkip {
					fmt.Printf("  ⚠ Skipped fig %d (%s): missing columns\n", g.ID, g.Slug)
					manifest.Skipped = append(manifest.Skipped,
						fmt.Sprintf("fig%02d_%s_%s", g.ID, g.Slug, lang))
					continue
				}
				if err != nil {
					return fmt.Errorf("figure %d (%s): %w", g.ID, g.Slug, err)
				}

				htmlName := figures.FileName(g, lang, "html")
				htmlPath := filepath.Join(outDir, htmlName)
				if err := utils.SafeWriteFile(htmlPath, []byte(html)); err != nil {
					return fmt.Errorf("figure %d (%s): %w", g.ID, g.Slug, err)
				}
				entry := figures.ManifestFile{Figure: g.ID, Slug: g.Slug, Lang: lang, HTML: htmlName}

				if exporter != nil {
					pngName := figures.FileName(g, lang, "png")
					pngPath := filepath.Join(outDir, pngName)
					if err := exporter.Render(htmlPath, pngPath); err != nil {
						fmt.Printf("  ⚠ PNG failed for fig %d (%s): %v\n", g.ID, g.Slug, err)
					} else {
						entry.PNG = pngName
					}
				}
				manifest.Files = append(manifest.Files, entry)
				fmt.Printf("  ✓ Saved fig %d (%s): %s\n", g.ID, g.Slug, htmlName)
			}
		}

		if err := manifest.Write(outDir); err != nil {
			return err
		}
		fmt.Printf("✓ Generated %d file(s) in %s (run %s)\n",
			len(manifest.Files), outDir, manifest.RunID)

		printIndexSummary(d)

		if genFullReport {
			fmt.Print(report.Render(d))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genData, "data", "", "annotated transcript file (.csv, .json, .jsonl)")
	generateCmd.Flags().StringVar(&genLang, "lang", "", "generate one language only (fr or en)")
	generateCmd.Flags().IntVar(&genFig, "fig", 0, "generate one figure only (by number, see 'list')")
	generateCmd.Flags().BoolVar(&genPNG, "png", true, "rasterize figures to PNG (overrides config)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output directory (overrides config)")
	generateCmd.Flags().BoolVar(&genFullReport, "full-report", false, "print the full text analysis after generating")
	_ = generateCmd.MarkFlagRequired("data")
}
