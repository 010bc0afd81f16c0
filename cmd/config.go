package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/discourselab/speechviz/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set speechviz configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		fmt.Printf("export_png: %t\n", c.ExportPNG)
		fmt.Printf("png_width: %d\n", c.PNGWidth)
		fmt.Printf("png_height: %d\n", c.PNGHeight)
		fmt.Printf("languages: %s\n", strings.Join(c.Languages, ","))
		if c.BrowserBin != "" {
			fmt.Printf("browser_bin: %s\n", c.BrowserBin)
		}
		fmt.Printf("browser_timeout_sec: %d\n", c.BrowserTimeoutSec)
		fmt.Printf("excerpt_min_len: %d\n", c.ExcerptMinLen)
		fmt.Printf("excerpt_max_len: %d\n", c.ExcerptMaxLen)
		fmt.Printf("excerpt_limit: %d\n", c.ExcerptLimit)
		fmt.Printf("min_actor_mentions: %d\n", c.MinActorMentions)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := activeConfig()
		switch key {
		case "output_dir":
			c.OutputDir = val
		case "export_png":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for export_png: %v", val)
			}
			c.ExportPNG = b
		case "png_width", "png_height", "browser_timeout_sec",
			"excerpt_min_len", "excerpt_max_len", "excerpt_limit",
			"min_actor_mentions":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			switch key {
			case "png_width":
				c.PNGWidth = i
			case "png_height":
				c.PNGHeight = i
			case "browser_timeout_sec":
				c.BrowserTimeoutSec = i
			case "excerpt_min_len":
				c.ExcerptMinLen = i
			case "excerpt_max_len":
				c.ExcerptMaxLen = i
			case "excerpt_limit":
				c.ExcerptLimit = i
			case "min_actor_mentions":
				c.MinActorMentions = i
			}
		case "languages":
			var langs []string
			for _, l := range strings.Split(val, ",") {
				l = strings.TrimSpace(l)
				if l != "fr" && l != "en" {
					return fmt.Errorf("invalid language %q (use fr, en or fr,en)", l)
				}
				langs = append(langs, l)
			}
			c.Languages = langs
		case "browser_bin":
			c.BrowserBin = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
