package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discourselab/speechviz/internal/figures"
)

var listLang string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available figures",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, g := range figures.All() {
			fmt.Printf("%2d  %-10s %s\n", g.ID, g.Slug, g.Title(listLang))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listLang, "lang", "en", "language for figure titles (fr or en)")
}
