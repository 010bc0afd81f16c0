package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discourselab/speechviz/internal/dataset"
	"github.com/discourselab/speechviz/internal/indices"
	"github.com/discourselab/speechviz/internal/report"
)

var reportData string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full text analysis of an annotated transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dataset.Load(reportData)
		if err != nil {
			return err
		}
		fmt.Print(report.Render(d))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportData, "data", "", "annotated transcript file (.csv, .json, .jsonl)")
	_ = reportCmd.MarkFlagRequired("data")
}

// printIndexSummary prints the one-line-per-index recap shown after
// generation.
func printIndexSummary(d *dataset.Dataset) {
	rows := d.Rows
	fmt.Println("\nIndices:")
	if tone := indices.DiplomaticTone(rows); tone.N > 0 {
		fmt.Printf("  diplomatic tone    %+.3f (n=%d)\n", tone.Value, tone.N)
	}
	if wv := indices.Worldview(rows); wv.ThreatN+wv.OpportunityN+wv.ToneN > 0 {
		fmt.Printf("  worldview          %+.3f\n", wv.Value)
	}
	if ag := indices.Agency(rows); ag.Active+ag.Cooperative+ag.Reactive > 0 {
		fmt.Printf("  agency             %.3f\n", ag.Value)
	}
	if amb := indices.PolicyAmbition(rows); amb.N > 0 {
		fmt.Printf("  policy ambition    %.3f (n=%d)\n", amb.Value, amb.N)
	}
	if act := indices.ActionOrientation(rows); act.Action+act.Descriptive > 0 {
		fmt.Printf("  action orientation %.3f\n", act.Value)
	}
	if dir := indices.Directness(rows); dir.N > 0 {
		fmt.Printf("  directness         %.3f (n=%d)\n", dir.Value, dir.N)
	}
	if anim := indices.Animosity(rows); anim.UsN+anim.ThemN > 0 {
		fmt.Printf("  animosity          %+.3f\n", anim.Value)
	}
	for _, p := range indices.Posture(rows) {
		fmt.Printf("  posture (%s) %+.3f (n=%d)\n", p.Speaker, p.Value, p.N)
	}
}
