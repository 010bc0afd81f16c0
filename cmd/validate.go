package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discourselab/speechviz/internal/dataset"
)

var validateData string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an annotated transcript against the expected schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := dataset.LoadRecords(validateData)
		if err != nil {
			return err
		}
		rep := dataset.Validate(records)

		fmt.Printf("Rows: %d\n", rep.Rows)
		if rep.TextColumn != "" {
			fmt.Printf("✓ Text column: %s\n", rep.TextColumn)
		} else {
			fmt.Println("✗ No text column found (want text, sentence, segment or utterance)")
		}
		for _, c := range rep.Checks {
			if !c.Present {
				fmt.Printf("  - %-22s absent\n", c.Column)
				continue
			}
			status := "✓"
			if len(c.Invalid) > 0 {
				status = "✗"
			}
			fmt.Printf("  %s %-22s coverage %5.1f%% (%d non-null, %d null)\n",
				status, c.Column, 100*c.Coverage, c.NonNull, c.Nulls)
			for _, v := range c.Invalid {
				fmt.Printf("      invalid value %q (%d occurrence(s))\n", v.Value, v.Count)
			}
		}
		if rep.OK() {
			fmt.Println("✓ Schema valid")
		} else {
			return fmt.Errorf("schema validation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateData, "data", "", "annotated transcript file (.csv, .json, .jsonl)")
	_ = validateCmd.MarkFlagRequired("data")
}
