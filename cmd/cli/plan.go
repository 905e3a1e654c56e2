package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/farmos/crop-service/internal/stage"
)

var planOutput string

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan <target-date>",
	Short: "Compute plant-by dates for a target harvest date",
	Long: `Compute, for every species in the catalog, the latest planting date that still
reaches harvest by the given target date. Dates use the YYYY-MM-DD format.`,
	Example: `  crop-service plan 2026-03-01
  crop-service plan 2026-03-01 --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planOutput, "output", "table", "Output format: table or json")
}

func runPlan(cmd *cobra.Command, args []string) error {
	target, err := stage.ParseDate(args[0])
	if err != nil {
		return fmt.Errorf("invalid target date %q: %w", args[0], err)
	}

	engine := stage.NewEngine(cat)
	entries := engine.PlantBySchedule(target)

	if planOutput == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SPECIES\tPLANT BY")
	fmt.Fprintln(w, "-------\t--------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Species, e.PlantBy)
	}
	w.Flush()

	return nil
}
