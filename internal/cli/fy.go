package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/valuation"
)

func init() {
	cmd := &cobra.Command{
		Use:   "fy DATE",
		Short: "Resolve the fiscal year of a date",
		Long:  "Print the fiscal year (October through September, labelled by the year it ends) of YYYY-MM-DD.",
		Args:  cobra.ExactArgs(1),
		Run:   runFY,
	}

	cmd.Flags().Bool("short", false, "Short label (FY26)")

	RootCmd.AddCommand(cmd)
}

func runFY(cmd *cobra.Command, args []string) {
	short, _ := cmd.Flags().GetBool("short")

	d, err := parseDate(args[0])
	if err != nil {
		exitErr("fy", err)
	}
	fy := valuation.FiscalYear(d)
	label := valuation.FiscalLabel(fy, short)

	switch cfg.Format {
	case "json", "jsonl":
		b, _ := json.Marshal(map[string]any{
			"date":        d.Format(time.DateOnly),
			"fiscal_year": fy,
			"label":       label,
		})
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), label)
	}
}
