package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/format"
	"github.com/rcliao/inkind/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored contributions",
		Long:  "List the latest version of each stored contribution, newest contribution date first.",
		Run:   runList,
	}

	cmd.Flags().StringP("engagement", "e", "", "Filter by engagement")
	cmd.Flags().Int("fy", 0, "Filter by fiscal year (e.g. 2026)")
	cmd.Flags().String("firm", "", "Filter by firm")
	cmd.Flags().String("economy", "", "Filter by economy")
	cmd.Flags().String("trip", "", "Filter by trip ID")
	cmd.Flags().IntP("limit", "l", 50, "Max results (-1 for all)")
	cmd.Flags().Bool("keys-only", false, "Only output engagement/speaker pairs")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	engagement, _ := cmd.Flags().GetString("engagement")
	fy, _ := cmd.Flags().GetInt("fy")
	firm, _ := cmd.Flags().GetString("firm")
	economy, _ := cmd.Flags().GetString("economy")
	trip, _ := cmd.Flags().GetString("trip")
	limit, _ := cmd.Flags().GetInt("limit")
	keysOnly, _ := cmd.Flags().GetBool("keys-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.List(cmd.Context(), store.ListParams{
		Engagement: engagement,
		FiscalYear: fy,
		Firm:       firm,
		Economy:    economy,
		TripID:     trip,
		Limit:      limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if keysOnly {
		for _, c := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\n", c.Engagement, c.Speaker)
		}
		return
	}

	if err := format.WriteRecords(cmd.OutOrStdout(), records, true, cfg.Format); err != nil {
		exitErr("write", err)
	}
}
