package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/format"
	"github.com/rcliao/inkind/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search contributions by keyword",
		Long:  "Search speaker, firm, engagement, economy, and category rationale for matching text.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().Int("fy", 0, "Filter by fiscal year")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	fy, _ := cmd.Flags().GetInt("fy")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query:      query,
		FiscalYear: fy,
		Limit:      limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if err := format.WriteRecords(cmd.OutOrStdout(), results, true, cfg.Format); err != nil {
		exitErr("write", err)
	}
}
