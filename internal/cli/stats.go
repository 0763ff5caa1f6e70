package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/format"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics and totals per fiscal year",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), cfg.DB)
	if err != nil {
		exitErr("stats", err)
	}

	if err := format.WriteStats(cmd.OutOrStdout(), stats, cfg.Format); err != nil {
		exitErr("write", err)
	}
}
