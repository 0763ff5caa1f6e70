package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/format"
	"github.com/rcliao/inkind/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export contributions",
		Long: "Export every stored version as JSON (the format read by import). With --xlsx, write the\n" +
			"latest version of each contribution to a spreadsheet for the system of record instead.",
		Run: runExport,
	}

	cmd.Flags().StringP("engagement", "e", "", "Filter by engagement")
	cmd.Flags().String("xlsx", "", "Write a spreadsheet to this path")
	cmd.Flags().Int("fy", 0, "Filter the spreadsheet by fiscal year")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	engagement, _ := cmd.Flags().GetString("engagement")
	xlsx, _ := cmd.Flags().GetString("xlsx")
	fy, _ := cmd.Flags().GetInt("fy")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if xlsx != "" {
		records, err := s.List(cmd.Context(), store.ListParams{
			Engagement: engagement,
			FiscalYear: fy,
			Limit:      -1,
		})
		if err != nil {
			exitErr("export", err)
		}
		if err := format.WriteXLSX(xlsx, records); err != nil {
			exitErr("write xlsx", err)
		}
		logger.Info("exported", "path", xlsx, "records", len(records))
		fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"path":%q,"exported":%d}`+"\n", xlsx, len(records))
		return
	}

	// Historical versions are included so import can rebuild the chain.
	records, err := s.ExportAll(cmd.Context(), engagement)
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
