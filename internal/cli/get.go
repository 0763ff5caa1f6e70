package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/format"
	"github.com/rcliao/inkind/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve a contribution",
		Run:   runGet,
	}

	cmd.Flags().StringP("engagement", "e", "", "Engagement (required)")
	cmd.Flags().StringP("speaker", "s", "", "Speaker (required)")
	cmd.Flags().Bool("history", false, "Return all versions (newest first)")
	cmd.Flags().IntP("version", "v", 0, "Specific version number")

	cmd.MarkFlagRequired("engagement")
	cmd.MarkFlagRequired("speaker")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	engagement, _ := cmd.Flags().GetString("engagement")
	speaker, _ := cmd.Flags().GetString("speaker")
	history, _ := cmd.Flags().GetBool("history")
	version, _ := cmd.Flags().GetInt("version")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.Get(cmd.Context(), store.GetParams{
		Engagement: engagement,
		Speaker:    speaker,
		History:    history,
		Version:    version,
	})
	if err != nil {
		exitErr("get", err)
	}

	if err := format.WriteRecords(cmd.OutOrStdout(), records, true, cfg.Format); err != nil {
		exitErr("write", err)
	}
}
