package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a contribution",
		Long:  "Soft-delete the latest version of a contribution, revealing the previous one. Soft-deleted rows stay in the database for audit.",
		Run:   runRm,
	}

	cmd.Flags().StringP("engagement", "e", "", "Engagement (required)")
	cmd.Flags().StringP("speaker", "s", "", "Speaker (required)")
	cmd.Flags().Bool("all-versions", false, "Delete all versions")
	cmd.Flags().Bool("hard", false, "Permanent delete (irreversible)")

	cmd.MarkFlagRequired("engagement")
	cmd.MarkFlagRequired("speaker")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	engagement, _ := cmd.Flags().GetString("engagement")
	speaker, _ := cmd.Flags().GetString("speaker")
	allVersions, _ := cmd.Flags().GetBool("all-versions")
	hard, _ := cmd.Flags().GetBool("hard")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	err = s.Rm(cmd.Context(), store.RmParams{
		Engagement:  engagement,
		Speaker:     speaker,
		AllVersions: allVersions,
		Hard:        hard,
	})
	if err != nil {
		exitErr("rm", err)
	}
	logger.Info("removed", "engagement", engagement, "speaker", speaker, "all_versions", allVersions, "hard", hard)

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"engagement":%q,"speaker":%q}`+"\n", engagement, speaker)
}
