package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/agenda"
	"github.com/rcliao/inkind/internal/format"
)

func init() {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Attribute agenda hours to a speaker",
		Long: "Scan agenda text for session time ranges (09:00-10:30, 9:00am - 10:30am) and sum the\n" +
			"ranges whose text names the speaker. Use --agenda - to read stdin.",
		Run: runHours,
	}

	cmd.Flags().StringP("agenda", "a", "", "Agenda text file (required)")
	cmd.Flags().StringP("speaker", "s", "", "Speaker name (required)")
	cmd.Flags().StringP("mode", "m", "span", "Attribution mode: span (text up to the next time) or line (same line only)")

	cmd.MarkFlagRequired("agenda")
	cmd.MarkFlagRequired("speaker")

	RootCmd.AddCommand(cmd)
}

func runHours(cmd *cobra.Command, args []string) {
	path, _ := cmd.Flags().GetString("agenda")
	speaker, _ := cmd.Flags().GetString("speaker")
	modeStr, _ := cmd.Flags().GetString("mode")

	mode, err := agenda.ParseMode(modeStr)
	if err != nil {
		exitErr("mode", err)
	}
	text, err := readText(path)
	if err != nil {
		exitErr("read agenda", err)
	}

	a := agenda.SpeakerHours(text, speaker, mode)
	if !a.Found() {
		logger.Warn("speaker not found in agenda", "speaker", speaker, "agenda", path, "mode", mode)
	}

	if err := format.WriteAttribution(cmd.OutOrStdout(), a, cfg.Format); err != nil {
		exitErr("write", err)
	}
}
