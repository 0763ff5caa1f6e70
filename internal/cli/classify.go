package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/agenda"
	"github.com/rcliao/inkind/internal/format"
	"github.com/rcliao/inkind/internal/seniority"
)

func init() {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Suggest a seniority category from a bio or agenda",
		Long: "Suggest Executive / Senior Leadership or Senior Specialist from the text around a speaker.\n" +
			"With --text, the window is the speaker's name plus --window lines either side; with\n" +
			"--agenda, it is the speaker's own agenda segments. Staff must confirm the suggestion.",
		Run: runClassify,
	}

	cmd.Flags().StringP("text", "t", "", "Bio or free text file")
	cmd.Flags().StringP("agenda", "a", "", "Agenda text file")
	cmd.Flags().StringP("speaker", "s", "", "Speaker name (required with --agenda; narrows --text to the speaker's window)")
	cmd.Flags().IntP("window", "w", 2, "Lines of context either side of the speaker's name")
	cmd.Flags().StringP("mode", "m", "span", "Agenda attribution mode: span or line")

	cmd.MarkFlagsOneRequired("text", "agenda")
	cmd.MarkFlagsMutuallyExclusive("text", "agenda")

	RootCmd.AddCommand(cmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	textPath, _ := cmd.Flags().GetString("text")
	agendaPath, _ := cmd.Flags().GetString("agenda")
	speaker, _ := cmd.Flags().GetString("speaker")
	window, _ := cmd.Flags().GetInt("window")
	modeStr, _ := cmd.Flags().GetString("mode")

	text, err := classifyWindow(textPath, agendaPath, speaker, window, modeStr)
	if err != nil {
		exitErr("classify", err)
	}
	s := seniority.Default().Classify(text)
	logger.Info("classified", "speaker", speaker, "category", s.Value, "rationale", s.Rationale)

	if err := format.WriteSuggestion(cmd.OutOrStdout(), s, cfg.Format); err != nil {
		exitErr("write", err)
	}
}

// classifyWindow returns the text the classifier reads: the speaker's agenda
// segments, or the bio narrowed to the speaker's lines when a speaker is named.
func classifyWindow(textPath, agendaPath, speaker string, window int, modeStr string) (string, error) {
	if agendaPath != "" {
		if strings.TrimSpace(speaker) == "" {
			return "", errors.New("--agenda needs --speaker")
		}
		mode, err := agenda.ParseMode(modeStr)
		if err != nil {
			return "", err
		}
		text, err := readText(agendaPath)
		if err != nil {
			return "", fmt.Errorf("read agenda: %w", err)
		}
		return seniority.AgendaSegment(text, speaker, mode), nil
	}

	text, err := readText(textPath)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	if speaker != "" {
		text = seniority.Excerpt(text, speaker, window)
	}
	return text, nil
}
