package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/format"
)

func init() {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Show the active valuation policy",
		Long:  "Print the rates, multiplier, travel rules, and airfare tables of the active policy (--policy, $INKIND_POLICY, or built-in).",
		Run:   runPolicy,
	}

	RootCmd.AddCommand(cmd)
}

func runPolicy(cmd *cobra.Command, args []string) {
	p := loadPolicy()
	if err := format.WritePolicy(cmd.OutOrStdout(), p, cfg.Format); err != nil {
		exitErr("write", err)
	}
}
