// Package cli implements the inkind CLI commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rcliao/inkind/internal/config"
	"github.com/rcliao/inkind/internal/format"
	"github.com/rcliao/inkind/internal/policy"
	"github.com/rcliao/inkind/internal/store"
)

var (
	dbPath     string
	formatFlag string
	envFile    string
	policyFlag string

	cfg       config.Config
	logger    = slog.Default()
	logCloser io.Closer
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "inkind",
	Short: "Value in-kind speaker contributions",
	Long: "Values the time and privately funded travel that outside experts donate to workshops,\n" +
		"and records the result per engagement and fiscal year. SQLite-backed, single binary.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $INKIND_DB or ~/.inkind/contributions.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: table, plain, json, jsonl (default: $INKIND_FORMAT, table on a terminal, json otherwise)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load settings from this file instead of ./.env")
	RootCmd.PersistentFlags().StringVarP(&policyFlag, "policy", "p", "", "Policy YAML (default: $INKIND_POLICY or built-in)")
}

// setup resolves configuration with flags taking precedence over the environment.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DB = dbPath
	}
	if policyFlag != "" {
		c.Policy = policyFlag
	}
	if formatFlag != "" {
		c.Format = formatFlag
	}
	if c.Format == "" {
		c.Format = defaultFormat()
	}
	if c.Format, err = format.Normalize(c.Format); err != nil {
		return err
	}

	l, closer, err := c.NewLogger()
	if err != nil {
		return err
	}
	cfg, logger, logCloser = c, l, closer
	return nil
}

func defaultFormat() string {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "table"
	}
	return "json"
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DB)
}

func loadPolicy() *policy.Policy {
	p, err := cfg.LoadPolicy()
	if err != nil {
		exitErr("load policy", err)
	}
	return p
}

func exitErr(msg string, err error) {
	// os.Exit skips PersistentPostRun.
	closeLog()
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// closeLog releases the log file once; later calls are no-ops.
func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}
