// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// cli carries state shared by all subcommands.
type cli struct {
	logLevel  string
	logFormat string
	logOut    io.Writer
	logger    *slog.Logger
}

// newRootCmd builds the command tree. Command output goes to out, logs to logOut.
func newRootCmd(out, logOut io.Writer) *cobra.Command {
	c := &cli{logOut: logOut, logger: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   "cellauto",
		Short: "Weighted cellular automaton over YAML graph files",
		Long: `cellauto scores every item of a weighted neighborhood with the best path
value reachable from it, reports cycles and reads out the best path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(c.logLevel, c.logFormat, c.logOut)
			if err != nil {
				return err
			}
			c.logger = l
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(logOut)

	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(c.newRunCmd(), c.newGenerateCmd())

	return rootCmd
}
