// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the information printed by --version, usually from
// ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globals are the persistent flags and the config they select.
type globals struct {
	verbose    bool
	configPath string
	cfg        *Config
}

// Execute runs the absorb CLI on os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree writing results to stdout and logs to
// stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "absorb",
		Short:         "absorb computes exact absorption probabilities of Markov chains",
		Long:          `absorb reads integer-weighted Markov chains from JSON, YAML or TOML files and reports, as exact fractions, the probability of ending in each absorbing state.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))

			cfg, err := LoadConfig(g.configPath)
			if err != nil {
				return err
			}
			g.cfg = cfg
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("absorb %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML or TOML settings file")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newBatchCmd(g))
	root.AddCommand(newServeCmd(g))

	return root
}
