// Command hashmap-smoke runs a fixed sequence of checks against a fresh
// hashmap.Table and exits non-zero if any of them fail.
package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errSmokeFailed = errors.New("smoke checks failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("cmd/hashmap-smoke")
	}
}

func newRootCmd() *cobra.Command {
	var verbose, console bool
	root := &cobra.Command{
		Use:          "hashmap-smoke",
		Short:        "Check set, get, remove, listing, clear and resize on a chained hash table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every check, not just failures")
	root.Flags().BoolVar(&console, "console", false, "write human-readable logs instead of JSON")
	root.RunE = func(cmd *cobra.Command, _ []string) error {
		setupLogging(cmd, verbose, console)
		return run(runSmoke(log.Logger))
	}
	return root
}

func setupLogging(cmd *cobra.Command, verbose, console bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	out := cmd.OutOrStdout()
	if console {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = log.Output(out)
}

func run(results []result) error {
	if failed := countFailed(results); failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSmokeFailed, failed, len(results))
	}
	return nil
}
