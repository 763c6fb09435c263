package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"regexparse/internal/config"
	"regexparse/internal/diag"
)

var log = commonlog.GetLogger("rxparse")

// errFailed reports a failure that has already been printed.
var errFailed = errors.New("failed")

type app struct {
	configPath string
	verbose    int
	logFile    string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "rxparse",
		Short:         "Parse regular expressions into syntax trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./rxparse.toml if present)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "log more (-v info, -vv debug)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newExpectCmd(a))
	rootCmd.AddCommand(newReplCmd(a))

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose > 0 {
		cfg.Log.Verbosity = a.verbose
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogPath())
	log.Debugf("output format %s, indent %d", cfg.Output.Format, cfg.Output.Indent)
	a.cfg = cfg
	return nil
}

// patternError attaches the pattern to a parse error so it prints with a caret.
type patternError struct {
	pattern string
	err     error
	caret   bool
}

func (e *patternError) Error() string { return diag.Describe(e.pattern, e.err, e.caret) }
func (e *patternError) Unwrap() error { return e.err }
