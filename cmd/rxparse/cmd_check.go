package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"regexparse/internal/diag"
	"regexparse/regexlib"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate patterns, one per line",
		Long: `Validate patterns read one per line from the given files, or from
stdin when no file is given. Blank lines are skipped.

Every invalid pattern is reported as name:line: message. The command
exits with status 1 if any pattern is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := checker{out: cmd.OutOrStdout(), quiet: quiet, caret: a.cfg.Output.Caret}

			if len(args) == 0 {
				if err := c.scan("stdin", cmd.InOrStdin()); err != nil {
					return err
				}
			}
			for _, filename := range args {
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("open %s: %w", filename, err)
				}
				err = c.scan(filename, f)
				f.Close()
				if err != nil {
					return err
				}
			}

			log.Infof("checked %d pattern(s), %d invalid", c.total, c.invalid)
			if c.invalid > 0 {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, only set the exit status")

	return cmd
}

type checker struct {
	out     io.Writer
	quiet   bool
	caret   bool
	total   int
	invalid int
}

// scan parses every non-blank line of r and reports the failures.
func (c *checker) scan(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		c.total++
		if _, err := regexlib.Parse(line); err != nil {
			c.invalid++
			log.Debugf("%s:%d: %v", name, lineno, err)
			if !c.quiet {
				fmt.Fprintf(c.out, "%s:%d: %s\n", name, lineno, diag.Describe(line, err, c.caret))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}
