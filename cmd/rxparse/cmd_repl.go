package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"regexparse/internal/diag"
	"regexparse/internal/format"
	"regexparse/regexlib"
)

func newReplCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse patterns interactively",
		Long: `Read patterns from stdin and print each tree in the configured
format, or the error with a caret under the offending character.
An empty line or end of input quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			enc, err := format.New(a.cfg.Output.Format, out, format.Options{Indent: a.cfg.Output.Indent})
			if err != nil {
				return err
			}

			rdr := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "pattern> ")
				if !rdr.Scan() {
					fmt.Fprintln(out)
					break
				}
				pat := rdr.Text()
				if pat == "" {
					break
				}
				n, err := regexlib.Parse(pat)
				if err != nil {
					fmt.Fprintln(out, "error:", diag.Describe(pat, err, a.cfg.Output.Caret))
					continue
				}
				if err := enc.Encode(n); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return rdr.Err()
		},
	}

	return cmd
}
