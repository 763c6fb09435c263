package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"regexparse/internal/notation"
	"regexparse/regexlib"
)

func newExpectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expect <pattern> <tree-file|->",
		Short: "Compare the tree of a pattern with an expected tree",
		Long: `Parse a pattern and compare the result with a tree written in the
s-expression notation, e.g.

    (seq (plus (char 'a')))

The tree is read from the file, or from stdin when the file is "-".
On a mismatch both trees are printed and the exit status is 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, name := args[0], args[1]

			var data []byte
			var err error
			if name == "-" {
				name = "stdin"
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(name)
			}
			if err != nil {
				return fmt.Errorf("read expected tree: %w", err)
			}
			want, err := notation.Read(name, string(data))
			if err != nil {
				return fmt.Errorf("expected tree: %w", err)
			}

			got, err := regexlib.Parse(pattern)
			if err != nil {
				return &patternError{pattern: pattern, err: err, caret: a.cfg.Output.Caret}
			}

			out := cmd.OutOrStdout()
			if regexlib.Equal(got, want) {
				fmt.Fprintln(out, "ok")
				return nil
			}

			indent := a.cfg.Output.Indent
			fmt.Fprintln(out, "mismatch")
			fmt.Fprintln(out, "got:")
			if err := notation.Write(out, got, indent); err != nil {
				return err
			}
			fmt.Fprintln(out, "want:")
			if err := notation.Write(out, want, indent); err != nil {
				return err
			}
			return errFailed
		},
	}

	return cmd
}
