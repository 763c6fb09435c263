package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"regexparse/internal/format"
	"regexparse/regexlib"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var indent int
	var outFile string
	var png bool

	cmd := &cobra.Command{
		Use:   "parse <pattern>",
		Short: "Parse a pattern and print its syntax tree",
		Long: `Parse a pattern and print its syntax tree.

Formats: ` + strings.Join(format.Names(), ", ") + `.

With --png the tree is rendered through Graphviz (dot -Tpng) into the
file given by -o (graph.png by default).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			n, err := regexlib.Parse(pattern)
			if err != nil {
				return &patternError{pattern: pattern, err: err, caret: a.cfg.Output.Caret}
			}
			log.Debugf("parsed %q: %+v", pattern, regexlib.Measure(n))

			if png {
				if outFile == "" || outFile == "-" {
					outFile = "graph.png"
				}
				return renderPNG(n, outFile)
			}

			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("indent") {
				indent = a.cfg.Output.Indent
			}

			var buf bytes.Buffer
			enc, err := format.New(outputFormat, &buf, format.Options{Indent: indent})
			if err != nil {
				return err
			}
			if err := enc.Encode(n); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if outFile == "" || outFile == "-" {
				_, err = io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.Infof("%s written to %s", outputFormat, outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().IntVar(&indent, "indent", 2, "indentation width, 0 for compact output")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&png, "png", false, "render a PNG via dot -Tpng")

	return cmd
}

func renderPNG(n regexlib.Node, outFile string) error {
	var buf bytes.Buffer
	if err := regexlib.ExportDOT(&buf, n); err != nil {
		return err
	}
	dot := exec.Command("dot", "-Tpng", "-o", outFile)
	dot.Stdin = &buf
	dot.Stderr = os.Stderr
	if err := dot.Run(); err != nil {
		return fmt.Errorf("dot failed: %w", err)
	}
	log.Infof("PNG written to %s", outFile)
	return nil
}
