package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"regexparse/regexlib"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "", "parse", "-f", "sexpr", "--indent", "0", "a+|b")
	if err != nil {
		t.Fatal(err)
	}
	if want := "(or (seq (plus (char 'a'))) (seq (char 'b')))\n"; out != want {
		t.Fatalf("got %q want %q", out, want)
	}

	out, err = run(t, "", "parse", "-f", "pattern", "(a|)b()")
	if err != nil || out != "(a)b\n" {
		t.Fatalf("pattern format: %q, %v", out, err)
	}
}

func TestParseCmdError(t *testing.T) {
	_, err := run(t, "", "parse", "a)")
	if err == nil {
		t.Fatal("want error")
	}
	if !errors.Is(err, &regexlib.Error{Code: regexlib.InvalidRightParen}) {
		t.Fatalf("error does not unwrap to InvalidRightParen: %v", err)
	}
	if want := "invalid right parenthesis at position 1\n  a)\n   ^"; err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}

	if _, err := run(t, "", "parse", "-f", "xml", "a"); err == nil || err.Error() != "unknown format: xml" {
		t.Fatalf("unknown format: %v", err)
	}
}

func TestParseCmdOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	out, err := run(t, "", "parse", "-f", "json", "--indent", "0", "-o", path, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Fatalf("stdout should be empty, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"seq","children":[{"kind":"char","char":"a"},{"kind":"char","char":"b"}]}` + "\n"
	if string(data) != want {
		t.Fatalf("got %s want %s", data, want)
	}
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "a\n\n+\nb|\n(\n", "check")
	if !errors.Is(err, errFailed) {
		t.Fatalf("want errFailed, got %v", err)
	}
	want := "stdin:3: no previous expression at position 0\n  +\n  ^\nstdin:5: no right parenthesis\n"
	if out != want {
		t.Fatalf("got\n%s\nwant\n%s", out, want)
	}

	path := filepath.Join(t.TempDir(), "ok.rx")
	if err := os.WriteFile(path, []byte("a|b\r\n(ab)+\n\\*\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "", "check", path)
	if err != nil || out != "" {
		t.Fatalf("valid file: %q, %v", out, err)
	}

	out, err = run(t, "*\n", "check", "-q")
	if !errors.Is(err, errFailed) || out != "" {
		t.Fatalf("quiet: %q, %v", out, err)
	}

	if _, err := run(t, "", "check", filepath.Join(t.TempDir(), "missing")); err == nil || errors.Is(err, errFailed) {
		t.Fatalf("missing file: %v", err)
	}
}

func TestExpectCmd(t *testing.T) {
	out, err := run(t, "(or (seq (char 'a')) (seq (char 'b')))", "expect", "a|b", "-")
	if err != nil || out != "ok\n" {
		t.Fatalf("match: %q, %v", out, err)
	}

	out, err = run(t, "(seq (char 'a'))", "expect", "ab", "-")
	if !errors.Is(err, errFailed) {
		t.Fatalf("want errFailed, got %v", err)
	}
	if !strings.HasPrefix(out, "mismatch\ngot:\n(seq (char 'a') (char 'b'))\nwant:\n(seq (char 'a'))\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "(seq)", "expect", "a", "-"); err == nil || !strings.Contains(err.Error(), "seq must not be empty") {
		t.Fatalf("bad tree: %v", err)
	}
}

func TestReplCmd(t *testing.T) {
	out, err := run(t, "ab\n*\n\nignored\n", "repl")
	if err != nil {
		t.Fatal(err)
	}
	want := "pattern> (seq (char 'a') (char 'b'))\n" +
		"pattern> error: no previous expression at position 0\n  *\n  ^\n" +
		"pattern> "
	if out != want {
		t.Fatalf("got\n%q\nwant\n%q", out, want)
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rx.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"pattern\"\ncaret = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "--config", path, "parse", `\(x\)+`)
	if err != nil || out != "\\(x\\)+\n" {
		t.Fatalf("config format: %q, %v", out, err)
	}
	_, err = run(t, "", "--config", path, "parse", "+")
	if err == nil || err.Error() != "no previous expression at position 0" {
		t.Fatalf("caret should be off: %v", err)
	}
}
