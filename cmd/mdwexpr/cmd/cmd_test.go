package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwlog "github.com/msto63/mdwexpr/core/log"
	"github.com/msto63/mdwexpr/expr"
)

// execute runs the root command with fresh flag values
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose, logFormat = "", false, ""
	parseFlags, watchFlags = outputFlags{}, outputFlags{}

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "compact",
			args: []string{"parse", "--compact", "1 + 2 * 3"},
			want: "Binary(Add, Number(1), Binary(Mul, Number(2), Number(3)))\n",
		},
		{
			name:  "pretty from stdin",
			stdin: "a <= b\n",
			args:  []string{"parse"},
			want:  "Binary Le\n  Identifier a\n  Identifier b\n",
		},
		{
			name: "spans",
			args: []string{"parse", "-c", "-s", "--", "-x"},
			want: "Unary(Neg, prefix, Identifier(x) @1..2) @0..2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v, stderr = %s", err, errOut)
			}
			if out != tt.want {
				t.Errorf("stdout = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestParseCommandDiagnostic(t *testing.T) {
	_, errOut, err := execute(t, "", "parse", "1 +")
	if err == nil {
		t.Fatal("Execute() error = nil")
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("ExitCode() = %d, want 1", code)
	}

	for _, want := range []string{
		"error[EXPR_UNEXPECTED_EOF]:",
		"line 1, column 4",
		"1 +",
		"^ expected expression but found end of input",
	} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
	if strings.Contains(errOut, "error: ") {
		t.Errorf("diagnostic printed twice:\n%s", errOut)
	}
}

func TestParseCommandTrailingInput(t *testing.T) {
	_, errOut, err := execute(t, "", "parse", "a b")
	if ExitCode(err) != 1 || !strings.Contains(errOut, "error[EXPR_TRAILING_INPUT]:") {
		t.Errorf("err = %v, stderr = %s", err, errOut)
	}

	out, errOut, err := execute(t, "", "parse", "--partial", "--compact", "a b")
	if err != nil {
		t.Fatalf("Execute(--partial) error = %v", err)
	}
	if out != "Identifier(a)\n" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, `remaining input "b"`) {
		t.Errorf("stderr = %q, want note about remaining input", errOut)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdwexpr.yaml")
	if err := os.WriteFile(path, []byte("parser:\n  max_depth: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, errOut, err := execute(t, "", "--config", path, "parse", "((1))")
	if err == nil {
		t.Fatal("Execute() error = nil, want nesting error")
	}
	if !strings.Contains(errOut, "EXPR_NESTING_DEPTH") {
		t.Errorf("stderr = %s", errOut)
	}

	_, errOut, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "parse", "1")
	if code := ExitCode(err); code != 2 {
		t.Errorf("missing config ExitCode() = %d, want 2 (err %v)", code, err)
	}
	if !strings.Contains(errOut, "error:") {
		t.Errorf("stderr = %q, want error line", errOut)
	}
}

func TestVersionAndUsageErrors(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "mdwexpr v"+Version) {
		t.Errorf("version output = %q", out)
	}

	_, _, err = execute(t, "", "parse", "--no-such-flag", "1")
	if code := ExitCode(err); code != 2 {
		t.Errorf("unknown flag ExitCode() = %d, want 2", code)
	}

	_, _, err = execute(t, "", "--log-format", "xml", "parse", "1")
	if code := ExitCode(err); code != 2 {
		t.Errorf("bad log format ExitCode() = %d, want 2", code)
	}
}

func TestCaretIndent(t *testing.T) {
	tests := []struct {
		text   string
		column int
		want   string
	}{
		{"1 +", 4, "   "},
		{"\tab", 3, "\t "},
		{"é+", 2, " "},
		{"", 3, "  "},
	}
	for _, tt := range tests {
		if got := caretIndent(tt.text, tt.column); got != tt.want {
			t.Errorf("caretIndent(%q, %d) = %q, want %q", tt.text, tt.column, got, tt.want)
		}
	}
}

func TestParseFile(t *testing.T) {
	logger = mdwlog.Discard()
	engine, err := expr.New(expr.Options{Logger: mdwlog.Discard(), RequireFullInput: true})
	if err != nil {
		t.Fatalf("expr.New() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "expr.txt")
	if err := os.WriteFile(path, []byte("f(1)\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	parseFile(out, errOut, engine, path, outputFlags{compact: true})
	if !strings.Contains(out.String(), "Call(f, Number(1))") {
		t.Errorf("stdout = %q", out.String())
	}

	if err := os.WriteFile(path, []byte("f(1"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	out.Reset()
	parseFile(out, errOut, engine, path, outputFlags{compact: true})
	if !strings.Contains(errOut.String(), "EXPR_UNEXPECTED_EOF") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestCommandFlagsAreIndependent(t *testing.T) {
	parseFlags, watchFlags = outputFlags{}, outputFlags{}
	t.Cleanup(func() { parseFlags, watchFlags = outputFlags{}, outputFlags{} })

	for _, name := range []string{"compact", "spans", "partial"} {
		if err := watchCmd.Flags().Set(name, "true"); err != nil {
			t.Fatalf("watch Set(%q) error = %v", name, err)
		}
	}
	if parseFlags != (outputFlags{}) {
		t.Errorf("parse flags changed by watch flags: %+v", parseFlags)
	}
	if watchFlags != (outputFlags{compact: true, spans: true, partial: true}) {
		t.Errorf("watch flags = %+v", watchFlags)
	}

	if err := parseCmd.Flags().Set("compact", "false"); err != nil {
		t.Fatalf("parse Set(compact) error = %v", err)
	}
	if !watchFlags.compact {
		t.Error("watch --compact reset by parse --compact")
	}
}

func TestWatchFileReparsesOnWrite(t *testing.T) {
	logger = mdwlog.Discard()

	dir := t.TempDir()
	path := filepath.Join(dir, "expr.txt")
	if err := os.WriteFile(path, []byte("1"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, watcher, path, func() { changed <- struct{}{} })
	}()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(path, []byte("1 + 2"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for the watched file")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchFile() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile() did not stop after cancel")
	}
}
