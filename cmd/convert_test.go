package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signalnine/benchpoints/internal/config"
	"github.com/signalnine/benchpoints/internal/result"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func makeRun(t *testing.T, base, name, content string) {
	t.Helper()
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, result.InputName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveBaseDir(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args uses config", nil, "./space"},
		{"empty arg uses config", []string{""}, "./space"},
		{"explicit arg wins", []string{"/tmp/results"}, "/tmp/results"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveBaseDir(cfg, tt.args); got != tt.want {
				t.Errorf("resolveBaseDir(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestConvertCommand(t *testing.T) {
	base := t.TempDir()
	makeRun(t, base, "run-1", "foo: 1\nbar:baz\nx:y:z:-5\n")

	if _, err := execute(t, "convert", "--config", filepath.Join(base, "none.yaml"), base); err == nil {
		t.Fatal("expected error for explicitly named missing config")
	}

	out, err := execute(t, "convert", "--format", "markdown", base)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "| run-1 | 3 | 2 | 1 | ok |") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	data, err := os.ReadFile(result.OutputPath(base, "run-1"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "(0,1)\n(2,-5)\n" {
		t.Errorf("got %q", data)
	}
}

func TestConvertCommandMissingInput(t *testing.T) {
	base := t.TempDir()
	os.Mkdir(filepath.Join(base, "broken"), 0o755)

	if _, err := execute(t, "convert", "-q", base); err == nil {
		t.Error("expected error for run directory without input")
	}
}

func TestConvertCommandKeepGoing(t *testing.T) {
	base := t.TempDir()
	makeRun(t, base, "good", "x:1\n")
	os.Mkdir(filepath.Join(base, "broken"), 0o755)

	out, err := execute(t, "convert", "--keep-going", "--sort", base)
	if err == nil {
		t.Error("expected error to be reported after keep-going run")
	}
	if !strings.Contains(out, "good") || !strings.Contains(out, "broken") {
		t.Errorf("summary should list both directories:\n%s", out)
	}
	if _, statErr := os.Stat(result.OutputPath(base, "good")); statErr != nil {
		t.Errorf("good should have been converted: %v", statErr)
	}
}

func TestConvertCommandBadFormat(t *testing.T) {
	base := t.TempDir()
	if _, err := execute(t, "convert", "--format", "csv", base); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConvertCommandUsesConfig(t *testing.T) {
	base := t.TempDir()
	runs := filepath.Join(base, "runs")
	makeRun(t, runs, "b", "x:2\n")
	makeRun(t, runs, "a", "x:1\n")
	cfgPath := filepath.Join(base, "benchpoints.yaml")
	os.WriteFile(cfgPath, []byte("results:\n  dir: "+runs+"\nconvert:\n  sort: true\nreport:\n  format: markdown\n"), 0o644)

	out, err := execute(t, "convert", "--config", cfgPath)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	ia := strings.Index(out, "| a |")
	ib := strings.Index(out, "| b |")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("expected sorted markdown summary:\n%s", out)
	}
}

func TestListCommand(t *testing.T) {
	base := t.TempDir()
	makeRun(t, base, "run-1", "x:1\n")
	os.Mkdir(filepath.Join(base, "run-2"), 0o755)

	out, err := execute(t, "list", "--sort", base)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "run-1 (input: yes, points: no)") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "run-2 (input: no, points: no)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCheckCommand(t *testing.T) {
	base := t.TempDir()
	makeRun(t, base, "run-1", "x:1\n")

	if _, err := execute(t, "check", base); err == nil {
		t.Error("expected check to fail before conversion")
	}
	if _, err := execute(t, "convert", "-q", base); err != nil {
		t.Fatalf("convert: %v", err)
	}
	out, err := execute(t, "check", base)
	if err != nil {
		t.Fatalf("check after convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "up-to-date") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestReportCommand(t *testing.T) {
	base := t.TempDir()
	makeRun(t, base, "run-1", "a:4\nb:-2\nc\n")
	if _, err := execute(t, "convert", "-q", base); err != nil {
		t.Fatalf("convert: %v", err)
	}
	out, err := execute(t, "report", "--format", "markdown", base)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out, "| run-1 | 2 | 0..1 | -2 | 4 | ok |") {
		t.Errorf("unexpected report:\n%s", out)
	}
}
