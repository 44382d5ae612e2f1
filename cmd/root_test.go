package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runRoot executes the root command against base and returns stdout.
func runRoot(t *testing.T, base string, args ...string) (string, error) {
	t.Helper()
	old := programDir
	programDir = func() (string, error) { return base, nil }
	defer func() { programDir = old }()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{}, args...))
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRunsPipeline(t *testing.T) {
	base := t.TempDir()
	content := "temp,humidity,site\n21.5,40,north\n23.0,42,south\n19.8,55,north\n"
	if err := os.WriteFile(filepath.Join(base, "datos_sinteticos.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	out, err := runRoot(t, base)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Shape (rows, columns): (3, 3)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	for _, name := range []string{"hist_temp.png", "box_humidity.png", "correlation_matrix.png"} {
		if _, err := os.Stat(filepath.Join(base, "output", name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestRootMissingInputIsSoft(t *testing.T) {
	base := t.TempDir()
	out, err := runRoot(t, base)
	if err != nil {
		t.Fatalf("missing input should not fail the command: %v", err)
	}
	if !strings.Contains(out, "Input file not found") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	if _, err := runRoot(t, t.TempDir(), "extra.csv"); err == nil {
		t.Fatalf("expected error for positional argument")
	}
}
