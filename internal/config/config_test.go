package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/eda-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	base := t.TempDir()
	c, err := config.Load(base)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := c.InputPath(), filepath.Join(base, "datos_sinteticos.csv"); got != want {
		t.Fatalf("input path: got %q, want %q", got, want)
	}
	if got, want := c.OutputPath(), filepath.Join(base, "output"); got != want {
		t.Fatalf("output path: got %q, want %q", got, want)
	}
	if c.Fallback() != ';' {
		t.Fatalf("fallback: got %q", c.Fallback())
	}
	if c.HeadRows != 5 || c.DuplicateSampleRows != 5 || c.TopValues != 10 {
		t.Fatalf("unexpected sizing: %+v", c)
	}
}

func TestLoadRejectsEmptyBase(t *testing.T) {
	if _, err := config.Load(""); err == nil {
		t.Fatalf("expected error for empty base dir")
	}
}

func TestYAMLDump(t *testing.T) {
	c, err := config.Load("/srv/eda")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := c.YAML()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	for _, want := range []string{"base_dir: /srv/eda", "input_file: datos_sinteticos.csv", "top_values: 10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\n") || !strings.HasPrefix(out, "{") {
		t.Fatalf("expected one flow-style line, got:\n%s", out)
	}
}
