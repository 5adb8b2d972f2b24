package env

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
}

func TestLoadDotenv(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub_1", "sub_2")

	writeFile(t, filepath.Join(root, ".env"), `
# root settings
stop=20
lang = "de"
`)
	writeFile(t, filepath.Join(root, ".env.toml"), `
places = 3
json = true
`)
	writeFile(t, filepath.Join(sub, ".env"), `
export stop=12
values='3 1 2'
verbose
`)
	writeFile(t, filepath.Join(sub, ".env.toml"), `
stop = 99
start = -2
`)

	res := LoadDotenv(sub)
	exp := map[string]any{
		"stop":    "12",
		"values":  "3 1 2",
		"verbose": true,
		"start":   int64(-2),
		"lang":    "de",
		"places":  int64(3),
		"json":    true,
	}
	if !reflect.DeepEqual(exp, res) {
		t.Fatalf("want %v, have %v", exp, res)
	}
}

func TestLoadDotenvBrokenToml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env.toml"), `stop = = 3`)
	writeFile(t, filepath.Join(dir, ".env"), `start=1`)

	res := LoadDotenv(dir)
	if v, ok := res["start"]; !ok || v != "1" {
		t.Fatalf("want start=1, have %v", res)
	}
	if _, ok := res["stop"]; ok {
		t.Fatalf("broken toml must be ignored, have %v", res)
	}
}
