package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	dotEnvFile     = ".env"
	dotEnvFileToml = ".env.toml"
)

func loadDotenv(path string) (map[string]any, error) {
	vs := map[string]any{}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		k = strings.TrimSpace(strings.TrimPrefix(k, "export "))
		if k == "" {
			continue
		}
		vs[k] = value(v)
	}
	return vs, scanner.Err()
}

func loadDotenvToml(path string) (map[string]any, error) {
	vs := map[string]any{}
	_, err := toml.DecodeFile(path, &vs)
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// LoadDotenv looks up ".env" and ".env.toml" files in dir and all of its parents.
// Files closer to dir win over files further up; within one directory ".env" wins over ".env.toml".
func LoadDotenv(dir string) map[string]any {
	all := map[string]any{}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return all
	}
	for {
		if vs, err := loadDotenv(filepath.Join(dir, dotEnvFile)); err == nil {
			merge(vs, all)
		}
		if vs, err := loadDotenvToml(filepath.Join(dir, dotEnvFileToml)); err == nil {
			merge(vs, all)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return all
}

// merge merges "from" into "to", keeping already existing values
func merge(from map[string]any, to map[string]any) {
	for k, v := range from {
		if _, ok := to[k]; !ok {
			to[k] = v
		}
	}
}
