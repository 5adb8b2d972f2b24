// Package env provides a uniform way of dealing with configuration from .env files, os.Environ and (command line) flags.
// Applications don't have to care about the source of a variable but just handle the values.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mazzegi/statx/convert"
)

type Env map[string]any

// Sources describes where Load picks up values. Later sources win:
// environment < dotenv files < flags.
type Sources struct {
	// Prefix selects the environment variables to consider. It is stripped and the
	// remaining key is lower-cased, so with Prefix "STATX_" STATX_STOP becomes "stop".
	Prefix    string
	Environ   []string
	Dir       string
	Args      []string
	// BoolFlags never take the following argument as their value, so "-json 5 3" keeps 5 and 3 positional.
	BoolFlags []string
}

// DefaultSources reads from the process environment, the working directory and os.Args.
func DefaultSources(prefix string, boolFlags ...string) Sources {
	wd, _ := os.Getwd()
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return Sources{
		Prefix:    prefix,
		Environ:   os.Environ(),
		Dir:       wd,
		Args:      args,
		BoolFlags: boolFlags,
	}
}

// Load merges all sources into one Env and returns the positional arguments found in src.Args.
func Load(src Sources) (Env, []string) {
	env := Env{}
	for _, osev := range src.Environ {
		k, v, _ := strings.Cut(osev, "=")
		if src.Prefix != "" {
			if !strings.HasPrefix(k, src.Prefix) {
				continue
			}
			k = strings.ToLower(strings.TrimPrefix(k, src.Prefix))
		}
		env.add(k, value(v))
	}
	if src.Dir != "" {
		for k, v := range LoadDotenv(src.Dir) {
			env.add(k, v)
		}
	}
	flags, args := ParseFlags(src.Args, src.BoolFlags...)
	for k, v := range flags {
		env.add(k, v)
	}
	return env, args
}

func (env Env) add(k string, v any) {
	k = strings.TrimSpace(k)
	if k == "" {
		return
	}
	env[k] = v
}

// value turns a raw string into an env value. An empty value marks a set boolean.
func value(s string) any {
	s = unquote(strings.TrimSpace(s))
	if s == "" {
		return true
	}
	return s
}

func unquote(s string) string {
	if len(s) >= 2 && ((strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`))) {
		return s[1 : len(s)-1]
	}
	return s
}

// String returns the string-value for the passed key if exists, otherwise, false
func (env Env) String(key string) (string, bool) {
	s, ok := env[key]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", s), true
}

// Int returns the int-value for the passed key. Values that don't parse as int are reported as error.
func (env Env) Int(key string) (int, bool, error) {
	v, ok := env[key]
	if !ok {
		return 0, false, nil
	}
	switch v := v.(type) {
	case int64:
		return int(v), true, nil
	case int:
		return v, true, nil
	}
	s := fmt.Sprintf("%v", v)
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %q is not an int", key, s)
	}
	return int(n), true, nil
}

// Bool returns the bool-value for the passed key. Values that are no bool are reported as error.
func (env Env) Bool(key string) (bool, bool, error) {
	v, ok := env[key]
	if !ok {
		return false, false, nil
	}
	b, ok := convert.ParseBool(v)
	if !ok {
		return false, true, fmt.Errorf("%s: %q is not a bool", key, fmt.Sprintf("%v", v))
	}
	return b, true, nil
}

// StringOrDefault first tries to lookup the passed key, otherwise return def
func (env Env) StringOrDefault(key string, def string) string {
	if v, ok := env.String(key); ok {
		return v
	}
	return def
}

// IntOrDefault returns def if key is not set. A set but malformed value is an error.
func (env Env) IntOrDefault(key string, def int) (int, error) {
	n, ok, err := env.Int(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return n, nil
}

// BoolOrDefault returns def if key is not set. A set but malformed value is an error.
func (env Env) BoolOrDefault(key string, def bool) (bool, error) {
	b, ok, err := env.Bool(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return b, nil
}
