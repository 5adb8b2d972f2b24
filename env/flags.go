package env

import (
	"slices"
	"strings"
)

// ParseFlags parses (commandline) flags and returns them as key/value pairs
// together with the remaining positional arguments.
// The following forms are permitted:
// -flag     => just a boolean flag
// --flag    => double dashes are also permitted
// -flag=x   => single dash
// -flag x   => single dash, no equal
// --        => everything after is positional
// Names listed in boolFlags are always boolean; -flag x leaves x positional for them,
// while -flag=x still sets the value explicitly.
// A lone "-" or a negative number like "-3" is a value, not a flag.
func ParseFlags(args []string, boolFlags ...string) (map[string]any, []string) {
	fs := map[string]any{}
	var positional []string

	var currName string
	for i, arg := range args {
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		name, ok := flagName(arg)
		if !ok {
			if currName != "" {
				fs[currName] = arg
				currName = ""
			} else {
				positional = append(positional, arg)
			}
			continue
		}
		if currName != "" {
			// prev is a bool flag
			fs[currName] = true
			currName = ""
		}
		switch n, val, ok := strings.Cut(name, "="); {
		case ok:
			fs[n] = val
		case slices.Contains(boolFlags, name):
			fs[name] = true
		default:
			currName = name
		}
	}
	if currName != "" {
		fs[currName] = true
	}
	return fs, positional
}

func flagName(s string) (string, bool) {
	var name string
	switch {
	case strings.HasPrefix(s, "--"):
		name = strings.TrimPrefix(s, "--")
	case strings.HasPrefix(s, "-"):
		name = strings.TrimPrefix(s, "-")
	default:
		return "", false
	}
	if name == "" || (name[0] >= '0' && name[0] <= '9') || name[0] == '.' {
		return "", false
	}
	return name, true
}
