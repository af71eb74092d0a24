// Package flagx lets independent loaders pick their own flags out of os.Args
// without tripping over flags owned by someone else.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the allowed flags from args, together with their
// values. Both "-f value" and "-f=value" forms are recognised; a token that
// starts with '-' is never consumed as a value.
func FilterArgs(args []string, allowed ...string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		known[name] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := known[name]; keep {
				out = append(out, arg)
			}
			continue
		}

		if _, keep := known[arg]; !keep {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// Lookup returns the value of the last occurrence of any of the given string
// flags (names without the leading dash), or "" when none is set.
func Lookup(args []string, names ...string) string {
	dashed := make([]string, 0, 2*len(names))
	for _, n := range names {
		dashed = append(dashed, "-"+n, "--"+n)
	}

	var value string
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, dashed...))
	return value
}

// ConfigFile returns the config file path given with -c or -config.
func ConfigFile(args []string) string {
	return Lookup(args, "c", "config")
}

// EnvFile returns the dotenv file path given with -e or -env.
func EnvFile(args []string) string {
	return Lookup(args, "e", "env")
}
