// statx prints mean and median of a number sequence.
//
// By default the sequence is 0..9. It can be changed with -start, -stop and -step,
// or replaced by explicit values given as positional arguments or via -values "3 1 2".
// All keys may also come from STATX_* environment variables or .env / .env.toml files.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mazzegi/log"
	"github.com/mazzegi/statx/env"
	"github.com/mazzegi/statx/errorx"
	"github.com/mazzegi/statx/mathx"
	"github.com/mazzegi/statx/report"
	"github.com/mazzegi/statx/slicesx"
	"github.com/mazzegi/statx/stats"
)

const envPrefix = "STATX_"

func main() {
	e, args := env.Load(env.DefaultSources(envPrefix, "json"))
	errorx.ExitWhen(run(os.Stdout, e, args))
}

type config struct {
	values []float64
	rng    mathx.Range[int]
	json   bool
	opts   report.Options
}

func configure(e env.Env, args []string) (config, error) {
	cfg := config{
		opts: report.DefaultOptions(),
	}
	g := errorx.NewGroup()
	js, err := e.BoolOrDefault("json", false)
	g.Append(err)
	cfg.json = js
	intVar := func(key string, def int) int {
		n, err := e.IntOrDefault(key, def)
		g.Append(err)
		return n
	}
	start := intVar("start", 0)
	stop := intVar("stop", 10)
	step := intVar("step", 1)
	cfg.opts.Places = intVar("places", cfg.opts.Places)
	lang, err := report.ParseLang(e.StringOrDefault("lang", "en"))
	g.Append(err)
	cfg.opts.Lang = lang
	if err := g.Error(); err != nil {
		return config{}, fmt.Errorf("configure: %w", err)
	}

	if s, ok := e.String("values"); ok && len(args) == 0 {
		args = strings.FieldsFunc(s, func(r rune) bool {
			return r == ';' || r == ' ' || r == '\t'
		})
	}
	if len(args) > 0 {
		fs, err := stats.Coerce(slicesx.Map(args, func(a string) any { return a }))
		if err != nil {
			return config{}, fmt.Errorf("values: %w", err)
		}
		cfg.values = fs
		return cfg, nil
	}

	rng, err := mathx.NewRange(start, stop, step)
	if err != nil {
		return config{}, fmt.Errorf("configure: %w", err)
	}
	cfg.rng = rng
	return cfg, nil
}

func run(w io.Writer, e env.Env, args []string) error {
	cfg, err := configure(e, args)
	if err != nil {
		return err
	}

	var summary stats.Summary
	if cfg.values != nil {
		log.Debugf("describe %d explicit values", len(cfg.values))
		summary, err = stats.Describe(cfg.values)
	} else {
		log.Debugf("describe range [%d, %d) step %d", cfg.rng.Start, cfg.rng.Stop, cfg.rng.Step)
		summary, err = stats.Describe(cfg.rng.Values())
	}
	if err != nil {
		return fmt.Errorf("describe: %w", err)
	}
	log.Infof("count=%d mean=%v median=%v", summary.Count, summary.Mean, summary.Median)

	if cfg.json {
		return report.JSON(w, summary)
	}
	return report.Text(w, summary, cfg.opts)
}
