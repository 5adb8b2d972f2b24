// Package report renders a stats.Summary for humans or machines.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/mazzegi/statx/jsonx"
	"github.com/mazzegi/statx/mathx"
	"github.com/mazzegi/statx/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Options struct {
	// Places is the number of decimal places shown. Negative values print the full precision.
	Places int
	Lang   language.Tag
}

func DefaultOptions() Options {
	return Options{
		Places: 2,
		Lang:   language.English,
	}
}

// ParseLang parses a BCP 47 tag like "de" or "en-US".
func ParseLang(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", s, err)
	}
	return tag, nil
}

// Text writes one line per figure, with numbers formatted for opts.Lang.
func Text(w io.Writer, s stats.Summary, opts Options) error {
	p := message.NewPrinter(opts.Lang)
	lines := []struct {
		label string
		value float64
	}{
		{"mean", s.Mean},
		{"median", s.Median},
	}
	if _, err := p.Fprintf(w, "%-8s %d\n", "count", s.Count); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := p.Fprintf(w, "%-8s %s\n", l.label, number(p, l.value, opts.Places)); err != nil {
			return err
		}
	}
	return nil
}

func number(p *message.Printer, v float64, places int) string {
	if places < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Sprint(v)
	}
	return p.Sprintf(fmt.Sprintf("%%.%df", places), mathx.RoundPlaces(v, places))
}

// JSON writes the summary as indented json.
func JSON(w io.Writer, s stats.Summary) error {
	return jsonx.Encode(w, s, true)
}
