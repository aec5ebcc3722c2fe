// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"strings"

	"editfa-core/edit"

	"editfa/internal/clibase"
	"editfa/internal/config"
	"editfa/internal/report"
)

// Options holds all editfa flags and arguments.
type Options struct {
	clibase.Common

	ManifestPath string
	SeqPath      string

	Variants  []edit.Variant
	OutPrefix string
	Wrap      int
	Delimiter string

	ReportPath   string
	ReportFormat string
	MetricsPath  string
}

// NewFlagSet returns a ContinueOnError FlagSet with the editfa usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageHeader(fs, name, "apply context-matched point edits to FASTA records",
		"[flags] <manifest.csv> <sequences.fasta>")
	return fs
}

// ParseArgs registers and parses all flags with env-derived defaults, and
// validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string, env config.Edit) (Options, error) {
	opt := Options{Common: clibase.Common{Quiet: env.Quiet}}
	variants := strings.Join([]string{edit.Unedited.String(), edit.Edited.String()}, ",")

	clibase.Register(fs, &opt.Common)
	fs.StringVar(&variants, "variants", variants, "comma-separated variants to produce: unedited | edited")
	fs.StringVar(&opt.OutPrefix, "out-prefix", "", "output path prefix (default: sequence file path without extension)")
	fs.IntVar(&opt.Wrap, "wrap", env.Wrap, "FASTA line width (0 = single line)")
	fs.StringVar(&opt.Delimiter, "delimiter", env.Delimiter, "manifest delimiter: comma | tab | <char> (default: by extension)")
	fs.StringVar(&opt.ReportPath, "report", "", "write per-row edit outcomes to this path ('-' = stdout)")
	fs.StringVar(&opt.ReportFormat, "report-format", env.ReportFormat, "report format: "+strings.Join(report.Formats(), " | "))
	fs.StringVar(&opt.MetricsPath, "metrics", env.MetricsFile, "write Prometheus textfile metrics to this path")

	pos, err := clibase.Parse(fs, &opt.Common, argv)
	if err != nil || opt.Version {
		return opt, err
	}
	if err := clibase.Positionals(pos, "manifest", "sequences"); err != nil {
		return opt, err
	}
	opt.ManifestPath, opt.SeqPath = pos[0], pos[1]

	opt.Variants, err = parseVariants(variants)
	if err != nil {
		return opt, err
	}
	if opt.Wrap < 0 {
		return opt, fmt.Errorf("--wrap must be ≥ 0")
	}
	if opt.ReportPath != "" {
		if _, ok := report.Sinks[opt.ReportFormat]; !ok {
			return opt, fmt.Errorf("invalid --report-format %q", opt.ReportFormat)
		}
		if _, ok := report.Streams[opt.ReportFormat]; opt.ReportPath == "-" && !ok {
			return opt, fmt.Errorf("--report-format %s needs a file path", opt.ReportFormat)
		}
	}
	if opt.ManifestPath == "-" && opt.SeqPath == "-" {
		return opt, fmt.Errorf("manifest and sequences cannot both be read from stdin")
	}
	return opt, nil
}

// parseVariants rejects unknown selectors and duplicates; order is kept.
func parseVariants(s string) ([]edit.Variant, error) {
	var out []edit.Variant
	seen := map[edit.Variant]bool{}
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := edit.ParseVariant(f)
		if err != nil {
			return nil, err
		}
		if seen[v] {
			return nil, fmt.Errorf("--variants lists %q twice", f)
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--variants must name at least one variant")
	}
	return out, nil
}
