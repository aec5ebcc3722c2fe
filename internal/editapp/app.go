// internal/editapp/app.go
package editapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"editfa-core/edit"
	"editfa-core/fasta"

	"editfa/internal/cli"
	"editfa/internal/clibase"
	"editfa/internal/cmdutil"
	"editfa/internal/config"
	"editfa/internal/manifest"
	"editfa/internal/metrics"
	"editfa/internal/report"
	"editfa/internal/writers"
	"editfa/pkg/api"
)

const name = "editfa"

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2
	exitIO       = 3
	exitCanceled = 130
)

type variantRun struct {
	variant  edit.Variant
	store    *edit.Store
	outcomes []edit.Outcome
}

// RunContext is the editfa entry point. It returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return code
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitIO
		}
		return code
	}

	env, err := config.LoadEdit()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, argv, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(exitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}
	if opts.Version {
		clibase.PrintVersion(outw, name)
		return flush(exitOK)
	}

	code := run(ctx, opts, outw, stderr)
	return flush(code)
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, opts cli.Options, out io.Writer, stderr io.Writer) int {
	fail := func(code int, err error) int {
		if errors.Is(err, context.Canceled) {
			return exitCanceled
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return code
	}

	comma, err := manifest.Delimiter(opts.Delimiter, opts.ManifestPath)
	if err != nil {
		return fail(exitUsage, err)
	}
	paths, err := writers.OutputPaths(opts.SeqPath, opts.OutPrefix, opts.Variants)
	if err != nil {
		return fail(exitUsage, err)
	}

	records, err := manifest.LoadFile(opts.ManifestPath, comma)
	if err != nil {
		return fail(exitUsage, err)
	}
	seqs, err := fasta.ReadFileCtx(ctx, opts.SeqPath)
	if err != nil {
		return fail(exitUsage, err)
	}
	src, dups := writers.StoreFromFASTA(seqs)
	if dups > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "%d duplicate sequence IDs in %s; later records replaced earlier ones", dups, opts.SeqPath)
	}
	cmdutil.Infof(stderr, opts.Quiet, "loaded %d manifest rows and %d sequences", len(records), src.Len())

	rec := metrics.New()
	rec.Rows.Set(float64(len(records)))
	rec.Sequences.Set(float64(src.Len()))

	runs, err := applyVariants(ctx, src, records, opts.Variants)
	if err != nil {
		return fail(exitUsage, err)
	}

	ambiguous := 0
	for _, r := range runs {
		rec.Observe(r.variant, r.outcomes)
		s := edit.Summarize(r.outcomes)
		ambiguous = max(ambiguous, s.Ambiguous)
		cmdutil.Infof(stderr, opts.Quiet, "%s: %d applied, %d no matching sequence, %d no matching offset",
			r.variant, s.Applied, s.NoSequence, s.NoOffset)
	}
	if ambiguous > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "%d rows matched more than one sequence ID by prefix; the first match in file order was used", ambiguous)
	}

	for _, r := range runs {
		if err := writers.WriteStore(paths[r.variant], r.store, opts.Wrap); err != nil {
			return fail(exitIO, err)
		}
	}
	if opts.ReportPath != "" {
		if err := writeReport(opts, out, runs); err != nil {
			return fail(exitIO, err)
		}
	}
	if opts.MetricsPath != "" {
		if err := rec.WriteTextfile(opts.MetricsPath); err != nil {
			return fail(exitIO, fmt.Errorf("write metrics: %w", err))
		}
	}

	for _, r := range runs {
		if _, err := fmt.Fprintf(out, "%s file saved to: %s\n", title(r.variant.String()), paths[r.variant]); err != nil {
			if writers.IsBrokenPipe(err) {
				return exitOK
			}
			return fail(exitIO, err)
		}
	}
	return exitOK
}

// applyVariants runs each variant against its own clone of src concurrently.
// src is only read while the runs are in flight.
func applyVariants(ctx context.Context, src *edit.Store, records []edit.Record, variants []edit.Variant) ([]variantRun, error) {
	runs := make([]variantRun, len(variants))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dst, outs, err := edit.RunVariant(src, records, v)
			if err != nil {
				return err
			}
			runs[i] = variantRun{variant: v, store: dst, outcomes: outs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

func writeReport(opts cli.Options, out io.Writer, runs []variantRun) error {
	var rows []api.OutcomeV1
	for _, r := range runs {
		rows = append(rows, report.ToAPI(r.outcomes)...)
	}
	if opts.ReportPath == "-" {
		return report.WriteTo(opts.ReportFormat, out, rows)
	}
	if err := report.Write(opts.ReportFormat, opts.ReportPath, rows); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
