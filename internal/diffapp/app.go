// internal/diffapp/app.go
package diffapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"editfa-core/fasta"
	"editfa-core/fastq"

	"editfa/internal/clibase"
	"editfa/internal/cmdutil"
	"editfa/internal/diffcli"
	"editfa/internal/writers"
)

const name = "fqdiff"

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2
	exitIO       = 3
	exitCanceled = 130
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return code
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return exitIO
		}
		return code
	}

	fs := diffcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	opts, err := diffcli.ParseArgs(fs, argv)
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

	var a, b *fastq.Index
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { a, err = load(gctx, opts.APath); return })
	g.Go(func() (err error) { b, err = load(gctx, opts.BPath); return })
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return exitCanceled
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	diff := fastq.Diff(a, b)
	if err := writeList(opts.Output, outw, diff); err != nil {
		if writers.IsBrokenPipe(err) {
			return flush(exitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitIO
	}
	if code := flush(exitOK); code != exitOK {
		return code
	}
	if opts.Output != "-" {
		cmdutil.Infof(stderr, opts.Quiet, "%d differing records written to %s", len(diff), opts.Output)
	}
	return exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func load(ctx context.Context, path string) (*fastq.Index, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	x := fastq.NewIndex()
	if err := fastq.StreamCtx(ctx, rc, func(r fastq.Record) error {
		x.Add(r)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}

func writeList(path string, stdout io.Writer, lines []string) error {
	if path == "-" {
		for _, l := range lines {
			if _, err := fmt.Fprintln(stdout, l); err != nil {
				return err
			}
		}
		return nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	for _, l := range lines {
		if _, err = bw.WriteString(l); err != nil {
			break
		}
		if err = bw.WriteByte('\n'); err != nil {
			break
		}
	}
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
