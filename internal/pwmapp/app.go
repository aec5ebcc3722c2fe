// internal/pwmapp/app.go
package pwmapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"editfa-core/fasta"
	"editfa-core/fastq"
	"editfa-core/pwm"

	"editfa/internal/clibase"
	"editfa/internal/cmdutil"
	"editfa/internal/config"
	"editfa/internal/pipeline"
	"editfa/internal/pwmcli"
	"editfa/internal/writers"
)

const name = "pwm2fastq"

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

	env, err := config.LoadPWM()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}
	fs := pwmcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	opts, err := pwmcli.ParseArgs(fs, argv, env)
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

	fail := func(code int, err error) int {
		if errors.Is(err, context.Canceled) {
			return exitCanceled
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return code
	}

	matrices, err := readMatrices(ctx, opts.PWMPath)
	if err != nil {
		return fail(exitUsage, err)
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	recs, err := pipeline.Map(ctx, pipeline.Config{Threads: thr}, matrices, convert)
	if err != nil {
		return fail(exitUsage, err)
	}

	if err := writeFASTQ(opts.FASTQPath, outw, recs); err != nil {
		if writers.IsBrokenPipe(err) {
			return flush(exitOK)
		}
		return fail(exitIO, err)
	}
	if code := flush(exitOK); code != exitOK {
		return code
	}
	cmdutil.Infof(stderr, opts.Quiet, "converted %d matrices with %d threads into %s", len(recs), thr, opts.FASTQPath)
	return exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// readMatrices loads every matrix in file order. A repeated header replaces
// the earlier matrix but keeps its position.
func readMatrices(ctx context.Context, path string) ([]pwm.Matrix, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var list []pwm.Matrix
	pos := map[string]int{}
	err = pwm.StreamCtx(ctx, rc, func(m pwm.Matrix) error {
		if i, ok := pos[m.ID]; ok {
			list[i] = m
			return nil
		}
		pos[m.ID] = len(list)
		list = append(list, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

func convert(_ context.Context, m pwm.Matrix) (fastq.Record, error) {
	seq, qual, err := pwm.Consensus(m)
	if err != nil {
		return fastq.Record{}, err
	}
	return fastq.Record{ID: m.ID, Description: m.ID, Seq: seq, Qual: qual}, nil
}

func writeFASTQ(path string, stdout io.Writer, recs []fastq.Record) error {
	var (
		w  io.Writer = stdout
		fh *os.File
	)
	if path != "-" {
		var err error
		if fh, err = os.Create(path); err != nil {
			return err
		}
		w = fh
	}
	fw := fastq.NewWriter(w)
	var err error
	for _, r := range recs {
		if err = fw.Write(r); err != nil {
			break
		}
	}
	if err == nil {
		err = fw.Flush()
	}
	if fh != nil {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil && path != "-" {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return err
}
