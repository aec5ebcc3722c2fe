// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"editfa/internal/cliutil"
	"editfa/internal/version"
)

// ErrUsage marks argument errors that should be followed by the usage text.
var ErrUsage = errors.New("usage")

// Common holds flags shared by editfa, pwm2fastq and fqdiff.
type Common struct {
	Quiet   bool
	Version bool
	Help    bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress non-essential messages")
	fs.BoolVar(&c.Quiet, "q", c.Quiet, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	fs.BoolVar(&c.Help, "h", false, "show this help message")
}

// Parse splits flags from positionals (flags may follow positionals),
// parses the flags, and returns the positionals. Help yields flag.ErrHelp.
func Parse(fs *flag.FlagSet, c *Common, argv []string) ([]string, error) {
	flagArgs, pos := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	pos = append(pos, fs.Args()...)
	if c.Help {
		return pos, flag.ErrHelp
	}
	return pos, nil
}

// Positionals checks the positional count.
func Positionals(pos []string, names ...string) error {
	if len(pos) != len(names) {
		return fmt.Errorf("%w: expected %d arguments (%v), got %d", ErrUsage, len(names), names, len(pos))
	}
	return nil
}

// UsageHeader installs fs.Usage with a shared header, a synopsis line and the
// flag defaults.
func UsageHeader(fs *flag.FlagSet, name, summary, synopsis string) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – %s\n\n", name, summary)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s %s\n\nFlags:\n", name, synopsis)
		fs.PrintDefaults()
	}
}

// PrintVersion writes the standard version line.
func PrintVersion(w io.Writer, name string) {
	_, _ = fmt.Fprintf(w, "%s version %s\n", name, version.Version)
}
