// internal/diffcli/options.go
package diffcli

import (
	"flag"

	"editfa/internal/clibase"
)

type Options struct {
	clibase.Common

	APath, BPath string
	Output       string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageHeader(fs, name, "list FASTQ records whose sequence differs between two files",
		"[-o out.txt] <a.fastq> <b.fastq>")
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)
	fs.StringVar(&opt.Output, "output", "-", "output file ('-' = stdout)")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")

	pos, err := clibase.Parse(fs, &opt.Common, argv)
	if err != nil || opt.Version {
		return opt, err
	}
	if err := clibase.Positionals(pos, "fastq_a", "fastq_b"); err != nil {
		return opt, err
	}
	opt.APath, opt.BPath = pos[0], pos[1]
	return opt, nil
}
