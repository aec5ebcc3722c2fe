// internal/pwmcli/options.go
package pwmcli

import (
	"errors"
	"flag"

	"editfa/internal/clibase"
	"editfa/internal/config"
)

type Options struct {
	clibase.Common

	PWMPath   string
	FASTQPath string
	Threads   int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageHeader(fs, name, "convert position weight matrices to FASTQ",
		"[--threads N] <in.pwm> <out.fastq>")
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string, env config.PWM) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common)
	fs.IntVar(&opt.Threads, "threads", env.Threads, "worker threads (0 = all CPUs)")
	fs.IntVar(&opt.Threads, "t", env.Threads, "alias of --threads")

	pos, err := clibase.Parse(fs, &opt.Common, argv)
	if err != nil || opt.Version {
		return opt, err
	}
	if err := clibase.Positionals(pos, "pwm_file", "fastq_file"); err != nil {
		return opt, err
	}
	opt.PWMPath, opt.FASTQPath = pos[0], pos[1]
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}
