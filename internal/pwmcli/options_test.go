package pwmcli

import (
	"errors"
	"flag"
	"testing"

	"editfa/internal/clibase"
	"editfa/internal/config"
)

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs(flag.NewFlagSet("t", flag.ContinueOnError), []string{"in.pwm", "out.fq", "--threads", "4"}, config.PWM{})
	if err != nil {
		t.Fatal(err)
	}
	if o.PWMPath != "in.pwm" || o.FASTQPath != "out.fq" || o.Threads != 4 {
		t.Fatalf("bad parse %+v", o)
	}
}

func TestParseArgsEnvDefault(t *testing.T) {
	o, err := ParseArgs(flag.NewFlagSet("t", flag.ContinueOnError), []string{"in.pwm", "out.fq"}, config.PWM{Threads: 6})
	if err != nil || o.Threads != 6 {
		t.Fatalf("threads=%d err=%v", o.Threads, err)
	}
}

func TestParseArgsErrors(t *testing.T) {
	if _, err := ParseArgs(flag.NewFlagSet("t", flag.ContinueOnError), []string{"in.pwm"}, config.PWM{}); !errors.Is(err, clibase.ErrUsage) {
		t.Fatalf("want ErrUsage, got %v", err)
	}
	if _, err := ParseArgs(flag.NewFlagSet("t", flag.ContinueOnError), []string{"-t", "-1", "a", "b"}, config.PWM{}); err == nil {
		t.Fatalf("expected negative threads error")
	}
}
