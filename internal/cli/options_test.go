// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"

	"editfa-core/edit"

	"editfa/internal/clibase"
	"editfa/internal/config"
)

func defaults() config.Edit { return config.Edit{Wrap: 60, ReportFormat: "tsv"} }

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args, defaults())
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestPositionalsOK(t *testing.T) {
	o := mustParse(t, "edits.csv", "genes.fa")
	if o.ManifestPath != "edits.csv" || o.SeqPath != "genes.fa" {
		t.Fatalf("bad positionals %+v", o)
	}
	if len(o.Variants) != 2 || o.Variants[0] != edit.Unedited || o.Variants[1] != edit.Edited {
		t.Fatalf("default variants = %v", o.Variants)
	}
	if o.Wrap != 60 || o.ReportFormat != "tsv" {
		t.Fatalf("env defaults not applied: %+v", o)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "edits.csv", "genes.fa", "--variants", "edited", "--wrap", "0", "-q")
	if len(o.Variants) != 1 || o.Variants[0] != edit.Edited || o.Wrap != 0 || !o.Quiet {
		t.Fatalf("bad parse %+v", o)
	}
}

func TestWrongArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"edits.csv"}, {"a", "b", "c"}} {
		if _, err := ParseArgs(newFS(), args, defaults()); !errors.Is(err, clibase.ErrUsage) {
			t.Errorf("%v: want ErrUsage, got %v", args, err)
		}
	}
}

func TestInvalidVariantIsFatal(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--variants", "edited,reverted", "m.csv", "s.fa"}, defaults())
	if !errors.Is(err, edit.ErrInvalidVariant) {
		t.Fatalf("want ErrInvalidVariant, got %v", err)
	}
}

func TestDuplicateVariant(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--variants", "edited,edited", "m.csv", "s.fa"}, defaults()); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestReportValidation(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--report", "r.out", "--report-format", "xml", "m.csv", "s.fa"}, defaults()); err == nil {
		t.Fatalf("expected invalid report format")
	}
	if _, err := ParseArgs(newFS(), []string{"--report", "-", "--report-format", "sqlite", "m.csv", "s.fa"}, defaults()); err == nil {
		t.Fatalf("expected sqlite-to-stdout error")
	}
	o := mustParse(t, "--report", "r.jsonl", "--report-format", "jsonl", "m.csv", "s.fa")
	if o.ReportPath != "r.jsonl" || o.ReportFormat != "jsonl" {
		t.Fatalf("report flags %+v", o)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"}, defaults())
	if err != nil || !o.Version {
		t.Fatalf("version: %v %+v", err, o)
	}
}
