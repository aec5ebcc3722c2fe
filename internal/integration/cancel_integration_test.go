package integration

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"editfa/internal/editapp"
)

func TestCanceledContextExit130(t *testing.T) {
	dir := t.TempDir()
	csv := write(t, dir, "manifest.csv", manifestCSV)
	fa := write(t, dir, "big.fa", ">chr1\n"+strings.Repeat("ACGTACGTAC\n", 1<<16))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := editapp.RunContext(ctx, []string{"--out-prefix", filepath.Join(dir, "o"), csv, fa}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
