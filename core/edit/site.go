// core/edit/site.go
package edit

// Offsets is the fixed trial order around a nominal position. The order
// matters: when more than one offset matches, the first one wins.
var Offsets = [...]int{-1, 0, 1}

// ResolveSite finds the index of r's site in bases. Each offset in Offsets is
// tried against the context triple (upstream, reference, downstream); a
// candidate whose neighbours fall outside bases is a non-match for that
// offset. Comparisons are case-insensitive.
func ResolveSite(bases []byte, r Record) (idx, offset int, ok bool) {
	ref, up, down := upper(r.Reference), upper(r.Upstream), upper(r.Downstream)
	for _, off := range Offsets {
		i := r.Position + off
		if i-1 < 0 || i+1 >= len(bases) {
			continue
		}
		if upper(bases[i]) == ref && upper(bases[i-1]) == up && upper(bases[i+1]) == down {
			return i, off, true
		}
	}
	return -1, 0, false
}
