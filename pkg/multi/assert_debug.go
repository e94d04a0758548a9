//go:build archdb_debug

package multi

// assertInvariant panics when cond is false. It is compiled in only with
// the archdb_debug build tag.
func assertInvariant(cond bool, msg string) {
	if !cond {
		panic("invariant violated: " + msg)
	}
}
