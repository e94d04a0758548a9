//go:build !archdb_debug

package multi

func assertInvariant(bool, string) {}
