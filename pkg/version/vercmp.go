package version

import "strings"

// Vercmp compares two pacman version strings of the form
// [epoch:]pkgver[-pkgrel]. It returns -1, 0 or 1 like strings.Compare.
// Any input is accepted; malformed strings are still ordered.
func Vercmp(a, b string) int {
	if a == b {
		return 0
	}

	epochA, verA, relA := splitEVR(a)
	epochB, verB, relB := splitEVR(b)

	if ret := rpmvercmp(epochA, epochB); ret != 0 {
		return ret
	}
	if ret := rpmvercmp(verA, verB); ret != 0 {
		return ret
	}
	if relA != "" && relB != "" {
		return rpmvercmp(relA, relB)
	}
	return 0
}

// splitEVR splits a version string into epoch, version and release.
// The epoch defaults to "0" and the release is empty when absent.
func splitEVR(evr string) (epoch, ver, rel string) {
	i := 0
	for i < len(evr) && isDigit(evr[i]) {
		i++
	}

	rest := evr
	epoch = "0"
	if i < len(evr) && evr[i] == ':' {
		if i > 0 {
			epoch = evr[:i]
		}
		rest = evr[i+1:]
		i = 0
	}

	// the release separator is searched for after the leading digits only
	if dash := strings.LastIndexByte(rest[i:], '-'); dash >= 0 {
		return epoch, rest[:i+dash], rest[i+dash+1:]
	}
	return epoch, rest, ""
}

// rpmvercmp implements the segment-wise comparison used by rpm and pacman.
func rpmvercmp(a, b string) int {
	if a == b {
		return 0
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		sepA, sepB := i, j
		for i < len(a) && !isAlnum(a[i]) {
			i++
		}
		for j < len(b) && !isAlnum(b[j]) {
			j++
		}

		if i >= len(a) || j >= len(b) {
			break
		}

		// different separator lengths decide the comparison on their own
		if i-sepA != j-sepB {
			if i-sepA < j-sepB {
				return -1
			}
			return 1
		}

		segA, segB := i, j
		numeric := isDigit(a[i])
		if numeric {
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
		} else {
			for i < len(a) && isAlpha(a[i]) {
				i++
			}
			for j < len(b) && isAlpha(b[j]) {
				j++
			}
		}

		// numeric segments are always newer than alpha segments
		if segB == j {
			if numeric {
				return 1
			}
			return -1
		}

		partA, partB := a[segA:i], b[segB:j]
		if numeric {
			partA = strings.TrimLeft(partA, "0")
			partB = strings.TrimLeft(partB, "0")
			if len(partA) != len(partB) {
				if len(partA) > len(partB) {
					return 1
				}
				return -1
			}
		}

		if ret := strings.Compare(partA, partB); ret != 0 {
			return ret
		}
	}

	if i >= len(a) && j >= len(b) {
		return 0
	}

	// a remaining alpha segment never beats an empty one
	if (i >= len(a) && !isAlpha(b[j])) || (i < len(a) && isAlpha(a[i])) {
		return -1
	}
	return 1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isDigit(c) || isAlpha(c)
}
