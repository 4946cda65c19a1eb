package checkdigit

// Sanitize copies the alphabet characters of in into dst, upper-casing
// letters for alphanumeric schemes, and reports whether exactly s.Length
// characters were found.
//
// Scanning stops at the first character past s.Length, in which case the
// returned count is s.Length+1. dst must hold at least s.Length bytes.
func (s Scheme) Sanitize(dst []byte, in string) (int, bool) {
	n := sanitize(dst, in, s.Alphabet, s.Length)
	return n, n == s.Length
}

func sanitize(dst []byte, in string, a Alphabet, limit int) int {
	n := 0
	for i := 0; i < len(in); i++ {
		c, ok := a.accept(in[i])
		if !ok {
			continue
		}
		if n == limit {
			return limit + 1
		}
		dst[n] = c
		n++
	}
	return n
}

// AllSame reports whether every byte of b equals the first.
// An empty slice is not degenerate.
func AllSame(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	first := b[0]
	for _, c := range b[1:] {
		if c != first {
			return false
		}
	}
	return true
}
