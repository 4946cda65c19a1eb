package checkdigit

// value maps an accepted character to its checksum value. Letters are
// offset from '0' as well, so 'A' counts as 17 and 'Z' as 42; the
// alphanumeric CNPJ rules define it this way.
func value(c byte) int {
	return int(c) - '0'
}

// CheckDigit computes the modulo-11 check digit over prefix and returns it
// as an ASCII digit.
func (s Scheme) CheckDigit(prefix []byte) byte {
	n := len(prefix)
	sum := 0
	for i, c := range prefix {
		sum += value(c) * s.Weights.weight(n, i)
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

// Verify checks an already sanitized sequence. The first failing rule is
// reported: length, degenerate value, then each check digit in order.
func (s Scheme) Verify(b []byte) Reason {
	if len(b) != s.Length {
		return ReasonLength
	}
	if AllSame(b) {
		return ReasonDegenerate
	}
	first, second := s.Length-2, s.Length-1
	if s.CheckDigit(b[:first]) != b[first] {
		return ReasonFirstCheckDigit
	}
	if s.CheckDigit(b[:second]) != b[second] {
		return ReasonSecondCheckDigit
	}
	return ReasonNone
}

// Complete sanitizes base, which must contain exactly s.Length-2 alphabet
// characters, and appends both check digits. The result is canonical but
// may still be degenerate (e.g. a base of all zeros).
func (s Scheme) Complete(base string) (string, bool) {
	var buf [MaxLength]byte
	n := sanitize(buf[:], base, s.Alphabet, s.Length-2)
	if n != s.Length-2 {
		return "", false
	}
	buf[n] = s.CheckDigit(buf[:n])
	buf[n+1] = s.CheckDigit(buf[:n+1])
	return string(buf[:s.Length]), true
}
