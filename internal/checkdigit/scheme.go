// Package checkdigit implements the weighted modulo-11 pipeline shared by
// Brazilian taxpayer numbers: sanitize free-form input into a fixed-length
// buffer, reject degenerate values, verify the two trailing check digits,
// and expand canonical values into their display mask.
//
// Everything here is a pure function over short byte sequences. Callers
// provide the scratch buffer (normally a [MaxLength]byte on the stack), so
// validation never allocates.
package checkdigit

// MaxLength is the longest canonical length of any supported scheme.
// Buffers of this size fit every Scheme.
const MaxLength = 14

// Alphabet selects which input bytes are meaningful for a scheme.
type Alphabet uint8

const (
	// Digits accepts '0'-'9' only.
	Digits Alphabet = iota
	// Alphanumeric accepts '0'-'9' and ASCII letters, folding letters to upper case.
	Alphanumeric
)

// accept reports whether c belongs to the alphabet and returns its
// canonical form.
func (a Alphabet) accept(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c, true
	case a != Alphanumeric:
		return 0, false
	case c >= 'A' && c <= 'Z':
		return c, true
	case c >= 'a' && c <= 'z':
		return c - ('a' - 'A'), true
	}
	return 0, false
}

// WeightRule generates the multiplier for each position of a checksum prefix.
type WeightRule uint8

const (
	// Descending weights start at len(prefix)+1 on the left-most character and
	// drop by one per position, ending at 2 (CPF).
	Descending WeightRule = iota
	// Cyclic weights start at 2 on the right-most character and grow leftward,
	// wrapping from 9 back to 2 (CNPJ).
	Cyclic
)

// weight returns the multiplier for position i of a prefix of length n.
func (r WeightRule) weight(n, i int) int {
	if r == Cyclic {
		return 2 + (n-1-i)%8
	}
	return n + 1 - i
}

// Scheme describes one document kind. The zero Scheme is not usable.
type Scheme struct {
	// Length is the canonical length, check digits included.
	Length   int
	Alphabet Alphabet
	Weights  WeightRule
}

// Reason explains why an input was rejected.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonLength
	ReasonDegenerate
	ReasonFirstCheckDigit
	ReasonSecondCheckDigit
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "valid"
	case ReasonLength:
		return "wrong length"
	case ReasonDegenerate:
		return "all characters identical"
	case ReasonFirstCheckDigit:
		return "invalid first check digit"
	case ReasonSecondCheckDigit:
		return "invalid second check digit"
	}
	return "unknown"
}

// Check runs the whole pipeline over in, leaving the canonical characters
// in dst[:s.Length] when the result is ReasonNone.
// dst must hold at least s.Length bytes.
func (s Scheme) Check(dst []byte, in string) Reason {
	n, ok := s.Sanitize(dst, in)
	if !ok {
		return ReasonLength
	}
	return s.Verify(dst[:n])
}
