package checkdigit

import "strings"

// Placeholder marks a canonical character position in a Mask.
const Placeholder = '#'

// Mask is a display layout such as "###.###.###-##". Every Placeholder is
// replaced by the next canonical character; other bytes are copied as-is.
type Mask string

// Apply expands canonical into the mask. It does not validate: canonical is
// expected to come from a successful Check. An empty canonical value yields "".
func (m Mask) Apply(canonical string) string {
	if canonical == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(m))
	j := 0
	for i := 0; i < len(m); i++ {
		if m[i] != Placeholder {
			b.WriteByte(m[i])
			continue
		}
		if j == len(canonical) {
			break
		}
		b.WriteByte(canonical[j])
		j++
	}
	return b.String()
}

// Slots returns the number of placeholders in the mask.
func (m Mask) Slots() int {
	return strings.Count(string(m), string(Placeholder))
}
