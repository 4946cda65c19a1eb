package checkdigit

import "testing"

// BenchmarkCheck measures the full pipeline on masked input.
// Run with: go test -bench=. -benchmem ./internal/checkdigit/
func BenchmarkCheck(b *testing.B) {
	inputs := []struct {
		name   string
		scheme Scheme
		input  string
	}{
		{"individual", individual, "123.456.789-09"},
		{"company", company, "12.345.678/0001-95"},
		{"company_alphanumeric", company, "12.abc.345/01de-35"},
		{"overflow", company, "12.345.678/0001-95 and a very long trailing 0000000000000000"},
	}

	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			var buf [MaxLength]byte
			b.ReportAllocs()
			for b.Loop() {
				in.scheme.Check(buf[:], in.input)
			}
		})
	}
}

func BenchmarkMaskApply(b *testing.B) {
	const m Mask = "##.###.###/####-##"
	b.ReportAllocs()
	for b.Loop() {
		_ = m.Apply("12345678000195")
	}
}
