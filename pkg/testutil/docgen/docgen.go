// Package docgen generates CPF and CNPJ test data: valid documents, masked
// and lower-cased variants, and near-miss invalid values.
//
// Generators are seeded so failing property tests can be replayed.
package docgen

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"brdoc/pkg/domain"
)

var separators = []string{"", "", "", ".", "-", "/", " ", "\t"}

// Generator wraps a seeded gofakeit Faker.
type Generator struct {
	faker *gofakeit.Faker
}

// New returns a Generator seeded with seed. A seed of 0 picks a random one.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// CPF returns a random valid CPF.
func (g *Generator) CPF() domain.CPF {
	for {
		c, err := domain.CPFFromBase(g.faker.Numerify("#########"))
		if err == nil {
			return c
		}
	}
}

// CNPJ returns a random valid numeric CNPJ. Branch numbers stay in the
// usual 0001-0099 range.
func (g *Generator) CNPJ() domain.CNPJ {
	for {
		c, err := domain.CNPJFromBase(g.faker.Numerify("########00##"))
		if err == nil {
			return c
		}
	}
}

// AlphanumericCNPJ returns a random valid CNPJ with at least one letter in
// its root.
func (g *Generator) AlphanumericCNPJ() domain.CNPJ {
	for {
		root := []byte(g.faker.Numerify("########"))
		root[g.faker.Number(0, len(root)-1)] = byte(g.faker.Number('A', 'Z'))
		for i := range root {
			if g.faker.Number(0, 3) == 0 {
				root[i] = byte(g.faker.Number('A', 'Z'))
			}
		}
		c, err := domain.CNPJFromBase(string(root) + g.faker.Numerify("####"))
		if err == nil {
			return c
		}
	}
}

// Scramble intersperses random separators and whitespace between the
// characters of s and randomly lower-cases letters. The result sanitizes
// back to strings.ToUpper(s) with separators removed.
func (g *Generator) Scramble(s string) string {
	var b strings.Builder
	b.WriteString(g.faker.RandomString([]string{"", " ", "  "}))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' && g.faker.Bool() {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
		b.WriteString(g.faker.RandomString(separators))
	}
	b.WriteString(g.faker.RandomString([]string{"", "\n", " "}))
	return b.String()
}

// MutateCheckDigit replaces the first (pos 0) or second (pos 1) check digit
// of the canonical value s with a different digit.
func (g *Generator) MutateCheckDigit(s string, pos int) string {
	i := len(s) - 2 + pos
	b := []byte(s)
	shift := byte(g.faker.Number(1, 9))
	b[i] = '0' + (b[i]-'0'+shift)%10
	return string(b)
}

// Repeat returns n copies of c, the shape of a degenerate document.
func Repeat(c byte, n int) string {
	return strings.Repeat(string(c), n)
}
