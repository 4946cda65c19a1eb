package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brdoc/pkg/domain"
	"brdoc/pkg/testutil/docgen"
)

const propertyRuns = 500

// TestProperties_CPF exercises the round-trip, mask-insensitivity,
// idempotence and checksum-sensitivity properties over generated CPFs.
func TestProperties_CPF(t *testing.T) {
	g := docgen.New(20240101)

	for range propertyRuns {
		want := g.CPF()
		s := want.Unmasked()

		masked := want.Masked()
		again, err := domain.NewCPF(masked)
		require.NoError(t, err, masked)
		assert.Equal(t, s, again.Unmasked())
		assert.True(t, again.Equal(want))

		scrambled := g.Scramble(s)
		fromScrambled, err := domain.NewCPF(scrambled)
		require.NoError(t, err, "%q", scrambled)
		assert.Equal(t, want, fromScrambled)

		assert.Equal(t, domain.IsValidCPF(scrambled), domain.IsValidCPF(scrambled))

		for pos := range 2 {
			mutated := g.MutateCheckDigit(s, pos)
			assert.False(t, domain.IsValidCPF(mutated), mutated)
		}

		assert.False(t, domain.IsValidCPF(s[:10]))
		assert.False(t, domain.IsValidCPF(s+"0"))
	}
}

func TestProperties_CNPJ(t *testing.T) {
	g := docgen.New(20260701)

	for range propertyRuns {
		for _, want := range []domain.CNPJ{g.CNPJ(), g.AlphanumericCNPJ()} {
			s := want.Unmasked()

			again, err := domain.NewCNPJ(want.Masked())
			require.NoError(t, err, want.Masked())
			assert.Equal(t, s, again.Unmasked())

			scrambled := g.Scramble(s)
			fromScrambled, ok := domain.TryParseCNPJ(scrambled)
			require.True(t, ok, "%q", scrambled)
			assert.Equal(t, want, fromScrambled)

			lower, err := domain.NewCNPJ(strings.ToLower(s))
			require.NoError(t, err)
			assert.Equal(t, want, lower)

			for pos := range 2 {
				mutated := g.MutateCheckDigit(s, pos)
				assert.False(t, domain.IsValidCNPJ(mutated), mutated)
			}

			assert.False(t, domain.IsValidCNPJ(s[:13]))
			assert.False(t, domain.IsValidCNPJ(s+"0"))
		}
	}
}

// TestProperties_DegenerateRejection covers every repeated character of
// each alphabet.
func TestProperties_DegenerateRejection(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		assert.False(t, domain.IsValidCPF(docgen.Repeat(c, 11)), string(c))
		assert.False(t, domain.IsValidCNPJ(docgen.Repeat(c, 14)), string(c))

		_, err := domain.NewCPF(docgen.Repeat(c, 11))
		assert.ErrorIs(t, err, domain.ErrDegenerateDocument)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		_, err := domain.NewCNPJ(docgen.Repeat(c, 14))
		assert.ErrorIs(t, err, domain.ErrDegenerateDocument, string(c))

		_, err = domain.NewCNPJ(docgen.Repeat(c+('a'-'A'), 14))
		assert.ErrorIs(t, err, domain.ErrDegenerateDocument, string(c))
	}
}

func TestProperties_ValidityMatchesConstruction(t *testing.T) {
	g := docgen.New(99)
	inputs := []string{"", " ", "123", "123.456.789-09", "11.222.333/0001-81", "12.abc.345/01de-35"}
	for range 50 {
		inputs = append(inputs, g.Scramble(g.CPF().Unmasked()), g.MutateCheckDigit(g.CNPJ().Unmasked(), 1))
	}

	for _, in := range inputs {
		_, cpfErr := domain.NewCPF(in)
		_, cpfOK := domain.TryParseCPF(in)
		assert.Equal(t, cpfErr == nil, domain.IsValidCPF(in), "%q", in)
		assert.Equal(t, cpfErr == nil, cpfOK, "%q", in)

		_, cnpjErr := domain.NewCNPJ(in)
		_, cnpjOK := domain.TryParseCNPJ(in)
		assert.Equal(t, cnpjErr == nil, domain.IsValidCNPJ(in), "%q", in)
		assert.Equal(t, cnpjErr == nil, cnpjOK, "%q", in)
	}
}
