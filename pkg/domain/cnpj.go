package domain

import (
	"database/sql/driver"
	"log/slog"
	"strings"

	"brdoc/internal/checkdigit"
)

// CNPJ is a validated company registration number (Cadastro Nacional da
// Pessoa Jurídica), numeric or alphanumeric.
//
// Invariants (non-zero values):
//   - exactly 14 characters: 12 of 0-9/A-Z followed by two digits
//   - letters stored upper-case, no punctuation
//   - not all characters identical
//   - characters 13 and 14 are the modulo-11 check digits of the preceding
//     ones, letters weighing their ASCII code minus '0'
type CNPJ struct {
	value string
}

var cnpjRules = rules{
	kind:   KindCNPJ,
	scheme: checkdigit.Scheme{Length: 14, Alphabet: checkdigit.Alphanumeric, Weights: checkdigit.Cyclic},
	mask:   "##.###.###/####-##",
}

// NewCNPJ validates s, which may carry punctuation, whitespace or lower-case
// letters, and returns the canonical CNPJ.
//
// Errors: same taxonomy as NewCPF, with Kind set to KindCNPJ.
func NewCNPJ(s string) (CNPJ, error) {
	v, err := cnpjRules.parse(s)
	if err != nil {
		return CNPJ{}, err
	}
	return CNPJ{value: v}, nil
}

// ParseCNPJ constructs a CNPJ from external input. Same contract as NewCNPJ.
func ParseCNPJ(s string) (CNPJ, error) {
	return NewCNPJ(s)
}

// MustCNPJ is NewCNPJ that panics on invalid input.
func MustCNPJ(s string) CNPJ {
	c, err := NewCNPJ(s)
	if err != nil {
		panic(err)
	}
	return c
}

// TryParseCNPJ reports whether s is a valid CNPJ, returning the zero CNPJ
// when it is not.
func TryParseCNPJ(s string) (CNPJ, bool) {
	v, r := cnpjRules.canonical(s)
	if r != checkdigit.ReasonNone {
		return CNPJ{}, false
	}
	return CNPJ{value: v}, true
}

// IsValidCNPJ reports whether s holds a valid CNPJ. It does not allocate.
func IsValidCNPJ(s string) bool {
	return cnpjRules.valid(s)
}

// CNPJFromBase completes a twelve-character base (eight-character root plus
// four-character branch) with its check digits. Errors as CPFFromBase.
func CNPJFromBase(base string) (CNPJ, error) {
	v, err := cnpjRules.complete(base)
	if err != nil {
		return CNPJ{}, err
	}
	return CNPJ{value: v}, nil
}

func (c CNPJ) Kind() DocumentKind {
	return KindCNPJ
}

// Unmasked returns the 14 canonical characters, or "" for the zero value.
func (c CNPJ) Unmasked() string {
	return c.value
}

// Masked returns the display form XX.XXX.XXX/XXXX-XX, or "" for the zero value.
func (c CNPJ) Masked() string {
	return cnpjRules.mask.Apply(c.value)
}

func (c CNPJ) String() string {
	return c.Masked()
}

func (c CNPJ) IsZero() bool {
	return c.value == ""
}

// IsAlphanumeric reports whether the root or branch part contains letters.
func (c CNPJ) IsAlphanumeric() bool {
	return strings.ContainsFunc(c.value, func(r rune) bool { return r >= 'A' && r <= 'Z' })
}

// Root returns the first eight characters, shared by every branch of the
// same company. Empty for the zero value.
func (c CNPJ) Root() string {
	if c.value == "" {
		return ""
	}
	return c.value[:8]
}

func (c CNPJ) Equal(other CNPJ) bool {
	return c.value == other.value
}

// Compare orders CNPJs by their canonical characters, byte by byte.
func (c CNPJ) Compare(other CNPJ) int {
	return strings.Compare(c.value, other.value)
}

// LogValue logs the masked form; company numbers are public record.
func (c CNPJ) LogValue() slog.Value {
	return slog.StringValue(c.Masked())
}

func (c CNPJ) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

// UnmarshalText accepts masked or unmasked text in any letter case.
// Empty text yields the zero CNPJ.
func (c *CNPJ) UnmarshalText(text []byte) error {
	v, err := cnpjRules.decode(string(text))
	if err != nil {
		return err
	}
	c.value = v
	return nil
}

func (c CNPJ) MarshalBinary() ([]byte, error) {
	return c.MarshalText()
}

func (c *CNPJ) UnmarshalBinary(data []byte) error {
	return c.UnmarshalText(data)
}

// Value stores the unmasked characters; the zero CNPJ is stored as NULL.
func (c CNPJ) Value() (driver.Value, error) {
	return driverValue(c.value)
}

// Scan reads a string or []byte column. NULL yields the zero CNPJ.
func (c *CNPJ) Scan(src any) error {
	s, err := scanString(KindCNPJ, src)
	if err != nil {
		return err
	}
	v, err := cnpjRules.decode(s)
	if err != nil {
		return err
	}
	c.value = v
	return nil
}
