package domain

import (
	"database/sql/driver"
	"log/slog"
	"strings"

	"brdoc/internal/checkdigit"
)

// CPF is a validated individual taxpayer number (Cadastro de Pessoas Físicas).
//
// Invariants (non-zero values):
//   - exactly 11 digits, no punctuation
//   - not all digits identical
//   - digits 10 and 11 are the modulo-11 check digits of the preceding ones
type CPF struct {
	value string
}

var cpfRules = rules{
	kind:   KindCPF,
	scheme: checkdigit.Scheme{Length: 11, Alphabet: checkdigit.Digits, Weights: checkdigit.Descending},
	mask:   "###.###.###-##",
}

// NewCPF validates s, which may carry any punctuation or whitespace, and
// returns the canonical CPF.
//
// Errors: CodeInvalidInput wrapping ErrEmptyDocument for "", otherwise
// CodeValidation wrapping a *DocumentError whose Err is one of
// ErrInvalidLength, ErrDegenerateDocument, ErrInvalidFirstCheckDigit or
// ErrInvalidSecondCheckDigit.
func NewCPF(s string) (CPF, error) {
	v, err := cpfRules.parse(s)
	if err != nil {
		return CPF{}, err
	}
	return CPF{value: v}, nil
}

// ParseCPF constructs a CPF from external input. Same contract as NewCPF;
// use it in handlers and adapters.
func ParseCPF(s string) (CPF, error) {
	return NewCPF(s)
}

// MustCPF is NewCPF that panics on invalid input.
// Use only in tests or for values known to be valid.
func MustCPF(s string) CPF {
	c, err := NewCPF(s)
	if err != nil {
		panic(err)
	}
	return c
}

// TryParseCPF reports whether s is a valid CPF, returning the zero CPF when
// it is not.
func TryParseCPF(s string) (CPF, bool) {
	v, r := cpfRules.canonical(s)
	if r != checkdigit.ReasonNone {
		return CPF{}, false
	}
	return CPF{value: v}, true
}

// IsValidCPF reports whether s holds a valid CPF. It does not allocate.
func IsValidCPF(s string) bool {
	return cpfRules.valid(s)
}

// CPFFromBase completes a nine-digit base with its check digits.
// It fails with ErrInvalidLength when base does not hold exactly nine
// digits and with ErrDegenerateDocument for bases like 000.000.000.
func CPFFromBase(base string) (CPF, error) {
	v, err := cpfRules.complete(base)
	if err != nil {
		return CPF{}, err
	}
	return CPF{value: v}, nil
}

// Kind returns KindCPF.
func (c CPF) Kind() DocumentKind {
	return KindCPF
}

// Unmasked returns the 11 canonical digits, or "" for the zero value.
func (c CPF) Unmasked() string {
	return c.value
}

// Masked returns the display form XXX.XXX.XXX-XX, or "" for the zero value.
func (c CPF) Masked() string {
	return cpfRules.mask.Apply(c.value)
}

func (c CPF) String() string {
	return c.Masked()
}

func (c CPF) IsZero() bool {
	return c.value == ""
}

func (c CPF) Equal(other CPF) bool {
	return c.value == other.value
}

// Compare orders CPFs by their canonical digits, byte by byte.
func (c CPF) Compare(other CPF) int {
	return strings.Compare(c.value, other.value)
}

// LogValue redacts the number for structured logs, keeping the middle six
// digits: ***.456.789-**.
func (c CPF) LogValue() slog.Value {
	if c.value == "" {
		return slog.StringValue("")
	}
	return slog.StringValue("***." + c.value[3:6] + "." + c.value[6:9] + "-**")
}

func (c CPF) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

// UnmarshalText accepts masked or unmasked text. Empty text yields the zero CPF.
func (c *CPF) UnmarshalText(text []byte) error {
	v, err := cpfRules.decode(string(text))
	if err != nil {
		return err
	}
	c.value = v
	return nil
}

func (c CPF) MarshalBinary() ([]byte, error) {
	return c.MarshalText()
}

func (c *CPF) UnmarshalBinary(data []byte) error {
	return c.UnmarshalText(data)
}

// Value stores the unmasked digits; the zero CPF is stored as NULL.
func (c CPF) Value() (driver.Value, error) {
	return driverValue(c.value)
}

// Scan reads a string or []byte column, masked or not. NULL yields the zero CPF.
func (c *CPF) Scan(src any) error {
	s, err := scanString(KindCPF, src)
	if err != nil {
		return err
	}
	v, err := cpfRules.decode(s)
	if err != nil {
		return err
	}
	c.value = v
	return nil
}
