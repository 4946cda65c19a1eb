// Package domain holds the Brazilian taxpayer document primitives: CPF for
// individuals and CNPJ for companies.
//
// Both are immutable value objects. A non-zero value is always a valid,
// canonical (unmasked) document; construct one at trust boundaries with
// NewCPF / ParseCPF / TryParseCPF (and the CNPJ equivalents). The zero value
// means "unset": it formats to "" and compares lower than any document.
//
// Domain purity: no I/O, no logging, no context. The only side-effecting
// surfaces are the standard decoding interfaces (UnmarshalText, Scan), which
// replace the receiver only after full validation.
package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"brdoc/internal/checkdigit"
	dErrors "brdoc/pkg/domain-errors"
)

// DocumentKind names the document type carried by an error or value.
type DocumentKind string

const (
	KindCPF  DocumentKind = "CPF"
	KindCNPJ DocumentKind = "CNPJ"
)

func (k DocumentKind) String() string {
	return string(k)
}

// Rejection reasons. Construction errors wrap exactly one of these.
var (
	ErrEmptyDocument           = errors.New("document is empty")
	ErrInvalidLength           = errors.New("wrong number of characters")
	ErrDegenerateDocument      = errors.New("all characters are identical")
	ErrInvalidFirstCheckDigit  = errors.New("first check digit does not match")
	ErrInvalidSecondCheckDigit = errors.New("second check digit does not match")
)

// DocumentError describes why Input is not a valid document of Kind.
// Input is kept as given so callers can report it; Error() leaves it out
// because CPF numbers are personal data.
type DocumentError struct {
	Kind  DocumentKind
	Input string
	Err   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Kind, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

var reasonErrors = [...]error{
	checkdigit.ReasonLength:           ErrInvalidLength,
	checkdigit.ReasonDegenerate:       ErrDegenerateDocument,
	checkdigit.ReasonFirstCheckDigit:  ErrInvalidFirstCheckDigit,
	checkdigit.ReasonSecondCheckDigit: ErrInvalidSecondCheckDigit,
}

// rules binds a checksum scheme to its display mask and kind.
type rules struct {
	kind   DocumentKind
	scheme checkdigit.Scheme
	mask   checkdigit.Mask
}

// canonical validates in and returns the unmasked value. The only
// allocation is the returned string.
func (s rules) canonical(in string) (string, checkdigit.Reason) {
	var buf [checkdigit.MaxLength]byte
	if r := s.scheme.Check(buf[:], in); r != checkdigit.ReasonNone {
		return "", r
	}
	return string(buf[:s.scheme.Length]), checkdigit.ReasonNone
}

func (s rules) valid(in string) bool {
	var buf [checkdigit.MaxLength]byte
	return s.scheme.Check(buf[:], in) == checkdigit.ReasonNone
}

// parse is the shared constructor: empty input is rejected as
// CodeInvalidInput before sanitizing, any structural failure as
// CodeValidation wrapping a *DocumentError.
func (s rules) parse(in string) (string, error) {
	if in == "" {
		return "", dErrors.Wrap(ErrEmptyDocument, dErrors.CodeInvalidInput, s.kind.String()+" is required")
	}
	v, r := s.canonical(in)
	if r != checkdigit.ReasonNone {
		return "", dErrors.Wrap(
			&DocumentError{Kind: s.kind, Input: in, Err: reasonErrors[r]},
			dErrors.CodeValidation,
			"document validation failed",
		)
	}
	return v, nil
}

// complete appends check digits to a base of length-2 characters and
// validates the result, so degenerate completions are still rejected.
func (s rules) complete(base string) (string, error) {
	full, ok := s.scheme.Complete(base)
	if !ok {
		return "", dErrors.Wrap(
			&DocumentError{Kind: s.kind, Input: base, Err: ErrInvalidLength},
			dErrors.CodeValidation,
			"document base is invalid",
		)
	}
	return s.parse(full)
}

// decode backs UnmarshalText / Scan: empty input decodes to the zero value.
func (s rules) decode(in string) (string, error) {
	if in == "" {
		return "", nil
	}
	return s.parse(in)
}

// scanString extracts the textual column value handed to sql.Scanner.
func scanString(kind DocumentKind, src any) (string, error) {
	switch v := src.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("cannot scan %T into %s", src, kind))
}

// driverValue stores the canonical value, or NULL for the zero value.
func driverValue(v string) (driver.Value, error) {
	if v == "" {
		return nil, nil
	}
	return v, nil
}
