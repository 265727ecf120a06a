package otp

import (
	"math/rand/v2"
	"strconv"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Generator produces one-time passwords.
type Generator interface {
	// Generate returns a new 6-digit numeric code.
	Generate() string
}

// Numeric generates uniformly random 6-digit codes in 100000..999999.
//
// The lower bound intentionally excludes codes with a leading zero to stay
// wire-compatible with existing clients and mail templates.
type Numeric struct{}

// NewNumeric returns a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a new 6-digit numeric code as a string.
func (*Numeric) Generate() string {
	return strconv.Itoa(codeMin + rand.IntN(codeMax-codeMin+1))
}

// Fixed always returns the same code. Test helper.
type Fixed string

// Generate returns the fixed code.
func (f Fixed) Generate() string {
	return string(f)
}
