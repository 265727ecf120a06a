// Package otp generates the numeric one-time passwords used to confirm
// registration email addresses.
//
// The codes confirm flow ownership, not a security boundary: they are short
// lived, staged in session state only, and generated from a fast PRNG.
package otp
