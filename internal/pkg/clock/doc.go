// Package clock abstracts the time source.
//
// Use cases that stamp or compare timestamps depend on Clocker instead of
// calling time.Now directly, so tests can freeze time.
package clock
