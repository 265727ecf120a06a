// Package view renders server-side HTML pages.
package view
