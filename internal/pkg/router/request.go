package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/juniorhq/junior/internal/pkg/goerror"
)

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetQuery reads a query parameter with surrounding whitespace trimmed.
func (r *Request) GetQuery(key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// GetForm reads a form field from the request body as submitted.
func (r *Request) GetForm(key string) string {
	return r.PostFormValue(key)
}

// GetFormTrimmed reads a form field with surrounding whitespace trimmed.
func (r *Request) GetFormTrimmed(key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// DecodeBody decodes the JSON body into dst.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.NewInvalidFormat()
	}

	return nil
}
