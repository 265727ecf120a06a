package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniorhq/junior/internal/pkg/goerror"
)

func TestGetQueryTrims(t *testing.T) {
	req := &Request{Request: httptest.NewRequest(http.MethodGet, "/x?email=+jane%40example.com+", nil)}

	assert.Equal(t, "jane@example.com", req.GetQuery("email"))
	assert.Empty(t, req.GetQuery("missing"))
}

func TestGetForm(t *testing.T) {
	form := url.Values{"name": {"  Jane Doe  "}}
	httpReq := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(form.Encode()))
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req := &Request{Request: httpReq}

	assert.Equal(t, "  Jane Doe  ", req.GetForm("name"))
	assert.Equal(t, "Jane Doe", req.GetFormTrimmed("name"))
}

func TestDecodeBody(t *testing.T) {
	httpReq := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"email":"jane@example.com"}`))
	req := &Request{Request: httpReq}

	var dst struct {
		Email string `json:"email"`
	}
	require.NoError(t, req.DecodeBody(&dst))
	assert.Equal(t, "jane@example.com", dst.Email)
}

func TestDecodeBodyRejectsUnknownFields(t *testing.T) {
	httpReq := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"email":"a@b","extra":1}`))
	req := &Request{Request: httpReq}

	var dst struct {
		Email string `json:"email"`
	}
	err := req.DecodeBody(&dst)
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInvalidFormat, gerr.Code())
}

func TestDecodeBodyRejectsTrailingJSON(t *testing.T) {
	httpReq := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"email":"a@b"}{"again":true}`))
	req := &Request{Request: httpReq}

	var dst struct {
		Email string `json:"email"`
	}
	assert.Error(t, req.DecodeBody(&dst))
}
