package view

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFS = fstest.MapFS{
	"templates/hello.html": &fstest.MapFile{
		Data: []byte(`<p>Hello, {{.Name}}</p>`),
	},
}

func TestRender(t *testing.T) {
	h, err := NewHTML(testFS, "templates/*.html")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, h.Render(rec, "hello.html", Data{"Name": "Jane"}))

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>Hello, Jane</p>", rec.Body.String())
}

func TestRenderEscapes(t *testing.T) {
	h, err := NewHTML(testFS, "templates/*.html")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, h.Render(rec, "hello.html", Data{"Name": `<script>alert(1)</script>`}))

	assert.NotContains(t, rec.Body.String(), "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	h, err := NewHTML(testFS, "templates/*.html")
	require.NoError(t, err)

	assert.Error(t, h.Render(httptest.NewRecorder(), "missing.html", nil))
}

func TestRenderKeepsExistingContentType(t *testing.T) {
	h, err := NewHTML(testFS, "templates/*.html")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
	require.NoError(t, h.Render(rec, "hello.html", Data{"Name": "Jane"}))

	assert.Equal(t, "text/html; charset=iso-8859-1", rec.Header().Get("Content-Type"))
}
