package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitemassif/website/internal/seo"
	"github.com/whitemassif/website/internal/web"
)

func TestBody_SanitizesHTML(t *testing.T) {
	got := web.Body(`<p>Hello</p><script>alert(1)</script><a href="javascript:x()">x</a>`)

	assert.Contains(t, string(got), "<p>Hello</p>")
	assert.NotContains(t, string(got), "<script>")
	assert.NotContains(t, string(got), "javascript:")
}

func TestBody_RendersMarkdown(t *testing.T) {
	got := web.Body("## Event Themes\n\n- Gala\n- Retreat")

	assert.Contains(t, string(got), "<h2")
	assert.Contains(t, string(got), "Event Themes</h2>")
	assert.Contains(t, string(got), "<li>Gala</li>")
}

func TestBody_Empty(t *testing.T) {
	assert.Equal(t, "", string(web.Body("   ")))
}

func TestMarkdown_StripsRawHTML(t *testing.T) {
	got := web.Markdown("text\n\n<iframe src=\"https://evil.example\"></iframe>")

	assert.NotContains(t, string(got), "<iframe")
}

func TestRenderer_ParsesEveryPage(t *testing.T) {
	_, err := web.NewRenderer()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"home", "blog_list", "blog_post", "services", "service", "portfolio", "work", "team",
		"clients", "landing", "contact", "thank_you", "feedback", "careers", "about", "not_found",
	}, web.Pages)
}

func TestRenderer_WritesHeadMetadata(t *testing.T) {
	// Arrange
	r, err := web.NewRenderer()
	require.NoError(t, err)
	site := seo.New("https://example.test")
	meta := site.PageMetadata(seo.PageInput{Title: "Thank You", Description: "Thanks", Path: "/thank-you", NoIndex: true})
	jsonld, err := seo.RenderJSONLD(site.Organization())
	require.NoError(t, err)
	w := httptest.NewRecorder()

	// Act
	r.Render(w, http.StatusOK, "thank_you", web.NewPage(meta, jsonld, nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "<title>Thank You</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://example.test/thank-you">`)
	assert.Contains(t, body, `<meta name="robots" content="noindex, nofollow">`)
	assert.Contains(t, body, `<script type="application/ld+json">`)
	assert.Contains(t, body, "Thank you!")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := web.NewRenderer()
	require.NoError(t, err)
	w := httptest.NewRecorder()

	r.Render(w, http.StatusOK, "missing", web.Page{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRenderer_NotFoundWithStatus(t *testing.T) {
	r, err := web.NewRenderer()
	require.NoError(t, err)
	w := httptest.NewRecorder()

	r.Render(w, http.StatusNotFound, "not_found", web.NewPage(seo.Metadata{Title: "Post Not Found"}, "", "Post Not Found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Post Not Found</h1>")
}
