package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	// Create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_CustomHeaders(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, &Options{
		Timeout:   DefaultTimeout,
		UserAgent: "custom-agent",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-agent", gotUA)
}

func TestExtractMainText_WithJobDescription(t *testing.T) {
	html := `
		<html><body>
			<nav>Navigation</nav>
			<div class="job-description">
				<h1>Backend Developer</h1>
				<p>Requirements: Python, Django, PostgreSQL</p>
			</div>
			<footer>Footer</footer>
		</body></html>`

	text, err := ExtractMainText(html, JobListingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Developer")
	assert.Contains(t, text, "Python")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `<html><body><p>Plain listing text</p></body></html>`

	text, err := ExtractMainText(html, JobListingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Plain listing text")
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `
		<html><body>
			<main>
				<p>Senior Frontend Developer</p>
				<form id="application-form">Apply here</form>
			</main>
		</body></html>`

	text, err := ExtractMainText(html, JobListingSelectors(), "form")
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Frontend Developer")
	assert.NotContains(t, text, "Apply here")
}

func TestJobListingSelectors(t *testing.T) {
	selectors := JobListingSelectors()
	assert.NotEmpty(t, selectors)
	assert.Contains(t, selectors, ".job-description")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
