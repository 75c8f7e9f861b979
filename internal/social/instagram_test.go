package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const samplePage = `<html><script>
{"display_url":"https:\/\/cdn.example.com\/img1.jpg?x=1&y=2",
"display_url":"https:\/\/cdn.example.com\/img2.jpg",
"display_url":"https:\/\/cdn.example.com\/img2.jpg",
"display_url":"https:\/\/cdn.example.com\/img3.jpg"}
</script></html>`

func TestExtractImageURLs(t *testing.T) {
	urls := extractImageURLs(samplePage, 10)

	// Duplicates collapse, escapes unwind, order is preserved.
	assert.Equal(t, []string{
		"https://cdn.example.com/img1.jpg?x=1&y=2",
		"https://cdn.example.com/img2.jpg",
		"https://cdn.example.com/img3.jpg",
	}, urls)
}

func TestExtractImageURLsLimit(t *testing.T) {
	urls := extractImageURLs(samplePage, 2)
	assert.Len(t, urls, 2)
}

func TestExtractImageURLsNoMatches(t *testing.T) {
	urls := extractImageURLs("<html>nothing here</html>", 10)
	assert.Empty(t, urls)
}

func TestFetchRecentImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/someone/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	client := NewInstagramClientWithBase(srv.URL, time.Second)

	urls := client.FetchRecentImages(context.Background(), "@someone", 10)
	assert.Len(t, urls, 3)

	// Unknown handles and blank handles degrade to empty, not error.
	assert.Empty(t, client.FetchRecentImages(context.Background(), "missing", 10))
	assert.Empty(t, client.FetchRecentImages(context.Background(), "  ", 10))
}

func TestFetchRecentImagesServerDown(t *testing.T) {
	client := NewInstagramClientWithBase("http://127.0.0.1:1", 100*time.Millisecond)

	urls := client.FetchRecentImages(context.Background(), "anyone", 5)
	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}
