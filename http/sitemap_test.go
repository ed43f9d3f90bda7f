package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	scraperhttp "github.com/niklas-joh/plantScraper/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapSource_DiscoverURLs_FromRobotsTxt(t *testing.T) {
	t.Parallel()

	robotsTxt := `User-agent: *
Disallow: /private/
Sitemap: {{BASE}}/sitemap.xml
`
	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/plant/artichokes</loc></url>
  <url><loc>{{BASE}}/plant/beets</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/robots.txt":  robotsTxt,
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	source := scraperhttp.NewSitemapSource(srv.Client())
	urls, err := source.DiscoverURLs(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/plant/artichokes", srv.URL + "/plant/beets"}, urls)
}

func TestSitemapSource_DiscoverURLs_FallbackToSitemapXML(t *testing.T) {
	t.Parallel()

	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/plant/kale</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	source := scraperhttp.NewSitemapSource(srv.Client())
	urls, err := source.DiscoverURLs(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/plant/kale"}, urls)
}

func TestSitemapSource_DiscoverURLs_SitemapIndex(t *testing.T) {
	t.Parallel()

	indexXML := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap-plants.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-recipes.xml</loc></sitemap>
</sitemapindex>`
	plantsXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/plant/artichokes</loc></url>
</urlset>`
	recipesXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/recipe/artichoke-dip</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml":         indexXML,
		"/sitemap-plants.xml":  plantsXML,
		"/sitemap-recipes.xml": recipesXML,
	})
	defer srv.Close()

	source := scraperhttp.NewSitemapSource(srv.Client())
	urls, err := source.DiscoverURLs(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Contains(t, urls, srv.URL+"/plant/artichokes")
	assert.Contains(t, urls, srv.URL+"/recipe/artichoke-dip")
}

func TestSitemapSource_DiscoverURLs_PathPrefixFilter(t *testing.T) {
	t.Parallel()

	sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/plant/artichokes</loc></url>
  <url><loc>{{BASE}}/planting-calendar</loc></url>
  <url><loc>{{BASE}}/recipe/artichoke-dip</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": sitemapXML,
	})
	defer srv.Close()

	source := scraperhttp.NewSitemapSource(srv.Client())
	urls, err := source.DiscoverURLs(context.Background(), srv.URL+"/plant")

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/plant/artichokes"}, urls)
}

func TestSitemapSource_DiscoverURLs_NoSitemap(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{})
	defer srv.Close()

	source := scraperhttp.NewSitemapSource(srv.Client())
	urls, err := source.DiscoverURLs(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.NotNil(t, urls)
}

func TestSitemapSource_DiscoverURLs_DuplicatesAcrossSitemaps(t *testing.T) {
	t.Parallel()

	robotsTxt := `Sitemap: {{BASE}}/sitemap-a.xml
Sitemap: {{BASE}}/sitemap-b.xml
`
	sitemapA := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/plant/artichokes</loc></url>
</urlset>`
	sitemapB := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/plant/artichokes</loc></url>
  <url><loc>{{BASE}}/plant/beets</loc></url>
</urlset>`

	srv := newTestServer(t, map[string]string{
		"/robots.txt":    robotsTxt,
		"/sitemap-a.xml": sitemapA,
		"/sitemap-b.xml": sitemapB,
	})
	defer srv.Close()

	source := scraperhttp.NewSitemapSource(srv.Client())
	urls, err := source.DiscoverURLs(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/plant/artichokes", srv.URL + "/plant/beets"}, urls)
}

func TestSitemapSource_DiscoverURLs_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := scraperhttp.NewSitemapSource(srv.Client())
	_, err := source.DiscoverURLs(ctx, srv.URL)

	require.ErrorIs(t, err, context.Canceled)
}

// newTestServer serves the given path-to-body map, substituting {{BASE}}
// with the server's own URL so sitemap contents can reference it.
func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		body = strings.ReplaceAll(body, "{{BASE}}", srv.URL)

		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(body))
	}))

	return srv
}
