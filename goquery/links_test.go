package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/niklas-joh/plantScraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkSubtree(t *testing.T, fragment string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc.Find("body").First()
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps matching anchors and resolves relative hrefs", func(t *testing.T) {
		t.Parallel()

		subtree := linkSubtree(t, `<div>
<a href="/recipe/pasta-salad">Pasta Salad</a>
<a href="/plant/tomatoes">Tomato Guide</a>
<a href="https://other.example.com/recipe/soup">Artichoke Soup</a>
</div>`)

		links := goquery.ExtractLinks(subtree, "/recipe/", "https://www.almanac.com")

		assert.Equal(t, []string{"Pasta Salad", "Artichoke Soup"}, links.Keys())

		url, _ := links.Get("Pasta Salad")
		assert.Equal(t, "https://www.almanac.com/recipe/pasta-salad", url)

		url, _ = links.Get("Artichoke Soup")
		assert.Equal(t, "https://other.example.com/recipe/soup", url)
	})

	t.Run("duplicate anchor text keeps the last URL at the first position", func(t *testing.T) {
		t.Parallel()

		subtree := linkSubtree(t, `<div>
<a href="/recipe/first">Pasta Salad</a>
<a href="/recipe/dip">Artichoke Dip</a>
<a href="/recipe/second">Pasta Salad</a>
</div>`)

		links := goquery.ExtractLinks(subtree, "/recipe/", "https://www.almanac.com")

		assert.Equal(t, []string{"Pasta Salad", "Artichoke Dip"}, links.Keys())
		url, _ := links.Get("Pasta Salad")
		assert.Equal(t, "https://www.almanac.com/recipe/second", url)
	})

	t.Run("anchors with empty visible text are skipped", func(t *testing.T) {
		t.Parallel()

		subtree := linkSubtree(t, `<div>
<a href="/recipe/pictured"><img src="/img/dish.jpg"></a>
<a href="/recipe/named">Named Recipe</a>
</div>`)

		links := goquery.ExtractLinks(subtree, "/recipe/", "https://www.almanac.com")

		assert.Equal(t, []string{"Named Recipe"}, links.Keys())
	})

	t.Run("trailing slash on the base joins cleanly", func(t *testing.T) {
		t.Parallel()

		subtree := linkSubtree(t, `<a href="/recipe/soup">Soup</a>`)

		links := goquery.ExtractLinks(subtree, "/recipe/", "https://www.almanac.com/")

		url, _ := links.Get("Soup")
		assert.Equal(t, "https://www.almanac.com/recipe/soup", url)
	})

	t.Run("nil subtree yields an empty map", func(t *testing.T) {
		t.Parallel()

		links := goquery.ExtractLinks(nil, "/recipe/", "https://www.almanac.com")

		assert.Equal(t, 0, links.Len())
	})
}
