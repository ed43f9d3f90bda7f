package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBaseURL    = "https://www.almanac.com"
	testLinkFilter = "/recipe/"
)

// fieldItem parses fragment and returns its first field__item element.
func fieldItem(t *testing.T, fragment string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	item := doc.Find(".field__item").First()
	require.Equal(t, 1, item.Length())
	return item
}

func TestSegmentField(t *testing.T) {
	t.Parallel()

	t.Run("splits item into preamble and heading-keyed sections", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<p>Artichokes are perennials in warm climates.</p>
<h3>When to Plant</h3>
<p>Plant in spring.</p>
<p>Choose a sunny site.</p>
<h3>Care</h3>
<ul><li>Water weekly</li><li>Mulch well</li></ul>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyPlain, testBaseURL, testLinkFilter)

		structured, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		require.NotNil(t, structured.Content)
		assert.Equal(t, "Artichokes are perennials in warm climates.", *structured.Content)

		assert.Equal(t, []string{"When to Plant", "Care"}, structured.Sections.Keys())

		section, _ := structured.Sections.Get("When to Plant")
		assert.Equal(t, plantscraper.Text("Plant in spring. Choose a sunny site."), section)

		section, _ = structured.Sections.Get("Care")
		assert.Equal(t, plantscraper.Text("* Water weekly\n* Mulch well"), section)
	})

	t.Run("no content before the first heading leaves a nil preamble", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<h3>Harvesting</h3>
<p>Cut buds before they open.</p>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyPlain, testBaseURL, testLinkFilter)

		structured, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		assert.Nil(t, structured.Content)
	})

	t.Run("empty sections are dropped", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<h3>Empty Section</h3>
<h3>Full Section</h3>
<p>Some content.</p>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyPlain, testBaseURL, testLinkFilter)

		structured, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		assert.Equal(t, []string{"Full Section"}, structured.Sections.Keys())
	})

	t.Run("ad stop policy truncates section content at the marker", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<h3>Cooking</h3>
<p>Steam artichokes until tender. ADVERTISEMENT</p>
<p>Unrelated promo text.</p>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyAdStop, testBaseURL, testLinkFilter)

		structured, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		section, _ := structured.Sections.Get("Cooking")
		assert.Equal(t, plantscraper.Text("Steam artichokes until tender."), section)
	})

	t.Run("table policy returns the item's table directly", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<p>ignored intro</p>
<table>
<tr><th>Pest/Disease</th><th>Type</th><th>Symptoms</th><th>Control/Prevention</th></tr>
<tr><th>Aphids</th><td>Insect</td><td>Curled leaves</td><td>Water spray</td></tr>
</table>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyTable, testBaseURL, testLinkFilter)

		table, ok := got.(*plantscraper.Table)
		require.True(t, ok)
		require.Len(t, table.Rows, 1)
		pest, _ := table.Rows[0].Get("pest")
		assert.Equal(t, "Aphids", pest)
	})

	t.Run("table policy without a table falls back to section handling", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<p>No table on this page.</p>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyTable, testBaseURL, testLinkFilter)

		assert.Equal(t, plantscraper.Text("No table on this page."), got)
	})

	t.Run("links policy builds the name-to-url map", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<ul>
<li><a href="/recipe/stuffed-artichokes">Stuffed Artichokes</a></li>
<li><a href="/plant/tomatoes">Not a recipe</a></li>
</ul>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyLinks, testBaseURL, testLinkFilter)

		links, ok := got.(*plantscraper.Links)
		require.True(t, ok)
		assert.Equal(t, []string{"Stuffed Artichokes"}, links.Keys())
		url, _ := links.Get("Stuffed Artichokes")
		assert.Equal(t, "https://www.almanac.com/recipe/stuffed-artichokes", url)
	})

	t.Run("links policy without matching anchors flattens to text", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<p>See our recipe collection in the printed guide.</p>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyLinks, testBaseURL, testLinkFilter)

		assert.Equal(t, plantscraper.Text("See our recipe collection in the printed guide."), got)
	})

	t.Run("item without headings flattens text and bullets", func(t *testing.T) {
		t.Parallel()

		item := fieldItem(t, `<div class="field__item">
<p>Loose intro.</p>
<ul><li>point one</li><li>point two</li></ul>
</div>`)

		got := goquery.SegmentField(item, plantscraper.PolicyPlain, testBaseURL, testLinkFilter)

		assert.Equal(t, plantscraper.Text("Loose intro.\n* point one\n* point two"), got)
	})

	t.Run("nil item yields empty text", func(t *testing.T) {
		t.Parallel()

		got := goquery.SegmentField(nil, plantscraper.PolicyPlain, testBaseURL, testLinkFilter)

		assert.Equal(t, plantscraper.Text(""), got)
	})
}
