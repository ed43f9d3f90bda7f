package plantscraper_test

import (
	"strings"
	"testing"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structured(content string, sections map[string]string, order ...string) *plantscraper.Structured {
	s := &plantscraper.Sections{}
	for _, k := range order {
		s.Set(k, plantscraper.Text(sections[k]))
	}
	var c *string
	if content != "" {
		c = &content
	}
	return &plantscraper.Structured{Content: c, Sections: s}
}

func TestMergeFieldItems(t *testing.T) {
	t.Parallel()

	t.Run("single value passes through", func(t *testing.T) {
		t.Parallel()

		v := plantscraper.Text("full sun")
		assert.Equal(t, v, plantscraper.MergeFieldItems([]plantscraper.FieldValue{v}))
	})

	t.Run("empty slice yields empty text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, plantscraper.Text(""), plantscraper.MergeFieldItems(nil))
	})

	t.Run("texts concatenate with newline", func(t *testing.T) {
		t.Parallel()

		got := plantscraper.MergeFieldItems([]plantscraper.FieldValue{
			plantscraper.Text("Full sun"),
			plantscraper.Text("Part shade"),
		})

		assert.Equal(t, plantscraper.Text("Full sun\nPart shade"), got)
	})

	t.Run("subsections merge key-wise with later item winning", func(t *testing.T) {
		t.Parallel()

		first := structured("intro", map[string]string{"Planting": "old", "Care": "water"}, "Planting", "Care")
		second := structured("", map[string]string{"Planting": "new"}, "Planting")

		got := plantscraper.MergeFieldItems([]plantscraper.FieldValue{first, second})

		s, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		require.NotNil(t, s.Content)
		assert.Equal(t, "intro", *s.Content)
		assert.Equal(t, []string{"Planting", "Care"}, s.Sections.Keys())

		v, _ := s.Sections.Get("Planting")
		assert.Equal(t, plantscraper.Text("new"), v)
	})

	t.Run("link maps merge across items", func(t *testing.T) {
		t.Parallel()

		a := &plantscraper.Links{}
		a.Set("Pasta Salad", "https://example.com/recipe/1")
		b := &plantscraper.Links{}
		b.Set("Pasta Salad", "https://example.com/recipe/2")
		b.Set("Casserole", "https://example.com/recipe/3")

		got := plantscraper.MergeFieldItems([]plantscraper.FieldValue{a, b})

		links, ok := got.(*plantscraper.Links)
		require.True(t, ok)
		url, _ := links.Get("Pasta Salad")
		assert.Equal(t, "https://example.com/recipe/2", url)
		assert.Equal(t, 2, links.Len())
	})

	t.Run("first table wins the field", func(t *testing.T) {
		t.Parallel()

		table := &plantscraper.Table{Headers: []string{"Pest"}, Rows: []*plantscraper.Row{}}
		got := plantscraper.MergeFieldItems([]plantscraper.FieldValue{
			plantscraper.Text("ignored"),
			table,
		})

		assert.Same(t, table, got)
	})
}

func TestFinalizeField(t *testing.T) {
	t.Parallel()

	t.Run("removes preamble paragraphs duplicated in subsections", func(t *testing.T) {
		t.Parallel()

		s := structured(
			"Water deeply.\nUnique intro line.",
			map[string]string{"Care": "In summer, Water deeply. every few days."},
			"Care",
		)

		got := plantscraper.FinalizeField(s)

		final, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		require.NotNil(t, final.Content)
		assert.Equal(t, "Unique intro line.", *final.Content)
	})

	t.Run("preamble becomes null when all paragraphs are duplicates", func(t *testing.T) {
		t.Parallel()

		s := structured(
			"Water deeply.",
			map[string]string{"Care": "Water deeply."},
			"Care",
		)

		got := plantscraper.FinalizeField(s)

		final, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		assert.Nil(t, final.Content)
	})

	t.Run("collapses structured with no subsections to plain text", func(t *testing.T) {
		t.Parallel()

		got := plantscraper.FinalizeField(structured("just text", nil))

		assert.Equal(t, plantscraper.Text("just text"), got)
	})

	t.Run("non-structured values pass through", func(t *testing.T) {
		t.Parallel()

		v := plantscraper.Text("plain")
		assert.Equal(t, v, plantscraper.FinalizeField(v))

		links := &plantscraper.Links{}
		links.Set("a", "b")
		assert.Same(t, links, plantscraper.FinalizeField(links))
	})

	t.Run("dedup invariant holds", func(t *testing.T) {
		t.Parallel()

		s := structured(
			"one\ntwo\nthree",
			map[string]string{"A": "contains two inside", "B": "three"},
			"A", "B",
		)

		got := plantscraper.FinalizeField(s)
		final, ok := got.(*plantscraper.Structured)
		require.True(t, ok)
		require.NotNil(t, final.Content)

		for _, p := range strings.Split(*final.Content, "\n") {
			for _, k := range final.Sections.Keys() {
				v, _ := final.Sections.Get(k)
				text, isText := v.(plantscraper.Text)
				if isText {
					assert.NotContains(t, string(text), strings.TrimSpace(p))
				}
			}
		}
	})
}
