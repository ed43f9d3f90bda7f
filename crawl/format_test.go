package crawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/niklas-joh/plantScraper/crawl"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", crawl.FormatBytes(512))
	})

	t.Run("formats kilobytes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	})

	t.Run("formats megabytes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
	})

	t.Run("zero bytes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "0 B", crawl.FormatBytes(0))
	})
}
