package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plantscraper "github.com/niklas-joh/plantScraper"
	"github.com/niklas-joh/plantScraper/fs"
	"github.com/niklas-joh/plantScraper/mock"
)

func TestLinkToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "plant guide",
			url:  "https://www.almanac.com/plant/artichokes",
			want: "plant/artichokes.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://www.almanac.com/plant/",
			want: "plant/index.md",
		},
		{
			name: "root becomes index",
			url:  "https://www.almanac.com/",
			want: "index.md",
		},
		{
			name: "ignores query string",
			url:  "https://www.almanac.com/plant/basil?ref=grid",
			want: "plant/basil.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.LinkToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshotWriter_WriteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("writes converted markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<h1>Artichokes</h1>", html)
				return "# Artichokes", nil
			},
		}
		w := fs.NewSnapshotWriter(baseDir, converter)
		plant := &plantscraper.Plant{
			Name: "Artichokes",
			Link: "https://www.almanac.com/plant/artichokes",
		}

		path, err := w.WriteSnapshot(plant, "<h1>Artichokes</h1>", time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "plant/artichokes.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		want := `---
source: https://www.almanac.com/plant/artichokes
plant: Artichokes
fetched: 2024-03-15
---

# Artichokes`

		assert.Equal(t, want, string(content))
	})

	t.Run("validates plant", func(t *testing.T) {
		t.Parallel()

		w := fs.NewSnapshotWriter(t.TempDir(), &mock.Converter{})

		_, err := w.WriteSnapshot(&plantscraper.Plant{Name: "No Link"}, "<p></p>", time.Now())

		require.Error(t, err)
		assert.Equal(t, plantscraper.EINVALID, plantscraper.ErrorCode(err))
	})

	t.Run("converter errors propagate", func(t *testing.T) {
		t.Parallel()

		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("malformed html")
			},
		}
		w := fs.NewSnapshotWriter(t.TempDir(), converter)
		plant := &plantscraper.Plant{
			Name: "Basil",
			Link: "https://www.almanac.com/plant/basil",
		}

		_, err := w.WriteSnapshot(plant, "<p>", time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed html")
	})
}
