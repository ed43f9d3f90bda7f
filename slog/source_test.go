package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niklas-joh/plantScraper/mock"
	pslog "github.com/niklas-joh/plantScraper/slog"
)

func TestLoggingGuideSource_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.GuideSource{
			DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return []string{
					"https://www.almanac.com/plant/artichokes",
					"https://www.almanac.com/plant/basil",
				}, nil
			},
		}

		source := pslog.NewLoggingGuideSource(inner, logger)
		urls, err := source.DiscoverURLs(context.Background(), "https://www.almanac.com/plant")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "guide discovery")
		assert.Contains(t, output, "url=https://www.almanac.com/plant")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.GuideSource{
			DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return nil, errors.New("sitemap unavailable")
			},
		}

		source := pslog.NewLoggingGuideSource(inner, logger)
		_, err := source.DiscoverURLs(context.Background(), "https://www.almanac.com/plant")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=\"sitemap unavailable\"")
	})
}
