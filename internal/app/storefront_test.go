package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/drstein77/storefront/internal/datasource"
	"github.com/drstein77/storefront/internal/models"
	"github.com/drstein77/storefront/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadStorefrontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"images":[{"position":"hero","url":"a","alt":"A"},{"position":"featured","url":"b","alt":"B","title":"T","author":"X","price":"$1","type":"Physical"}]}`), 0o600))

	core, logs := observer.New(zapcore.InfoLevel)
	snap, err := LoadStorefront(context.Background(), datasource.NewFileSource(path), 0, web.Page(), zap.New(core))
	require.NoError(t, err)

	assert.False(t, snap.Fallback)
	assert.Len(t, snap.Items, 2)
	require.NotNil(t, snap.Partitions.Hero)
	assert.Len(t, snap.Partitions.Featured, 1)
	assert.Empty(t, snap.Partitions.Bestseller)

	page := string(snap.Page)
	assert.Contains(t, page, `id="hero-image" class="img-fluid" src="a" alt="A"`)
	assert.Equal(t, 1, strings.Count(page, `class="book-card"`))
	assert.Contains(t, page, `data-scroll-target="featured"`)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "bestseller", warnings[0].ContextMap()["slot"])
}

func TestLoadStorefrontFallsBack(t *testing.T) {
	snap, err := LoadStorefront(context.Background(), datasource.NewFileSource(filepath.Join(t.TempDir(), "missing.json")), 0, web.Page(), zap.NewNop())
	require.NoError(t, err)

	assert.True(t, snap.Fallback)
	assert.Equal(t, datasource.Fallback(), snap.Items)
	assert.Equal(t, 7, strings.Count(string(snap.Page), `class="book-card"`))
	assert.Contains(t, string(snap.Page), "The Midnight Library")
}

type blockingSource struct{}

func (blockingSource) Load(ctx context.Context) ([]models.Item, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestLoadStorefrontTimeout(t *testing.T) {
	snap, err := LoadStorefront(context.Background(), blockingSource{}, 10*time.Millisecond, web.Page(), zap.NewNop())
	require.NoError(t, err)
	assert.True(t, snap.Fallback)
}

func TestUnavailableSource(t *testing.T) {
	_, err := unavailable{err: assert.AnError}.Load(context.Background())
	assert.ErrorIs(t, err, datasource.ErrFetch)
}
