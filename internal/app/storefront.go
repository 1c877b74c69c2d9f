package app

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/drstein77/storefront/internal/datasource"
	"github.com/drstein77/storefront/internal/render"
	"github.com/drstein77/storefront/internal/storage"
	"github.com/drstein77/storefront/internal/storefront"
	"go.uber.org/zap"
)

type Log interface {
	Debug(string, ...zap.Field)
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
}

// LoadStorefront loads the catalog, falling back to the built-in one,
// and renders it into the page shell. A zero timeout waits indefinitely.
func LoadStorefront(ctx context.Context, src datasource.Source, timeout time.Duration, shell []byte, log Log) (storage.Snapshot, error) {
	loadCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res := datasource.LoadOrFallback(loadCtx, src, log)
	parts := storefront.Partition(res.Items, log)

	doc, err := render.Parse(bytes.NewReader(shell))
	if err != nil {
		return storage.Snapshot{}, err
	}
	if err := doc.Apply(storefront.BuildView(parts), log); err != nil {
		return storage.Snapshot{}, fmt.Errorf("apply view: %w", err)
	}
	doc.MarkAnchors()

	page, err := doc.Bytes()
	if err != nil {
		return storage.Snapshot{}, err
	}

	return storage.Snapshot{
		Items:      res.Items,
		Partitions: parts,
		Page:       page,
		Fallback:   res.Fallback,
	}, nil
}
