package datasource

import (
	"context"
	"fmt"

	"github.com/drstein77/storefront/internal/models"
	"go.uber.org/zap"
)

// Result is the outcome of a load. Err is kept for diagnostics only;
// Items is always usable.
type Result struct {
	Items    []models.Item
	Fallback bool
	Err      error
}

// LoadOrFallback loads items from src and substitutes the built-in
// catalog on any error. It never fails.
func LoadOrFallback(ctx context.Context, src Source, log Log) Result {
	items, err := src.Load(ctx)
	if err != nil {
		log.Warn("Could not load catalog, using fallback data",
			zap.String("source", describe(src)), zap.Error(err))
		return Result{Items: Fallback(), Fallback: true, Err: err}
	}

	log.Info("Catalog loaded",
		zap.String("source", describe(src)), zap.Int("count", len(items)))
	return Result{Items: items}
}

func describe(src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", src)
}
