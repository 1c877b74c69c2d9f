// Package storefront turns a catalog into the render instructions of the
// storefront page.
package storefront

import (
	"github.com/drstein77/storefront/internal/models"
	"go.uber.org/zap"
)

type Log interface {
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
}

// Partition splits items by position, keeping input order within each
// slot. The first hero item wins. Items with an unknown position are
// dropped.
func Partition(items []models.Item, log Log) models.Partitions {
	p := models.Partitions{
		Featured:   []models.Item{},
		Bestseller: []models.Item{},
	}
	heroes := 0

	for i := range items {
		switch items[i].Position {
		case models.PositionHero:
			heroes++
			if p.Hero == nil {
				hero := items[i]
				p.Hero = &hero
			}
		case models.PositionFeatured:
			p.Featured = append(p.Featured, items[i])
		case models.PositionBestseller:
			p.Bestseller = append(p.Bestseller, items[i])
		}
	}

	logCount(log, "featured", len(p.Featured))
	logCount(log, "bestseller", len(p.Bestseller))
	if heroes > 1 {
		log.Warn("Multiple hero items, using the first", zap.Int("count", heroes))
	}

	return p
}

func logCount(log Log, slot string, n int) {
	if n == 0 {
		log.Warn("No books found", zap.String("slot", slot))
		return
	}
	log.Info("Loaded books", zap.String("slot", slot), zap.Int("count", n))
}
