// Command seed copies a catalog into the items table, so the storefront
// can be served from the database.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/drstein77/storefront/internal/config"
	"github.com/drstein77/storefront/internal/datasource"
	"github.com/drstein77/storefront/internal/dbkeeper"
	"github.com/drstein77/storefront/internal/logger"
	"go.uber.org/zap"
)

func main() {
	// -d, -s, -m and -l resolve like the storefront's, .env included
	useFallback := flag.Bool("fallback", false, "import the built-in catalog instead of -s")
	option := config.NewOptions()
	option.ParseFlags()
	dsn, src := option.DataBaseDSN(), option.DataSource()

	nLogger, err := logger.NewLogger(option.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}
	defer nLogger.Sync()

	ctx := context.Background()

	items := datasource.Fallback()
	if !*useFallback {
		items, err = datasource.New(src, http.DefaultClient).Load(ctx)
		if err != nil {
			nLogger.Error("Unable to load catalog", zap.String("source", src), zap.Error(err))
			os.Exit(1)
		}
	}

	if err := dbkeeper.Migrate(dsn, option.MigrationsDir(), nLogger); err != nil {
		nLogger.Error("Migration failed", zap.Error(err))
		os.Exit(1)
	}

	keeper, err := dbkeeper.NewDBKeeper(ctx, option.DataBaseDSN, nLogger)
	if err != nil {
		nLogger.Error("Unable to open database", zap.Error(err))
		os.Exit(1)
	}
	defer keeper.Close()

	if err := keeper.InsertItems(ctx, items); err != nil {
		nLogger.Error("Seeding failed", zap.Error(err))
		os.Exit(1)
	}
	nLogger.Info("Catalog seeded", zap.Int("count", len(items)))
}
