package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drstein77/storefront/internal/app"
	"github.com/drstein77/storefront/internal/config"
)

func main() {
	const shutdownTimeout = 5 * time.Second
	// Create a root context with the possibility of cancellation
	ctx, cancel := context.WithCancel(context.Background())

	// Create a channel for signal handling
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	// create and initialize a new option instance
	option := config.NewOptions()
	option.ParseFlags()

	server := app.NewServer(ctx, option)
	go func() {
		// Wait for a signal
		sig := <-signalCh
		server.Log.Info(fmt.Sprintf("Received signal: %+v", sig))

		// Cancel the context so a pending catalog load gives up
		cancel()

		// Perform graceful server shutdown
		server.Shutdown(shutdownTimeout)
	}()

	// Start the server
	server.Serve()
}
