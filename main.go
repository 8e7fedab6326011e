package main

import (
	"log"
	"os"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"pdfcast/config"
	"pdfcast/pdfsync"
	"pdfcast/platform/shutdown"
	"pdfcast/web"
)

func main() {
	if err := config.Initialize(os.Args[1:]); err != nil {
		logger.LogErr(err, "failed to initialize configuration")
		os.Exit(1)
	}
	cfg := config.Get()

	watcher, err := pdfsync.NewWatcher(cfg.WatchedDir)
	if err != nil {
		logger.LogErr(err, "failed to start filesystem watcher", "dir", cfg.WatchedDir)
		os.Exit(1)
	}

	engine := pdfsync.NewEngine(cfg.WatchedDir, pdfsync.NewRegistry(), watcher.Events())
	engine.Start()

	done := make(chan struct{})
	shutdown.InitShutdownService(done)
	shutdown.RegisterHook(func(_ time.Duration) error {
		if err := watcher.Close(); err != nil {
			return err
		}
		engine.Wait()
		return nil
	})

	// Create a new rweb server with options
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: true,
	})

	// Add middleware for request logging
	s.Use(rweb.RequestInfo)

	// Setup routes
	web.SetupRoutes(s, engine)

	log.Printf("Starting PDFCast server on %s, watching %s", cfg.Address, cfg.WatchedDir)
	go func() {
		if err := s.Run(); err != nil {
			logger.LogErr(err, "server exited")
		}
	}()

	<-done
	logger.Info("PDFCast shut down")
}
