package web

import (
	"github.com/rohanthewiz/rweb"

	"pdfcast/pdfsync"
)

// eng is the engine the handlers serve from, set once at route setup
var eng *pdfsync.Engine

// SetupRoutes configures all HTTP routes for the server
func SetupRoutes(s *rweb.Server, engine *pdfsync.Engine) {
	eng = engine

	// Root endpoint - serves the viewer UI
	s.Get("/", viewerHandler)

	// API endpoints
	s.Get("/api/app", appInfoHandler)
	s.Get("/api/pdfs", listPDFsHandler)

	// Individual document bytes
	s.Get("/pdf/:name", servePDFHandler)

	// Push channel for change notifications
	s.Get("/events", eventsHandler)
}

// appInfoHandler returns application information
func appInfoHandler(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"version":    "0.1.0",
		"status":     "ok",
		"watchedDir": eng.Root(),
	})
}
