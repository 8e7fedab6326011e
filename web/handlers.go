package web

import (
	"io"
	"net/url"
	"strconv"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"pdfcast/pdfsync"
)

// listPDFsHandler returns the current snapshot of the watched directory.
// An unreadable directory yields an empty list, never an error response.
func listPDFsHandler(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"files":      eng.Snapshot(),
		"watchedDir": eng.Root(),
	})
}

// servePDFHandler streams one document's bytes. The name is validated by the
// gateway on its decoded form so an encoded traversal token cannot slip past.
func servePDFHandler(c rweb.Context) error {
	name := c.Request().Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	handle, err := pdfsync.Resolve(name, eng.Root())
	if err != nil {
		switch {
		case pdfsync.IsInvalidName(err):
			logger.Log("warn", "Rejected pdf request for "+name)
			return c.WriteError(serr.Wrap(err, "invalid pdf name"), 400)
		case pdfsync.IsNotFound(err):
			return c.WriteError(serr.Wrap(err, "pdf not found"), 404)
		default:
			return c.WriteError(serr.Wrap(err, "failed to resolve pdf"), 500)
		}
	}

	f, err := handle.Open()
	if err != nil {
		// Removed between resolve and open
		return c.WriteError(serr.Wrap(err, "pdf not found"), 404)
	}
	defer f.Close()

	c.Response().SetHeader("Content-Type", "application/pdf")
	c.Response().SetHeader("Content-Length", strconv.FormatInt(handle.Size, 10))
	if _, err = io.Copy(c.Response(), f); err != nil {
		logger.LogErr(err, "error streaming pdf", "name", name)
	}
	return nil
}
