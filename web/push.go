package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"pdfcast/pdfsync"
	"pdfcast/platform/shutdown"
)

// chanObserver adapts one push connection to the registry's Observer
// capability. Send is non-blocking: a saturated connection refuses the
// message rather than stalling the broadcast.
type chanObserver struct {
	ch chan pdfsync.Message
}

func newChanObserver() *chanObserver {
	return &chanObserver{ch: make(chan pdfsync.Message, 16)}
}

func (o *chanObserver) Send(msg pdfsync.Message) bool {
	select {
	case o.ch <- msg:
		return true
	default:
		return false
	}
}

// eventsHandler is the push channel. Each connection registers an observer
// for its lifetime and streams the engine's change messages as JSON; any
// write failure means the client is gone and the deferred unregister cleans
// up. The client sends nothing.
func eventsHandler(c rweb.Context) error {
	if shutdown.InProgress() {
		return c.WriteError(serr.New("server is shutting down"), 503)
	}

	c.Response().SetHeader("Content-Type", "text/event-stream")
	c.Response().SetHeader("Cache-Control", "no-cache")
	c.Response().SetHeader("Connection", "keep-alive")

	obs := newChanObserver()
	reg := eng.Registry()
	reg.Register(obs)
	defer reg.Unregister(obs)

	logger.Info("Viewer connected", "observers", reg.Count())
	defer func() {
		logger.Info("Viewer disconnected", "observers", reg.Count()-1)
	}()

	// A new viewer starts from the current directory state
	if err := writeMessage(c, pdfsync.ListChanged(eng.Snapshot())); err != nil {
		return nil
	}

	for msg := range obs.ch {
		if err := writeMessage(c, msg); err != nil {
			return nil
		}
	}
	return nil
}

// writeMessage sends one JSON message over the event stream
func writeMessage(c rweb.Context, msg pdfsync.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.LogErr(err, "failed to marshal push message", "type", msg.Type)
		return nil
	}

	if _, err = fmt.Fprintf(c.Response(), "data: %s\n\n", data); err != nil {
		return err
	}
	if flusher, ok := c.Response().(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
