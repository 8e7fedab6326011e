package pdfsync

import "time"

// PDFExt is the single file extension the engine tracks and serves.
// The suffix match is case-sensitive everywhere it is applied.
const PDFExt = ".pdf"

// FileDescriptor describes one recognized file on disk at scan time.
// Descriptors are never mutated; each scan produces a fresh set.
type FileDescriptor struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Modified time.Time `json:"modified"`
}

// Message types pushed to connected viewers
const (
	MsgPDFsUpdated = "pdfs-updated"
	MsgPDFChanged  = "pdf-changed"
)

// Message is the tagged union sent over the push channel.
// Files is set for pdfs-updated, Name for pdf-changed.
type Message struct {
	Type  string           `json:"type"`
	Files []FileDescriptor `json:"files,omitempty"`
	Name  string           `json:"name,omitempty"`
}

// ListChanged builds a pdfs-updated message carrying a full snapshot.
func ListChanged(files []FileDescriptor) Message {
	return Message{Type: MsgPDFsUpdated, Files: files}
}

// FileChanged builds a pdf-changed message naming the affected file.
func FileChanged(name string) Message {
	return Message{Type: MsgPDFChanged, Name: name}
}

// RawEvent is a normalized filesystem notification as delivered by the
// Watcher. Op is the OS-reported operation (informational only — the engine
// re-derives truth from disk rather than trusting it) and Name is the base
// name of the affected file.
type RawEvent struct {
	Op   string
	Name string
}

// Observer is one connected push client. Send reports whether the message
// was accepted for delivery; a false return never affects other observers.
type Observer interface {
	Send(msg Message) bool
}
