package pdfsync

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Gateway error classification. InvalidNameError covers malformed or
// traversal-attempting names (400 at the HTTP surface); NotFoundError covers
// a well-formed name with no file behind it (404).
type (
	InvalidNameError struct {
		Name   string
		Reason string
	}

	NotFoundError struct {
		Name string
		Err  error
	}
)

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid pdf name %q: %s", e.Name, e.Reason)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pdf %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsInvalidName reports whether err is a gateway name rejection.
func IsInvalidName(err error) bool {
	var inv *InvalidNameError
	return errors.As(err, &inv)
}

// IsNotFound reports whether err is a gateway not-found rejection.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// FileHandle is a resolved, openable reference to one served file.
type FileHandle struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// Open returns the file's byte stream. The caller closes it.
func (h FileHandle) Open() (*os.File, error) {
	return os.Open(h.Path)
}

// Resolve validates name and locates it under root. Validation runs on the
// already-decoded name and must reject anything that could escape the
// watched root: the name is used strictly as a single path segment.
// Checks apply in order and each rejection is total.
func Resolve(name, root string) (FileHandle, error) {
	if !strings.HasSuffix(name, PDFExt) {
		return FileHandle{}, &InvalidNameError{Name: name, Reason: "not a .pdf file"}
	}
	if strings.ContainsAny(name, `/\`) {
		return FileHandle{}, &InvalidNameError{Name: name, Reason: "path separators not allowed"}
	}
	if strings.Contains(name, "..") {
		return FileHandle{}, &InvalidNameError{Name: name, Reason: "parent directory reference not allowed"}
	}

	path := filepath.Join(root, name)
	info, err := os.Stat(path)
	if err != nil {
		return FileHandle{}, &NotFoundError{Name: name, Err: err}
	}
	if info.IsDir() {
		return FileHandle{}, &NotFoundError{Name: name}
	}

	return FileHandle{
		Name:     name,
		Path:     path,
		Size:     info.Size(),
		Modified: info.ModTime(),
	}, nil
}
