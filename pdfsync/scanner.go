package pdfsync

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rohanthewiz/logger"
)

// Scan lists the watched directory and returns descriptors for every .pdf
// entry, sorted by name ascending. It is fail-soft: a missing or unreadable
// directory yields an empty snapshot, and an entry whose metadata cannot be
// read is excluded without failing the rest of the scan.
func Scan(root string) []FileDescriptor {
	entries, err := os.ReadDir(root)
	if err != nil {
		logger.LogErr(err, "pdf scan failed, returning empty snapshot", "dir", root)
		return []FileDescriptor{}
	}

	files := make([]FileDescriptor, 0, len(entries))
	seen := make(map[string]int, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, PDFExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Likely removed between list and stat; skip just this entry
			continue
		}

		fd := FileDescriptor{
			Name:     name,
			Path:     filepath.Join(root, name),
			Modified: info.ModTime(),
		}

		// Names are unique on real filesystems; last-write-wins regardless
		if at, ok := seen[name]; ok {
			files[at] = fd
			continue
		}
		seen[name] = len(files)
		files = append(files, fd)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files
}
