package health

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/jeanpaul/addressbook/internal/storage"
)

// Status describes the state of the address book file.
type Status struct {
	Path      string
	Codec     string
	Exists    bool
	Readable  bool
	Size      int64
	Contacts  int
	Birthdays int
	Error     string
	Latency   time.Duration
}

// OK reports whether the book can be loaded. A missing file is fine: it means a new book.
func (s Status) OK() bool { return s.Error == "" }

// Check loads the book through store the same way the assistant does at startup.
func Check(store *storage.FileStore) (s Status) {
	s = Status{Path: store.Path(), Codec: store.Codec().Name()}
	start := time.Now()
	defer func() { s.Latency = time.Since(start) }()

	info, err := os.Stat(store.Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.Readable = true
		return s
	case err != nil:
		s.Error = friendlyError(err)
		return s
	case info.IsDir():
		s.Exists = true
		s.Error = "path is a directory"
		return s
	}
	s.Exists = true
	s.Size = info.Size()

	book, err := store.Load()
	if err != nil {
		s.Error = friendlyError(err)
		return s
	}
	s.Readable = true
	s.Contacts = book.Len()
	for _, r := range book.Records() {
		if _, ok := r.Birthday(); ok {
			s.Birthdays++
		}
	}
	return s
}

func friendlyError(err error) string {
	msg := err.Error()
	if errors.Is(err, fs.ErrPermission) {
		return "permission denied (check the file mode)"
	}
	if strings.Contains(msg, "schema validation failed") {
		return "file does not look like an address book: " + msg
	}
	return fmt.Sprintf("cannot load: %s", msg)
}
